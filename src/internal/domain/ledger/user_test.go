package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
)

// ===== User 聚合測試 =====

// Test 1: 創建新使用者
func TestNewUser_ValidID_EmptyInventory(t *testing.T) {
	// Act
	user, err := ledger.NewUser("audrow", decimal.NewFromInt(100))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "audrow", user.ID())
	assert.True(t, user.Balance().Equal(decimal.NewFromInt(100)))
	assert.Empty(t, user.Items())
}

// Test 2: 空 ID 創建失敗
func TestNewUser_EmptyID_Fails(t *testing.T) {
	// Act
	_, err := ledger.NewUser("", decimal.Zero)

	// Assert
	assert.ErrorIs(t, err, ledger.ErrInvalidUserID)
}

// Test 3: Credit / Debit 餘額運算
func TestUser_CreditAndDebit_BalanceArithmetic(t *testing.T) {
	// Arrange
	user, err := ledger.NewUser("audrow", decimal.Zero)
	require.NoError(t, err)

	// Act
	user.Credit(decimal.NewFromInt(200))
	user.Credit(decimal.NewFromInt(300))
	user.Debit(decimal.NewFromInt(150))

	// Assert
	assert.True(t, user.Balance().Equal(decimal.NewFromInt(350)))
}

// Test 4: GrantItem 累加數量，不重複建項
func TestUser_GrantItem_IncrementsQuantity(t *testing.T) {
	// Arrange
	user, err := ledger.NewUser("audrow", decimal.Zero)
	require.NoError(t, err)

	// Act
	user.GrantItem("mac")
	user.GrantItem("mac")
	user.GrantItem("tea")

	// Assert
	assert.Equal(t, 2, user.Quantity("mac"))
	assert.Equal(t, 1, user.Quantity("tea"))
	assert.Len(t, user.Items(), 2)
}

// Test 5: ConsumeItem 歸零時整筆移除
func TestUser_ConsumeItem_RemovesEntryAtZero(t *testing.T) {
	// Arrange
	user, err := ledger.NewUser("audrow", decimal.Zero)
	require.NoError(t, err)
	user.GrantItem("mac")
	user.GrantItem("mac")

	// Act
	require.NoError(t, user.ConsumeItem("mac"))
	assert.Equal(t, 1, user.Quantity("mac"))
	require.NoError(t, user.ConsumeItem("mac"))

	// Assert
	assert.False(t, user.HasItem("mac"))
	assert.Empty(t, user.Items())
}

// Test 6: 未持有商品消耗失敗
func TestUser_ConsumeItem_NotHeld_Fails(t *testing.T) {
	// Arrange
	user, err := ledger.NewUser("audrow", decimal.Zero)
	require.NoError(t, err)

	// Act
	err = user.ConsumeItem("mac")

	// Assert
	assert.ErrorIs(t, err, ledger.ErrItemNotHeld)
}

// Test 7: RemoveItem 不論數量整筆移除
func TestUser_RemoveItem_DropsWholeEntry(t *testing.T) {
	// Arrange
	user, err := ledger.NewUser("audrow", decimal.Zero)
	require.NoError(t, err)
	user.GrantItem("mac")
	user.GrantItem("mac")
	user.GrantItem("mac")

	// Act
	removed := user.RemoveItem("mac")
	removedAgain := user.RemoveItem("mac")

	// Assert
	assert.True(t, removed)
	assert.False(t, removedAgain)
	assert.False(t, user.HasItem("mac"))
}

// Test 8: Items 返回防禦性複製
func TestUser_Items_ReturnsCopy(t *testing.T) {
	// Arrange
	user, err := ledger.NewUser("audrow", decimal.Zero)
	require.NoError(t, err)
	user.GrantItem("mac")

	// Act: 改動快照不影響聚合
	snapshot := user.Items()
	entry, err := ledger.NewInventoryEntry("tea", 5)
	require.NoError(t, err)
	snapshot[0] = entry

	// Assert
	assert.Equal(t, 1, user.Quantity("mac"))
	assert.False(t, user.HasItem("tea"))
}

// Test 9: ReconstructUser 拒絕非法庫存
func TestReconstructUser_InvalidInventory_Fails(t *testing.T) {
	entryA, err := ledger.NewInventoryEntry("mac", 1)
	require.NoError(t, err)
	entryB, err := ledger.NewInventoryEntry("mac", 2)
	require.NoError(t, err)

	// Act: 重複的商品 ID 違反不變條件
	_, err = ledger.ReconstructUser("audrow", decimal.Zero, []ledger.InventoryEntry{entryA, entryB})

	// Assert
	assert.ErrorIs(t, err, ledger.ErrCorruptedRecord)
}

// Test 10: InventoryEntry 建構驗證
func TestNewInventoryEntry_Validation(t *testing.T) {
	// 數量必須 > 0
	_, err := ledger.NewInventoryEntry("mac", 0)
	assert.ErrorIs(t, err, ledger.ErrInvalidQuantity)

	_, err = ledger.NewInventoryEntry("mac", -1)
	assert.ErrorIs(t, err, ledger.ErrInvalidQuantity)

	// 商品 ID 不能為空
	_, err = ledger.NewInventoryEntry("", 1)
	assert.ErrorIs(t, err, ledger.ErrInvalidItemID)
}
