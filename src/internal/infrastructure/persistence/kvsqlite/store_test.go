package kvsqlite

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
)

// ===========================
// kvsqlite Store Integration Tests
// ===========================

// setupTestStore 創建測試存儲（in-memory SQLite）
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err, "failed to open test database")
	return store
}

// Test 1: Get 不存在的鍵
func TestStore_Get_MissingKey_NotFound(t *testing.T) {
	// Arrange
	store := setupTestStore(t)

	// Act
	value, found, err := store.Get("user/missing")

	// Assert
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

// Test 2: Set 後 Get 讀回相同值
func TestStore_SetAndGet_RoundTrip(t *testing.T) {
	// Arrange
	store := setupTestStore(t)

	// Act
	require.NoError(t, store.Set("user/mish", []byte(`{"id":"mish"}`)))
	value, found, err := store.Get("user/mish")

	// Assert
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"id":"mish"}`), value)
}

// Test 3: Set 覆寫既有鍵（upsert）
func TestStore_Set_ExistingKey_Overwrites(t *testing.T) {
	// Arrange
	store := setupTestStore(t)
	require.NoError(t, store.Set("user/mish", []byte("v1")))

	// Act
	require.NoError(t, store.Set("user/mish", []byte("v2")))

	// Assert
	value, found, err := store.Get("user/mish")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v2"), value)
}

// Test 4: Delete 既有鍵與不存在的鍵
func TestStore_Delete_Idempotent(t *testing.T) {
	// Arrange
	store := setupTestStore(t)
	require.NoError(t, store.Set("user/mish", []byte("v1")))

	// Act & Assert: 刪除既有鍵
	require.NoError(t, store.Delete("user/mish"))
	_, found, err := store.Get("user/mish")
	require.NoError(t, err)
	assert.False(t, found)

	// 再刪一次不視為錯誤
	assert.NoError(t, store.Delete("user/mish"))
}

// Test 5: Scan 前綴過濾與升序排列
func TestStore_Scan_Prefix_FiltersAndSorts(t *testing.T) {
	// Arrange
	store := setupTestStore(t)
	require.NoError(t, store.Set("user/bob", []byte("b")))
	require.NoError(t, store.Set("item/tea", []byte("t")))
	require.NoError(t, store.Set("user/alice", []byte("a")))

	// Act
	entries, err := store.Scan("user/")

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "user/alice", entries[0].Key)
	assert.Equal(t, "user/bob", entries[1].Key)
}

// Test 6: Scan 空前綴返回整個命名空間
func TestStore_Scan_EmptyPrefix_ReturnsAll(t *testing.T) {
	// Arrange
	store := setupTestStore(t)
	require.NoError(t, store.Set("user/mish", []byte("u")))
	require.NoError(t, store.Set("item/tea", []byte("i")))

	// Act
	entries, err := store.Scan("")

	// Assert
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// Test 7: 鍵中的 LIKE 特殊字元不會誤配
func TestStore_Scan_LikeWildcardsInKeys_NoFalseMatches(t *testing.T) {
	// Arrange
	store := setupTestStore(t)
	require.NoError(t, store.Set("item/drink_tea", []byte("a")))
	require.NoError(t, store.Set("item/drinkXtea", []byte("b")))

	// Act: 前綴中的底線是字面值，不是單字元萬用字元
	entries, err := store.Scan("item/drink_")

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "item/drink_tea", entries[0].Key)
}

// Test 8: 作為 Ledger 後端的端到端往返
func TestStore_AsLedgerBackend_EndToEnd(t *testing.T) {
	// Arrange
	store := setupTestStore(t)
	l := ledger.New(store)

	_, err := l.CreateUser("audrow", decimal.Zero)
	require.NoError(t, err)
	_, err = l.CreateItem("mac", decimal.NewFromInt(100), 0)
	require.NoError(t, err)

	// Act
	require.NoError(t, l.PayoutUser("audrow", decimal.NewFromInt(500)))
	require.NoError(t, l.PurchaseItem("audrow", "mac"))

	// Assert
	user, err := l.GetUserByID("audrow")
	require.NoError(t, err)
	assert.True(t, user.Balance().Equal(decimal.NewFromInt(400)))
	assert.Equal(t, 1, user.Quantity("mac"))

	purchases, err := l.GetPurchaseEventsByUserID("audrow")
	require.NoError(t, err)
	assert.Len(t, purchases, 1)
}
