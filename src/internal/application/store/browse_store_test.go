package store_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/rewardy/src/internal/application/store"
	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
	"github.com/jackyeh168/rewardy/src/internal/infrastructure/persistence/memory"
)

// ===========================
// BrowseStore Use Case 測試
// ===========================

// Test 1: 依餘額分組並各自按價格升序
func TestBrowseStore_PartitionsByAffordability(t *testing.T) {
	// Arrange
	l := ledger.New(memory.NewStore())
	_, err := l.CreateUser("audrow", decimal.NewFromInt(100))
	require.NoError(t, err)

	_, err = l.CreateItem("massage", decimal.NewFromInt(300), 30)
	require.NoError(t, err)
	_, err = l.CreateItem("tea", decimal.NewFromInt(30), 0)
	require.NoError(t, err)
	_, err = l.CreateItem("movie", decimal.NewFromInt(60), 0)
	require.NoError(t, err)

	uc := store.NewBrowseStoreUseCase(l)

	// Act
	result, err := uc.Execute(store.BrowseStoreCommand{UserID: "audrow"})

	// Assert: 買得起的兩項按價格升序，買不起的一項另列
	require.NoError(t, err)
	require.Len(t, result.Available, 2)
	assert.Equal(t, "tea", result.Available[0].ID)
	assert.Equal(t, "movie", result.Available[1].ID)

	require.Len(t, result.Unavailable, 1)
	assert.Equal(t, "massage", result.Unavailable[0].ID)
}

// Test 2: 冷卻中的商品歸入不可購買
func TestBrowseStore_CooldownItemUnavailable(t *testing.T) {
	// Arrange
	l := ledger.New(memory.NewStore())
	_, err := l.CreateUser("audrow", decimal.NewFromInt(1000))
	require.NoError(t, err)
	_, err = l.CreateItem("tea", decimal.NewFromInt(30), 21)
	require.NoError(t, err)
	require.NoError(t, l.PurchaseItem("audrow", "tea"))

	uc := store.NewBrowseStoreUseCase(l)

	// Act
	result, err := uc.Execute(store.BrowseStoreCommand{UserID: "audrow"})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Available)
	require.Len(t, result.Unavailable, 1)
	assert.Equal(t, "tea", result.Unavailable[0].ID)
}

// Test 3: 空目錄返回兩個空組
func TestBrowseStore_EmptyCatalog(t *testing.T) {
	// Arrange
	l := ledger.New(memory.NewStore())
	_, err := l.CreateUser("audrow", decimal.NewFromInt(100))
	require.NoError(t, err)

	uc := store.NewBrowseStoreUseCase(l)

	// Act
	result, err := uc.Execute(store.BrowseStoreCommand{UserID: "audrow"})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Available)
	assert.Empty(t, result.Unavailable)
}

// Test 4: 使用者不存在即失敗
func TestBrowseStore_MissingUser_Fails(t *testing.T) {
	// Arrange
	l := ledger.New(memory.NewStore())
	_, err := l.CreateItem("tea", decimal.NewFromInt(30), 0)
	require.NoError(t, err)

	uc := store.NewBrowseStoreUseCase(l)

	// Act
	_, err = uc.Execute(store.BrowseStoreCommand{UserID: "ghost"})

	// Assert
	assert.ErrorIs(t, err, ledger.ErrUserNotFound)
}
