package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// Memory Store 測試
// ===========================

// Test 1: Get 不存在的鍵
func TestStore_Get_MissingKey_NotFound(t *testing.T) {
	// Arrange
	store := NewStore()

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
	store := NewStore()

	// Act
	err := store.Set("user/mish", []byte(`{"id":"mish"}`))
	require.NoError(t, err)
	value, found, err := store.Get("user/mish")

	// Assert
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"id":"mish"}`), value)
}

// Test 3: Set 覆寫既有鍵
func TestStore_Set_ExistingKey_Overwrites(t *testing.T) {
	// Arrange
	store := NewStore()
	require.NoError(t, store.Set("user/mish", []byte("v1")))

	// Act
	require.NoError(t, store.Set("user/mish", []byte("v2")))
	value, found, err := store.Get("user/mish")

	// Assert
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v2"), value)
}

// Test 4: Delete 後鍵不存在
func TestStore_Delete_ExistingKey_Removed(t *testing.T) {
	// Arrange
	store := NewStore()
	require.NoError(t, store.Set("user/mish", []byte("v1")))

	// Act
	err := store.Delete("user/mish")

	// Assert
	require.NoError(t, err)
	_, found, err := store.Get("user/mish")
	require.NoError(t, err)
	assert.False(t, found)
}

// Test 5: Delete 不存在的鍵不視為錯誤
func TestStore_Delete_MissingKey_NoError(t *testing.T) {
	// Arrange
	store := NewStore()

	// Act
	err := store.Delete("user/missing")

	// Assert
	assert.NoError(t, err)
}

// Test 6: Scan 只返回符合前綴的項目且按鍵升序
func TestStore_Scan_Prefix_FiltersAndSorts(t *testing.T) {
	// Arrange
	store := NewStore()
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

// Test 7: Scan 空前綴返回整個命名空間
func TestStore_Scan_EmptyPrefix_ReturnsAll(t *testing.T) {
	// Arrange
	store := NewStore()
	require.NoError(t, store.Set("user/mish", []byte("u")))
	require.NoError(t, store.Set("item/tea", []byte("i")))

	// Act
	entries, err := store.Scan("")

	// Assert
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// Test 8: 讀出的值是複本，修改不影響存儲內部狀態
func TestStore_Get_ReturnedValueIsCopy(t *testing.T) {
	// Arrange
	store := NewStore()
	require.NoError(t, store.Set("user/mish", []byte("abc")))

	// Act
	value, _, err := store.Get("user/mish")
	require.NoError(t, err)
	value[0] = 'X'

	// Assert
	fresh, _, err := store.Get("user/mish")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), fresh)
}
