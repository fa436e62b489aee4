// Package memory 提供 ledger.Store 的記憶體實作
//
// 用途：單元測試與示範，不提供持久性。
package memory

import (
	"sort"
	"sync"

	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
)

// Store 記憶體鍵值存儲
//
// 以 map 加讀寫鎖實作，值在寫入與讀出時都複製，
// 呼叫者持有的 slice 與存儲內部狀態互不影響。
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewStore 創建空的記憶體存儲
func NewStore() *Store {
	return &Store{
		entries: make(map[string][]byte),
	}
}

// Get 讀取單鍵
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set 寫入單鍵（存在則覆寫）
func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = append([]byte(nil), value...)
	return nil
}

// Delete 刪除單鍵（鍵不存在時不視為錯誤）
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Scan 返回所有鍵以 prefix 開頭的項目，按鍵升序
func (s *Store) Scan(prefix string) ([]ledger.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	result := make([]ledger.Entry, 0, len(keys))
	for _, key := range keys {
		result = append(result, ledger.Entry{
			Key:   key,
			Value: append([]byte(nil), s.entries[key]...),
		})
	}
	return result, nil
}
