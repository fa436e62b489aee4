// Package kvsqlite 提供 ledger.Store 的 SQLite 實作（GORM）
//
// 單檔資料庫即整個帳本的持久化狀態，適合單人使用的本機部署。
package kvsqlite

import (
	"errors"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
)

// Store SQLite 鍵值存儲
//
// 設計原則：
// - 實作 ledger.Store 介面（依賴倒置：介面定義在 Domain Layer）
// - 封裝所有資料庫操作細節，GORM 錯誤不外洩
// - 單鍵操作靠 SQLite 單語句原子性滿足 Store 契約
type Store struct {
	db *gorm.DB
}

// Open 開啟（或建立）SQLite 資料庫並完成遷移
//
// 參數：
//   - path: 資料庫檔案路徑（":memory:" 為測試用記憶體資料庫）
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&KVEntryGORM{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStore 以既有的 GORM 實例創建存儲（測試與 DI 用）
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get 讀取單鍵；第二個返回值表示鍵是否存在
func (s *Store) Get(key string) ([]byte, bool, error) {
	var model KVEntryGORM
	result := s.db.Where("entry_key = ?", key).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, result.Error
	}
	return model.EntryValue, true, nil
}

// Set 寫入單鍵（存在則覆寫，upsert）
func (s *Store) Set(key string, value []byte) error {
	model := KVEntryGORM{EntryKey: key, EntryValue: value}
	result := s.db.Save(&model)
	return result.Error
}

// Delete 刪除單鍵（鍵不存在時不視為錯誤）
func (s *Store) Delete(key string) error {
	result := s.db.Where("entry_key = ?", key).Delete(&KVEntryGORM{})
	return result.Error
}

// Scan 返回所有鍵以 prefix 開頭的項目，按鍵升序
//
// 前綴比對使用 LIKE，萬用字元先行轉義（商品 ID 是自由文字，
// 可能含底線等 LIKE 特殊字元）。
func (s *Store) Scan(prefix string) ([]ledger.Entry, error) {
	var models []KVEntryGORM
	result := s.db.
		Where("entry_key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Order("entry_key ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]ledger.Entry, 0, len(models))
	for _, model := range models {
		entries = append(entries, ledger.Entry{
			Key:   model.EntryKey,
			Value: model.EntryValue,
		})
	}
	return entries, nil
}

// escapeLike 轉義 LIKE 模式中的特殊字元
func escapeLike(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return replacer.Replace(s)
}
