package kvsqlite

// ===========================
// GORM Models
// ===========================

// KVEntryGORM 鍵值資料表模型
//
// 設計原則：
// - 僅用於 Infrastructure Layer（不暴露給 Domain Layer）
// - 整個帳本命名空間存成單一資料表：鍵為 <kind>/<id>、值為 JSON blob。
//   實體形狀由 Domain Layer 的記錄模型決定，本層不做關聯式建模。
//
// 欄位命名避開 SQL 保留字（key / value）。
type KVEntryGORM struct {
	EntryKey   string `gorm:"column:entry_key;type:varchar(255);primaryKey"`
	EntryValue []byte `gorm:"column:entry_value;not null"`
}

// TableName 指定資料表名稱
func (KVEntryGORM) TableName() string {
	return "kv_entries"
}
