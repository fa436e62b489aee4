package ledger

import (
	"github.com/shopspring/decimal"
)

// ===========================
// User 聚合根
// ===========================

// InventoryEntry 庫存項目值對象
//
// 一筆庫存項目代表使用者目前持有的一種商品及其數量。
//
// 不變條件：
// - quantity > 0（數量歸零的項目必須整筆移除，不保留零數量項目）
// - 同一使用者的庫存中 itemID 唯一（由 User 聚合維護）
type InventoryEntry struct {
	itemID   string
	quantity int
}

// NewInventoryEntry 建構函數（checked 版本）
func NewInventoryEntry(itemID string, quantity int) (InventoryEntry, error) {
	if itemID == "" {
		return InventoryEntry{}, ErrInvalidItemID
	}
	if quantity <= 0 {
		return InventoryEntry{}, ErrInvalidQuantity.WithContext(
			"item_id", itemID,
			"quantity", quantity,
		)
	}
	return InventoryEntry{itemID: itemID, quantity: quantity}, nil
}

// ItemID 獲取商品 ID
func (e InventoryEntry) ItemID() string {
	return e.itemID
}

// Quantity 獲取持有數量
func (e InventoryEntry) Quantity() int {
	return e.quantity
}

// User 使用者聚合根
//
// 聚合邊界：
// - 使用者識別（使用者自選的字串 ID）
// - 點數餘額（有號數值，發放增加、購買扣減）
// - 庫存（有序序列，每種持有商品一筆，數量 > 0）
//
// 不變量（Invariants）：
// 1. 庫存項目數量必須 > 0（歸零即移除整筆）
// 2. 庫存中商品 ID 唯一
// 3. 餘額為有號數值（原則上可為負，購買資格檢查另行把關）
//
// 設計原則：
// - Tell, Don't Ask：購買入帳、發放入帳、消耗扣存都是聚合方法
// - 所有欄位 unexported，狀態變更只經由方法
type User struct {
	id      string
	balance decimal.Decimal
	items   []InventoryEntry
}

// NewUser 創建新使用者（Checked Constructor）
//
// 參數：
// - id: 使用者自選 ID（不能為空）
// - startingBalance: 起始餘額
//
// 業務規則：
// - 新使用者庫存為空
func NewUser(id string, startingBalance decimal.Decimal) (*User, error) {
	if id == "" {
		return nil, ErrInvalidUserID
	}
	return &User{
		id:      id,
		balance: startingBalance,
		items:   make([]InventoryEntry, 0),
	}, nil
}

// ReconstructUser 從持久化存儲重建聚合根
//
// 與 NewUser 的區別：
// - New: 創建新聚合（庫存必為空）
// - Reconstruct: 重建已存在的聚合（載入既有庫存）
//
// 重要：即使是從存儲重建，也必須驗證不變條件，防止損壞資料污染領域層。
func ReconstructUser(id string, balance decimal.Decimal, items []InventoryEntry) (*User, error) {
	if id == "" {
		return nil, ErrCorruptedRecord.WithContext("reason", "empty user id")
	}

	seen := make(map[string]bool, len(items))
	restored := make([]InventoryEntry, 0, len(items))
	for _, entry := range items {
		// 不變條件 1：數量 > 0
		if entry.quantity <= 0 {
			return nil, ErrCorruptedRecord.WithContext(
				"user_id", id,
				"item_id", entry.itemID,
				"quantity", entry.quantity,
			)
		}
		// 不變條件 2：商品 ID 唯一
		if seen[entry.itemID] {
			return nil, ErrCorruptedRecord.WithContext(
				"user_id", id,
				"item_id", entry.itemID,
				"reason", "duplicate inventory entry",
			)
		}
		seen[entry.itemID] = true
		restored = append(restored, entry)
	}

	return &User{
		id:      id,
		balance: balance,
		items:   restored,
	}, nil
}

// ===========================
// 查詢方法（Getters）
// ===========================

// ID 獲取使用者 ID
func (u *User) ID() string {
	return u.id
}

// Balance 獲取目前餘額
func (u *User) Balance() decimal.Decimal {
	return u.balance
}

// Items 獲取庫存快照（防禦性複製，呼叫者無法改動聚合內部狀態）
func (u *User) Items() []InventoryEntry {
	items := make([]InventoryEntry, len(u.items))
	copy(items, u.items)
	return items
}

// Quantity 獲取某商品的持有數量（未持有返回 0）
func (u *User) Quantity(itemID string) int {
	for _, entry := range u.items {
		if entry.itemID == itemID {
			return entry.quantity
		}
	}
	return 0
}

// HasItem 檢查是否持有某商品（數量 > 0）
func (u *User) HasItem(itemID string) bool {
	return u.Quantity(itemID) > 0
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// Credit 入帳（發放點數）
func (u *User) Credit(amount decimal.Decimal) {
	u.balance = u.balance.Add(amount)
}

// Debit 扣帳（購買扣點）
//
// 注意：本方法不檢查餘額是否足夠。購買資格（含餘額）由
// Ledger 服務在記錄購買事件之前檢查（defense in depth 也在那一層）。
func (u *User) Debit(amount decimal.Decimal) {
	u.balance = u.balance.Sub(amount)
}

// GrantItem 購買入庫：持有數量 +1（未持有時新增數量 1 的項目）
func (u *User) GrantItem(itemID string) {
	for i := range u.items {
		if u.items[i].itemID == itemID {
			u.items[i].quantity++
			return
		}
	}
	u.items = append(u.items, InventoryEntry{itemID: itemID, quantity: 1})
}

// ConsumeItem 消耗一單位商品
//
// 業務規則：
// - 未持有（或數量為 0）時返回 ErrItemNotHeld
// - 數量歸零時整筆移除（維持不變條件 1）
func (u *User) ConsumeItem(itemID string) error {
	for i := range u.items {
		if u.items[i].itemID == itemID {
			u.items[i].quantity--
			if u.items[i].quantity == 0 {
				u.items = append(u.items[:i], u.items[i+1:]...)
			}
			return nil
		}
	}
	return ErrItemNotHeld.WithContext(
		"user_id", u.id,
		"item_id", itemID,
	)
}

// RemoveItem 整筆移除某商品的庫存項目（不論數量）
//
// 使用場景：商品自目錄刪除時的級聯清理（Ledger.DeleteItemByID）。
// 返回是否確實有移除（未持有返回 false）。
func (u *User) RemoveItem(itemID string) bool {
	for i := range u.items {
		if u.items[i].itemID == itemID {
			u.items = append(u.items[:i], u.items[i+1:]...)
			return true
		}
	}
	return false
}
