package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// ===========================
// Item 目錄實體
// ===========================

// Item 商品目錄實體
//
// 目錄商品是長期存在的參考資料，不屬於任何單一使用者。
//
// 欄位：
// - id: 商品唯一識別（目錄中的自然鍵，如 "Get bubble tea"）
// - price: 價格（>= 0）
// - daysBetweenAvailable: 同一使用者再次購買前的冷卻天數（>= 0）
type Item struct {
	id                   string
	price                decimal.Decimal
	daysBetweenAvailable int
}

// NewItem 創建新商品（Checked Constructor）
//
// 建構約束：
// - id 不能為空
// - price >= 0
// - daysBetweenAvailable >= 0
func NewItem(id string, price decimal.Decimal, daysBetweenAvailable int) (*Item, error) {
	if id == "" {
		return nil, ErrInvalidItemID
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice.WithContext(
			"item_id", id,
			"price", price.String(),
		)
	}
	if daysBetweenAvailable < 0 {
		return nil, ErrNegativeCooldown.WithContext(
			"item_id", id,
			"days", daysBetweenAvailable,
		)
	}
	return &Item{
		id:                   id,
		price:                price,
		daysBetweenAvailable: daysBetweenAvailable,
	}, nil
}

// ReconstructItem 從持久化存儲重建商品
//
// 與 NewItem 執行相同驗證：損壞的存儲資料不得進入領域層。
func ReconstructItem(id string, price decimal.Decimal, daysBetweenAvailable int) (*Item, error) {
	item, err := NewItem(id, price, daysBetweenAvailable)
	if err != nil {
		return nil, ErrCorruptedRecord.WithContext(
			"item_id", id,
			"underlying_error", err.Error(),
		)
	}
	return item, nil
}

// ID 獲取商品 ID
func (i *Item) ID() string {
	return i.id
}

// Price 獲取價格
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// DaysBetweenAvailable 獲取再購冷卻天數
func (i *Item) DaysBetweenAvailable() int {
	return i.daysBetweenAvailable
}

// CooldownDuration 冷卻天數換算為時長（連續時間語意，非日曆日切齊）
func (i *Item) CooldownDuration() time.Duration {
	return time.Duration(i.daysBetweenAvailable) * 24 * time.Hour
}

// SetPrice 更新價格（UpdateItem 流程使用）
func (i *Item) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice.WithContext(
			"item_id", i.id,
			"price", price.String(),
		)
	}
	i.price = price
	return nil
}

// SetDaysBetweenAvailable 更新再購冷卻天數（UpdateItem 流程使用）
func (i *Item) SetDaysBetweenAvailable(days int) error {
	if days < 0 {
		return ErrNegativeCooldown.WithContext(
			"item_id", i.id,
			"days", days,
		)
	}
	i.daysBetweenAvailable = days
	return nil
}
