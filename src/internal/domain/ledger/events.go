package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// ===========================
// 帳本事件（append-only 審計記錄）
// ===========================
//
// 三種事件都是參照圖中的葉節點：它們引用 userID / itemID，
// 但沒有任何東西引用它們，因此各自的刪除沒有級聯。
//
// 事件一經記錄原則上不再修改；Update 操作（完整覆寫）僅供
// 管理修正與測試建構歷史資料使用，搭配 Reconstruct 建構函數。

// ===========================
// PurchaseEvent 購買事件
// ===========================

// PurchaseEvent 購買事件：每次成功購買記錄一筆
//
// cost 是購買當下價格的快照，目錄價格日後調整不影響歷史記錄。
type PurchaseEvent struct {
	id         PurchaseEventID
	userID     string
	itemID     string
	occurredAt time.Time
	cost       decimal.Decimal
}

// NewPurchaseEvent 創建新購買事件（生成 ID、取當前時間）
func NewPurchaseEvent(userID, itemID string, cost decimal.Decimal) (*PurchaseEvent, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if itemID == "" {
		return nil, ErrInvalidItemID
	}
	return &PurchaseEvent{
		id:         NewPurchaseEventID(),
		userID:     userID,
		itemID:     itemID,
		occurredAt: time.Now(),
		cost:       cost,
	}, nil
}

// ReconstructPurchaseEvent 重建購買事件（持久化載入、管理修正用）
func ReconstructPurchaseEvent(
	id PurchaseEventID,
	userID, itemID string,
	occurredAt time.Time,
	cost decimal.Decimal,
) (*PurchaseEvent, error) {
	if id.IsEmpty() {
		return nil, ErrCorruptedRecord.WithContext("reason", "empty purchase event id")
	}
	if userID == "" || itemID == "" {
		return nil, ErrCorruptedRecord.WithContext(
			"purchase_event_id", id.String(),
			"user_id", userID,
			"item_id", itemID,
		)
	}
	return &PurchaseEvent{
		id:         id,
		userID:     userID,
		itemID:     itemID,
		occurredAt: occurredAt,
		cost:       cost,
	}, nil
}

// ID 獲取事件 ID
func (e *PurchaseEvent) ID() PurchaseEventID {
	return e.id
}

// UserID 獲取購買者 ID
func (e *PurchaseEvent) UserID() string {
	return e.userID
}

// ItemID 獲取商品 ID
func (e *PurchaseEvent) ItemID() string {
	return e.itemID
}

// OccurredAt 獲取發生時間
func (e *PurchaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Cost 獲取成交價格快照
func (e *PurchaseEvent) Cost() decimal.Decimal {
	return e.cost
}

// ===========================
// PayoutEvent 發放事件
// ===========================

// PayoutEvent 點數發放事件：每次發放記錄一筆
//
// amount 原則上可為任意正負號，實務上由抽選器產生非負值。
// 發放事件不引用任何商品，商品刪除的級聯不觸及它。
type PayoutEvent struct {
	id         PayoutEventID
	userID     string
	occurredAt time.Time
	amount     decimal.Decimal
}

// NewPayoutEvent 創建新發放事件（生成 ID、取當前時間）
func NewPayoutEvent(userID string, amount decimal.Decimal) (*PayoutEvent, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return &PayoutEvent{
		id:         NewPayoutEventID(),
		userID:     userID,
		occurredAt: time.Now(),
		amount:     amount,
	}, nil
}

// ReconstructPayoutEvent 重建發放事件
func ReconstructPayoutEvent(
	id PayoutEventID,
	userID string,
	occurredAt time.Time,
	amount decimal.Decimal,
) (*PayoutEvent, error) {
	if id.IsEmpty() {
		return nil, ErrCorruptedRecord.WithContext("reason", "empty payout event id")
	}
	if userID == "" {
		return nil, ErrCorruptedRecord.WithContext(
			"payout_event_id", id.String(),
			"reason", "empty user id",
		)
	}
	return &PayoutEvent{
		id:         id,
		userID:     userID,
		occurredAt: occurredAt,
		amount:     amount,
	}, nil
}

// ID 獲取事件 ID
func (e *PayoutEvent) ID() PayoutEventID {
	return e.id
}

// UserID 獲取受發放者 ID
func (e *PayoutEvent) UserID() string {
	return e.userID
}

// OccurredAt 獲取發生時間
func (e *PayoutEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Amount 獲取發放金額
func (e *PayoutEvent) Amount() decimal.Decimal {
	return e.amount
}

// ===========================
// ExhaustItemEvent 消耗事件
// ===========================

// ExhaustItemEvent 商品消耗事件：每消耗一單位已購商品記錄一筆
type ExhaustItemEvent struct {
	id         ExhaustItemEventID
	userID     string
	itemID     string
	occurredAt time.Time
}

// NewExhaustItemEvent 創建新消耗事件（生成 ID、取當前時間）
func NewExhaustItemEvent(userID, itemID string) (*ExhaustItemEvent, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if itemID == "" {
		return nil, ErrInvalidItemID
	}
	return &ExhaustItemEvent{
		id:         NewExhaustItemEventID(),
		userID:     userID,
		itemID:     itemID,
		occurredAt: time.Now(),
	}, nil
}

// ReconstructExhaustItemEvent 重建消耗事件
func ReconstructExhaustItemEvent(
	id ExhaustItemEventID,
	userID, itemID string,
	occurredAt time.Time,
) (*ExhaustItemEvent, error) {
	if id.IsEmpty() {
		return nil, ErrCorruptedRecord.WithContext("reason", "empty exhaust item event id")
	}
	if userID == "" || itemID == "" {
		return nil, ErrCorruptedRecord.WithContext(
			"exhaust_item_event_id", id.String(),
			"user_id", userID,
			"item_id", itemID,
		)
	}
	return &ExhaustItemEvent{
		id:         id,
		userID:     userID,
		itemID:     itemID,
		occurredAt: occurredAt,
	}, nil
}

// ID 獲取事件 ID
func (e *ExhaustItemEvent) ID() ExhaustItemEventID {
	return e.id
}

// UserID 獲取消耗者 ID
func (e *ExhaustItemEvent) UserID() string {
	return e.userID
}

// ItemID 獲取商品 ID
func (e *ExhaustItemEvent) ItemID() string {
	return e.itemID
}

// OccurredAt 獲取發生時間
func (e *ExhaustItemEvent) OccurredAt() time.Time {
	return e.occurredAt
}
