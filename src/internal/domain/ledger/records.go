package ledger

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ===========================
// 持久化記錄模型（JSON）
// ===========================
//
// 設計原則：
// - 與 Domain 聚合分離：記錄模型只負責 JSON 形狀，聚合只負責業務規則
// - toDomain 經由 Reconstruct 建構函數重建聚合（重建時仍驗證不變條件）
// - 記錄模型不對外暴露（unexported），外部只看得到聚合

// userRecord 使用者持久化記錄
type userRecord struct {
	ID      string                 `json:"id"`
	Balance decimal.Decimal        `json:"balance"`
	Items   []inventoryEntryRecord `json:"items"`
}

// inventoryEntryRecord 庫存項目持久化記錄
type inventoryEntryRecord struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func newUserRecord(u *User) userRecord {
	items := u.Items()
	entries := make([]inventoryEntryRecord, 0, len(items))
	for _, entry := range items {
		entries = append(entries, inventoryEntryRecord{
			ItemID:   entry.ItemID(),
			Quantity: entry.Quantity(),
		})
	}
	return userRecord{
		ID:      u.ID(),
		Balance: u.Balance(),
		Items:   entries,
	}
}

func (r userRecord) toDomain() (*User, error) {
	entries := make([]InventoryEntry, 0, len(r.Items))
	for _, item := range r.Items {
		entry, err := NewInventoryEntry(item.ItemID, item.Quantity)
		if err != nil {
			return nil, ErrCorruptedRecord.WithContext(
				"user_id", r.ID,
				"item_id", item.ItemID,
				"underlying_error", err.Error(),
			)
		}
		entries = append(entries, entry)
	}
	return ReconstructUser(r.ID, r.Balance, entries)
}

// itemRecord 商品持久化記錄
type itemRecord struct {
	ID                   string          `json:"id"`
	Price                decimal.Decimal `json:"price"`
	DaysBetweenAvailable int             `json:"daysBetweenAvailable"`
}

func newItemRecord(i *Item) itemRecord {
	return itemRecord{
		ID:                   i.ID(),
		Price:                i.Price(),
		DaysBetweenAvailable: i.DaysBetweenAvailable(),
	}
}

func (r itemRecord) toDomain() (*Item, error) {
	return ReconstructItem(r.ID, r.Price, r.DaysBetweenAvailable)
}

// purchaseEventRecord 購買事件持久化記錄
type purchaseEventRecord struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	ItemID     string          `json:"itemId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Cost       decimal.Decimal `json:"cost"`
}

func newPurchaseEventRecord(e *PurchaseEvent) purchaseEventRecord {
	return purchaseEventRecord{
		ID:         e.ID().String(),
		UserID:     e.UserID(),
		ItemID:     e.ItemID(),
		OccurredAt: e.OccurredAt(),
		Cost:       e.Cost(),
	}
}

func (r purchaseEventRecord) toDomain() (*PurchaseEvent, error) {
	id, err := PurchaseEventIDFromString(r.ID)
	if err != nil {
		return nil, ErrCorruptedRecord.WithContext(
			"purchase_event_id", r.ID,
			"underlying_error", err.Error(),
		)
	}
	return ReconstructPurchaseEvent(id, r.UserID, r.ItemID, r.OccurredAt, r.Cost)
}

// payoutEventRecord 發放事件持久化記錄
type payoutEventRecord struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Amount     decimal.Decimal `json:"amount"`
}

func newPayoutEventRecord(e *PayoutEvent) payoutEventRecord {
	return payoutEventRecord{
		ID:         e.ID().String(),
		UserID:     e.UserID(),
		OccurredAt: e.OccurredAt(),
		Amount:     e.Amount(),
	}
}

func (r payoutEventRecord) toDomain() (*PayoutEvent, error) {
	id, err := PayoutEventIDFromString(r.ID)
	if err != nil {
		return nil, ErrCorruptedRecord.WithContext(
			"payout_event_id", r.ID,
			"underlying_error", err.Error(),
		)
	}
	return ReconstructPayoutEvent(id, r.UserID, r.OccurredAt, r.Amount)
}

// exhaustItemEventRecord 消耗事件持久化記錄
type exhaustItemEventRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ItemID     string    `json:"itemId"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newExhaustItemEventRecord(e *ExhaustItemEvent) exhaustItemEventRecord {
	return exhaustItemEventRecord{
		ID:         e.ID().String(),
		UserID:     e.UserID(),
		ItemID:     e.ItemID(),
		OccurredAt: e.OccurredAt(),
	}
}

func (r exhaustItemEventRecord) toDomain() (*ExhaustItemEvent, error) {
	id, err := ExhaustItemEventIDFromString(r.ID)
	if err != nil {
		return nil, ErrCorruptedRecord.WithContext(
			"exhaust_item_event_id", r.ID,
			"underlying_error", err.Error(),
		)
	}
	return ReconstructExhaustItemEvent(id, r.UserID, r.ItemID, r.OccurredAt)
}

// ===========================
// 編解碼輔助
// ===========================

// encodeRecord 將記錄模型編碼為存儲值
func encodeRecord(record interface{}) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, ErrStoreError.WithContext("encode_error", err.Error())
	}
	return data, nil
}

// decodeRecord 將存儲值解碼為記錄模型
func decodeRecord(data []byte, record interface{}) error {
	if err := json.Unmarshal(data, record); err != nil {
		return ErrCorruptedRecord.WithContext("decode_error", err.Error())
	}
	return nil
}
