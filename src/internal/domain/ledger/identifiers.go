package ledger

import (
	"github.com/jackyeh168/rewardy/src/internal/domain/shared"
)

// ===========================
// 事件 ID 類型定義
// ===========================

// 設計原則：使用泛型 EntityID[T] 消除重複代碼
//
// 使用者 ID 和商品 ID 是「自然鍵」（使用者自選字串、商品目錄名稱），
// 維持 string 類型；只有三種事件記錄使用系統生成的 UUID，
// 各自透過標記類型成為互不混用的類型。

// ===========================
// PurchaseEventID - 購買事件 ID
// ===========================

// PurchaseEventMarker 是 PurchaseEventID 的標記類型
type PurchaseEventMarker struct{}

// PurchaseEventID 購買事件的唯一標識符
type PurchaseEventID = shared.EntityID[PurchaseEventMarker]

// NewPurchaseEventID 生成新的購買事件 ID（UUID v4）
func NewPurchaseEventID() PurchaseEventID {
	return shared.NewEntityID[PurchaseEventMarker]()
}

// PurchaseEventIDFromString 從字串解析購買事件 ID
func PurchaseEventIDFromString(s string) (PurchaseEventID, error) {
	return shared.EntityIDFromString[PurchaseEventMarker](s, ErrInvalidPurchaseEventID)
}

// ===========================
// PayoutEventID - 發放事件 ID
// ===========================

// PayoutEventMarker 是 PayoutEventID 的標記類型
type PayoutEventMarker struct{}

// PayoutEventID 發放事件的唯一標識符
type PayoutEventID = shared.EntityID[PayoutEventMarker]

// NewPayoutEventID 生成新的發放事件 ID（UUID v4）
func NewPayoutEventID() PayoutEventID {
	return shared.NewEntityID[PayoutEventMarker]()
}

// PayoutEventIDFromString 從字串解析發放事件 ID
func PayoutEventIDFromString(s string) (PayoutEventID, error) {
	return shared.EntityIDFromString[PayoutEventMarker](s, ErrInvalidPayoutEventID)
}

// ===========================
// ExhaustItemEventID - 消耗事件 ID
// ===========================

// ExhaustItemEventMarker 是 ExhaustItemEventID 的標記類型
type ExhaustItemEventMarker struct{}

// ExhaustItemEventID 消耗事件的唯一標識符
type ExhaustItemEventID = shared.EntityID[ExhaustItemEventMarker]

// NewExhaustItemEventID 生成新的消耗事件 ID（UUID v4）
func NewExhaustItemEventID() ExhaustItemEventID {
	return shared.NewEntityID[ExhaustItemEventMarker]()
}

// ExhaustItemEventIDFromString 從字串解析消耗事件 ID
func ExhaustItemEventIDFromString(s string) (ExhaustItemEventID, error) {
	return shared.EntityIDFromString[ExhaustItemEventMarker](s, ErrInvalidExhaustItemEventID)
}
