package ledger

import "fmt"

// ===========================
// Ledger Domain 錯誤定義
// ===========================

// ErrorCode Ledger Domain 錯誤代碼
type ErrorCode string

// 錯誤代碼常量
const (
	// 使用者相關
	ErrCodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserAlreadyExists ErrorCode = "USER_ALREADY_EXISTS"
	ErrCodeInvalidUserID     ErrorCode = "USER_ID_INVALID"

	// 商品相關
	ErrCodeItemNotFound      ErrorCode = "ITEM_NOT_FOUND"
	ErrCodeItemAlreadyExists ErrorCode = "ITEM_ALREADY_EXISTS"
	ErrCodeInvalidItemID     ErrorCode = "ITEM_ID_INVALID"
	ErrCodeNegativePrice     ErrorCode = "ITEM_PRICE_NEGATIVE"
	ErrCodeNegativeCooldown  ErrorCode = "ITEM_COOLDOWN_NEGATIVE"

	// 庫存相關
	ErrCodeItemNotHeld     ErrorCode = "ITEM_NOT_HELD"
	ErrCodeInvalidQuantity ErrorCode = "QUANTITY_INVALID"

	// 購買資格相關
	ErrCodePurchaseNotAllowed ErrorCode = "PURCHASE_NOT_ALLOWED"

	// 事件相關
	ErrCodePurchaseEventNotFound     ErrorCode = "PURCHASE_EVENT_NOT_FOUND"
	ErrCodePayoutEventNotFound       ErrorCode = "PAYOUT_EVENT_NOT_FOUND"
	ErrCodeExhaustItemEventNotFound  ErrorCode = "EXHAUST_ITEM_EVENT_NOT_FOUND"
	ErrCodeInvalidPurchaseEventID    ErrorCode = "PURCHASE_EVENT_ID_INVALID"
	ErrCodeInvalidPayoutEventID      ErrorCode = "PAYOUT_EVENT_ID_INVALID"
	ErrCodeInvalidExhaustItemEventID ErrorCode = "EXHAUST_ITEM_EVENT_ID_INVALID"

	// 持久化相關
	ErrCodeCorruptedRecord ErrorCode = "RECORD_CORRUPTED"
	ErrCodeStoreError      ErrorCode = "STORE_ERROR"
)

// ===========================
// DomainError 結構
// ===========================

// DomainError 領域錯誤
// 設計原則：
// 1. 包含結構化的錯誤代碼（用於上層映射與 errors.Is 判斷）
// 2. 支持上下文信息（用於調試和日誌）
// 3. 不可變性（創建後不可修改）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例，保持不可變性）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（用於錯誤類型判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ===========================
// 預定義錯誤
// ===========================

// 使用者相關錯誤
var (
	// ErrUserNotFound 使用者不存在
	ErrUserNotFound = &DomainError{
		Code:    ErrCodeUserNotFound,
		Message: "使用者不存在",
	}

	// ErrUserAlreadyExists 使用者已存在
	//
	// 設計決策：原系統重複建立會靜默覆蓋使用者（連同清空庫存），
	// 本實作視為錯誤。刻意覆蓋請使用 UpdateUser。
	ErrUserAlreadyExists = &DomainError{
		Code:    ErrCodeUserAlreadyExists,
		Message: "使用者已存在",
	}

	// ErrInvalidUserID 使用者 ID 無效（空字串）
	ErrInvalidUserID = &DomainError{
		Code:    ErrCodeInvalidUserID,
		Message: "使用者 ID 不能為空",
	}
)

// 商品相關錯誤
var (
	// ErrItemNotFound 商品不存在
	ErrItemNotFound = &DomainError{
		Code:    ErrCodeItemNotFound,
		Message: "商品不存在",
	}

	// ErrItemAlreadyExists 商品已存在
	ErrItemAlreadyExists = &DomainError{
		Code:    ErrCodeItemAlreadyExists,
		Message: "商品已存在",
	}

	// ErrInvalidItemID 商品 ID 無效（空字串）
	ErrInvalidItemID = &DomainError{
		Code:    ErrCodeInvalidItemID,
		Message: "商品 ID 不能為空",
	}

	// ErrNegativePrice 商品價格不能為負數
	ErrNegativePrice = &DomainError{
		Code:    ErrCodeNegativePrice,
		Message: "商品價格不能為負數",
	}

	// ErrNegativeCooldown 再購冷卻天數不能為負數
	ErrNegativeCooldown = &DomainError{
		Code:    ErrCodeNegativeCooldown,
		Message: "再購冷卻天數不能為負數",
	}
)

// 庫存與購買資格相關錯誤
var (
	// ErrItemNotHeld 使用者未持有該商品（前置條件違反）
	ErrItemNotHeld = &DomainError{
		Code:    ErrCodeItemNotHeld,
		Message: "使用者未持有該商品",
	}

	// ErrInvalidQuantity 庫存數量無效（必須 > 0）
	ErrInvalidQuantity = &DomainError{
		Code:    ErrCodeInvalidQuantity,
		Message: "庫存數量必須大於 0",
	}

	// ErrPurchaseNotAllowed 使用者目前不可購買該商品
	//
	// 觸發條件：餘額不足，或再購冷卻期間尚未結束
	ErrPurchaseNotAllowed = &DomainError{
		Code:    ErrCodePurchaseNotAllowed,
		Message: "使用者目前不可購買該商品",
	}
)

// 事件相關錯誤
var (
	// ErrPurchaseEventNotFound 購買事件不存在
	ErrPurchaseEventNotFound = &DomainError{
		Code:    ErrCodePurchaseEventNotFound,
		Message: "購買事件不存在",
	}

	// ErrPayoutEventNotFound 發放事件不存在
	ErrPayoutEventNotFound = &DomainError{
		Code:    ErrCodePayoutEventNotFound,
		Message: "發放事件不存在",
	}

	// ErrExhaustItemEventNotFound 消耗事件不存在
	ErrExhaustItemEventNotFound = &DomainError{
		Code:    ErrCodeExhaustItemEventNotFound,
		Message: "消耗事件不存在",
	}

	// ErrInvalidPurchaseEventID 購買事件 ID 格式無效
	ErrInvalidPurchaseEventID = &DomainError{
		Code:    ErrCodeInvalidPurchaseEventID,
		Message: "購買事件 ID 格式無效",
	}

	// ErrInvalidPayoutEventID 發放事件 ID 格式無效
	ErrInvalidPayoutEventID = &DomainError{
		Code:    ErrCodeInvalidPayoutEventID,
		Message: "發放事件 ID 格式無效",
	}

	// ErrInvalidExhaustItemEventID 消耗事件 ID 格式無效
	ErrInvalidExhaustItemEventID = &DomainError{
		Code:    ErrCodeInvalidExhaustItemEventID,
		Message: "消耗事件 ID 格式無效",
	}
)

// 持久化相關錯誤
var (
	// ErrCorruptedRecord 持久化記錄損壞（重建聚合時驗證失敗）
	ErrCorruptedRecord = &DomainError{
		Code:    ErrCodeCorruptedRecord,
		Message: "持久化記錄損壞",
	}

	// ErrStoreError 鍵值存儲操作失敗（通用）
	ErrStoreError = &DomainError{
		Code:    ErrCodeStoreError,
		Message: "鍵值存儲操作失敗",
	}
)
