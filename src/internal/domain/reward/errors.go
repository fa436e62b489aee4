package reward

import "fmt"

// ===========================
// Reward Domain 錯誤定義
// ===========================

// ErrorCode Reward Domain 錯誤代碼
type ErrorCode string

// 錯誤代碼常量
const (
	ErrCodeInvalidTicketName   ErrorCode = "TICKET_NAME_INVALID"
	ErrCodeInvalidTicketOdds   ErrorCode = "TICKET_ODDS_INVALID"
	ErrCodeInvalidTicketStdDev ErrorCode = "TICKET_STDDEV_INVALID"
)

// DomainError Reward Domain 錯誤
//
// 設計原則：
// 1. 包含結構化的錯誤代碼（用於上層映射）
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

var (
	// ErrInvalidTicketName 票券名稱無效（空字串）
	ErrInvalidTicketName = &DomainError{
		Code:    ErrCodeInvalidTicketName,
		Message: "票券名稱不能為空",
	}

	// ErrInvalidTicketOdds 中獎機率無效（必須在 [0,1] 區間）
	ErrInvalidTicketOdds = &DomainError{
		Code:    ErrCodeInvalidTicketOdds,
		Message: "票券機率必須在 0 到 1 之間",
	}

	// ErrInvalidTicketStdDev 標準差無效（不能為負數）
	ErrInvalidTicketStdDev = &DomainError{
		Code:    ErrCodeInvalidTicketStdDev,
		Message: "票券標準差不能為負數",
	}
)
