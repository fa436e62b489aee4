package ledger

// ===========================
// Store 鍵值存儲契約
// ===========================

// Entry 一筆鍵值對（Scan 的返回單位）
type Entry struct {
	Key   string
	Value []byte
}

// Store 鍵值存儲介面（外部協作者）
//
// 設計原則：
// 1. 依賴倒置原則（DIP）：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. Ledger 以建構函數參數注入 Store，測試可注入 in-memory 假實作
//
// 契約：
// - 單鍵操作（Get/Set/Delete）在單鍵粒度上是原子的
// - Scan 返回所有鍵以 prefix 開頭的項目，按鍵升序排列
// - 不保證跨鍵原子性：Ledger 的多鍵寫入順序安排為
//   「先審計事件、後衍生狀態」，讓部分失敗留下的中間狀態傷害最小
type Store interface {
	// Get 讀取單鍵；第二個返回值表示鍵是否存在
	Get(key string) ([]byte, bool, error)

	// Set 寫入單鍵（存在則覆寫）
	Set(key string, value []byte) error

	// Delete 刪除單鍵（鍵不存在時不視為錯誤）
	Delete(key string) error

	// Scan 返回所有鍵以 prefix 開頭的項目，按鍵升序
	// prefix 為空字串時返回整個命名空間
	Scan(prefix string) ([]Entry, error)
}

// ===========================
// 鍵命名空間
// ===========================
//
// 所有實體共用一個扁平命名空間，鍵為 <kind>/<id> 兩段式。
// kind 集合固定：user、item、purchaseEvent、payoutEvent、exhaustItemEvent。

const (
	userKeyPrefix             = "user/"
	itemKeyPrefix             = "item/"
	purchaseEventKeyPrefix    = "purchaseEvent/"
	payoutEventKeyPrefix      = "payoutEvent/"
	exhaustItemEventKeyPrefix = "exhaustItemEvent/"
)

func userKey(id string) string {
	return userKeyPrefix + id
}

func itemKey(id string) string {
	return itemKeyPrefix + id
}

func purchaseEventKey(id PurchaseEventID) string {
	return purchaseEventKeyPrefix + id.String()
}

func payoutEventKey(id PayoutEventID) string {
	return payoutEventKeyPrefix + id.String()
}

func exhaustItemEventKey(id ExhaustItemEventID) string {
	return exhaustItemEventKeyPrefix + id.String()
}
