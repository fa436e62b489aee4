package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// ===========================
// Ledger 服務
// ===========================

// Ledger 帳本服務：Users、Items 與三種事件的持久化與一致性
//
// 職責：
// 1. 五種實體的 CRUD（經由注入的 Store）
// 2. 級聯刪除（刪使用者清其事件；刪商品清各使用者庫存與相關事件）
// 3. 購買資格 / 消耗資格等衍生查詢
// 4. 購買、發放、消耗三個多鍵變更流程
//
// 一致性模型：
// - Store 只保證單鍵原子性；多鍵流程一律「先寫審計事件、後寫衍生狀態」，
//   中途當機留下的是孤兒事件而非無法解釋的餘額變動
// - 同一使用者的 read-modify-write 流程以 per-user mutex 序列化，
//   防止兩個呼叫者同時覆寫同一筆使用者記錄時丟失更新
// - 級聯刪除由多次循序掃描組成，中途當機可能留下部分未清理的事件
//   （已接受的限制，無補償機制）
type Ledger struct {
	store Store

	// per-user 鎖：序列化同一使用者的 read-modify-write 流程
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// New 創建 Ledger 服務
//
// 參數：
// - store: 鍵值存儲（外部協作者，測試可注入 in-memory 實作）
func New(store Store) *Ledger {
	return &Ledger{
		store:     store,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// lockUser 獲取某使用者的鎖（惰性建立，使用者刪除後不回收）
func (l *Ledger) lockUser(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		l.userLocks[userID] = lock
	}
	return lock
}

// ===========================
// User 操作
// ===========================

// CreateUser 創建新使用者
//
// 業務規則：
// - 重複的使用者 ID 視為錯誤（ErrUserAlreadyExists）。
//   刻意覆蓋既有使用者請使用 UpdateUser。
// - 新使用者庫存為空。
func (l *Ledger) CreateUser(id string, startingBalance decimal.Decimal) (*User, error) {
	user, err := NewUser(id, startingBalance)
	if err != nil {
		return nil, err
	}

	_, found, err := l.store.Get(userKey(id))
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "get", "key", userKey(id), "cause", err.Error())
	}
	if found {
		return nil, ErrUserAlreadyExists.WithContext("user_id", id)
	}

	if err := l.saveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID 依 ID 查詢使用者
func (l *Ledger) GetUserByID(id string) (*User, error) {
	data, found, err := l.store.Get(userKey(id))
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "get", "key", userKey(id), "cause", err.Error())
	}
	if !found {
		return nil, ErrUserNotFound.WithContext("user_id", id)
	}

	var record userRecord
	if err := decodeRecord(data, &record); err != nil {
		return nil, err
	}
	return record.toDomain()
}

// UpdateUser 完整覆寫使用者記錄
func (l *Ledger) UpdateUser(user *User) error {
	return l.saveUser(user)
}

// DeleteUserByID 刪除使用者並級聯清除其所有事件
//
// 級聯順序：使用者記錄 → 購買事件 → 發放事件 → 消耗事件。
// 每一類事件都是全前綴掃描加記憶體過濾（存儲沒有 userId 索引），
// 成本是 O(全部事件) 而非 O(該使用者的事件)——已接受的規模限制。
func (l *Ledger) DeleteUserByID(id string) error {
	lock := l.lockUser(id)
	lock.Lock()
	defer lock.Unlock()

	if err := l.store.Delete(userKey(id)); err != nil {
		return ErrStoreError.WithContext("op", "delete", "key", userKey(id), "cause", err.Error())
	}

	purchaseEvents, err := l.scanPurchaseEvents()
	if err != nil {
		return err
	}
	for _, event := range purchaseEvents {
		if event.UserID() == id {
			if err := l.store.Delete(purchaseEventKey(event.ID())); err != nil {
				return ErrStoreError.WithContext("op", "delete", "key", purchaseEventKey(event.ID()), "cause", err.Error())
			}
		}
	}

	payoutEvents, err := l.scanPayoutEvents()
	if err != nil {
		return err
	}
	for _, event := range payoutEvents {
		if event.UserID() == id {
			if err := l.store.Delete(payoutEventKey(event.ID())); err != nil {
				return ErrStoreError.WithContext("op", "delete", "key", payoutEventKey(event.ID()), "cause", err.Error())
			}
		}
	}

	exhaustEvents, err := l.scanExhaustItemEvents()
	if err != nil {
		return err
	}
	for _, event := range exhaustEvents {
		if event.UserID() == id {
			if err := l.store.Delete(exhaustItemEventKey(event.ID())); err != nil {
				return ErrStoreError.WithContext("op", "delete", "key", exhaustItemEventKey(event.ID()), "cause", err.Error())
			}
		}
	}

	return nil
}

// ===========================
// Item 操作
// ===========================

// CreateItem 創建新目錄商品
//
// 與 CreateUser 相同的重複 ID 規則：目錄商品的刻意修改走 UpdateItem。
func (l *Ledger) CreateItem(id string, price decimal.Decimal, daysBetweenAvailable int) (*Item, error) {
	item, err := NewItem(id, price, daysBetweenAvailable)
	if err != nil {
		return nil, err
	}

	_, found, err := l.store.Get(itemKey(id))
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "get", "key", itemKey(id), "cause", err.Error())
	}
	if found {
		return nil, ErrItemAlreadyExists.WithContext("item_id", id)
	}

	if err := l.saveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItemByID 依 ID 查詢商品
func (l *Ledger) GetItemByID(id string) (*Item, error) {
	data, found, err := l.store.Get(itemKey(id))
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "get", "key", itemKey(id), "cause", err.Error())
	}
	if !found {
		return nil, ErrItemNotFound.WithContext("item_id", id)
	}

	var record itemRecord
	if err := decodeRecord(data, &record); err != nil {
		return nil, err
	}
	return record.toDomain()
}

// GetItems 返回整個商品目錄（全前綴掃描，無過濾）
func (l *Ledger) GetItems() ([]*Item, error) {
	entries, err := l.store.Scan(itemKeyPrefix)
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "scan", "prefix", itemKeyPrefix, "cause", err.Error())
	}

	items := make([]*Item, 0, len(entries))
	for _, entry := range entries {
		var record itemRecord
		if err := decodeRecord(entry.Value, &record); err != nil {
			return nil, err
		}
		item, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateItem 完整覆寫商品記錄
func (l *Ledger) UpdateItem(item *Item) error {
	return l.saveItem(item)
}

// DeleteItemByID 刪除商品並級聯清理
//
// 級聯順序：
// 1. 商品記錄本身
// 2. 掃描所有使用者，自庫存中整筆移除該商品並持久化
// 3. 刪除引用該商品的所有購買事件與消耗事件
//
// 發放事件不引用商品，保持不動。
// 此路徑與 DeleteUserByID 是兩條獨立的級聯刪除，需維持一致的清理語意。
func (l *Ledger) DeleteItemByID(id string) error {
	if err := l.store.Delete(itemKey(id)); err != nil {
		return ErrStoreError.WithContext("op", "delete", "key", itemKey(id), "cause", err.Error())
	}

	userEntries, err := l.store.Scan(userKeyPrefix)
	if err != nil {
		return ErrStoreError.WithContext("op", "scan", "prefix", userKeyPrefix, "cause", err.Error())
	}
	for _, entry := range userEntries {
		var record userRecord
		if err := decodeRecord(entry.Value, &record); err != nil {
			return err
		}
		user, err := record.toDomain()
		if err != nil {
			return err
		}
		if user.RemoveItem(id) {
			if err := l.saveUser(user); err != nil {
				return err
			}
		}
	}

	purchaseEvents, err := l.scanPurchaseEvents()
	if err != nil {
		return err
	}
	for _, event := range purchaseEvents {
		if event.ItemID() == id {
			if err := l.store.Delete(purchaseEventKey(event.ID())); err != nil {
				return ErrStoreError.WithContext("op", "delete", "key", purchaseEventKey(event.ID()), "cause", err.Error())
			}
		}
	}

	exhaustEvents, err := l.scanExhaustItemEvents()
	if err != nil {
		return err
	}
	for _, event := range exhaustEvents {
		if event.ItemID() == id {
			if err := l.store.Delete(exhaustItemEventKey(event.ID())); err != nil {
				return ErrStoreError.WithContext("op", "delete", "key", exhaustItemEventKey(event.ID()), "cause", err.Error())
			}
		}
	}

	return nil
}

// ===========================
// PurchaseEvent CRUD
// ===========================

// CreatePurchaseEvent 記錄一筆購買事件（生成 ID、取當前時間）並持久化
func (l *Ledger) CreatePurchaseEvent(userID, itemID string, cost decimal.Decimal) (*PurchaseEvent, error) {
	event, err := NewPurchaseEvent(userID, itemID, cost)
	if err != nil {
		return nil, err
	}
	if err := l.savePurchaseEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetPurchaseEventByID 依 ID 查詢購買事件
func (l *Ledger) GetPurchaseEventByID(id PurchaseEventID) (*PurchaseEvent, error) {
	data, found, err := l.store.Get(purchaseEventKey(id))
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "get", "key", purchaseEventKey(id), "cause", err.Error())
	}
	if !found {
		return nil, ErrPurchaseEventNotFound.WithContext("purchase_event_id", id.String())
	}

	var record purchaseEventRecord
	if err := decodeRecord(data, &record); err != nil {
		return nil, err
	}
	return record.toDomain()
}

// UpdatePurchaseEvent 完整覆寫購買事件（管理修正用）
func (l *Ledger) UpdatePurchaseEvent(event *PurchaseEvent) error {
	return l.savePurchaseEvent(event)
}

// DeletePurchaseEventByID 刪除購買事件（葉節點，無級聯）
func (l *Ledger) DeletePurchaseEventByID(id PurchaseEventID) error {
	if err := l.store.Delete(purchaseEventKey(id)); err != nil {
		return ErrStoreError.WithContext("op", "delete", "key", purchaseEventKey(id), "cause", err.Error())
	}
	return nil
}

// ===========================
// PayoutEvent CRUD
// ===========================

// CreatePayoutEvent 記錄一筆發放事件並持久化
func (l *Ledger) CreatePayoutEvent(userID string, amount decimal.Decimal) (*PayoutEvent, error) {
	event, err := NewPayoutEvent(userID, amount)
	if err != nil {
		return nil, err
	}
	if err := l.savePayoutEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetPayoutEventByID 依 ID 查詢發放事件
func (l *Ledger) GetPayoutEventByID(id PayoutEventID) (*PayoutEvent, error) {
	data, found, err := l.store.Get(payoutEventKey(id))
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "get", "key", payoutEventKey(id), "cause", err.Error())
	}
	if !found {
		return nil, ErrPayoutEventNotFound.WithContext("payout_event_id", id.String())
	}

	var record payoutEventRecord
	if err := decodeRecord(data, &record); err != nil {
		return nil, err
	}
	return record.toDomain()
}

// UpdatePayoutEvent 完整覆寫發放事件（管理修正用）
func (l *Ledger) UpdatePayoutEvent(event *PayoutEvent) error {
	return l.savePayoutEvent(event)
}

// DeletePayoutEventByID 刪除發放事件（葉節點，無級聯）
func (l *Ledger) DeletePayoutEventByID(id PayoutEventID) error {
	if err := l.store.Delete(payoutEventKey(id)); err != nil {
		return ErrStoreError.WithContext("op", "delete", "key", payoutEventKey(id), "cause", err.Error())
	}
	return nil
}

// ===========================
// ExhaustItemEvent CRUD
// ===========================

// CreateExhaustItemEvent 記錄一筆消耗事件並持久化
func (l *Ledger) CreateExhaustItemEvent(userID, itemID string) (*ExhaustItemEvent, error) {
	event, err := NewExhaustItemEvent(userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := l.saveExhaustItemEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetExhaustItemEventByID 依 ID 查詢消耗事件
func (l *Ledger) GetExhaustItemEventByID(id ExhaustItemEventID) (*ExhaustItemEvent, error) {
	data, found, err := l.store.Get(exhaustItemEventKey(id))
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "get", "key", exhaustItemEventKey(id), "cause", err.Error())
	}
	if !found {
		return nil, ErrExhaustItemEventNotFound.WithContext("exhaust_item_event_id", id.String())
	}

	var record exhaustItemEventRecord
	if err := decodeRecord(data, &record); err != nil {
		return nil, err
	}
	return record.toDomain()
}

// UpdateExhaustItemEvent 完整覆寫消耗事件（管理修正用）
func (l *Ledger) UpdateExhaustItemEvent(event *ExhaustItemEvent) error {
	return l.saveExhaustItemEvent(event)
}

// DeleteExhaustItemEventByID 刪除消耗事件（葉節點，無級聯）
func (l *Ledger) DeleteExhaustItemEventByID(id ExhaustItemEventID) error {
	if err := l.store.Delete(exhaustItemEventKey(id)); err != nil {
		return ErrStoreError.WithContext("op", "delete", "key", exhaustItemEventKey(id), "cause", err.Error())
	}
	return nil
}

// ===========================
// 衍生查詢
// ===========================

// GetPurchaseEventsByUserID 查詢某使用者的所有購買事件
//
// 返回順序：發生時間降序（最新在前）。
// 實作為全前綴掃描加記憶體過濾（存儲沒有 userId 索引）。
func (l *Ledger) GetPurchaseEventsByUserID(userID string) ([]*PurchaseEvent, error) {
	all, err := l.scanPurchaseEvents()
	if err != nil {
		return nil, err
	}

	events := make([]*PurchaseEvent, 0)
	for _, event := range all {
		if event.UserID() == userID {
			events = append(events, event)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OccurredAt().After(events[j].OccurredAt())
	})
	return events, nil
}

// GetPurchaseEventsByUserIDAndItemID 查詢某使用者對某商品的購買事件（時間降序）
func (l *Ledger) GetPurchaseEventsByUserIDAndItemID(userID, itemID string) ([]*PurchaseEvent, error) {
	byUser, err := l.GetPurchaseEventsByUserID(userID)
	if err != nil {
		return nil, err
	}

	events := make([]*PurchaseEvent, 0)
	for _, event := range byUser {
		if event.ItemID() == itemID {
			events = append(events, event)
		}
	}
	return events, nil
}

// MostRecentPurchaseEvent 查詢某使用者對某商品「最近一次」的購買事件
//
// 沒有符合的購買時返回 (nil, nil)——首次購買是正常路徑，缺席不是錯誤。
//
// 語意說明：再購冷卻以最近一次購買為錨點。原系統取的是降序列表的
// 「最後一個元素」（即最舊一筆），函數名稱與行為不符；本實作按名稱
// 語意取最新一筆，冷卻判斷以此為準。
func (l *Ledger) MostRecentPurchaseEvent(userID, itemID string) (*PurchaseEvent, error) {
	events, err := l.GetPurchaseEventsByUserIDAndItemID(userID, itemID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	// 列表已是時間降序，第一個元素即最新一筆
	return events[0], nil
}

// GetPayoutEventsByUserID 查詢某使用者的所有發放事件（無排序要求）
func (l *Ledger) GetPayoutEventsByUserID(userID string) ([]*PayoutEvent, error) {
	all, err := l.scanPayoutEvents()
	if err != nil {
		return nil, err
	}

	events := make([]*PayoutEvent, 0)
	for _, event := range all {
		if event.UserID() == userID {
			events = append(events, event)
		}
	}
	return events, nil
}

// GetExhaustItemEventsByUserID 查詢某使用者的所有消耗事件（無排序要求）
func (l *Ledger) GetExhaustItemEventsByUserID(userID string) ([]*ExhaustItemEvent, error) {
	all, err := l.scanExhaustItemEvents()
	if err != nil {
		return nil, err
	}

	events := make([]*ExhaustItemEvent, 0)
	for _, event := range all {
		if event.UserID() == userID {
			events = append(events, event)
		}
	}
	return events, nil
}

// ===========================
// 資格查詢與變更流程
// ===========================

// IsUserAbleToPurchaseItem 購買資格檢查
//
// 失敗（錯誤）：使用者或商品不存在。
// 返回 false：餘額不足，或最近一次購買仍在冷卻期內。
// 其餘情況返回 true（從未購買過必定可買）。
func (l *Ledger) IsUserAbleToPurchaseItem(userID, itemID string) (bool, error) {
	user, err := l.GetUserByID(userID)
	if err != nil {
		return false, err
	}
	item, err := l.GetItemByID(itemID)
	if err != nil {
		return false, err
	}
	return l.checkPurchasable(user, item)
}

// checkPurchasable 購買資格內部檢查（user、item 已載入）
func (l *Ledger) checkPurchasable(user *User, item *Item) (bool, error) {
	if user.Balance().LessThan(item.Price()) {
		return false, nil
	}

	lastPurchase, err := l.MostRecentPurchaseEvent(user.ID(), item.ID())
	if err != nil {
		return false, err
	}
	if lastPurchase == nil {
		return true, nil
	}
	return time.Since(lastPurchase.OccurredAt()) >= item.CooldownDuration(), nil
}

// PurchaseItem 購買流程
//
// 流程（per-user 鎖內）：
// 1. 載入使用者與商品（不存在即失敗）
// 2. 重新驗證購買資格（呼叫者先查過也再查一次，defense in depth）
// 3. 記錄購買事件（cost 為目前價格快照）—— 審計事件先寫
// 4. 扣減餘額、庫存 +1、持久化使用者 —— 衍生狀態後寫
//
// 事件寫入與使用者寫入之間沒有跨鍵交易：兩者之間當機會留下
// 一筆沒有對應餘額變動的孤兒事件（已接受的風險，見 DESIGN.md）。
func (l *Ledger) PurchaseItem(userID, itemID string) error {
	lock := l.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := l.GetUserByID(userID)
	if err != nil {
		return err
	}
	item, err := l.GetItemByID(itemID)
	if err != nil {
		return err
	}

	able, err := l.checkPurchasable(user, item)
	if err != nil {
		return err
	}
	if !able {
		return ErrPurchaseNotAllowed.WithContext(
			"user_id", userID,
			"item_id", itemID,
			"balance", user.Balance().String(),
			"price", item.Price().String(),
		)
	}

	if _, err := l.CreatePurchaseEvent(userID, itemID, item.Price()); err != nil {
		return err
	}

	user.Debit(item.Price())
	user.GrantItem(itemID)
	return l.saveUser(user)
}

// PayoutUser 發放流程
//
// 流程（per-user 鎖內）：載入使用者 → 記錄發放事件 → 入帳並持久化。
// 與 PurchaseItem 相同的事件先行順序與非原子性注意事項。
func (l *Ledger) PayoutUser(userID string, amount decimal.Decimal) error {
	lock := l.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := l.GetUserByID(userID)
	if err != nil {
		return err
	}

	if _, err := l.CreatePayoutEvent(userID, amount); err != nil {
		return err
	}

	user.Credit(amount)
	return l.saveUser(user)
}

// ExhaustItem 消耗流程
//
// 前置條件：使用者與商品存在，且使用者持有該商品（數量 > 0），
// 否則返回 ErrItemNotHeld（前置條件違反，與資格檢查的 false 不同，
// 這裡確實失敗）。
//
// 流程（per-user 鎖內）：記錄消耗事件 → 庫存 -1（歸零移除）→ 持久化。
func (l *Ledger) ExhaustItem(userID, itemID string) error {
	lock := l.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := l.GetUserByID(userID)
	if err != nil {
		return err
	}
	if _, err := l.GetItemByID(itemID); err != nil {
		return err
	}

	if !user.HasItem(itemID) {
		return ErrItemNotHeld.WithContext(
			"user_id", userID,
			"item_id", itemID,
		)
	}

	if _, err := l.CreateExhaustItemEvent(userID, itemID); err != nil {
		return err
	}

	if err := user.ConsumeItem(itemID); err != nil {
		return err
	}
	return l.saveUser(user)
}

// IsUserAbleToExhaustItem 消耗資格檢查
//
// 失敗（錯誤）：使用者或商品不存在。
// 否則返回使用者是否持有該商品（數量 > 0）。
func (l *Ledger) IsUserAbleToExhaustItem(userID, itemID string) (bool, error) {
	user, err := l.GetUserByID(userID)
	if err != nil {
		return false, err
	}
	if _, err := l.GetItemByID(itemID); err != nil {
		return false, err
	}
	return user.HasItem(itemID), nil
}

// ===========================
// Reset
// ===========================

// Reset 清空整個命名空間（不分 kind 刪除所有鍵）
//
// 僅供測試與初始化引導使用，不是生產操作。
func (l *Ledger) Reset() error {
	entries, err := l.store.Scan("")
	if err != nil {
		return ErrStoreError.WithContext("op", "scan", "prefix", "", "cause", err.Error())
	}
	for _, entry := range entries {
		if err := l.store.Delete(entry.Key); err != nil {
			return ErrStoreError.WithContext("op", "delete", "key", entry.Key, "cause", err.Error())
		}
	}
	return nil
}

// ===========================
// 內部持久化輔助
// ===========================

func (l *Ledger) saveUser(user *User) error {
	data, err := encodeRecord(newUserRecord(user))
	if err != nil {
		return err
	}
	if err := l.store.Set(userKey(user.ID()), data); err != nil {
		return ErrStoreError.WithContext("op", "set", "key", userKey(user.ID()), "cause", err.Error())
	}
	return nil
}

func (l *Ledger) saveItem(item *Item) error {
	data, err := encodeRecord(newItemRecord(item))
	if err != nil {
		return err
	}
	if err := l.store.Set(itemKey(item.ID()), data); err != nil {
		return ErrStoreError.WithContext("op", "set", "key", itemKey(item.ID()), "cause", err.Error())
	}
	return nil
}

func (l *Ledger) savePurchaseEvent(event *PurchaseEvent) error {
	data, err := encodeRecord(newPurchaseEventRecord(event))
	if err != nil {
		return err
	}
	if err := l.store.Set(purchaseEventKey(event.ID()), data); err != nil {
		return ErrStoreError.WithContext("op", "set", "key", purchaseEventKey(event.ID()), "cause", err.Error())
	}
	return nil
}

func (l *Ledger) savePayoutEvent(event *PayoutEvent) error {
	data, err := encodeRecord(newPayoutEventRecord(event))
	if err != nil {
		return err
	}
	if err := l.store.Set(payoutEventKey(event.ID()), data); err != nil {
		return ErrStoreError.WithContext("op", "set", "key", payoutEventKey(event.ID()), "cause", err.Error())
	}
	return nil
}

func (l *Ledger) saveExhaustItemEvent(event *ExhaustItemEvent) error {
	data, err := encodeRecord(newExhaustItemEventRecord(event))
	if err != nil {
		return err
	}
	if err := l.store.Set(exhaustItemEventKey(event.ID()), data); err != nil {
		return ErrStoreError.WithContext("op", "set", "key", exhaustItemEventKey(event.ID()), "cause", err.Error())
	}
	return nil
}

func (l *Ledger) scanPurchaseEvents() ([]*PurchaseEvent, error) {
	entries, err := l.store.Scan(purchaseEventKeyPrefix)
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "scan", "prefix", purchaseEventKeyPrefix, "cause", err.Error())
	}

	events := make([]*PurchaseEvent, 0, len(entries))
	for _, entry := range entries {
		var record purchaseEventRecord
		if err := decodeRecord(entry.Value, &record); err != nil {
			return nil, err
		}
		event, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (l *Ledger) scanPayoutEvents() ([]*PayoutEvent, error) {
	entries, err := l.store.Scan(payoutEventKeyPrefix)
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "scan", "prefix", payoutEventKeyPrefix, "cause", err.Error())
	}

	events := make([]*PayoutEvent, 0, len(entries))
	for _, entry := range entries {
		var record payoutEventRecord
		if err := decodeRecord(entry.Value, &record); err != nil {
			return nil, err
		}
		event, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (l *Ledger) scanExhaustItemEvents() ([]*ExhaustItemEvent, error) {
	entries, err := l.store.Scan(exhaustItemEventKeyPrefix)
	if err != nil {
		return nil, ErrStoreError.WithContext("op", "scan", "prefix", exhaustItemEventKeyPrefix, "cause", err.Error())
	}

	events := make([]*ExhaustItemEvent, 0, len(entries))
	for _, entry := range entries {
		var record exhaustItemEventRecord
		if err := decodeRecord(entry.Value, &record); err != nil {
			return nil, err
		}
		event, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
