package store

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
)

// ===========================
// BrowseStore Use Case
// ===========================

// BrowseStoreCommand 瀏覽商店的命令
type BrowseStoreCommand struct {
	UserID string
}

// ItemView 商品視圖（展示層需要的欄位快照）
type ItemView struct {
	ID                   string
	Price                decimal.Decimal
	DaysBetweenAvailable int
}

// BrowseStoreResult 瀏覽商店的結果
//
// Available 與 Unavailable 互斥且涵蓋整個目錄，各自按價格升序。
// 不可購買的原因（餘額不足或冷卻中）不在此區分，展示層一視同仁。
type BrowseStoreResult struct {
	Available   []ItemView
	Unavailable []ItemView
}

// BrowseStoreUseCase 瀏覽商店 Use Case
//
// 職責：以某使用者的視角把商品目錄分成「現在買得起且不在冷卻中」
// 與「暫時不可購買」兩組，供購買對話選單使用。
type BrowseStoreUseCase struct {
	ledger *ledger.Ledger
}

// NewBrowseStoreUseCase 創建 Use Case 實例
func NewBrowseStoreUseCase(l *ledger.Ledger) *BrowseStoreUseCase {
	return &BrowseStoreUseCase{ledger: l}
}

// Execute 執行瀏覽
//
// 錯誤處理：
// - ErrUserNotFound: 使用者不存在
// - 目錄或資格查詢失敗：添加上下文後返回
func (uc *BrowseStoreUseCase) Execute(cmd BrowseStoreCommand) (*BrowseStoreResult, error) {
	items, err := uc.ledger.GetItems()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	result := &BrowseStoreResult{
		Available:   make([]ItemView, 0, len(items)),
		Unavailable: make([]ItemView, 0),
	}

	for _, item := range items {
		able, err := uc.ledger.IsUserAbleToPurchaseItem(cmd.UserID, item.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to check purchase eligibility: %w", err)
		}

		view := ItemView{
			ID:                   item.ID(),
			Price:                item.Price(),
			DaysBetweenAvailable: item.DaysBetweenAvailable(),
		}
		if able {
			result.Available = append(result.Available, view)
		} else {
			result.Unavailable = append(result.Unavailable, view)
		}
	}

	sortByPrice(result.Available)
	sortByPrice(result.Unavailable)
	return result, nil
}

// sortByPrice 按價格升序排列（價格相同時按 ID 穩定）
func sortByPrice(views []ItemView) {
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Price.Equal(views[j].Price) {
			return views[i].ID < views[j].ID
		}
		return views[i].Price.LessThan(views[j].Price)
	})
}
