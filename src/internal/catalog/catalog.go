// Package catalog 定義預設的獎勵目錄
//
// 票券組合與商品清單是部署時的預設值：首次啟動時寫入帳本，
// 之後以帳本中的目錄為準（可經由帳本操作調整）。
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
	"github.com/jackyeh168/rewardy/src/internal/domain/reward"
)

const (
	// AppName 應用名稱
	AppName = "Rewardy"

	// CurrencyUnits 點數單位（Good Job Points）
	CurrencyUnits = "GJP"
)

// DefaultPayoutTickets 預設票券組合
//
// odds 是階梯門檻：單次均勻亂數依升序門檻決定抽中哪張票券，
// 小額票券門檻高（常中）、頭獎門檻低（罕見）。
func DefaultPayoutTickets() []reward.PayoutTicket {
	specs := []struct {
		name   string
		mean   float64
		stdDev float64
		odds   float64
	}{
		{"Small payout", 5, 1, 0.95},
		{"Medium payout", 10, 2, 0.35},
		{"Large payout", 20, 3, 0.15},
		{"Jackpot!", 50, 4, 0.05},
	}

	tickets := make([]reward.PayoutTicket, 0, len(specs))
	for _, spec := range specs {
		ticket, err := reward.NewPayoutTicket(spec.name, spec.mean, spec.stdDev, spec.odds)
		if err != nil {
			// 預設值由本套件自己定義，建構失敗是程式錯誤
			panic(err)
		}
		tickets = append(tickets, ticket)
	}
	return tickets
}

// DefaultItemSpec 預設商品規格
type DefaultItemSpec struct {
	ID                   string
	Price                decimal.Decimal
	DaysBetweenAvailable int
}

// DefaultItems 預設商品清單
func DefaultItems() []DefaultItemSpec {
	return []DefaultItemSpec{
		{"Get bubble tea", decimal.NewFromInt(30), 21},
		{"Get a bagel", decimal.NewFromInt(30), 21},
		{"Get a piece of cake", decimal.NewFromInt(50), 30},
		{"Get to sleep in", decimal.NewFromInt(100), 7},
		{"Pick a restaurant", decimal.NewFromInt(125), 14},
		{"Get a massage (60 minutes)", decimal.NewFromInt(300), 30},
	}
}

// SeedIfEmpty 目錄為空時寫入預設商品
//
// 帳本已有任何商品即不動作（使用者可能已調整過目錄）。
func SeedIfEmpty(l *ledger.Ledger) error {
	items, err := l.GetItems()
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}

	for _, spec := range DefaultItems() {
		if _, err := l.CreateItem(spec.ID, spec.Price, spec.DaysBetweenAvailable); err != nil {
			return err
		}
	}
	return nil
}
