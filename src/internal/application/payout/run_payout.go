package payout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
	"github.com/jackyeh168/rewardy/src/internal/domain/reward"
)

// ===========================
// RunPayout Use Case
// ===========================

// RunPayoutCommand 執行發放的命令
//
// 輸入：
// - UserID: 受發放的使用者 ID
// - NumPayouts: 抽選次數（>= 0，0 次為合法的空操作）
type RunPayoutCommand struct {
	UserID     string
	NumPayouts int
}

// DrawResult 單次抽選的結果
//
// 落空的抽選 TicketName 為空字串、Amount 為 0，不記入帳本。
type DrawResult struct {
	TicketName string
	Won        bool
	Amount     decimal.Decimal
}

// RunPayoutResult 執行發放的結果
type RunPayoutResult struct {
	UserID       string
	Draws        []DrawResult
	TotalAwarded decimal.Decimal
}

// RunPayoutUseCase 發放 Use Case
//
// 職責：
// 1. 依設定的票券組合逐次抽選
// 2. 抽中的每一筆呼叫 Ledger.PayoutUser（各留一筆發放事件）
// 3. 彙整每次抽選的明細與總額
//
// 設計原則：
// - 抽選（reward）與入帳（ledger）分屬兩個 bounded context，
//   本 Use Case 是唯一把兩者接起來的地方
// - 落空的抽選不入帳：帳本事件只記錄實際發生的發放
type RunPayoutUseCase struct {
	ledger  *ledger.Ledger
	sampler *reward.Sampler
	tickets []reward.PayoutTicket
}

// NewRunPayoutUseCase 創建 Use Case 實例
func NewRunPayoutUseCase(
	l *ledger.Ledger,
	sampler *reward.Sampler,
	tickets []reward.PayoutTicket,
) *RunPayoutUseCase {
	return &RunPayoutUseCase{
		ledger:  l,
		sampler: sampler,
		tickets: tickets,
	}
}

// Execute 執行發放
//
// 執行流程：
// 1. 確認使用者存在（不存在即失敗，不做任何抽選）
// 2. 抽選 NumPayouts 次；每次抽中即取值並入帳
// 3. 返回逐次明細與總額
//
// 錯誤處理：
// - ErrUserNotFound: 使用者不存在
// - 入帳途中失敗即中止，已入帳的部分保留（各自有事件可稽核）
func (uc *RunPayoutUseCase) Execute(cmd RunPayoutCommand) (*RunPayoutResult, error) {
	// 1. 先確認使用者存在，避免抽了一半才發現無處入帳
	if _, err := uc.ledger.GetUserByID(cmd.UserID); err != nil {
		return nil, fmt.Errorf("failed to load user for payout: %w", err)
	}

	result := &RunPayoutResult{
		UserID:       cmd.UserID,
		Draws:        make([]DrawResult, 0, cmd.NumPayouts),
		TotalAwarded: decimal.Zero,
	}

	// 2. 逐次抽選
	for i := 0; i < cmd.NumPayouts; i++ {
		ticket := uc.sampler.PickTicket(uc.tickets)
		if ticket == nil {
			result.Draws = append(result.Draws, DrawResult{
				Won:    false,
				Amount: decimal.Zero,
			})
			continue
		}

		amount := decimal.NewFromFloat(uc.sampler.SampleValue(ticket))
		if err := uc.ledger.PayoutUser(cmd.UserID, amount); err != nil {
			return nil, fmt.Errorf("failed to record payout: %w", err)
		}

		result.Draws = append(result.Draws, DrawResult{
			TicketName: ticket.Name(),
			Won:        true,
			Amount:     amount,
		})
		result.TotalAwarded = result.TotalAwarded.Add(amount)
	}

	return result, nil
}
