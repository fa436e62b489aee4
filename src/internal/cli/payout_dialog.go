package cli

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/rewardy/src/internal/application/payout"
)

// ===========================
// 發放對話
// ===========================

// PayoutDialog 每日發放對話
//
// 流程：
// 1. 問今天的任務是否完成（未完成即結束）
// 2. 問賺得幾次抽選
// 3. 每次抽選按 enter 開獎，中獎即入帳並顯示票券與金額
// 4. 結尾顯示今日總額與新餘額
func (a *App) PayoutDialog(userID string) error {
	fmt.Fprint(a.out, "Let's see how much you earned today!\n\n")

	isCompleted, err := Prompt(a.prompter, "Did you complete your tasks? (y/n)", ParseYesOrNo)
	if err != nil {
		return err
	}
	if !isCompleted {
		fmt.Fprint(a.out, "You can do it tomorrow!\n\n")
		return nil
	}
	fmt.Fprint(a.out, "Great job!\n\n")

	numPayouts, err := Prompt(a.prompter, "How many payouts did you earn?", ParseNumber)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, "Nice! Let's see what you won 👀\n\n")

	// 逐次開獎：每次抽選是一筆獨立的發放（各留一筆事件）
	payoutSum := decimal.Zero
	for i := 0; i < numPayouts; i++ {
		question := fmt.Sprintf("Let's see what you get for payout %d. <hit enter>", i+1)
		if err := a.prompter.WaitForEnter(question); err != nil {
			return err
		}

		result, err := a.runPayout.Execute(payout.RunPayoutCommand{UserID: userID, NumPayouts: 1})
		if err != nil {
			return err
		}

		draw := result.Draws[0]
		if !draw.Won {
			fmt.Fprintln(a.out, "Sorry, you didn't win anything this time.")
			continue
		}

		fmt.Fprintf(a.out, "%s: You earned %s\n\n", draw.TicketName, FormatCurrency(draw.Amount))
		payoutSum = payoutSum.Add(draw.Amount)
	}

	user, err := a.ledger.GetUserByID(userID)
	if err != nil {
		return err
	}
	if payoutSum.IsPositive() {
		a.log.Info().
			Str("user_id", userID).
			Str("total", payoutSum.String()).
			Int("draws", numPayouts).
			Msg("payouts recorded")
		fmt.Fprintf(a.out, "You earned %s today! Your new balance is %s\n\n",
			FormatCurrency(payoutSum), FormatCurrency(user.Balance()))
	} else {
		fmt.Fprintf(a.out, "Sorry, you didn't win anything this time. Your balance is %s\n\n",
			FormatCurrency(user.Balance()))
	}

	fmt.Fprintln(a.out, "Thanks for playing!")
	return nil
}
