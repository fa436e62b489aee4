package cli

import (
	"fmt"
)

// ===========================
// 消耗道具對話
// ===========================

// ExhaustItemDialog 使用道具對話
//
// 流程：
// 1. 列出使用者庫存（沒有道具即結束）
// 2. 選一項並確認
// 3. 執行消耗（庫存 -1，記一筆消耗事件）
func (a *App) ExhaustItemDialog(userID string) error {
	user, err := a.ledger.GetUserByID(userID)
	if err != nil {
		return err
	}

	inventory := user.Items()
	if len(inventory) == 0 {
		fmt.Fprint(a.out, "Sorry, but you have no items to use.\n\n")
		return nil
	}

	fmt.Fprint(a.out, "Here are your items:\n\n")
	options := make([]string, 0, len(inventory)+1)
	for _, entry := range inventory {
		options = append(options, fmt.Sprintf("%s - you have %d", entry.ItemID(), entry.Quantity()))
	}
	options = append(options, "Nothing for now, thanks!")

	optionIndex, err := PickOption(a.prompter, "Which item would you like to use up? (pick number)", options)
	if err != nil {
		return err
	}
	if optionIndex == len(options)-1 {
		fmt.Fprintln(a.out, "OK, maybe next time!")
		return nil
	}
	itemID := inventory[optionIndex].ItemID()

	confirmQuestion := fmt.Sprintf("Are you sure you want to use up one %q? (y/n)", itemID)
	isConfirmUse, err := Prompt(a.prompter, confirmQuestion, ParseYesOrNo)
	if err != nil {
		return err
	}
	if !isConfirmUse {
		fmt.Fprintln(a.out, "OK, maybe next time!")
		return nil
	}

	if err := a.ledger.ExhaustItem(userID, itemID); err != nil {
		return err
	}
	a.log.Info().
		Str("user_id", userID).
		Str("item_id", itemID).
		Msg("item used up")
	fmt.Fprintf(a.out, "Congrats, you used %q!\n", itemID)
	return nil
}
