package cli

import (
	"fmt"

	"github.com/jackyeh168/rewardy/src/internal/application/store"
	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
)

// ===========================
// 商店對話
// ===========================

// StoreDialog 購買對話
//
// 流程：
// 1. 以使用者視角把目錄分為可購買 / 不可購買兩組（各按價格升序）
// 2. 列出不可購買的，再以選單列出可購買的
// 3. 確認後執行購買
func (a *App) StoreDialog(userID string) error {
	fmt.Fprint(a.out, "Welcome to the store!\n\n")

	user, err := a.ledger.GetUserByID(userID)
	if err != nil {
		return err
	}

	result, err := a.browse.Execute(store.BrowseStoreCommand{UserID: userID})
	if err != nil {
		return err
	}

	if len(result.Available) == 0 {
		fmt.Fprint(a.out, "Sorry, there's nothing available right now.\n\n")
		return nil
	}

	fmt.Fprint(a.out, "Here's what's not available:\n\n")
	for _, view := range result.Unavailable {
		fmt.Fprintf(a.out, "- %s\n", formatItemInfo(user, view))
	}
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, "Here's what's available:\n\n")

	options := make([]string, 0, len(result.Available)+1)
	for _, view := range result.Available {
		options = append(options, formatItemInfo(user, view))
	}
	options = append(options, "Nothing, thanks!")

	question := fmt.Sprintf(
		"Which item would you like to purchase? You have %s. (pick number)",
		FormatCurrency(user.Balance()),
	)
	optionIndex, err := PickOption(a.prompter, question, options)
	if err != nil {
		return err
	}
	if optionIndex == len(options)-1 {
		fmt.Fprintln(a.out, "OK, maybe next time!")
		return nil
	}
	picked := result.Available[optionIndex]

	confirmQuestion := fmt.Sprintf(
		"Are you sure you want to purchase %q for %s? (y/n)",
		picked.ID, FormatCurrency(picked.Price),
	)
	isConfirmBuy, err := Prompt(a.prompter, confirmQuestion, ParseYesOrNo)
	if err != nil {
		return err
	}
	if !isConfirmBuy {
		fmt.Fprintln(a.out, "OK, maybe next time!")
		return nil
	}

	if err := a.ledger.PurchaseItem(userID, picked.ID); err != nil {
		return err
	}
	a.log.Info().
		Str("user_id", userID).
		Str("item_id", picked.ID).
		Str("price", picked.Price.String()).
		Msg("item purchased")
	fmt.Fprintf(a.out, "Congrats, you purchased %q!\n", picked.ID)
	return nil
}

// formatItemInfo 商品資訊行："<id> (30.00 GJP) - you have <n>"
func formatItemInfo(user *ledger.User, view store.ItemView) string {
	return fmt.Sprintf("%s (%s) - you have %d", view.ID, FormatCurrency(view.Price), user.Quantity(view.ID))
}
