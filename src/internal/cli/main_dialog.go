package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jackyeh168/rewardy/src/internal/application/payout"
	"github.com/jackyeh168/rewardy/src/internal/application/store"
	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
	"github.com/jackyeh168/rewardy/src/internal/domain/reward"
)

// ===========================
// 主對話
// ===========================

// App CLI 應用
//
// 持有對話需要的所有協作者：問答器、帳本、兩個 Use Case 與 logger。
type App struct {
	prompter  *Prompter
	out       io.Writer
	log       zerolog.Logger
	ledger    *ledger.Ledger
	browse    *store.BrowseStoreUseCase
	runPayout *payout.RunPayoutUseCase
}

// NewApp 創建 CLI 應用
func NewApp(
	in io.Reader,
	out io.Writer,
	log zerolog.Logger,
	l *ledger.Ledger,
	sampler *reward.Sampler,
	tickets []reward.PayoutTicket,
) *App {
	return &App{
		prompter:  NewPrompter(in, out),
		out:       out,
		log:       log,
		ledger:    l,
		browse:    store.NewBrowseStoreUseCase(l),
		runPayout: payout.NewRunPayoutUseCase(l, sampler, tickets),
	}
}

// MainDialog 主選單對話
//
// 流程：
// 1. 問使用者 ID；不認得時詢問是否建新使用者（起始餘額 0）
// 2. 主選單循環：商店 / 使用道具 / 發放 / 查餘額 / 離開
func (a *App) MainDialog() error {
	fmt.Fprint(a.out, "Welcome to the Mish Motivator!\n\n")

	userID, err := Prompt(a.prompter, "What's your user ID?", ParseNonEmpty)
	if err != nil {
		return err
	}

	if _, err := a.ledger.GetUserByID(userID); err != nil {
		if !errors.Is(err, ledger.ErrUserNotFound) {
			return err
		}

		fmt.Fprint(a.out, "Sorry, I don't recognize you.\n\n")
		isCreateUser, err := Prompt(a.prompter, "Would you like to create a new user? (y/n)", ParseYesOrNo)
		if err != nil {
			return err
		}
		if !isCreateUser {
			fmt.Fprintln(a.out, "OK, maybe next time!")
			return nil
		}

		if _, err := a.ledger.CreateUser(userID, decimal.Zero); err != nil {
			return err
		}
		a.log.Info().Str("user_id", userID).Msg("created new user")
	}

	for {
		optionIndex, err := PickOption(a.prompter, "What would you like to do?", []string{
			"Store",
			"Use your items",
			"Payout",
			"Check balance",
			"Quit",
		})
		if err != nil {
			return err
		}

		switch optionIndex {
		case 0:
			if err := a.StoreDialog(userID); err != nil {
				return err
			}
		case 1:
			if err := a.ExhaustItemDialog(userID); err != nil {
				return err
			}
		case 2:
			if err := a.PayoutDialog(userID); err != nil {
				return err
			}
		case 3:
			if err := a.checkBalance(userID); err != nil {
				return err
			}
		case 4:
			fmt.Fprintln(a.out, "OK, maybe next time!")
			return nil
		}

		if err := a.prompter.WaitForEnter("<hit enter>"); err != nil {
			return err
		}
	}
}

func (a *App) checkBalance(userID string) error {
	user, err := a.ledger.GetUserByID(userID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Your balance is %s\n\n", FormatCurrency(user.Balance()))
	return nil
}
