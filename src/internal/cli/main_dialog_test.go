package cli_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/rewardy/src/internal/cli"
	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
	"github.com/jackyeh168/rewardy/src/internal/domain/reward"
	"github.com/jackyeh168/rewardy/src/internal/infrastructure/persistence/memory"
)

// ===========================
// 對話腳本測試
// ===========================

func setupApp(t *testing.T, l *ledger.Ledger, script string, tickets []reward.PayoutTicket) (*cli.App, *strings.Builder) {
	t.Helper()
	var out strings.Builder
	app := cli.NewApp(
		strings.NewReader(script),
		&out,
		zerolog.Nop(),
		l,
		reward.NewSamplerWithSource(rand.NewSource(1)),
		tickets,
	)
	return app, &out
}

func mustTicket(t *testing.T, name string, mean, stdDev, odds float64) reward.PayoutTicket {
	t.Helper()
	ticket, err := reward.NewPayoutTicket(name, mean, stdDev, odds)
	require.NoError(t, err)
	return ticket
}

// Test 1: 新使用者建立後查餘額再離開
func TestMainDialog_CreateUserAndCheckBalance(t *testing.T) {
	// Arrange: 回覆依序為使用者 ID、同意建新使用者、
	// 選 4（查餘額）、按 enter、選 5（離開）
	l := ledger.New(memory.NewStore())
	script := "audrow\ny\n4\n\n5\n"
	app, out := setupApp(t, l, script, nil)

	// Act
	err := app.MainDialog()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome to the Mish Motivator!")
	assert.Contains(t, out.String(), "Sorry, I don't recognize you.")
	assert.Contains(t, out.String(), "Your balance is 0.00 GJP")
	assert.Contains(t, out.String(), "OK, maybe next time!")

	user, err := l.GetUserByID("audrow")
	require.NoError(t, err)
	assert.True(t, user.Balance().IsZero())
}

// Test 2: 拒絕建新使用者即結束，不留任何記錄
func TestMainDialog_DeclineUserCreation_Exits(t *testing.T) {
	// Arrange
	l := ledger.New(memory.NewStore())
	script := "ghost\nn\n"
	app, out := setupApp(t, l, script, nil)

	// Act
	err := app.MainDialog()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "OK, maybe next time!")

	_, err = l.GetUserByID("ghost")
	assert.ErrorIs(t, err, ledger.ErrUserNotFound)
}

// Test 3: 發放對話全流程（必中票券，兩次抽選入帳 20）
func TestMainDialog_PayoutFlow_CreditsBalance(t *testing.T) {
	// Arrange: 既有使用者，回覆依序為使用者 ID、選 3（發放）、
	// 完成任務 y、2 次抽選、兩次開獎 enter、返回主選單 enter、選 5（離開）
	l := ledger.New(memory.NewStore())
	_, err := l.CreateUser("audrow", decimal.Zero)
	require.NoError(t, err)

	tickets := []reward.PayoutTicket{mustTicket(t, "Fixed", 10, 0, 1.0)}
	script := "audrow\n3\ny\n2\n\n\n\n5\n"
	app, out := setupApp(t, l, script, tickets)

	// Act
	err = app.MainDialog()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Let's see how much you earned today!")
	assert.Contains(t, out.String(), "Fixed: You earned 10.00 GJP")
	assert.Contains(t, out.String(), "You earned 20.00 GJP today! Your new balance is 20.00 GJP")
	assert.Contains(t, out.String(), "Thanks for playing!")

	user, err := l.GetUserByID("audrow")
	require.NoError(t, err)
	assert.True(t, user.Balance().Equal(decimal.NewFromInt(20)))

	events, err := l.GetPayoutEventsByUserID("audrow")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

// Test 4: 商店對話購買一項商品
func TestMainDialog_StoreFlow_PurchasesItem(t *testing.T) {
	// Arrange: 使用者餘額 100，目錄一項 30 點商品。
	// 回覆依序為使用者 ID、選 1（商店）、選 1（商品）、確認 y、
	// 返回主選單 enter、選 5（離開）
	l := ledger.New(memory.NewStore())
	_, err := l.CreateUser("audrow", decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = l.CreateItem("Get bubble tea", decimal.NewFromInt(30), 21)
	require.NoError(t, err)

	script := "audrow\n1\n1\ny\n\n5\n"
	app, out := setupApp(t, l, script, nil)

	// Act
	err = app.MainDialog()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome to the store!")
	assert.Contains(t, out.String(), `Congrats, you purchased "Get bubble tea"!`)

	user, err := l.GetUserByID("audrow")
	require.NoError(t, err)
	assert.True(t, user.Balance().Equal(decimal.NewFromInt(70)))
	assert.Equal(t, 1, user.Quantity("Get bubble tea"))
}

// Test 5: 消耗對話用掉一件道具
func TestMainDialog_ExhaustFlow_UsesItem(t *testing.T) {
	// Arrange: 使用者已持有一件商品。
	// 回覆依序為使用者 ID、選 2（使用道具）、選 1（道具）、確認 y、
	// 返回主選單 enter、選 5（離開）
	l := ledger.New(memory.NewStore())
	_, err := l.CreateUser("audrow", decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = l.CreateItem("Get bubble tea", decimal.NewFromInt(30), 0)
	require.NoError(t, err)
	require.NoError(t, l.PurchaseItem("audrow", "Get bubble tea"))

	script := "audrow\n2\n1\ny\n\n5\n"
	app, out := setupApp(t, l, script, nil)

	// Act
	err = app.MainDialog()

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Here are your items:")
	assert.Contains(t, out.String(), `Congrats, you used "Get bubble tea"!`)

	user, err := l.GetUserByID("audrow")
	require.NoError(t, err)
	assert.False(t, user.HasItem("Get bubble tea"))
}
