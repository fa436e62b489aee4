package cli

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/rewardy/src/internal/catalog"
)

// FormatCurrency 格式化點數金額（兩位小數加單位，如 "30.00 GJP"）
func FormatCurrency(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(2), catalog.CurrencyUnits)
}
