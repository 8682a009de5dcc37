package catalog

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney renders d as US currency rounded to cents, e.g. "$1,431.50"
// or "-$4.99".
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	r := d.Abs().Round(2)
	whole := r.IntPart()
	cents := r.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole), cents)
}
