package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a decimal with trailing fractional zeros trimmed,
// so a claim of 78.0 reports as "78" and 78.50 as "78.5"
func FormatAmount(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
