package utils

import (
	"fmt"
	"math"
	"strings"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"THB": "฿",
	"JPY": "¥",
}

// FormatCurrency renders an amount for bills and emails. Unknown codes fall
// back to "CODE amount".
func FormatCurrency(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if sym, ok := currencySymbols[code]; ok {
		return fmt.Sprintf("%s%.2f", sym, amount)
	}
	if code == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%s %.2f", code, amount)
}

// Round2 rounds money to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
