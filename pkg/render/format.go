package render

import (
	"fmt"
	"strings"
)

// FormatBudget renders an amount as "$5.30M", "$250K" or "$900".
func FormatBudget(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("%s$%.2fM", sign, float64(amount)/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("%s$%dK", sign, amount/1_000)
	default:
		return fmt.Sprintf("%s$%d", sign, amount)
	}
}

// Abbreviate shortens s to at most n runes, ending with "." when cut.
func Abbreviate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "."
	}
	return strings.TrimSpace(string(r[:n-1])) + "."
}
