// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency formats an amount in US dollars with thousands separators,
// e.g. $125,430.50.
func FormatCurrency(amount float64) string {
	str := fmt.Sprintf("%.2f", math.Abs(amount))
	negative := amount < 0 && str != "0.00"
	parts := strings.Split(str, ".")

	result := "$" + formatThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var sb strings.Builder
	head := n % 3
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatChange formats a price change with its sign, e.g. +$2.34 or -$1.20.
func FormatChange(change float64) string {
	formatted := FormatCurrency(change)
	if change > 0 {
		return "+" + formatted
	}
	return formatted
}

// ProgressBar renders percent (clamped to 0..100) as a bar of width cells.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// TruncateString truncates a string to maxLen runes with an ellipsis.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// PadRight pads a string to the given rune width.
func PadRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// Initials returns the upper-case first letters of the first two words.
func Initials(name string) string {
	var sb strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		sb.WriteString(strings.ToUpper(string([]rune(word)[:1])))
	}
	return sb.String()
}
