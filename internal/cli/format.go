package cli

import (
	"fmt"
	"strings"
	"time"
)

// FormatDollars formats a signed dollar amount, e.g. "+$120.50" or "-$41.00".
func FormatDollars(v float64) string {
	sign := ""
	if v > 0 {
		sign = "+"
	} else if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%.2f", sign, v)
}

// FormatPercent formats a signed percentage, e.g. "+3.20%".
func FormatPercent(v float64) string {
	sign := ""
	if v > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, v)
}

// FormatTimestamp renders a millisecond-epoch timestamp in the local zone.
func FormatTimestamp(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04:05")
}

// TruncateString shortens s to maxLen runes, ellipsized.
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

// FormatList renders a string slice as a comma-joined line, "-" when empty.
func FormatList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
