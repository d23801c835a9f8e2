package ui

import (
	"strconv"
	"strings"
)

// formatPrice renders a peso amount the way the shop prints it: "$18.000",
// whole pesos with a dot as the thousands separator.
func formatPrice(v float64) string {
	cents := int64(v + 0.5)
	if v < 0 {
		cents = int64(v - 0.5)
	}
	neg := cents < 0
	if neg {
		cents = -cents
	}

	digits := strconv.FormatInt(cents, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "$" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// flavorNames joins flavor names for a one-line summary.
func flavorNames(names []string) string {
	if len(names) == 0 {
		return "Sin selección de gustos"
	}
	return strings.Join(names, ", ")
}

// truncate shortens s to width runes, ellipsizing when needed.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
