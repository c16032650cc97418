// Package timeutil parses human-friendly day windows for the dashboard.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultWindow is the fallback dashboard horizon used when none is
	// provided.
	DefaultWindow = "2w"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]int{
		"d":      1,
		"day":    1,
		"days":   1,
		"w":      7,
		"wk":     7,
		"wks":    7,
		"week":   7,
		"weeks":  7,
		"mo":     30,
		"month":  30,
		"months": 30,
	}
)

// ParseWindow parses a human-friendly day-count string (for example "14",
// "2w", or "1w3d") and returns the total number of days along with a
// canonical, compact representation. When the input is empty, the default
// window of two weeks is used.
func ParseWindow(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	// A bare number is a day count.
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 0 {
			return 0, "", fmt.Errorf("negative window %q", trimmed)
		}
		return n, FormatWindow(n), nil
	}

	remaining := strings.ToLower(trimmed)
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q", matches[1])
		}
		days, ok := unitMap[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unknown window unit %q", matches[2])
		}
		total += value * days
		remaining = remaining[len(matches[0]):]
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a day count using week/day tokens.
func FormatWindow(days int) string {
	if days <= 0 {
		return "0d"
	}
	var parts []string
	if w := days / 7; w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d := days % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	return strings.Join(parts, "")
}
