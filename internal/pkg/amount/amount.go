// Package amount converts between the thousands-separated strings people type
// into price inputs and the raw numbers the wizard stores. Formatting is only
// ever applied at render time.
package amount

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrEmpty is returned when the input has no digits at all
var ErrEmpty = errors.New("amount is empty")

var printer = message.NewPrinter(language.English)

// currency markers users paste in front of or behind a figure
var currencyMarkers = []string{"₦", "NGN", "ngn", "N"}

// ParseInt de-formats an integer amount such as "₦1,500,000" or "1 500 000".
func ParseInt(input string) (int64, error) {
	s := clean(input)
	if s == "" {
		return 0, ErrEmpty
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		// kobo are dropped; only whole naira are accepted when the fraction is zero
		frac := strings.TrimRight(s[i+1:], "0")
		if frac != "" {
			return 0, fmt.Errorf("amount %q must be a whole number", input)
		}
		s = s[:i]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", input)
	}
	if n < 0 {
		return 0, fmt.Errorf("amount %q cannot be negative", input)
	}
	return n, nil
}

// ParseDecimal de-formats a decimal figure such as "1,200.5"
func ParseDecimal(input string) (float64, error) {
	s := clean(input)
	if s == "" {
		return 0, ErrEmpty
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("invalid number %q", input)
	}
	if f < 0 {
		return 0, fmt.Errorf("number %q cannot be negative", input)
	}
	return f, nil
}

// Format renders an integer amount with thousands separators
func Format(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatDecimal renders a decimal with the shortest exact representation
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func clean(input string) string {
	s := strings.TrimSpace(input)
	for _, marker := range currencyMarkers {
		s = strings.TrimPrefix(s, marker)
		s = strings.TrimSuffix(s, marker)
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ',', ' ', '_', '\u00a0':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
