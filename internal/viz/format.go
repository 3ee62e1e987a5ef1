package viz

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Count formats a user count with a B or M suffix.
func Count(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Sprint(v)
	case math.Abs(v) >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	default:
		return fmt.Sprintf("%.0fM", v/1e6)
	}
}

// Sci formats an error metric in scientific notation.
func Sci(v float64) string {
	return fmt.Sprintf("%.2e", v)
}

// Int truncates toward zero and prints with thousands separators. Values
// beyond the int64 range keep scientific notation.
func Int(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= math.MaxInt64 {
		return fmt.Sprint(v)
	}
	return printer.Sprintf("%d", int64(v))
}
