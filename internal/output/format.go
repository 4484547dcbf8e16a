package output

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Bytes renders a byte count in SI units, e.g. "4.2 MB".
func Bytes(n uint64) string {
	return humanize.Bytes(n)
}

// Count renders an integer with thousands separators.
func Count[T ~int | ~int64 | ~uint64](n T) string {
	return humanize.Comma(int64(n))
}

// Millis renders a duration given in milliseconds.
func Millis(ms uint64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}

// PercentBar renders a bar for a 0-100 share followed by the value.
// Example: "██████░░░░  60.0%"
func PercentBar(pct float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(filled, width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := StyleMuted
	switch {
	case pct >= 50:
		style = StyleSuccess
	case pct >= 10:
		style = StyleWarning
	}

	return fmt.Sprintf("%s %s", style.Render(bar), fmt.Sprintf("%5.1f%%", pct))
}

// TrendArrow returns a styled indicator for a change. format renders the
// magnitude; growth is shown as success and shrinkage as error unless
// higherIsBetter is false.
func TrendArrow(delta int64, higherIsBetter bool, format func(uint64) string) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	if format == nil {
		format = func(n uint64) string { return humanize.Comma(int64(n)) }
	}

	isPositive := delta > 0
	isImproved := isPositive == higherIsBetter

	var arrow string
	if isPositive {
		arrow = "▲ +" + format(uint64(delta))
	} else {
		arrow = "▼ -" + format(uint64(-delta))
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// KeyValue renders an aligned label/value line.
func KeyValue(label, value string) string {
	return " " + StyleLabel.Render(label) + value
}
