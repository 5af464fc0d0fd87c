package dashboard

import (
	"fmt"
	"time"
)

// Placeholder is rendered for values the upstream API did not provide.
const Placeholder = "-"

// FormatCurrency formats a USD amount with magnitude suffixes, scaling
// precision down as magnitude grows. Missing values render the placeholder.
func FormatCurrency(v *float64) string {
	if v == nil {
		return Placeholder
	}

	sign, n := "", *v
	if n < 0 {
		sign, n = "-", -n
	}

	switch {
	case n >= 1e9:
		return fmt.Sprintf("%s$%.2fB", sign, n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%s$%.1fM", sign, n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%s$%.1fK", sign, n/1e3)
	case n >= 1:
		return fmt.Sprintf("%s$%.2f", sign, n)
	case n >= 0.01:
		return fmt.Sprintf("%s$%.4f", sign, n)
	default:
		return fmt.Sprintf("%s$%.6f", sign, n)
	}
}

// FormatSignedDelta formats a 24h change with an explicit sign and no
// sub-dollar precision. Missing values render the placeholder.
func FormatSignedDelta(v *float64) string {
	if v == nil {
		return Placeholder
	}

	sign, n := "+", *v
	if n < 0 {
		sign, n = "-", -n
	}

	switch {
	case n >= 1e6:
		return fmt.Sprintf("%s$%.1fM", sign, n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%s$%.1fK", sign, n/1e3)
	default:
		return fmt.Sprintf("%s$%.0f", sign, n)
	}
}

// FormatRelativeTime buckets a timestamp into a coarse "ago" string.
// A zero timestamp renders as empty.
func FormatRelativeTime(ts time.Time) string {
	return formatRelativeSince(ts, time.Now())
}

func formatRelativeSince(ts, now time.Time) string {
	if ts.IsZero() {
		return ""
	}

	secs := int64(now.Sub(ts).Seconds())
	switch {
	case secs < 60:
		return "just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	default:
		return fmt.Sprintf("%dd ago", secs/86400)
	}
}
