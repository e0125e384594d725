package cli

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration at a resolution useful for generation
// metrics: sub-second values in milliseconds, larger values rounded.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return d.Round(time.Second).String()
}

// FormatBytes renders a byte count in human-readable form.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatTokensPerSecond renders generation speed from a token count and the
// time spent evaluating them.
func FormatTokensPerSecond(tokens int, d time.Duration) string {
	if d <= 0 || tokens <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f tok/s", float64(tokens)/d.Seconds())
}
