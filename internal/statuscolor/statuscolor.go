package statuscolor

import (
	"fmt"

	"github.com/3ajes/URL/internal/model"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorReset  = "\033[0m"
)

func severityColor(sev model.Severity) string {
	switch sev {
	case model.SeveritySuccess:
		return colorGreen
	case model.SeverityWarning:
		return colorYellow
	case model.SeverityDanger:
		return colorRed
	case model.SeverityInfo:
		return colorCyan
	default:
		return colorReset
	}
}

func statusColor(s model.Status) string {
	switch s {
	case model.StatusSafe:
		return colorGreen
	case model.StatusWarning:
		return colorYellow
	case model.StatusDanger:
		return colorRed
	default:
		return colorReset
	}
}

// tierColor maps a score to the display tier color. The tiers break at 30 and
// 60, which is not the same as the classifier's 30/70 label boundaries; both
// are kept as-is because unifying them changes output at the boundary.
func tierColor(score int) string {
	switch {
	case score < 30:
		return colorGreen
	case score <= 60:
		return colorYellow
	default:
		return colorRed
	}
}

// Severity wraps text with the ANSI color for a trace severity.
func Severity(text string, sev model.Severity) string {
	return fmt.Sprintf("%s%s%s", severityColor(sev), text, colorReset)
}

// Status wraps text with the ANSI color for a category status.
func Status(text string, s model.Status) string {
	return fmt.Sprintf("%s%s%s", statusColor(s), text, colorReset)
}

// Score wraps text with the color for the score's display tier.
func Score(text string, score int) string {
	return fmt.Sprintf("%s%s%s", tierColor(score), text, colorReset)
}

// Gray wraps the provided text with a gray ANSI color.
func Gray(text string) string {
	return fmt.Sprintf("%s%s%s", colorGray, text, colorReset)
}
