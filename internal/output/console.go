package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/3ajes/URL/internal/model"
	"github.com/3ajes/URL/internal/statuscolor"
	"github.com/3ajes/URL/internal/util"
)

const gaugeCells = 20

var categoryTitles = map[model.Category]string{
	model.CategoryProtocol:    "Protocol",
	model.CategoryDomain:      "Domain",
	model.CategoryObfuscation: "Obfuscation",
	model.CategoryPattern:     "Pattern",
}

// PrintReport renders one scan result to stdout: score gauge, overall verdict,
// the four category badges and the trace log.
func PrintReport(rep model.Report) {
	res := rep.Result

	bold := color.New(color.Bold)
	_, _ = bold.Printf("Target: %s\n", res.Input)
	if res.Host != "" {
		fmt.Printf("Host:   %s", res.Host)
		if util.IsInternalHost(res.Host) {
			fmt.Printf(" %s", statuscolor.Gray("(private address space)"))
		}
		fmt.Println()
	}

	fmt.Printf("Score:  %s %s\n", gauge(res.Score), statuscolor.Score(fmt.Sprintf("%d/100", res.Score), res.Score))
	fmt.Printf("Verdict: %s — %s\n", statuscolor.Score(LabelTitle(res.Label), res.Score), LabelDescription(res.Label))

	for _, c := range model.Categories() {
		v := res.Verdicts[c]
		badge := statuscolor.Status(fmt.Sprintf("[%s]", v.Status), v.Status)
		fmt.Printf("  %-12s %-10s %s\n", categoryTitles[c]+":", badge, v.Message)
	}

	fmt.Println("Trace:")
	for _, ev := range rep.Trace {
		fmt.Printf("  %s %s\n", statuscolor.Severity(severityPrefix(ev.Severity), ev.Severity), ev.Message)
	}
	if rep.DurationMs > 0 {
		fmt.Printf("Duration: %dms\n", rep.DurationMs)
	}
}

// PrintSummaryLine renders the one-line-per-target form.
func PrintSummaryLine(idx, total int, rep model.Report) {
	res := rep.Result
	fmt.Printf("[%d/%d] %s | score=%s | %s\n",
		idx+1, total, res.Input,
		statuscolor.Score(fmt.Sprintf("%d", res.Score), res.Score),
		LabelTitle(res.Label))
}

func gauge(score int) string {
	filled := score * gaugeCells / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeCells-filled)
	return statuscolor.Score(bar, score)
}

func severityPrefix(sev model.Severity) string {
	switch sev {
	case model.SeveritySuccess:
		return "[✓]"
	case model.SeverityWarning:
		return "[!]"
	case model.SeverityDanger:
		return "[✗]"
	default:
		return "[*]"
	}
}
