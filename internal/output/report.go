package output

import (
	"bufio"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/3ajes/URL/internal/model"
	"github.com/3ajes/URL/internal/util"
)

// Record represents one line in the JSONL report.
type Record struct {
	ScanID      string                                   `json:"scan_id"`
	Timestamp   string                                   `json:"timestamp"`
	Input       string                                   `json:"input"`
	Host        string                                   `json:"host,omitempty"`
	Score       int                                      `json:"score"`
	Label       model.Label                              `json:"label"`
	Verdicts    map[model.Category]model.CategoryVerdict `json:"verdicts"`
	Findings    []model.Finding                          `json:"findings,omitempty"`
	Trace       []model.TraceEvent                       `json:"trace,omitempty"`
	PrivateHost bool                                     `json:"private_host,omitempty"`
	DurationMs  int64                                    `json:"duration_ms"`
}

// Summary contains counters for the report summary section.
type Summary struct {
	Total      int
	HighRisk   int
	Suspicious int
	LikelySafe int
	Invalid    int
}

// BuildRecord converts a Report into a Record for JSONL output. Each record
// gets a fresh scan id; the engine result itself carries none so that it
// stays a pure function of its input.
func BuildRecord(rep model.Report) Record {
	return Record{
		ScanID:      uuid.NewString(),
		Timestamp:   rep.StartedAt.UTC().Format(time.RFC3339),
		Input:       rep.Result.Input,
		Host:        rep.Result.Host,
		Score:       rep.Result.Score,
		Label:       rep.Result.Label,
		Verdicts:    rep.Result.Verdicts,
		Findings:    append([]model.Finding(nil), rep.Result.Findings...),
		Trace:       append([]model.TraceEvent(nil), rep.Trace...),
		PrivateHost: rep.Result.Host != "" && util.IsInternalHost(rep.Result.Host),
		DurationMs:  rep.DurationMs,
	}
}

// BuildSummary derives high level counters from the results.
func BuildSummary(reports []model.Report) Summary {
	sum := Summary{Total: len(reports)}
	for _, rep := range reports {
		switch rep.Result.Label {
		case model.LabelHighRisk:
			sum.HighRisk++
		case model.LabelSuspicious:
			sum.Suspicious++
		case model.LabelLikelySafe:
			sum.LikelySafe++
		case model.LabelInvalidURL:
			sum.Invalid++
		}
	}
	return sum
}

// WriteJSONL writes each record as a JSON line to w.
func WriteJSONL(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LabelTitle returns the fixed display title for an overall label.
func LabelTitle(l model.Label) string {
	switch l {
	case model.LabelLikelySafe:
		return "Likely Safe"
	case model.LabelSuspicious:
		return "Suspicious"
	case model.LabelHighRisk:
		return "High Risk"
	case model.LabelInvalidURL:
		return "Invalid URL"
	default:
		return string(l)
	}
}

// LabelDescription returns the fixed display description for a label.
func LabelDescription(l model.Label) string {
	switch l {
	case model.LabelLikelySafe:
		return "No significant structural red flags were found."
	case model.LabelSuspicious:
		return "Several warning signs detected. Proceed with caution."
	case model.LabelHighRisk:
		return "Strong indicators of social engineering. Do not enter credentials."
	case model.LabelInvalidURL:
		return "The input could not be parsed as a URL."
	default:
		return ""
	}
}

// Tier maps a score to the display tier used for coloring. The 30/60 breaks
// are a presentation convention and intentionally differ from the 30/70
// label boundaries.
func Tier(score int) string {
	switch {
	case score < 30:
		return "safe"
	case score <= 60:
		return "warn"
	default:
		return "danger"
	}
}
