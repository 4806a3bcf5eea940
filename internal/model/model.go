package model

import "time"

// Category groups related heuristics so the presentation layer can show one
// status badge per concern.
type Category string

const (
	CategoryProtocol    Category = "protocol"
	CategoryDomain      Category = "domain"
	CategoryObfuscation Category = "obfuscation"
	CategoryPattern     Category = "pattern"
)

// Categories returns the four categories in display order.
func Categories() []Category {
	return []Category{CategoryProtocol, CategoryDomain, CategoryObfuscation, CategoryPattern}
}

// Status is the per-category verdict.
type Status string

const (
	StatusSafe    Status = "SAFE"
	StatusWarning Status = "WARNING"
	StatusDanger  Status = "DANGER"
)

// Label is the overall classification of a scan.
type Label string

const (
	LabelLikelySafe Label = "LIKELY_SAFE"
	LabelSuspicious Label = "SUSPICIOUS"
	LabelHighRisk   Label = "HIGH_RISK"
	LabelInvalidURL Label = "INVALID_URL"
)

// Severity tags a trace event for display styling.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeveritySuccess Severity = "success"
)

// NormalizedURL is the parsed form of the input, produced once per scan and
// immutable afterwards. Host is lower-cased with any port stripped.
type NormalizedURL struct {
	Scheme       string `json:"scheme"`
	Host         string `json:"host"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	PathAndQuery string `json:"path_and_query,omitempty"`
}

// CategoryVerdict is the status badge for one category. When several rules in
// the same category fire, the last one wins; earlier messages are discarded.
type CategoryVerdict struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// DefaultVerdicts returns the SAFE baseline for all four categories.
func DefaultVerdicts() map[Category]CategoryVerdict {
	verdicts := make(map[Category]CategoryVerdict, 4)
	for _, c := range Categories() {
		verdicts[c] = CategoryVerdict{Status: StatusSafe, Message: "Standard"}
	}
	return verdicts
}

// Finding is the output of a single fired rule.
type Finding struct {
	Category Category `json:"category"`
	Status   Status   `json:"status"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail,omitempty"`
	Delta    int      `json:"delta"`
	Severity Severity `json:"severity"`
}

// TraceEvent is one line of the engine's running commentary. Events are
// ordered by emission time, never by severity.
type TraceEvent struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ScanResult is the final output for a single scanned input.
type ScanResult struct {
	Input    string                       `json:"input"`
	Host     string                       `json:"host,omitempty"`
	Score    int                          `json:"score"`
	Label    Label                        `json:"label"`
	Verdicts map[Category]CategoryVerdict `json:"verdicts"`
	Findings []Finding                    `json:"findings,omitempty"`
}

// Report couples a scan result with its trace and timing for rendering.
type Report struct {
	Result     ScanResult   `json:"result"`
	Trace      []TraceEvent `json:"trace"`
	StartedAt  time.Time    `json:"started_at"`
	DurationMs int64        `json:"duration_ms"`
}
