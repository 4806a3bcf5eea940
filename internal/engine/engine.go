// Package engine implements the heuristic URL assessment: normalization, the
// ordered rule battery, score aggregation and verdict classification. A scan
// is synchronous, deterministic and touches only values local to the call, so
// concurrent scans need no locking.
package engine

import (
	"strings"

	"github.com/3ajes/URL/internal/detect"
	"github.com/3ajes/URL/internal/model"
	"github.com/3ajes/URL/internal/trace"
)

// Classification boundaries. Half-open: exactly 30 is SUSPICIOUS, exactly 70
// is HIGH_RISK. The presentation layer draws its color tiers at 30/60; the
// mismatch is intentional and both sets are kept literally.
const (
	suspiciousFloor = 30
	highRiskFloor   = 70
	maxScore        = 100
)

// Engine runs a fixed, ordered rule set against normalized URLs. The rule
// table is injected so tests can substitute it; Engine itself is stateless
// between scans.
type Engine struct {
	rules []detect.Rule
}

// New creates an Engine with the given rule table.
func New(rules []detect.Rule) *Engine {
	return &Engine{rules: rules}
}

// Default creates an Engine with the built-in rules.
func Default() *Engine {
	return New(detect.DefaultRules())
}

// Scan assesses a single input string and returns the result together with
// the ordered trace of everything the engine did. It never fails: an
// unparsable input is reported as data (score 100, INVALID_URL).
func (e *Engine) Scan(raw string) (model.ScanResult, []model.TraceEvent) {
	raw = strings.TrimSpace(raw)
	rec := trace.NewRecorder()
	res := model.ScanResult{
		Input:    raw,
		Verdicts: model.DefaultVerdicts(),
	}

	u, err := Normalize(raw)
	if err != nil {
		rec.Danger("Input could not be parsed as a URL; aborting analysis")
		// The category verdicts stay at their SAFE defaults even though the
		// score pegs at 100. Known inconsistency, replicated as-is.
		res.Score = maxScore
		res.Label = model.LabelInvalidURL
		return res, rec.Events()
	}
	res.Host = u.Host
	rec.Info("Host resolved: %s", u.Host)

	in := detect.Input{Raw: raw, URL: u}
	total := 0
	for _, rule := range e.rules {
		f := rule.Check(in)
		if f == nil {
			continue
		}
		total += f.Delta
		// Last write wins within a category; earlier findings in the same
		// category keep their score contribution but lose the badge.
		res.Verdicts[f.Category] = model.CategoryVerdict{Status: f.Status, Message: f.Message}
		res.Findings = append(res.Findings, *f)
		rec.Add(f.Severity, "%s", f.Detail)
	}

	res.Score = clamp(total)
	res.Label = Classify(res.Score)
	if res.Score == 0 {
		rec.Success("Scan complete. No threats detected")
	} else {
		rec.Danger("Scan complete. Risk score %d/100", res.Score)
	}
	return res, rec.Events()
}

// Classify maps a clamped score to the overall label.
func Classify(score int) model.Label {
	switch {
	case score < suspiciousFloor:
		return model.LabelLikelySafe
	case score < highRiskFloor:
		return model.LabelSuspicious
	default:
		return model.LabelHighRisk
	}
}

func clamp(score int) int {
	if score > maxScore {
		return maxScore
	}
	if score < 0 {
		return 0
	}
	return score
}
