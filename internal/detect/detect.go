// Package detect holds the heuristic rules the engine runs against a
// normalized URL. Each rule is a total function: it inspects its input and
// either returns a finding or nil, and can never fail.
package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/3ajes/URL/internal/model"
	"github.com/3ajes/URL/internal/util"
)

// Input is what every rule sees: the trimmed raw string as entered and the
// parsed URL. Rules do not see each other's output.
type Input struct {
	Raw string
	URL model.NormalizedURL
}

// Rule is one independent heuristic check.
type Rule struct {
	Name  string
	Check func(Input) *model.Finding
}

// BrandKeywords are matched case-sensitively as substrings against subdomain
// labels (the host is already lower-cased by normalization).
var BrandKeywords = []string{
	"paypal", "apple", "google", "microsoft",
	"login", "secure", "account", "verify", "update",
}

// maxInputLength is the raw-input length above which the obfuscation rule
// fires. Strictly greater than: a 75-character input is fine.
const maxInputLength = 75

// maxHostLabels is the label count above which a host counts as deeply nested.
const maxHostLabels = 3

// dottedQuadRe matches four 1-3 digit groups with no range validation, so
// 999.999.999.999 counts as an IP. IPv6 literals are not covered. Both
// limitations are deliberate: tightening the pattern changes which hosts are
// flagged DANGER.
var dottedQuadRe = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

// DefaultRules returns the built-in rule table in execution order. The slice
// is freshly allocated so callers can substitute or reorder rules in tests
// without touching engine logic.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "insecure-protocol", Check: InsecureProtocol},
		{Name: "raw-ip-host", Check: RawIPHost},
		{Name: "subdomain-depth", Check: SubdomainDepth},
		{Name: "brand-keyword", Check: BrandKeyword},
		{Name: "excessive-length", Check: ExcessiveLength},
		{Name: "embedded-credentials", Check: EmbeddedCredentials},
	}
}

// InsecureProtocol fires when the scheme is literally http.
func InsecureProtocol(in Input) *model.Finding {
	if in.URL.Scheme != "http" {
		return nil
	}
	return &model.Finding{
		Category: model.CategoryProtocol,
		Status:   model.StatusWarning,
		Message:  "Insecure (HTTP)",
		Detail:   "Connection uses plain HTTP; nothing on this page is encrypted",
		Delta:    20,
		Severity: model.SeverityWarning,
	}
}

// RawIPHost fires when the host is a dotted quad instead of a domain name.
func RawIPHost(in Input) *model.Finding {
	if !dottedQuadRe.MatchString(in.URL.Host) {
		return nil
	}
	return &model.Finding{
		Category: model.CategoryDomain,
		Status:   model.StatusDanger,
		Message:  "IP Address Used",
		Detail:   fmt.Sprintf("Host %s is a raw IP address, not a registered domain", in.URL.Host),
		Delta:    50,
		Severity: model.SeverityDanger,
	}
}

// SubdomainDepth fires when a non-IP host has more than maxHostLabels labels.
func SubdomainDepth(in Input) *model.Finding {
	if dottedQuadRe.MatchString(in.URL.Host) {
		return nil
	}
	count := len(util.Labels(in.URL.Host))
	if count <= maxHostLabels {
		return nil
	}
	return &model.Finding{
		Category: model.CategoryDomain,
		Status:   model.StatusWarning,
		Message:  fmt.Sprintf("Excessive Subdomains (%d)", count),
		Detail:   fmt.Sprintf("Host splits into %d labels; deep nesting often hides the real domain", count),
		Delta:    30,
		Severity: model.SeverityWarning,
	}
}

// BrandKeyword fires on the first subdomain label containing a brand or
// credential keyword. The last two labels are assumed to be the registrable
// domain and are never inspected.
func BrandKeyword(in Input) *model.Finding {
	if dottedQuadRe.MatchString(in.URL.Host) {
		return nil
	}
	for _, part := range util.SubdomainLabels(in.URL.Host) {
		for _, kw := range BrandKeywords {
			// Case-sensitive on purpose: the host is lower-cased during
			// normalization and so is the keyword list.
			if !strings.Contains(part, kw) {
				continue
			}
			return &model.Finding{
				Category: model.CategoryPattern,
				Status:   model.StatusDanger,
				Message:  fmt.Sprintf("Brand Imitation (%s)", part),
				Detail:   fmt.Sprintf("Keyword %q found in subdomain label %q", kw, part),
				Delta:    40,
				Severity: model.SeverityDanger,
			}
		}
	}
	return nil
}

// ExcessiveLength fires when the raw input is longer than maxInputLength.
func ExcessiveLength(in Input) *model.Finding {
	n := len(in.Raw)
	if n <= maxInputLength {
		return nil
	}
	return &model.Finding{
		Category: model.CategoryObfuscation,
		Status:   model.StatusWarning,
		Message:  "Excessive Length",
		Detail:   fmt.Sprintf("Input is %d characters long; overlong URLs are used to bury the real destination", n),
		Delta:    15,
		Severity: model.SeverityWarning,
	}
}

// EmbeddedCredentials fires when the URL carries a userinfo segment.
func EmbeddedCredentials(in Input) *model.Finding {
	if in.URL.Username == "" && in.URL.Password == "" {
		return nil
	}
	return &model.Finding{
		Category: model.CategoryObfuscation,
		Status:   model.StatusDanger,
		Message:  "Embedded Credentials",
		Detail:   "URL embeds credentials before an @ sign; everything left of it is a decoy",
		Delta:    40,
		Severity: model.SeverityDanger,
	}
}
