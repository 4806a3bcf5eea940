package detect_test

import (
	"strings"
	"testing"

	"github.com/3ajes/URL/internal/detect"
	"github.com/3ajes/URL/internal/model"
)

func urlInput(scheme, host string) detect.Input {
	return detect.Input{
		Raw: scheme + "://" + host,
		URL: model.NormalizedURL{Scheme: scheme, Host: host},
	}
}

func TestInsecureProtocol(t *testing.T) {
	t.Parallel()
	if f := detect.InsecureProtocol(urlInput("https", "example.com")); f != nil {
		t.Fatalf("https must not fire, got %+v", f)
	}
	f := detect.InsecureProtocol(urlInput("http", "example.com"))
	if f == nil {
		t.Fatal("http must fire")
	}
	if f.Delta != 20 || f.Category != model.CategoryProtocol || f.Status != model.StatusWarning {
		t.Fatalf("unexpected finding: %+v", f)
	}
}

func TestRawIPHost(t *testing.T) {
	t.Parallel()
	tests := []struct {
		host string
		want bool
	}{
		{"192.168.1.1", true},
		// No range validation on purpose: any 1-3 digit groups count.
		{"999.999.999.999", true},
		{"1.2.3.4", true},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"1234.1.1.1", false},
		{"example.com", false},
		// IPv6 literals are not covered, also on purpose.
		{"::1", false},
	}
	for _, tt := range tests {
		f := detect.RawIPHost(urlInput("http", tt.host))
		if got := f != nil; got != tt.want {
			t.Errorf("RawIPHost(%q) fired=%v, want %v", tt.host, got, tt.want)
		}
		if f != nil && (f.Delta != 50 || f.Category != model.CategoryDomain || f.Status != model.StatusDanger) {
			t.Errorf("RawIPHost(%q) unexpected finding: %+v", tt.host, f)
		}
	}
}

func TestSubdomainDepth(t *testing.T) {
	t.Parallel()
	if f := detect.SubdomainDepth(urlInput("http", "www.example.com")); f != nil {
		t.Fatalf("three labels must not fire, got %+v", f)
	}
	// A dotted quad has four labels but is the IP rule's territory.
	if f := detect.SubdomainDepth(urlInput("http", "10.0.0.1")); f != nil {
		t.Fatalf("raw IP must not fire, got %+v", f)
	}
	f := detect.SubdomainDepth(urlInput("http", "a.b.c.d.example.com"))
	if f == nil {
		t.Fatal("six labels must fire")
	}
	if f.Delta != 30 || f.Category != model.CategoryDomain || f.Status != model.StatusWarning {
		t.Fatalf("unexpected finding: %+v", f)
	}
	if !strings.Contains(f.Message, "6") {
		t.Fatalf("message should include the label count, got %q", f.Message)
	}
}

func TestBrandKeyword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		host     string
		want     bool
		wantPart string
	}{
		{name: "keywordInSubdomain", host: "paypal.com.evil.example.net", want: true, wantPart: "paypal"},
		{name: "substringMatch", host: "my-secure-portal.example.com", want: true, wantPart: "my-secure-portal"},
		// The last two labels are assumed to be the registrable domain and
		// are never inspected, so the real paypal.com stays clean.
		{name: "registrableDomainIgnored", host: "paypal.com", want: false},
		{name: "wwwOnly", host: "www.example.com", want: false},
		{name: "rawIPSkipped", host: "192.168.1.1", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := detect.BrandKeyword(urlInput("http", tt.host))
			if got := f != nil; got != tt.want {
				t.Fatalf("fired=%v, want %v (%+v)", got, tt.want, f)
			}
			if f == nil {
				return
			}
			if f.Delta != 40 || f.Category != model.CategoryPattern || f.Status != model.StatusDanger {
				t.Fatalf("unexpected finding: %+v", f)
			}
			if !strings.Contains(f.Message, tt.wantPart) {
				t.Fatalf("message should name the matched label %q, got %q", tt.wantPart, f.Message)
			}
		})
	}
}

func TestBrandKeywordFirstPartWins(t *testing.T) {
	t.Parallel()
	// Both labels contain keywords; the earlier label must win.
	f := detect.BrandKeyword(urlInput("http", "google-mail.paypal-desk.example.com"))
	if f == nil {
		t.Fatal("expected a finding")
	}
	if !strings.Contains(f.Message, "google-mail") {
		t.Fatalf("expected first matching label to win, got %q", f.Message)
	}
}

func TestExcessiveLength(t *testing.T) {
	t.Parallel()
	at75 := detect.Input{Raw: strings.Repeat("a", 75)}
	if f := detect.ExcessiveLength(at75); f != nil {
		t.Fatalf("75 chars must not fire, got %+v", f)
	}
	at76 := detect.Input{Raw: strings.Repeat("a", 76)}
	f := detect.ExcessiveLength(at76)
	if f == nil {
		t.Fatal("76 chars must fire")
	}
	if f.Delta != 15 || f.Category != model.CategoryObfuscation || f.Status != model.StatusWarning {
		t.Fatalf("unexpected finding: %+v", f)
	}
}

func TestEmbeddedCredentials(t *testing.T) {
	t.Parallel()
	none := detect.Input{URL: model.NormalizedURL{Scheme: "http", Host: "example.com"}}
	if f := detect.EmbeddedCredentials(none); f != nil {
		t.Fatalf("no userinfo must not fire, got %+v", f)
	}
	for _, u := range []model.NormalizedURL{
		{Scheme: "http", Host: "example.com", Username: "admin"},
		{Scheme: "http", Host: "example.com", Password: "hunter2"},
	} {
		f := detect.EmbeddedCredentials(detect.Input{URL: u})
		if f == nil {
			t.Fatalf("userinfo %+v must fire", u)
		}
		if f.Delta != 40 || f.Category != model.CategoryObfuscation || f.Status != model.StatusDanger {
			t.Fatalf("unexpected finding: %+v", f)
		}
	}
}

func TestDefaultRulesOrder(t *testing.T) {
	t.Parallel()
	want := []string{
		"insecure-protocol",
		"raw-ip-host",
		"subdomain-depth",
		"brand-keyword",
		"excessive-length",
		"embedded-credentials",
	}
	rules := detect.DefaultRules()
	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for i, name := range want {
		if rules[i].Name != name {
			t.Errorf("rule %d = %q, want %q", i, rules[i].Name, name)
		}
	}
}
