package engine

import (
	"errors"
	"net/url"
	"strings"

	"github.com/3ajes/URL/internal/model"
)

// ErrParse is the single failure mode of normalization. Malformed scheme,
// malformed host and invalid characters all collapse to it; the engine
// converts it to an INVALID_URL result and never lets it escape.
var ErrParse = errors.New("input cannot be parsed as a URL")

// Normalize parses a trimmed input string into a NormalizedURL. Inputs that
// do not already declare http:// or https:// get http:// prepended, so a
// scheme-less input is always treated as insecure. This is a deliberate
// simplification, not real scheme inference.
func Normalize(raw string) (model.NormalizedURL, error) {
	candidate := raw
	if !hasHTTPScheme(candidate) {
		candidate = "http://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return model.NormalizedURL{}, ErrParse
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return model.NormalizedURL{}, ErrParse
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return model.NormalizedURL{}, ErrParse
	}

	norm := model.NormalizedURL{
		Scheme:       u.Scheme,
		Host:         host,
		PathAndQuery: u.RequestURI(),
	}
	if u.User != nil {
		norm.Username = u.User.Username()
		norm.Password, _ = u.User.Password()
	}
	return norm, nil
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
