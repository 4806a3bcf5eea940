package util

import "strings"

// Labels splits a host into its dot-separated labels.
func Labels(host string) []string {
	return strings.Split(host, ".")
}

// SubdomainLabels returns the host labels excluding the last two, which are
// assumed to be the TLD and the registrable domain. This is a naive heuristic
// and is wrong for multi-label public suffixes such as co.uk; it is kept
// because tightening it changes which hosts trigger keyword detection.
func SubdomainLabels(host string) []string {
	parts := Labels(host)
	if len(parts) <= 2 {
		return nil
	}
	return parts[:len(parts)-2]
}
