package util

import (
	"net"
	"strings"
)

// Private and loopback ranges. Used only to annotate raw-IP hosts in the
// presentation layer; membership never changes a score.
var privateBlocks = func() []*net.IPNet {
	cidrs := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"127.0.0.0/8",
		"169.254.0.0/16",
		"::1/128",
		"fc00::/7",
	}
	blocks := make([]*net.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, n, _ := net.ParseCIDR(c)
		blocks = append(blocks, n)
	}
	return blocks
}()

// IsInternalHost reports whether host names a private, loopback or otherwise
// internal address.
func IsInternalHost(host string) bool {
	host = strings.ToLower(host)
	if host == "localhost" || strings.HasSuffix(host, ".internal") {
		return true
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	for _, n := range privateBlocks {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
