// Package guard validates target URLs and user-supplied filenames before
// any network or filesystem side effect occurs.
package guard

import (
	"net/netip"
	"net/url"
	"strings"
)

// Rejection reasons surfaced to callers. These are part of the tool's
// observable behavior and are matched by clients.
const (
	ReasonInvalidFormat    = "invalid URL format"
	ReasonBlockedProtocol  = "only HTTP/HTTPS protocols are allowed"
	ReasonBlockedLocalhost = "access to localhost/metadata endpoints is blocked"
	ReasonBlockedPrivateIP = "access to private IP ranges is blocked"
)

// ValidationResult is the outcome of validating a locator: either accepted,
// or rejected with a human-readable reason.
type ValidationResult struct {
	Allowed bool
	Reason  string
}

// Accepted creates a passing validation result
func Accepted() ValidationResult {
	return ValidationResult{Allowed: true}
}

// Rejected creates a failing validation result with the given reason
func Rejected(reason string) ValidationResult {
	return ValidationResult{Allowed: false, Reason: reason}
}

// blockedHosts is the exact-match denylist of loopback and cloud-metadata
// host literals, all compared lowercased.
var blockedHosts = map[string]struct{}{
	"localhost":                {},
	"127.0.0.1":                {},
	"0.0.0.0":                  {},
	"169.254.169.254":          {},
	"metadata.google.internal": {},
	"::1":                      {},
}

// blockedRanges lists the private IPv4 ranges rejected for any IP-literal host.
var blockedRanges = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.168.0.0/16"),
}

// blockedHostPrefixes covers the IPv6 unique-local spellings the denylist
// recognizes. Alternate ULA representations are intentionally not expanded;
// the matching rules are kept identical to the original behavior.
var blockedHostPrefixes = []string{"fc00:", "fd00:"}

// ValidateLocator checks a candidate URL string against the SSRF denylist.
// It is a pure string/host inspection: no DNS lookup or network access
// happens here, so DNS rebinding and post-validation redirects are out of
// scope by design.
func ValidateLocator(candidate string) ValidationResult {
	parsed, err := url.Parse(strings.TrimSpace(candidate))
	if err != nil {
		return Rejected(ReasonInvalidFormat)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return Rejected(ReasonBlockedProtocol)
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return Rejected(ReasonInvalidFormat)
	}

	if _, blocked := blockedHosts[host]; blocked {
		return Rejected(ReasonBlockedLocalhost)
	}

	// IPv4-mapped IPv6 spellings are deliberately not unmapped here; the
	// denylist matches the literal dotted-quad forms only.
	if addr, err := netip.ParseAddr(host); err == nil {
		for _, prefix := range blockedRanges {
			if prefix.Contains(addr) {
				return Rejected(ReasonBlockedPrivateIP)
			}
		}
	}

	for _, prefix := range blockedHostPrefixes {
		if strings.HasPrefix(host, prefix) {
			return Rejected(ReasonBlockedPrivateIP)
		}
	}

	return Accepted()
}
