// Package urlutil answers URL equality and normalization queries for the
// engine. Every sequencing decision (supersession, redirect detection,
// cache keys) funnels through the same normalization so the answers agree.
package urlutil

import (
	"net/url"
	"strings"
)

// Normalize reduces a URL to the host-relative canonical form used for
// equality checks and cache keys: escaped path plus query, fragment
// dropped, trailing slash trimmed. An absolute URL and its host-relative
// form normalize identically. Unparseable input is returned as-is; this
// function never panics.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	p := u.EscapedPath()
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		p = "/"
	}
	if u.RawQuery != "" {
		return p + "?" + u.RawQuery
	}
	return p
}

// SameResolvedURL reports whether two URLs refer to the same navigable
// resource, ignoring fragments and trivial differences. When both inputs
// are absolute, differing hosts compare unequal. Empty input compares
// unequal to everything, including another empty input.
func SameResolvedURL(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	ua, errA := url.Parse(a)
	ub, errB := url.Parse(b)
	if errA == nil && errB == nil && ua.Host != "" && ub.Host != "" {
		if !strings.EqualFold(ua.Host, ub.Host) {
			return false
		}
	}
	return Normalize(a) == Normalize(b)
}
