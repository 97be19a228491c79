package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// fallbackIDBase is used when a name normalizes to nothing (e.g. "!!!").
const fallbackIDBase = "app"

// GenerateID derives a unique, URL-safe identifier from an app name. The name
// is lowercased, spaces and underscores become hyphens, and everything that is
// not alphanumeric or a hyphen is stripped. Collisions with existing ids are
// resolved by appending the smallest unused positive integer suffix.
func GenerateID(name string, existing []string) string {
	base := normalizeID(name)
	if base == "" {
		base = fallbackIDBase
	}

	taken := make(map[string]bool, len(existing))
	for _, id := range existing {
		taken[id] = true
	}

	if !taken[base] {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !taken[candidate] {
			return candidate
		}
	}
}

func normalizeID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r == ' ' || r == '_':
			b.WriteRune('-')
		case r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
