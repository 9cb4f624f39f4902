package ident

import (
	"regexp"
	"strings"
)

var unsafeRunPattern = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeFileName rewrites name so it is safe to use as a filesystem path
// segment: every run of characters outside [A-Za-z0-9._-] collapses to a
// single underscore. Returns "untitled" when nothing usable remains. This is
// for asset and site file naming only; identifier matching goes through
// Canonicalize instead.
func SafeFileName(name string) string {
	s := strings.Trim(unsafeRunPattern.ReplaceAllString(name, "_"), "_")
	if s == "" {
		return "untitled"
	}
	return s
}
