package ident

import (
	"regexp"
	"strings"
)

// exposureTags are the recognized exposure conditions, in match-priority
// order. ExposureTag returns the first one found as a substring.
var exposureTags = [...]string{"ev-00", "ev-25", "ev-50"}

// rankPrefixPattern strips leading rank markers such as "R2_", "r3:" or
// "rank 1-". The digit may appear with or without the letter r.
var rankPrefixPattern = regexp.MustCompile(`(?i)^(?:rank\s*)?r?[123]\s*[:_-]+`)

// ExposureTag returns the exposure condition embedded in s, or "" when none
// of the known tags is present.
func ExposureTag(s string) string {
	if s == "" {
		return ""
	}
	for _, tag := range exposureTags {
		if strings.Contains(s, tag) {
			return tag
		}
	}
	return ""
}

// Canonicalize reduces a free-form path, filename, or label to a stable base
// identifier and reports the exposure tag found in it. The result may be
// empty when the input carries no identifier content; callers doing lookups
// treat an empty base id as "no match possible".
func Canonicalize(raw string) (baseID, exposureTag string) {
	s := strings.TrimSpace(raw)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}

	exposureTag = ExposureTag(s)

	if v, ok := trimSuffixFold(s, ".gz"); ok {
		s = v
	}
	if v, ok := trimSuffixFold(s, ".json"); ok {
		s = v
	}
	if v, ok := trimSuffixFold(s, "_points"); ok {
		s = v
	}
	for _, tag := range exposureTags {
		if v, ok := trimSuffixFold(s, "_"+tag); ok {
			s = v
			break
		}
	}

	s = rankPrefixPattern.ReplaceAllString(s, "")

	s = strings.ReplaceAll(s, " ", "_")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "_")

	return s, exposureTag
}

func trimSuffixFold(s, suffix string) (string, bool) {
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}
