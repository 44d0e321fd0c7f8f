package domain

import "regexp"

var identifierSanitizer = regexp.MustCompile(`[^A-Za-z0-9-]`)

// SanitizeIdentifier turns an arbitrary string (usually a branch name) into a
// valid pre-release identifier by replacing every character outside
// [A-Za-z0-9-] with a hyphen.
func SanitizeIdentifier(s string) string {
	return identifierSanitizer.ReplaceAllString(s, "-")
}

// PreReleaseNormalizer rewrites the separator between a pre-release
// identifier and its trailing counter. Patterns are compiled once per
// invocation for the configured identifier.
type PreReleaseNormalizer struct {
	add    *regexp.Regexp
	remove *regexp.Regexp
}

// NewPreReleaseNormalizer builds a normalizer for the given identifier.
func NewPreReleaseNormalizer(identifier string) PreReleaseNormalizer {
	q := regexp.QuoteMeta(identifier)
	return PreReleaseNormalizer{
		add:    regexp.MustCompile(`(-` + q + `)(\d+)$`),
		remove: regexp.MustCompile(`(-` + q + `)\.(\d+)$`),
	}
}

// AddSeparator ensures a dot separates the identifier from its counter
// (-rc1 -> -rc.1). Already-dotted tags pass through unchanged.
func (n PreReleaseNormalizer) AddSeparator(tag string) string {
	return n.add.ReplaceAllString(tag, "$1.$2")
}

// RemoveSeparator strips the dot between identifier and counter
// (-rc.1 -> -rc1). Idempotent: a dot-free tag passes through unchanged.
func (n PreReleaseNormalizer) RemoveSeparator(tag string) string {
	return n.remove.ReplaceAllString(tag, "$1$2")
}
