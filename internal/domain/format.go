package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// CanonicalFormat is the fixed template used internally for comparison and
// arithmetic. Custom formats only differ in which components they display.
const CanonicalFormat = "MAJOR.MINOR.PATCH"

// versionPattern captures prefix, numeric components and suffix of a tag.
// Tags that do not match are not version tags at all.
var versionPattern = regexp.MustCompile(`^(\D*)(\d+)(\.\d+)?(\.\d+)?(.*)$`)

// VersionFormat is the repository's tag display template: MAJOR optionally
// followed by .MINOR and .PATCH. Missing components read as 0 when
// translating to canonical form and are dropped on the way back.
type VersionFormat struct {
	raw      string
	hasMinor bool
	hasPatch bool
}

// ParseVersionFormat validates a version_format template.
func ParseVersionFormat(s string) (VersionFormat, error) {
	switch s {
	case "", CanonicalFormat:
		return VersionFormat{raw: CanonicalFormat, hasMinor: true, hasPatch: true}, nil
	case "MAJOR.MINOR":
		return VersionFormat{raw: s, hasMinor: true}, nil
	case "MAJOR":
		return VersionFormat{raw: s}, nil
	default:
		return VersionFormat{}, fmt.Errorf("unsupported version format %q", s)
	}
}

// String returns the template literal.
func (f VersionFormat) String() string { return f.raw }

// IsCanonical reports whether the format is already MAJOR.MINOR.PATCH.
func (f VersionFormat) IsCanonical() bool { return f.raw == CanonicalFormat }

// ToCanonical rewrites a tag in this format to canonical MAJOR.MINOR.PATCH
// shape, preserving any non-numeric prefix and suffix text verbatim. Missing
// minor/patch components default to 0. Returns "" when the tag does not
// contain a numeric version at all; callers must treat that as "not a
// version tag".
func (f VersionFormat) ToCanonical(tag string) string {
	m := versionPattern.FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	prefix, major, minor, patch, suffix := m[1], m[2], m[3], m[4], m[5]
	if minor == "" {
		minor = ".0"
	}
	if patch == "" {
		patch = ".0"
	}
	return prefix + major + minor + patch + suffix
}

// ToCustom rewrites a canonical-form tag into this format, dropping the
// components the template does not name. The inverse of ToCanonical for any
// tag whose components match the template exactly.
func (f VersionFormat) ToCustom(tag string) string {
	m := versionPattern.FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	prefix, major, minor, patch, suffix := m[1], m[2], m[3], m[4], m[5]
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(major)
	if f.hasMinor && minor != "" {
		b.WriteString(minor)
	}
	if f.hasPatch && patch != "" {
		b.WriteString(patch)
	}
	b.WriteString(suffix)
	return b.String()
}
