package domain

import "fmt"

// ReleaseType is the concrete increment operation applied to a version.
type ReleaseType string

const (
	ReleaseMajor      ReleaseType = "major"
	ReleaseMinor      ReleaseType = "minor"
	ReleasePatch      ReleaseType = "patch"
	ReleasePremajor   ReleaseType = "premajor"
	ReleasePreminor   ReleaseType = "preminor"
	ReleasePrepatch   ReleaseType = "prepatch"
	ReleasePrerelease ReleaseType = "prerelease"
	ReleaseCustom     ReleaseType = "custom"
	// ReleaseNone marks a commit type that never bumps the version but may
	// still own a changelog section.
	ReleaseNone ReleaseType = "none"
	// ReleaseSkip is the operator's "false" sentinel: no default bump, skip
	// tagging when the commit analysis yields nothing.
	ReleaseSkip ReleaseType = "false"
)

// releaseRank orders the plain release types from weakest to strongest.
var releaseRank = map[ReleaseType]int{
	ReleasePatch: 0,
	ReleaseMinor: 1,
	ReleaseMajor: 2,
}

// preReleaseRank orders the pre-release types from weakest to strongest.
var preReleaseRank = map[ReleaseType]int{
	ReleasePrerelease: 0,
	ReleasePrepatch:   1,
	ReleasePreminor:   2,
	ReleasePremajor:   3,
}

// ParseReleaseType validates a release-type name coming from configuration.
// The "false" sentinel is accepted; anything else outside the vocabulary is an error.
func ParseReleaseType(s string) (ReleaseType, error) {
	switch rt := ReleaseType(s); rt {
	case ReleaseMajor, ReleaseMinor, ReleasePatch,
		ReleasePremajor, ReleasePreminor, ReleasePrepatch, ReleasePrerelease,
		ReleaseCustom, ReleaseNone, ReleaseSkip:
		return rt, nil
	default:
		return "", fmt.Errorf("unsupported release type %q", s)
	}
}

// CanIncrement reports whether the type is an increment operation that can
// be applied to a version. The custom, none and false sentinels cannot.
func (rt ReleaseType) CanIncrement() bool {
	switch rt {
	case ReleaseMajor, ReleaseMinor, ReleasePatch,
		ReleasePremajor, ReleasePreminor, ReleasePrepatch, ReleasePrerelease:
		return true
	default:
		return false
	}
}

// IsPre reports whether the type is one of the pre-release increments.
func (rt ReleaseType) IsPre() bool {
	_, ok := preReleaseRank[rt]
	return ok
}

// Pre returns the pre-release variant of a plain release type
// (patch -> prepatch). Types that are already pre-release pass through.
func (rt ReleaseType) Pre() ReleaseType {
	switch rt {
	case ReleaseMajor:
		return ReleasePremajor
	case ReleaseMinor:
		return ReleasePreminor
	case ReleasePatch:
		return ReleasePrepatch
	default:
		return rt
	}
}

// WeakerRelease picks the weaker of two plain release types over
// patch < minor < major. A configured default is a ceiling, never an
// escalation: defaultBump=patch with an analyzed major yields patch.
// Types outside the plain ranking are returned unchanged in favor of a.
func WeakerRelease(a, b ReleaseType) ReleaseType {
	ra, okA := releaseRank[a]
	rb, okB := releaseRank[b]
	if !okA || !okB {
		return a
	}
	if rb < ra {
		return b
	}
	return a
}

// WeakerPreRelease picks the weaker of two pre-release types over
// prerelease < prepatch < preminor < premajor.
func WeakerPreRelease(a, b ReleaseType) ReleaseType {
	ra, okA := preReleaseRank[a]
	rb, okB := preReleaseRank[b]
	if !okA || !okB {
		return a
	}
	if rb < ra {
		return b
	}
	return a
}
