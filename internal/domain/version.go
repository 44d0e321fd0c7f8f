package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version wraps semver.Version with the increment semantics the resolver needs.
// A Version is always constructed from a canonical-form string; custom tag
// shapes must go through VersionFormat first.
type Version struct {
	*semver.Version
}

// NewVersion parses a canonical version string (no tag prefix).
func NewVersion(s string) (*Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse version %q: %w", s, err)
	}
	return &Version{v}, nil
}

// Compare compares two versions by semver precedence.
func (v *Version) Compare(other *Version) int {
	return v.Version.Compare(other.Version)
}

// Increment applies a release type to the version. Pre-release types reset or
// create the pre-release counter with the given identifier; ReleasePrerelease
// alone increments an existing counter, starting at 0 when none exists.
// The behavior of a plain bump on a pre-release version follows the usual
// node-semver rules: 1.2.3-rc.1 bumped patch yields 1.2.3, bumped minor 1.3.0.
func (v *Version) Increment(rt ReleaseType, identifier string) (*Version, error) {
	switch rt {
	case ReleaseMajor:
		if v.Prerelease() != "" && v.Minor() == 0 && v.Patch() == 0 {
			return &Version{semver.New(v.Major(), 0, 0, "", "")}, nil
		}
		return &Version{semver.New(v.Major()+1, 0, 0, "", "")}, nil
	case ReleaseMinor:
		if v.Prerelease() != "" && v.Patch() == 0 {
			return &Version{semver.New(v.Major(), v.Minor(), 0, "", "")}, nil
		}
		return &Version{semver.New(v.Major(), v.Minor()+1, 0, "", "")}, nil
	case ReleasePatch:
		if v.Prerelease() != "" {
			return &Version{semver.New(v.Major(), v.Minor(), v.Patch(), "", "")}, nil
		}
		return &Version{semver.New(v.Major(), v.Minor(), v.Patch()+1, "", "")}, nil
	case ReleasePremajor:
		return newPre(v.Major()+1, 0, 0, identifier)
	case ReleasePreminor:
		return newPre(v.Major(), v.Minor()+1, 0, identifier)
	case ReleasePrepatch:
		return newPre(v.Major(), v.Minor(), v.Patch()+1, identifier)
	case ReleasePrerelease:
		if v.Prerelease() == "" {
			return newPre(v.Major(), v.Minor(), v.Patch()+1, identifier)
		}
		pre := bumpPrerelease(v.Prerelease(), identifier)
		next, err := semver.New(v.Major(), v.Minor(), v.Patch(), "", "").SetPrerelease(pre)
		if err != nil {
			return nil, fmt.Errorf("failed to increment pre-release %q: %w", v.Prerelease(), err)
		}
		return &Version{&next}, nil
	default:
		return nil, fmt.Errorf("release type %q cannot be applied to a version", rt)
	}
}

func newPre(major, minor, patch uint64, identifier string) (*Version, error) {
	pre := "0"
	if identifier != "" {
		pre = identifier + ".0"
	}
	next, err := semver.New(major, minor, patch, "", "").SetPrerelease(pre)
	if err != nil {
		return nil, fmt.Errorf("failed to set pre-release identifier %q: %w", identifier, err)
	}
	return &Version{&next}, nil
}

// bumpPrerelease increments the trailing numeric identifier of a pre-release
// suffix. Switching to a different identifier restarts the counter at 0.
func bumpPrerelease(pre, identifier string) string {
	parts := strings.Split(pre, ".")
	if identifier != "" && parts[0] != identifier {
		return identifier + ".0"
	}
	for i := len(parts) - 1; i >= 0; i-- {
		if n, err := strconv.Atoi(parts[i]); err == nil {
			parts[i] = strconv.Itoa(n + 1)
			return strings.Join(parts, ".")
		}
	}
	return pre + ".0"
}
