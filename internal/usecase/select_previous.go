package usecase

import (
	"errors"
	"strings"

	"github.com/semtag-io/semtag/internal/domain"
)

// ErrNoBaseline means no previous version could be determined. With the
// synthetic 0.0.0 fallback in place this should never surface.
var ErrNoBaseline = errors.New("could not determine a previous version")

// syntheticBaseRef is the commit pointer of the fabricated 0.0.0 tag used
// when the repository has no release tag yet.
const syntheticBaseRef = "HEAD"

// SelectPreviousUseCase chooses the baseline tag a bump is computed from,
// reconciling the release lineage with the current pre-release lineage.
type SelectPreviousUseCase struct {
	Prefix string
}

// PreviousSelection is the chosen baseline. Synthetic is set when no release
// tag existed and a {prefix}0.0.0 placeholder anchored at HEAD was fabricated.
type PreviousSelection struct {
	Tag       domain.VersionedTag
	Synthetic bool
}

// Execute picks the baseline for the given role and sanitized pre-release
// identifier. On a release branch, or when no pre-release tag matches the
// identifier, the latest release tag wins. Otherwise the baseline is
// whichever of the two has the greater semver precedence: a newer full
// release always outranks an older dangling pre-release chain.
func (uc *SelectPreviousUseCase) Execute(
	catalog []domain.VersionedTag,
	role domain.BranchRole,
	identifier string,
) (PreviousSelection, error) {
	latest := uc.latestRelease(catalog)
	latestPre := latestPreRelease(catalog, identifier)
	if latestPre == nil || role == domain.RoleRelease {
		if latest == nil {
			return PreviousSelection{}, ErrNoBaseline
		}
		return *latest, nil
	}
	if latest != nil && latest.Tag.Version.Compare(latestPre.Version) > 0 {
		return *latest, nil
	}
	return PreviousSelection{Tag: *latestPre}, nil
}

// latestRelease returns the first catalog entry without a pre-release
// component, or the synthetic 0.0.0 baseline when none exists.
func (uc *SelectPreviousUseCase) latestRelease(catalog []domain.VersionedTag) *PreviousSelection {
	for _, entry := range catalog {
		if entry.Version.Prerelease() == "" {
			return &PreviousSelection{Tag: entry}
		}
	}
	zero, err := domain.NewVersion("0.0.0")
	if err != nil {
		return nil
	}
	return &PreviousSelection{
		Tag: domain.VersionedTag{
			Tag:     domain.Tag{Name: uc.Prefix + "0.0.0", CommitSHA: syntheticBaseRef},
			Version: zero,
		},
		Synthetic: true,
	}
}

// latestPreRelease returns the highest-precedence entry whose pre-release
// component contains the identifier.
func latestPreRelease(catalog []domain.VersionedTag, identifier string) *domain.VersionedTag {
	for i := range catalog {
		pre := catalog[i].Version.Prerelease()
		if pre != "" && strings.Contains(pre, identifier) {
			return &catalog[i]
		}
	}
	return nil
}
