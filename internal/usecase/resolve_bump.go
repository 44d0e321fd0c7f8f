package usecase

import (
	"fmt"

	"github.com/semtag-io/semtag/internal/domain"
	"go.uber.org/zap"
)

// ResolveBumpUseCase is the central state machine turning a commit-derived
// bump signal, the operator-configured defaults and the branch role into one
// release-type decision and the incremented version.
type ResolveBumpUseCase struct {
	DefaultBump           domain.ReleaseType
	DefaultPreReleaseBump domain.ReleaseType
	PromotePatchToMinor   bool
	Log                   *zap.Logger
}

// BumpDecision is the resolver outcome. Skip outcomes are terminal results,
// not errors: no tag should be produced and the run still succeeds.
type BumpDecision struct {
	Skip        bool
	SkipReason  string
	ReleaseType domain.ReleaseType
	NewVersion  *domain.Version
}

// Execute resolves the bump for a previous version. A configured default
// always substitutes for a missing signal; on release branches the final
// type is the weaker of default and signal so a configured ceiling is never
// exceeded.
func (uc *ResolveBumpUseCase) Execute(
	previous *domain.Version,
	signal domain.BumpSignal,
	role domain.BranchRole,
	identifier string,
) (BumpDecision, error) {
	switch role {
	case domain.RoleRelease:
		return uc.resolveRelease(previous, signal)
	case domain.RolePreRelease:
		return uc.resolvePreRelease(previous, signal, identifier)
	default:
		return BumpDecision{Skip: true, SkipReason: "branch matches neither release nor pre-release patterns"}, nil
	}
}

func (uc *ResolveBumpUseCase) resolveRelease(
	previous *domain.Version,
	signal domain.BumpSignal,
) (BumpDecision, error) {
	resolved := signal.Release()
	if signal == domain.BumpNone {
		if uc.DefaultBump == domain.ReleaseSkip {
			return BumpDecision{Skip: true, SkipReason: "no bump signal and default_bump is false"}, nil
		}
		resolved = uc.DefaultBump
	}
	resolved = uc.promote(resolved)
	if uc.DefaultBump != domain.ReleaseSkip {
		resolved = domain.WeakerRelease(resolved, uc.DefaultBump)
	}
	return uc.increment(previous, resolved, "")
}

func (uc *ResolveBumpUseCase) resolvePreRelease(
	previous *domain.Version,
	signal domain.BumpSignal,
	identifier string,
) (BumpDecision, error) {
	resolved := signal.Release()
	if signal == domain.BumpNone {
		if uc.DefaultPreReleaseBump == domain.ReleaseSkip {
			return BumpDecision{Skip: true, SkipReason: "no bump signal and default_prerelease_bump is false"}, nil
		}
		resolved = uc.DefaultPreReleaseBump
	}
	resolved = uc.promote(resolved)
	// An established pre-release lineage with a plain "prerelease" default
	// just advances its counter in place.
	if previous.Prerelease() != "" && uc.DefaultPreReleaseBump == domain.ReleasePrerelease {
		return uc.increment(previous, domain.ReleasePrerelease, identifier)
	}
	resolved = resolved.Pre()
	if uc.DefaultPreReleaseBump != domain.ReleaseSkip {
		resolved = domain.WeakerPreRelease(resolved, uc.DefaultPreReleaseBump)
	}
	return uc.increment(previous, resolved, identifier)
}

// promote upgrades a patch bump to minor when configured, uniformly whether
// the bump came from analysis or from a default.
func (uc *ResolveBumpUseCase) promote(rt domain.ReleaseType) domain.ReleaseType {
	if !uc.PromotePatchToMinor {
		return rt
	}
	switch rt {
	case domain.ReleasePatch:
		return domain.ReleaseMinor
	case domain.ReleasePrepatch:
		return domain.ReleasePreminor
	default:
		return rt
	}
}

func (uc *ResolveBumpUseCase) increment(
	previous *domain.Version,
	rt domain.ReleaseType,
	identifier string,
) (BumpDecision, error) {
	next, err := previous.Increment(rt, identifier)
	if err != nil {
		return BumpDecision{}, fmt.Errorf("failed to increment version %s as %s: %w", previous, rt, err)
	}
	uc.Log.Info("resolved version bump",
		zap.String("previous", previous.String()),
		zap.String("release_type", string(rt)),
		zap.String("next", next.String()))
	return BumpDecision{ReleaseType: rt, NewVersion: next}, nil
}
