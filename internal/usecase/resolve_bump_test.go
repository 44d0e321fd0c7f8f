package usecase

import (
	"testing"

	"github.com/semtag-io/semtag/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newResolver(defaultBump, defaultPre domain.ReleaseType) *ResolveBumpUseCase {
	return &ResolveBumpUseCase{
		DefaultBump:           defaultBump,
		DefaultPreReleaseBump: defaultPre,
		Log:                   zap.NewNop(),
	}
}

func mustVersion(t *testing.T, s string) *domain.Version {
	t.Helper()
	version, err := domain.NewVersion(s)
	require.NoError(t, err)
	return version
}

func TestResolveBumpUseCase_Execute(t *testing.T) {
	t.Run("Should skip when the branch has no role", func(t *testing.T) {
		uc := newResolver(domain.ReleasePatch, domain.ReleasePrerelease)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpMinor, domain.RoleOther, "")
		require.NoError(t, err)
		assert.True(t, decision.Skip)
	})
	t.Run("Should skip on a pull request ref", func(t *testing.T) {
		uc := newResolver(domain.ReleasePatch, domain.ReleasePrerelease)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpMajor, domain.RolePullRequest, "")
		require.NoError(t, err)
		assert.True(t, decision.Skip)
	})
	t.Run("Should apply the analyzed bump on a release branch", func(t *testing.T) {
		uc := newResolver(domain.ReleaseMajor, domain.ReleasePrerelease)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpMinor, domain.RoleRelease, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ReleaseMinor, decision.ReleaseType)
		assert.Equal(t, "1.3.0", decision.NewVersion.String())
	})
	t.Run("Should never escalate beyond the configured default", func(t *testing.T) {
		uc := newResolver(domain.ReleasePatch, domain.ReleasePrerelease)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpMajor, domain.RoleRelease, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ReleasePatch, decision.ReleaseType)
		assert.Equal(t, "1.2.4", decision.NewVersion.String())
	})
	t.Run("Should substitute the default for a missing signal", func(t *testing.T) {
		uc := newResolver(domain.ReleaseMinor, domain.ReleasePrerelease)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpNone, domain.RoleRelease, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ReleaseMinor, decision.ReleaseType)
	})
	t.Run("Should skip when the signal is none and default_bump is false", func(t *testing.T) {
		uc := newResolver(domain.ReleaseSkip, domain.ReleasePrerelease)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpNone, domain.RoleRelease, "")
		require.NoError(t, err)
		assert.True(t, decision.Skip)
	})
	t.Run("Should not cap the analyzed bump when default_bump is false", func(t *testing.T) {
		uc := newResolver(domain.ReleaseSkip, domain.ReleasePrerelease)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpMajor, domain.RoleRelease, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ReleaseMajor, decision.ReleaseType)
	})
	t.Run("Should promote patch to minor when configured", func(t *testing.T) {
		uc := newResolver(domain.ReleaseMajor, domain.ReleasePrerelease)
		uc.PromotePatchToMinor = true
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpPatch, domain.RoleRelease, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ReleaseMinor, decision.ReleaseType)
		assert.Equal(t, "1.3.0", decision.NewVersion.String())
	})
	t.Run("Should promote a defaulted patch bump as well", func(t *testing.T) {
		uc := newResolver(domain.ReleasePatch, domain.ReleasePrerelease)
		uc.PromotePatchToMinor = true
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpNone, domain.RoleRelease, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ReleaseMinor, decision.ReleaseType)
	})
}

func TestResolveBumpUseCase_Execute_PreRelease(t *testing.T) {
	t.Run("Should fall back to the pre-release default for a missing signal", func(t *testing.T) {
		uc := newResolver(domain.ReleasePatch, domain.ReleasePreminor)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpNone, domain.RolePreRelease, "rc")
		require.NoError(t, err)
		assert.Equal(t, domain.ReleasePreminor, decision.ReleaseType)
		assert.Equal(t, "1.3.0-rc.0", decision.NewVersion.String())
	})
	t.Run("Should skip when the signal is none and default_prerelease_bump is false", func(t *testing.T) {
		uc := newResolver(domain.ReleasePatch, domain.ReleaseSkip)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpNone, domain.RolePreRelease, "rc")
		require.NoError(t, err)
		assert.True(t, decision.Skip)
	})
	t.Run("Should advance an existing counter with a prerelease default", func(t *testing.T) {
		uc := newResolver(domain.ReleasePatch, domain.ReleasePrerelease)
		decision, err := uc.Execute(mustVersion(t, "1.2.3-rc.1"), domain.BumpNone, domain.RolePreRelease, "rc")
		require.NoError(t, err)
		assert.Equal(t, domain.ReleasePrerelease, decision.ReleaseType)
		assert.Equal(t, "1.2.3-rc.2", decision.NewVersion.String())
	})
	t.Run("Should prefix an analyzed bump and weaken it against the default", func(t *testing.T) {
		uc := newResolver(domain.ReleasePatch, domain.ReleasePrepatch)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpMajor, domain.RolePreRelease, "rc")
		require.NoError(t, err)
		assert.Equal(t, domain.ReleasePrepatch, decision.ReleaseType)
		assert.Equal(t, "1.2.4-rc.0", decision.NewVersion.String())
	})
	t.Run("Should start a new lineage when the previous version has no suffix", func(t *testing.T) {
		uc := newResolver(domain.ReleasePatch, domain.ReleasePrerelease)
		decision, err := uc.Execute(mustVersion(t, "1.2.3"), domain.BumpMinor, domain.RolePreRelease, "rc")
		require.NoError(t, err)
		assert.Equal(t, domain.ReleasePrerelease, decision.ReleaseType)
		assert.Equal(t, "1.2.4-rc.0", decision.NewVersion.String())
	})
}
