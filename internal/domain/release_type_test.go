package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReleaseType(t *testing.T) {
	t.Run("Should accept the full vocabulary including the false sentinel", func(t *testing.T) {
		for _, s := range []string{
			"major", "minor", "patch",
			"premajor", "preminor", "prepatch", "prerelease",
			"custom", "none", "false",
		} {
			rt, err := ParseReleaseType(s)
			require.NoError(t, err)
			assert.Equal(t, ReleaseType(s), rt)
		}
	})
	t.Run("Should reject unknown names", func(t *testing.T) {
		_, err := ParseReleaseType("gigantic")
		assert.Error(t, err)
	})
}

func TestReleaseType_CanIncrement(t *testing.T) {
	t.Run("Should accept every increment operation", func(t *testing.T) {
		for _, rt := range []ReleaseType{
			ReleaseMajor, ReleaseMinor, ReleasePatch,
			ReleasePremajor, ReleasePreminor, ReleasePrepatch, ReleasePrerelease,
		} {
			assert.True(t, rt.CanIncrement(), string(rt))
		}
	})
	t.Run("Should reject the sentinels", func(t *testing.T) {
		for _, rt := range []ReleaseType{ReleaseCustom, ReleaseNone, ReleaseSkip} {
			assert.False(t, rt.CanIncrement(), string(rt))
		}
	})
}

func TestWeakerRelease(t *testing.T) {
	t.Run("Should never escalate beyond the configured default", func(t *testing.T) {
		// The intended direction: defaultBump=patch caps an analyzed major.
		assert.Equal(t, ReleasePatch, WeakerRelease(ReleaseMajor, ReleasePatch))
	})
	t.Run("Should not weaken a bump below itself", func(t *testing.T) {
		assert.Equal(t, ReleasePatch, WeakerRelease(ReleasePatch, ReleaseMajor))
	})
	t.Run("Should keep the bump when the default is not a plain type", func(t *testing.T) {
		assert.Equal(t, ReleaseMinor, WeakerRelease(ReleaseMinor, ReleaseSkip))
	})
}

func TestWeakerPreRelease(t *testing.T) {
	t.Run("Should rank prerelease below all pre-bump types", func(t *testing.T) {
		assert.Equal(t, ReleasePrerelease, WeakerPreRelease(ReleasePremajor, ReleasePrerelease))
	})
	t.Run("Should keep the weaker operand regardless of order", func(t *testing.T) {
		assert.Equal(t, ReleasePrepatch, WeakerPreRelease(ReleasePrepatch, ReleasePreminor))
	})
}

func TestReleaseType_Pre(t *testing.T) {
	t.Run("Should map plain types to their pre variants", func(t *testing.T) {
		assert.Equal(t, ReleasePremajor, ReleaseMajor.Pre())
		assert.Equal(t, ReleasePreminor, ReleaseMinor.Pre())
		assert.Equal(t, ReleasePrepatch, ReleasePatch.Pre())
	})
	t.Run("Should pass pre types through unchanged", func(t *testing.T) {
		assert.Equal(t, ReleasePreminor, ReleasePreminor.Pre())
		assert.Equal(t, ReleasePrerelease, ReleasePrerelease.Pre())
	})
}

func TestBumpSignal(t *testing.T) {
	t.Run("Should order severity none to major", func(t *testing.T) {
		assert.Equal(t, BumpMajor, BumpPatch.Stronger(BumpMajor))
		assert.Equal(t, BumpMinor, BumpMinor.Stronger(BumpNone))
	})
	t.Run("Should map signals to plain release types", func(t *testing.T) {
		assert.Equal(t, ReleaseMinor, BumpMinor.Release())
		assert.Equal(t, ReleaseSkip, BumpNone.Release())
	})
}
