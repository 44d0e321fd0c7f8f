package usecase

import (
	"testing"

	"github.com/semtag-io/semtag/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func versionedTag(t *testing.T, name, sha, canonical string) domain.VersionedTag {
	t.Helper()
	version, err := domain.NewVersion(canonical)
	require.NoError(t, err)
	return domain.VersionedTag{
		Tag:     domain.Tag{Name: name, CommitSHA: sha},
		Version: version,
	}
}

func TestSelectPreviousUseCase_Execute(t *testing.T) {
	uc := &SelectPreviousUseCase{Prefix: "v"}
	t.Run("Should pick the latest release tag on a release branch", func(t *testing.T) {
		catalog := []domain.VersionedTag{
			versionedTag(t, "v2.0.0-rc.1", "b", "2.0.0-rc.1"),
			versionedTag(t, "v1.2.3", "a", "1.2.3"),
		}
		selection, err := uc.Execute(catalog, domain.RoleRelease, "rc")
		require.NoError(t, err)
		assert.Equal(t, "v1.2.3", selection.Tag.Name)
		assert.False(t, selection.Synthetic)
	})
	t.Run("Should pick the pre-release tag when it outranks the release", func(t *testing.T) {
		catalog := []domain.VersionedTag{
			versionedTag(t, "v2.0.0-rc.1", "b", "2.0.0-rc.1"),
			versionedTag(t, "v1.2.3", "a", "1.2.3"),
		}
		selection, err := uc.Execute(catalog, domain.RolePreRelease, "rc")
		require.NoError(t, err)
		assert.Equal(t, "v2.0.0-rc.1", selection.Tag.Name)
	})
	t.Run("Should prefer a newer full release over an older pre-release chain", func(t *testing.T) {
		catalog := []domain.VersionedTag{
			versionedTag(t, "v2.1.0", "c", "2.1.0"),
			versionedTag(t, "v2.0.0-rc.4", "b", "2.0.0-rc.4"),
		}
		selection, err := uc.Execute(catalog, domain.RolePreRelease, "rc")
		require.NoError(t, err)
		assert.Equal(t, "v2.1.0", selection.Tag.Name)
	})
	t.Run("Should ignore pre-release tags of other identifier lineages", func(t *testing.T) {
		catalog := []domain.VersionedTag{
			versionedTag(t, "v2.0.0-beta.3", "b", "2.0.0-beta.3"),
			versionedTag(t, "v1.2.3", "a", "1.2.3"),
		}
		selection, err := uc.Execute(catalog, domain.RolePreRelease, "rc")
		require.NoError(t, err)
		assert.Equal(t, "v1.2.3", selection.Tag.Name)
	})
	t.Run("Should fabricate a synthetic zero baseline when no release tag exists", func(t *testing.T) {
		selection, err := uc.Execute(nil, domain.RoleRelease, "rc")
		require.NoError(t, err)
		assert.True(t, selection.Synthetic)
		assert.Equal(t, "v0.0.0", selection.Tag.Name)
		assert.Equal(t, "HEAD", selection.Tag.CommitSHA)
		assert.Equal(t, "0.0.0", selection.Tag.Version.String())
	})
	t.Run("Should still consider pre-release tags against the synthetic baseline", func(t *testing.T) {
		catalog := []domain.VersionedTag{
			versionedTag(t, "v0.1.0-rc.2", "b", "0.1.0-rc.2"),
		}
		selection, err := uc.Execute(catalog, domain.RolePreRelease, "rc")
		require.NoError(t, err)
		assert.Equal(t, "v0.1.0-rc.2", selection.Tag.Name)
	})
}
