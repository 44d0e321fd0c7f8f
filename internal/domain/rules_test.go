package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func findRule(t *testing.T, rules []ReleaseRule, keyword string) ReleaseRule {
	t.Helper()
	for _, r := range rules {
		if r.Type == keyword {
			return r
		}
	}
	t.Fatalf("rule %q not found", keyword)
	return ReleaseRule{}
}

func TestMergeRules(t *testing.T) {
	log := zap.NewNop()
	t.Run("Should return the defaults when no custom rules are given", func(t *testing.T) {
		rules := MergeRules("", log)
		assert.Equal(t, DefaultRules(), rules)
	})
	t.Run("Should override a default field by field", func(t *testing.T) {
		rules := MergeRules("feat:major", log)
		rule := findRule(t, rules, "feat")
		assert.Equal(t, ReleaseMajor, rule.Release)
		// Section inherited from the built-in table.
		assert.Equal(t, "Features", rule.Section)
	})
	t.Run("Should add a new keyword with its own section", func(t *testing.T) {
		rules := MergeRules("hotfix:patch:Hot Fixes", log)
		rule := findRule(t, rules, "hotfix")
		assert.Equal(t, ReleasePatch, rule.Release)
		assert.Equal(t, "Hot Fixes", rule.Section)
	})
	t.Run("Should leave the section empty for a new keyword without one", func(t *testing.T) {
		rules := MergeRules("hotfix:patch", log)
		rule := findRule(t, rules, "hotfix")
		assert.Empty(t, rule.Section)
	})
	t.Run("Should drop an entry without a colon", func(t *testing.T) {
		rules := MergeRules("foo", log)
		assert.Equal(t, DefaultRules(), rules)
		for _, r := range rules {
			assert.NotEqual(t, "foo", r.Type)
		}
	})
	t.Run("Should drop an entry with an unsupported release type", func(t *testing.T) {
		rules := MergeRules("feat:gigantic", log)
		rule := findRule(t, rules, "feat")
		assert.Equal(t, ReleaseMinor, rule.Release)
	})
	t.Run("Should apply multiple entries", func(t *testing.T) {
		rules := MergeRules("fix:minor,chore:patch", log)
		assert.Equal(t, ReleaseMinor, findRule(t, rules, "fix").Release)
		assert.Equal(t, ReleasePatch, findRule(t, rules, "chore").Release)
	})
}

func TestChangelogRules(t *testing.T) {
	t.Run("Should filter out rules without a section", func(t *testing.T) {
		rules := []ReleaseRule{
			{Type: "feat", Release: ReleaseMinor, Section: "Features"},
			{Type: "internal", Release: ReleasePatch},
		}
		filtered := ChangelogRules(rules)
		require.Len(t, filtered, 1)
		assert.Equal(t, "feat", filtered[0].Type)
	})
}
