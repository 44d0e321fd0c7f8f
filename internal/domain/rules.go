package domain

import (
	"strings"

	"go.uber.org/zap"
)

// ReleaseRule binds a conventional-commit keyword to the release type it
// signals and, optionally, the changelog section its commits appear under.
// A rule with an empty section still feeds bump analysis but is excluded
// from the changelog.
type ReleaseRule struct {
	Type    string
	Release ReleaseType
	Section string
}

// defaultRules is the built-in classification table: the conventional-commits
// keywords, which of them bump the version, and their changelog headings.
var defaultRules = []ReleaseRule{
	{Type: "feat", Release: ReleaseMinor, Section: "Features"},
	{Type: "fix", Release: ReleasePatch, Section: "Bug Fixes"},
	{Type: "perf", Release: ReleasePatch, Section: "Performance Improvements"},
	{Type: "revert", Release: ReleasePatch, Section: "Reverts"},
	{Type: "docs", Release: ReleaseNone, Section: "Documentation"},
	{Type: "style", Release: ReleaseNone, Section: "Styles"},
	{Type: "refactor", Release: ReleaseNone, Section: "Code Refactoring"},
	{Type: "test", Release: ReleaseNone, Section: "Tests"},
	{Type: "build", Release: ReleaseNone, Section: "Build System"},
	{Type: "ci", Release: ReleaseNone, Section: "Continuous Integration"},
	{Type: "chore", Release: ReleaseNone, Section: "Miscellaneous Chores"},
}

// DefaultRules returns a copy of the built-in rule table.
func DefaultRules() []ReleaseRule {
	rules := make([]ReleaseRule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

// MergeRules parses a comma-separated list of keyword:releaseType[:section]
// entries and merges it over the built-in defaults. Malformed entries and
// entries with an unsupported release type are dropped with a warning.
// A custom entry without a section inherits the built-in section for its
// keyword when one exists.
func MergeRules(custom string, log *zap.Logger) []ReleaseRule {
	merged := DefaultRules()
	index := make(map[string]int, len(merged))
	for i, r := range merged {
		index[r.Type] = i
	}
	for _, entry := range strings.Split(custom, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.SplitN(entry, ":", 3)
		if len(fields) < 2 {
			log.Warn("ignoring malformed release rule", zap.String("rule", entry))
			continue
		}
		release, err := ParseReleaseType(strings.TrimSpace(fields[1]))
		if err != nil {
			log.Warn("ignoring release rule with unsupported release type",
				zap.String("rule", entry), zap.Error(err))
			continue
		}
		rule := ReleaseRule{Type: strings.TrimSpace(fields[0]), Release: release}
		if len(fields) == 3 {
			rule.Section = strings.TrimSpace(fields[2])
		}
		if i, ok := index[rule.Type]; ok {
			if rule.Section == "" {
				rule.Section = merged[i].Section
			}
			merged[i] = rule
			continue
		}
		index[rule.Type] = len(merged)
		merged = append(merged, rule)
	}
	return merged
}

// ChangelogRules filters the merged table down to the rules with a section,
// the view handed to the notes generator. Bump analysis always receives the
// unfiltered table.
func ChangelogRules(rules []ReleaseRule) []ReleaseRule {
	out := make([]ReleaseRule, 0, len(rules))
	for _, r := range rules {
		if r.Section != "" {
			out = append(out, r)
		}
	}
	return out
}
