package domain

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// BranchRole is the role a ref plays for version resolution. Exactly one of
// RoleRelease/RolePreRelease can hold per invocation; Release wins when a
// branch matches both pattern sets.
type BranchRole string

const (
	RoleRelease     BranchRole = "release"
	RolePreRelease  BranchRole = "prerelease"
	RolePullRequest BranchRole = "pull-request"
	RoleOther       BranchRole = "other"
)

const headsPrefix = "refs/heads/"

// BranchPatterns is a precompiled set of whole-string branch patterns.
type BranchPatterns struct {
	patterns []*regexp.Regexp
}

// CompileBranchPatterns compiles a comma-separated pattern list. Each pattern
// is anchored so it must match the whole branch name. An invalid pattern is
// logged and counts as "no match", never a failure.
func CompileBranchPatterns(csv string, log *zap.Logger) BranchPatterns {
	var set BranchPatterns
	for _, p := range strings.Split(csv, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		re, err := regexp.Compile(`^(?:` + p + `)$`)
		if err != nil {
			log.Warn("ignoring invalid branch pattern", zap.String("pattern", p), zap.Error(err))
			continue
		}
		set.patterns = append(set.patterns, re)
	}
	return set
}

// Matches reports whether any pattern matches the whole branch name.
func (b BranchPatterns) Matches(branch string) bool {
	for _, re := range b.patterns {
		if re.MatchString(branch) {
			return true
		}
	}
	return false
}

// BranchName strips the refs/heads/ prefix from a ref.
func BranchName(ref string) string {
	return strings.TrimPrefix(ref, headsPrefix)
}

// ClassifyRef maps a ref to its branch role. A pull-request ref is never
// classified as release or pre-release regardless of pattern matches.
func ClassifyRef(ref string, release, preRelease BranchPatterns) BranchRole {
	isPullRequest := strings.Contains(ref, "refs/pull/")
	branch := BranchName(ref)
	if !isPullRequest && release.Matches(branch) {
		return RoleRelease
	}
	if !isPullRequest && preRelease.Matches(branch) {
		return RolePreRelease
	}
	if isPullRequest {
		return RolePullRequest
	}
	return RoleOther
}
