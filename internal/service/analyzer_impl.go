package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/semtag-io/semtag/internal/domain"
	"go.uber.org/zap"
)

// headerPattern matches a conventional-commit header: type(scope)!: subject.
var headerPattern = regexp.MustCompile(`^(\w+)(\([^)]*\))?(!)?:\s+`)

// conventionalAnalyzer maps conventional-commit messages through the rule
// table and returns the strongest signal found. Breaking changes always
// signal major, independent of the table.
type conventionalAnalyzer struct {
	log *zap.Logger
}

// NewCommitAnalyzer creates a conventional-commits CommitAnalyzer.
func NewCommitAnalyzer(log *zap.Logger) CommitAnalyzer {
	return &conventionalAnalyzer{log: log}
}

func (a *conventionalAnalyzer) Analyze(
	_ context.Context,
	rules []domain.ReleaseRule,
	commits []domain.Commit,
) (domain.BumpSignal, error) {
	byType := make(map[string]domain.ReleaseType, len(rules))
	for _, r := range rules {
		byType[r.Type] = r.Release
	}
	signal := domain.BumpNone
	for _, commit := range commits {
		signal = signal.Stronger(a.classify(commit, byType))
		if signal == domain.BumpMajor {
			break
		}
	}
	a.log.Debug("analyzed commit range",
		zap.Int("commits", len(commits)), zap.String("signal", string(signal)))
	return signal, nil
}

func (a *conventionalAnalyzer) classify(commit domain.Commit, byType map[string]domain.ReleaseType) domain.BumpSignal {
	if isBreaking(commit.Message) {
		return domain.BumpMajor
	}
	header, _, _ := strings.Cut(commit.Message, "\n")
	m := headerPattern.FindStringSubmatch(header)
	if m == nil {
		return domain.BumpNone
	}
	switch byType[m[1]] {
	case domain.ReleaseMajor, domain.ReleasePremajor:
		return domain.BumpMajor
	case domain.ReleaseMinor, domain.ReleasePreminor:
		return domain.BumpMinor
	case domain.ReleasePatch, domain.ReleasePrepatch, domain.ReleasePrerelease:
		return domain.BumpPatch
	default:
		return domain.BumpNone
	}
}

// isBreaking detects the "!" header marker or a BREAKING CHANGE footer.
func isBreaking(message string) bool {
	header, body, _ := strings.Cut(message, "\n")
	if m := headerPattern.FindStringSubmatch(header); m != nil && m[3] == "!" {
		return true
	}
	return strings.Contains(body, "BREAKING CHANGE") || strings.Contains(body, "BREAKING-CHANGE")
}
