package service

import (
	"context"

	"github.com/semtag-io/semtag/internal/domain"
)

// CommitAnalyzer classifies a commit range into an abstract bump signal
// using the merged (unfiltered) release-rule table.
type CommitAnalyzer interface {
	Analyze(ctx context.Context, rules []domain.ReleaseRule, commits []domain.Commit) (domain.BumpSignal, error)
}
