package repository

import (
	"context"

	"github.com/semtag-io/semtag/internal/domain"
)

// RemoteRepository is the repository API the workflow depends on: listing
// tags, comparing two refs' commit ranges, and creating the final tag ref.
type RemoteRepository interface {
	// ListTags returns the repository's tags, most recently created pages
	// first. When fetchAll is false the scan is limited to the most recent
	// page (~100 tags).
	ListTags(ctx context.Context, fetchAll bool) ([]domain.Tag, error)
	// CompareCommits returns the commits reachable from head but not from base.
	CompareCommits(ctx context.Context, base, head string) ([]domain.Commit, error)
	// RefSHA resolves a ref to its commit hash.
	RefSHA(ctx context.Context, ref string) (string, error)
	// CreateTag creates the tag at the given commit, as an annotated tag
	// object when requested.
	CreateTag(ctx context.Context, name, sha string, annotated bool, message string) error
}
