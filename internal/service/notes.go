package service

import (
	"context"

	"github.com/semtag-io/semtag/internal/domain"
)

// NotesInput carries everything the changelog generator needs. Rules must be
// the filtered changelog view of the merged table.
type NotesInput struct {
	Rules         []domain.ReleaseRule
	Commits       []domain.Commit
	PreviousTag   string
	NewTag        string
	NewVersion    string
	RepositoryURL string
}

// NotesService renders a human-readable changelog for the release.
type NotesService interface {
	Generate(ctx context.Context, input NotesInput) (string, error)
}
