package orchestrator

import (
	"context"

	"github.com/semtag-io/semtag/internal/domain"
	"github.com/semtag-io/semtag/internal/service"
	"github.com/stretchr/testify/mock"
)

// Mock for RemoteRepository
type mockRemoteRepository struct{ mock.Mock }

func (m *mockRemoteRepository) ListTags(ctx context.Context, fetchAll bool) ([]domain.Tag, error) {
	args := m.Called(ctx, fetchAll)
	if tags := args.Get(0); tags != nil {
		return tags.([]domain.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemoteRepository) CompareCommits(ctx context.Context, base, head string) ([]domain.Commit, error) {
	args := m.Called(ctx, base, head)
	if commits := args.Get(0); commits != nil {
		return commits.([]domain.Commit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemoteRepository) RefSHA(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

func (m *mockRemoteRepository) CreateTag(ctx context.Context, name, sha string, annotated bool, message string) error {
	args := m.Called(ctx, name, sha, annotated, message)
	return args.Error(0)
}

// Mock for CommitAnalyzer
type mockCommitAnalyzer struct{ mock.Mock }

func (m *mockCommitAnalyzer) Analyze(
	ctx context.Context,
	rules []domain.ReleaseRule,
	commits []domain.Commit,
) (domain.BumpSignal, error) {
	args := m.Called(ctx, rules, commits)
	return args.Get(0).(domain.BumpSignal), args.Error(1)
}

// Mock for NotesService
type mockNotesService struct{ mock.Mock }

func (m *mockNotesService) Generate(ctx context.Context, input service.NotesInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
