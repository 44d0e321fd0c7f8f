package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v74/github"
	"github.com/semtag-io/semtag/internal/config"
	"github.com/semtag-io/semtag/internal/domain"
	"golang.org/x/oauth2"
)

const tagsPerPage = 100

// githubRepository implements RemoteRepository against the GitHub API.
type githubRepository struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGithubRepository builds a RemoteRepository for the given repository,
// authenticated with a static token.
func NewGithubRepository(token, owner, repo string) (RemoteRepository, error) {
	if err := config.ValidateGitHubToken(token); err != nil {
		return nil, fmt.Errorf("invalid GitHub token: %w", err)
	}
	if err := config.ValidateGitHubOwnerRepo(owner, repo); err != nil {
		return nil, fmt.Errorf("invalid repository configuration: %w", err)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(token)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return &githubRepository{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// ListTags lists the repository tags, one page unless fetchAll is set.
func (r *githubRepository) ListTags(ctx context.Context, fetchAll bool) ([]domain.Tag, error) {
	var tags []domain.Tag
	opts := &github.ListOptions{PerPage: tagsPerPage}
	for {
		page, resp, err := r.client.Repositories.ListTags(ctx, r.owner, r.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list tags: %w", err)
		}
		for _, t := range page {
			tags = append(tags, domain.Tag{
				Name:      t.GetName(),
				CommitSHA: t.GetCommit().GetSHA(),
			})
		}
		if !fetchAll || resp.NextPage == 0 {
			return tags, nil
		}
		opts.Page = resp.NextPage
	}
}

// CompareCommits returns the commits between base and head, following pagination.
func (r *githubRepository) CompareCommits(ctx context.Context, base, head string) ([]domain.Commit, error) {
	var commits []domain.Commit
	opts := &github.ListOptions{PerPage: tagsPerPage}
	for {
		cmp, resp, err := r.client.Repositories.CompareCommits(ctx, r.owner, r.repo, base, head, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to compare %s...%s: %w", base, head, err)
		}
		for _, c := range cmp.Commits {
			commits = append(commits, domain.Commit{
				SHA:     c.GetSHA(),
				Message: c.GetCommit().GetMessage(),
			})
		}
		if resp.NextPage == 0 {
			return commits, nil
		}
		opts.Page = resp.NextPage
	}
}

// RefSHA resolves a ref (branch, tag or SHA) to its commit hash.
func (r *githubRepository) RefSHA(ctx context.Context, ref string) (string, error) {
	commit, _, err := r.client.Repositories.GetCommit(ctx, r.owner, r.repo, ref, nil)
	if err != nil {
		return "", fmt.Errorf("failed to resolve ref %s: %w", ref, err)
	}
	return commit.GetSHA(), nil
}

// CreateTag creates the tag ref, with a tag object first when annotated.
func (r *githubRepository) CreateTag(ctx context.Context, name, sha string, annotated bool, message string) error {
	target := sha
	if annotated {
		tag, _, err := r.client.Git.CreateTag(ctx, r.owner, r.repo, &github.Tag{
			Tag:     github.Ptr(name),
			Message: github.Ptr(message),
			Object: &github.GitObject{
				Type: github.Ptr("commit"),
				SHA:  github.Ptr(sha),
			},
		})
		if err != nil {
			return fmt.Errorf("failed to create annotated tag %s: %w", name, err)
		}
		target = tag.GetSHA()
	}
	_, _, err := r.client.Git.CreateRef(ctx, r.owner, r.repo, &github.Reference{
		Ref:    github.Ptr("refs/tags/" + name),
		Object: &github.GitObject{SHA: github.Ptr(target)},
	})
	if err != nil {
		return fmt.Errorf("failed to create tag ref %s: %w", name, err)
	}
	return nil
}
