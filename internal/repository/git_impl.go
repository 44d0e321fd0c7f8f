package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/semtag-io/semtag/internal/domain"
)

// gitRepository implements RemoteRepository against a local clone, used for
// dry runs and environments without API access.
type gitRepository struct {
	repo *git.Repository
}

// NewGitRepository opens the repository at path.
func NewGitRepository(path string) (RemoteRepository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return &gitRepository{repo: repo}, nil
}

// ListTags lists all local tags. The fetchAll limit only applies to the API
// implementation; a local clone already has its full tag set.
func (r *gitRepository) ListTags(_ context.Context, _ bool) ([]domain.Tag, error) {
	tagRefs, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	var tags []domain.Tag
	if err := tagRefs.ForEach(func(ref *plumbing.Reference) error {
		sha, err := r.resolveTagCommit(ref)
		if err != nil {
			return nil // skip tags that cannot be resolved
		}
		tags = append(tags, domain.Tag{Name: ref.Name().Short(), CommitSHA: sha.String()})
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return tags, nil
}

// resolveTagCommit resolves a tag reference to its commit hash, handling
// both lightweight and annotated tags.
func (r *gitRepository) resolveTagCommit(ref *plumbing.Reference) (plumbing.Hash, error) {
	if commit, err := r.repo.CommitObject(ref.Hash()); err == nil {
		return commit.Hash, nil
	}
	if tagObj, err := r.repo.TagObject(ref.Hash()); err == nil {
		if commit, err := r.repo.CommitObject(tagObj.Target); err == nil {
			return commit.Hash, nil
		}
	}
	return plumbing.Hash{}, fmt.Errorf("failed to resolve commit for tag %s", ref.Name().Short())
}

// CompareCommits walks history from head back to base, newest first.
// When the walk reaches the repository root without meeting base, the whole
// history is returned.
func (r *gitRepository) CompareCommits(_ context.Context, base, head string) ([]domain.Commit, error) {
	baseHash, err := r.repo.ResolveRevision(plumbing.Revision(base))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base %s: %w", base, err)
	}
	headHash, err := r.repo.ResolveRevision(plumbing.Revision(head))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve head %s: %w", head, err)
	}
	log, err := r.repo.Log(&git.LogOptions{From: *headHash})
	if err != nil {
		return nil, fmt.Errorf("failed to walk commits: %w", err)
	}
	var commits []domain.Commit
	err = log.ForEach(func(c *object.Commit) error {
		if c.Hash == *baseHash {
			return storer.ErrStop
		}
		commits = append(commits, domain.Commit{SHA: c.Hash.String(), Message: c.Message})
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}
	return commits, nil
}

// RefSHA resolves a revision to its commit hash.
func (r *gitRepository) RefSHA(_ context.Context, ref string) (string, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", fmt.Errorf("failed to resolve ref %s: %w", ref, err)
	}
	return hash.String(), nil
}

// CreateTag creates a local tag at the given commit.
func (r *gitRepository) CreateTag(_ context.Context, name, sha string, annotated bool, message string) error {
	var opts *git.CreateTagOptions
	if annotated {
		opts = &git.CreateTagOptions{
			Message: message,
			Tagger: &object.Signature{
				Name:  "semtag",
				Email: "semtag@users.noreply.github.com",
				When:  time.Now(),
			},
		}
	}
	if _, err := r.repo.CreateTag(name, plumbing.NewHash(sha), opts); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	return nil
}
