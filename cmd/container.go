package cmd

import (
	"fmt"

	"github.com/semtag-io/semtag/internal/config"
	"github.com/semtag-io/semtag/internal/logger"
	"github.com/semtag-io/semtag/internal/orchestrator"
	"github.com/semtag-io/semtag/internal/repository"
	"github.com/semtag-io/semtag/internal/service"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config
	log *zap.Logger

	repo     repository.RemoteRepository
	analyzer service.CommitAnalyzer
	notes    service.NotesService
	outputs  *orchestrator.OutputWriter
}

// newContainer creates a new container with all the dependencies. The GitHub
// API implementation is used when a token is configured; otherwise the local
// clone serves as the repository.
func newContainer(debug bool) (*container, error) {
	log, err := logger.New(debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	var repo repository.RemoteRepository
	if cfg.GithubToken != "" && cfg.GithubOwner != "" && cfg.GithubRepo != "" {
		repo, err = repository.NewGithubRepository(cfg.GithubToken, cfg.GithubOwner, cfg.GithubRepo)
	} else {
		repo, err = repository.NewGitRepository(".")
	}
	if err != nil {
		return nil, err
	}
	return &container{
		cfg:      cfg,
		log:      log,
		repo:     repo,
		analyzer: service.NewCommitAnalyzer(log),
		notes:    service.NewNotesService(),
		outputs:  orchestrator.NewOutputWriter(afero.NewOsFs(), cfg.OutputPath, log),
	}, nil
}

// InitCommands initializes all commands with their dependencies.
func InitCommands() error {
	rootCmd.AddCommand(NewTagCmd())
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
