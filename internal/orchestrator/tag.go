package orchestrator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/semtag-io/semtag/internal/config"
	"github.com/semtag-io/semtag/internal/domain"
	"github.com/semtag-io/semtag/internal/repository"
	"github.com/semtag-io/semtag/internal/service"
	"github.com/semtag-io/semtag/internal/usecase"
	"go.uber.org/zap"
)

// TagOrchestrator runs the one-shot tag workflow: reconstruct the tag
// catalog, classify the branch, select the baseline, resolve the bump and
// create the resulting tag. Every entity is built fresh from the current
// snapshot; nothing persists across invocations.
type TagOrchestrator struct {
	cfg      *config.Config
	repo     repository.RemoteRepository
	analyzer service.CommitAnalyzer
	notes    service.NotesService
	outputs  *OutputWriter
	log      *zap.Logger
}

// Result is the reported outcome of a run. Previous* are empty when a
// custom tag bypassed baseline resolution, or when the run was skipped.
type Result struct {
	Skipped         bool
	SkipReason      string
	ReleaseType     domain.ReleaseType
	PreviousTag     string
	PreviousVersion string
	NewTag          string
	NewVersion      string
	Changelog       string
	TagCreated      bool
}

// NewTagOrchestrator wires the workflow dependencies.
func NewTagOrchestrator(
	cfg *config.Config,
	repo repository.RemoteRepository,
	analyzer service.CommitAnalyzer,
	notes service.NotesService,
	outputs *OutputWriter,
	log *zap.Logger,
) *TagOrchestrator {
	return &TagOrchestrator{
		cfg:      cfg,
		repo:     repo,
		analyzer: analyzer,
		notes:    notes,
		outputs:  outputs,
		log:      log,
	}
}

// Execute runs the workflow once. Skip outcomes return a Result with
// Skipped set and a nil error; only genuine failures return an error.
func (o *TagOrchestrator) Execute(ctx context.Context) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultRunTimeout)
	defer cancel()
	if err := o.cfg.ValidateForRun(); err != nil {
		return nil, err
	}
	log := o.log.With(zap.String("run_id", uuid.New().String()))

	rules := domain.MergeRules(o.cfg.CustomReleaseRules, log)
	role := o.classifyBranch(log)
	identifier := o.identifier()

	catalog, err := o.buildCatalog(ctx, log, identifier)
	if err != nil {
		return nil, err
	}
	previous, err := o.selectPrevious(catalog, role, identifier)
	if err != nil {
		return nil, err
	}
	log.Info("selected baseline",
		zap.String("previous_tag", previous.Tag.Name),
		zap.Bool("synthetic", previous.Synthetic),
		zap.String("role", string(role)))

	if o.cfg.CustomTag != "" {
		return o.finishCustomTag(ctx, log, rules, previous, catalog)
	}

	commits, err := o.repo.CompareCommits(ctx, previous.Tag.CommitSHA, o.cfg.ResolvedSHA())
	if err != nil {
		return nil, fmt.Errorf("failed to compare commits: %w", err)
	}
	signal, err := o.analyzer.Analyze(ctx, rules, commits)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze commits: %w", err)
	}
	decision, err := o.resolveBump(previous.Tag.Version, signal, role, identifier, log)
	if err != nil {
		return nil, err
	}
	if decision.Skip {
		log.Info("skipping tag creation", zap.String("reason", decision.SkipReason))
		return &Result{Skipped: true, SkipReason: decision.SkipReason}, nil
	}

	result := o.render(previous, decision, identifier)
	changelog, err := o.notes.Generate(ctx, service.NotesInput{
		Rules:         domain.ChangelogRules(rules),
		Commits:       commits,
		PreviousTag:   result.PreviousTag,
		NewTag:        result.NewTag,
		NewVersion:    result.NewVersion,
		RepositoryURL: o.cfg.RepositoryURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate changelog: %w", err)
	}
	result.Changelog = changelog

	if err := o.createTag(ctx, log, result, catalog); err != nil {
		return nil, err
	}
	if err := o.writeOutputs(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// classifyBranch compiles the branch pattern lists and maps the ref to a role.
func (o *TagOrchestrator) classifyBranch(log *zap.Logger) domain.BranchRole {
	release := domain.CompileBranchPatterns(o.cfg.ReleaseBranches, log)
	preRelease := domain.CompileBranchPatterns(o.cfg.PreReleaseBranches, log)
	return domain.ClassifyRef(o.cfg.Ref, release, preRelease)
}

// identifier derives the sanitized pre-release identifier from the
// configured suffix, falling back to the branch name.
func (o *TagOrchestrator) identifier() string {
	if o.cfg.AppendToPreReleaseTag != "" {
		return domain.SanitizeIdentifier(o.cfg.AppendToPreReleaseTag)
	}
	return domain.SanitizeIdentifier(domain.BranchName(o.cfg.Ref))
}

// buildCatalog lists and validates the existing tags. With dot-free
// pre-release tags enabled, tags written by earlier runs carry the counter
// without a separator; AddSeparator restores the dotted form so they parse
// and compare as the lineage they are.
func (o *TagOrchestrator) buildCatalog(ctx context.Context, log *zap.Logger, identifier string) ([]domain.VersionedTag, error) {
	tags, err := o.repo.ListTags(ctx, o.cfg.FetchAllTags)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	var normalize func(string) string
	if o.cfg.RemoveDotSeparator {
		normalizer := domain.NewPreReleaseNormalizer(identifier)
		normalize = normalizer.AddSeparator
	}
	uc := usecase.NewBuildCatalogUseCase(o.cfg.TagPrefix, o.cfg.Format(), normalize, log)
	return uc.Execute(tags), nil
}

func (o *TagOrchestrator) selectPrevious(
	catalog []domain.VersionedTag,
	role domain.BranchRole,
	identifier string,
) (usecase.PreviousSelection, error) {
	uc := &usecase.SelectPreviousUseCase{Prefix: o.cfg.TagPrefix}
	previous, err := uc.Execute(catalog, role, identifier)
	if err != nil {
		return usecase.PreviousSelection{}, fmt.Errorf("failed to select previous version: %w", err)
	}
	return previous, nil
}

func (o *TagOrchestrator) resolveBump(
	previous *domain.Version,
	signal domain.BumpSignal,
	role domain.BranchRole,
	identifier string,
	log *zap.Logger,
) (usecase.BumpDecision, error) {
	defaultBump, err := domain.ParseReleaseType(o.cfg.DefaultBump)
	if err != nil {
		return usecase.BumpDecision{}, fmt.Errorf("invalid default_bump: %w", err)
	}
	defaultPre, err := domain.ParseReleaseType(o.cfg.DefaultPreReleaseBump)
	if err != nil {
		return usecase.BumpDecision{}, fmt.Errorf("invalid default_prerelease_bump: %w", err)
	}
	uc := &usecase.ResolveBumpUseCase{
		DefaultBump:           defaultBump,
		DefaultPreReleaseBump: defaultPre,
		PromotePatchToMinor:   o.cfg.PromotePatchToMinor,
		Log:                   log,
	}
	return uc.Execute(previous, signal, role, identifier)
}

// render translates the canonical decision back to the operator's display
// format and applies the optional dot-free pre-release form.
func (o *TagOrchestrator) render(
	previous usecase.PreviousSelection,
	decision usecase.BumpDecision,
	identifier string,
) *Result {
	format := o.cfg.Format()
	newVersion := format.ToCustom(decision.NewVersion.String())
	newTag := o.cfg.TagPrefix + newVersion
	previousVersion := format.ToCustom(previous.Tag.Version.String())
	if o.cfg.RemoveDotSeparator {
		normalizer := domain.NewPreReleaseNormalizer(identifier)
		newVersion = normalizer.RemoveSeparator(newVersion)
		newTag = normalizer.RemoveSeparator(newTag)
		previousVersion = normalizer.RemoveSeparator(previousVersion)
	}
	return &Result{
		ReleaseType:     decision.ReleaseType,
		PreviousTag:     previous.Tag.Name,
		PreviousVersion: previousVersion,
		NewTag:          newTag,
		NewVersion:      newVersion,
	}
}

// finishCustomTag handles the operator-supplied literal tag: it bypasses
// bump resolution entirely, while commit gathering still spans
// baseline to current for changelog purposes.
func (o *TagOrchestrator) finishCustomTag(
	ctx context.Context,
	log *zap.Logger,
	rules []domain.ReleaseRule,
	previous usecase.PreviousSelection,
	catalog []domain.VersionedTag,
) (*Result, error) {
	commits, err := o.repo.CompareCommits(ctx, previous.Tag.CommitSHA, o.cfg.ResolvedSHA())
	if err != nil {
		return nil, fmt.Errorf("failed to compare commits: %w", err)
	}
	result := &Result{
		ReleaseType: domain.ReleaseCustom,
		NewTag:      o.cfg.TagPrefix + o.cfg.CustomTag,
		NewVersion:  o.cfg.CustomTag,
	}
	changelog, err := o.notes.Generate(ctx, service.NotesInput{
		Rules:         domain.ChangelogRules(rules),
		Commits:       commits,
		PreviousTag:   previous.Tag.Name,
		NewTag:        result.NewTag,
		NewVersion:    result.NewVersion,
		RepositoryURL: o.cfg.RepositoryURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate changelog: %w", err)
	}
	result.Changelog = changelog
	if err := o.createTag(ctx, log, result, catalog); err != nil {
		return nil, err
	}
	if err := o.writeOutputs(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// createTag creates the tag unless the run is a dry run or the tag already
// exists in the catalog (the idempotence guard: re-running on the same
// snapshot must not fail).
func (o *TagOrchestrator) createTag(
	ctx context.Context,
	log *zap.Logger,
	result *Result,
	catalog []domain.VersionedTag,
) error {
	for _, entry := range catalog {
		if entry.Name == result.NewTag {
			log.Info("tag already exists, skipping creation", zap.String("tag", result.NewTag))
			return nil
		}
	}
	if o.cfg.DryRun {
		log.Info("dry run, skipping tag creation", zap.String("tag", result.NewTag))
		return nil
	}
	message := fmt.Sprintf("Release %s", result.NewTag)
	if err := o.repo.CreateTag(ctx, result.NewTag, o.cfg.ResolvedSHA(), o.cfg.CreateAnnotatedTag, message); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", result.NewTag, err)
	}
	result.TagCreated = true
	log.Info("created tag", zap.String("tag", result.NewTag), zap.Bool("annotated", o.cfg.CreateAnnotatedTag))
	return nil
}

// writeOutputs reports the run's outputs. Previous* are omitted for a
// custom tag, where no baseline version is defined.
func (o *TagOrchestrator) writeOutputs(ctx context.Context, result *Result) error {
	outputs := []Output{
		{Key: "new_tag", Value: result.NewTag},
		{Key: "new_version", Value: result.NewVersion},
	}
	if result.ReleaseType != domain.ReleaseCustom {
		outputs = append(outputs,
			Output{Key: "previous_tag", Value: result.PreviousTag},
			Output{Key: "previous_version", Value: result.PreviousVersion},
		)
	}
	outputs = append(outputs,
		Output{Key: "release_type", Value: string(result.ReleaseType)},
		Output{Key: "changelog", Value: result.Changelog},
	)
	return o.outputs.Write(ctx, outputs)
}
