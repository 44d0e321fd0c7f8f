package usecase

import (
	"regexp"
	"sort"

	"github.com/semtag-io/semtag/internal/domain"
	"go.uber.org/zap"
)

// BuildCatalogUseCase turns the raw tag list into the canonical, strictly
// descending view every downstream component consumes. Tags that do not
// match the prefix or do not parse as semver are logged and discarded,
// never treated as an error.
type BuildCatalogUseCase struct {
	prefix    *regexp.Regexp
	format    domain.VersionFormat
	normalize func(string) string
	log       *zap.Logger
}

// NewBuildCatalogUseCase compiles the tag prefix into an anchored pattern.
// An invalid prefix pattern falls back to a literal match with a warning.
// normalize, when non-nil, rewrites each tag name before validation; it is
// how dot-free pre-release tags written by earlier runs regain their
// canonical dotted counter for parsing and comparison.
func NewBuildCatalogUseCase(
	prefix string,
	format domain.VersionFormat,
	normalize func(string) string,
	log *zap.Logger,
) *BuildCatalogUseCase {
	re, err := regexp.Compile(`^(?:` + prefix + `)`)
	if err != nil {
		log.Warn("invalid tag prefix pattern, matching it literally",
			zap.String("prefix", prefix), zap.Error(err))
		re = regexp.MustCompile(`^` + regexp.QuoteMeta(prefix))
	}
	return &BuildCatalogUseCase{prefix: re, format: format, normalize: normalize, log: log}
}

// Execute validates and sorts the raw tags. The original display name is
// retained alongside the parsed canonical version for output rendering.
func (uc *BuildCatalogUseCase) Execute(tags []domain.Tag) []domain.VersionedTag {
	catalog := make([]domain.VersionedTag, 0, len(tags))
	for _, tag := range tags {
		name := tag.Name
		if uc.normalize != nil {
			name = uc.normalize(name)
		}
		if !uc.format.IsCanonical() {
			name = uc.format.ToCanonical(name)
			if name == "" {
				uc.log.Warn("discarding tag without a numeric version", zap.String("tag", tag.Name))
				continue
			}
		}
		loc := uc.prefix.FindStringIndex(name)
		if loc == nil {
			uc.log.Warn("discarding tag outside the configured prefix", zap.String("tag", tag.Name))
			continue
		}
		version, err := domain.NewVersion(name[loc[1]:])
		if err != nil {
			uc.log.Warn("discarding tag that is not valid semver",
				zap.String("tag", tag.Name), zap.Error(err))
			continue
		}
		catalog = append(catalog, domain.VersionedTag{Tag: tag, Version: version})
	}
	sort.SliceStable(catalog, func(i, j int) bool {
		return catalog[i].Version.Compare(catalog[j].Version) > 0
	})
	return catalog
}
