package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/semtag-io/semtag/internal/domain"
	"github.com/spf13/viper"
)

// Config is the immutable per-invocation configuration. Components never
// read ambient environment state directly; everything flows through here.
type Config struct {
	GithubToken string `mapstructure:"github_token"`
	GithubOwner string `mapstructure:"github_owner"`
	GithubRepo  string `mapstructure:"github_repo"`
	Ref         string `mapstructure:"ref"`
	SHA         string `mapstructure:"sha"`
	OutputPath  string `mapstructure:"output_path"`

	DefaultBump           string `mapstructure:"default_bump"`
	DefaultPreReleaseBump string `mapstructure:"default_prerelease_bump"`
	TagPrefix             string `mapstructure:"tag_prefix"`
	AppendToPreReleaseTag string `mapstructure:"append_to_pre_release_tag"`
	RemoveDotSeparator    bool   `mapstructure:"remove_dot_separated_pre_release_identifier"`
	CustomTag             string `mapstructure:"custom_tag"`
	CustomReleaseRules    string `mapstructure:"custom_release_rules"`
	ReleaseBranches       string `mapstructure:"release_branches"`
	PreReleaseBranches    string `mapstructure:"pre_release_branches"`
	CommitSHA             string `mapstructure:"commit_sha"`
	CreateAnnotatedTag    bool   `mapstructure:"create_annotated_tag"`
	FetchAllTags          bool   `mapstructure:"fetch_all_tags"`
	DryRun                bool   `mapstructure:"dry_run"`
	PromotePatchToMinor   bool   `mapstructure:"promote_patch_to_minor"`
	VersionFormat         string `mapstructure:"version_format"`
}

// DefaultConfig returns a Config with the documented input defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultBump:           "patch",
		DefaultPreReleaseBump: "prerelease",
		TagPrefix:             "v",
		ReleaseBranches:       "master,main",
		VersionFormat:         domain.CanonicalFormat,
	}
}

// Validate checks the release-type and format inputs. Branch patterns are
// not validated here: an invalid pattern degrades to "no match" with a
// warning at compile time instead of failing the run.
func (c *Config) Validate() error {
	if err := validateDefaultBump(c.DefaultBump); err != nil {
		return fmt.Errorf("invalid default_bump: %w", err)
	}
	if err := validateDefaultBump(c.DefaultPreReleaseBump); err != nil {
		return fmt.Errorf("invalid default_prerelease_bump: %w", err)
	}
	if _, err := domain.ParseVersionFormat(c.VersionFormat); err != nil {
		return fmt.Errorf("invalid version_format: %w", err)
	}
	if c.GithubToken != "" {
		if err := ValidateGitHubToken(c.GithubToken); err != nil {
			return fmt.Errorf("invalid github_token: %w", err)
		}
	}
	if c.GithubOwner != "" || c.GithubRepo != "" {
		if err := ValidateGitHubOwnerRepo(c.GithubOwner, c.GithubRepo); err != nil {
			return fmt.Errorf("invalid github configuration: %w", err)
		}
	}
	return nil
}

// validateDefaultBump accepts an increment release type or the "false"
// sentinel. Types like none or custom parse but cannot drive a version
// increment, so they are rejected here instead of failing mid-run.
func validateDefaultBump(s string) error {
	rt, err := domain.ParseReleaseType(s)
	if err != nil {
		return err
	}
	if rt != domain.ReleaseSkip && !rt.CanIncrement() {
		return fmt.Errorf("release type %q cannot be used as a default bump", rt)
	}
	return nil
}

// ValidateForRun checks the inputs that are only required once the workflow
// actually executes: a ref and a commit pointer must be present.
func (c *Config) ValidateForRun() error {
	if c.Ref == "" {
		return fmt.Errorf("missing required ref (GITHUB_REF)")
	}
	if c.ResolvedSHA() == "" {
		return fmt.Errorf("missing required commit identifier (GITHUB_SHA or commit_sha)")
	}
	return c.Validate()
}

// ResolvedSHA returns the commit the tag will point at: the commit_sha input
// when set, the ambient GITHUB_SHA otherwise.
func (c *Config) ResolvedSHA() string {
	if c.CommitSHA != "" {
		return c.CommitSHA
	}
	return c.SHA
}

// Format returns the parsed version_format template. Validate must have
// accepted the configuration first.
func (c *Config) Format() domain.VersionFormat {
	f, err := domain.ParseVersionFormat(c.VersionFormat)
	if err != nil {
		f, _ = domain.ParseVersionFormat(domain.CanonicalFormat)
	}
	return f
}

// RepositoryURL is the https URL used for changelog compare links.
func (c *Config) RepositoryURL() string {
	if c.GithubOwner == "" || c.GithubRepo == "" {
		return ""
	}
	return fmt.Sprintf("https://github.com/%s/%s", c.GithubOwner, c.GithubRepo)
}

// ValidateGitHubToken validates GitHub token format (exported for reuse).
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if len(token) < 40 {
		return fmt.Errorf("token too short: expected at least 40 characters")
	}
	classicPAT := regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	fineGrainedPAT := regexp.MustCompile(`^github_pat_[a-zA-Z0-9_]{82}$`)
	appToken := regexp.MustCompile(`^ghs_[a-zA-Z0-9]{36}$`)
	oauthToken := regexp.MustCompile(`^gho_[a-zA-Z0-9]{36}$`)
	if !classicPAT.MatchString(token) &&
		!fineGrainedPAT.MatchString(token) &&
		!appToken.MatchString(token) &&
		!oauthToken.MatchString(token) {
		return fmt.Errorf("invalid token format")
	}
	return nil
}

// ValidateGitHubOwnerRepo validates GitHub owner and repository names
// (exported for reuse).
func ValidateGitHubOwnerRepo(owner, repo string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	validName := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

// bindings maps config keys to the environment variables they are read from,
// in lookup order. Action inputs arrive as INPUT_*; the GITHUB_* variables
// come from the runner itself.
var bindings = map[string][]string{
	"github_token": {"GITHUB_TOKEN", "INPUT_GITHUB_TOKEN"},
	"github_owner": {"GITHUB_REPOSITORY_OWNER"},
	// The repository name has no dedicated runner variable; it is split
	// out of the GITHUB_REPOSITORY slug below.
	"github_repository":       {"GITHUB_REPOSITORY"},
	"ref":                     {"GITHUB_REF"},
	"sha":                     {"GITHUB_SHA"},
	"output_path":             {"GITHUB_OUTPUT"},
	"default_bump":            {"INPUT_DEFAULT_BUMP"},
	"default_prerelease_bump": {"INPUT_DEFAULT_PRERELEASE_BUMP"},
	"tag_prefix":              {"INPUT_TAG_PREFIX"},
	"append_to_pre_release_tag": {"INPUT_APPEND_TO_PRE_RELEASE_TAG"},
	"remove_dot_separated_pre_release_identifier": {"INPUT_REMOVE_DOT_SEPARATED_PRE_RELEASE_IDENTIFIER"},
	"custom_tag":             {"INPUT_CUSTOM_TAG"},
	"custom_release_rules":   {"INPUT_CUSTOM_RELEASE_RULES"},
	"release_branches":       {"INPUT_RELEASE_BRANCHES"},
	"pre_release_branches":   {"INPUT_PRE_RELEASE_BRANCHES"},
	"commit_sha":             {"INPUT_COMMIT_SHA"},
	"create_annotated_tag":   {"INPUT_CREATE_ANNOTATED_TAG"},
	"fetch_all_tags":         {"INPUT_FETCH_ALL_TAGS"},
	"dry_run":                {"INPUT_DRY_RUN"},
	"promote_patch_to_minor": {"INPUT_PROMOTE_PATCH_TO_MINOR"},
	"version_format":         {"INPUT_VERSION_FORMAT"},
}

// LoadConfig reads configuration from an optional .semtag.yaml and the
// environment, applies defaults and validates the result.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".semtag")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("SEMTAG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s env: %w", key, err)
		}
	}
	defaults := DefaultConfig()
	v.SetDefault("default_bump", defaults.DefaultBump)
	v.SetDefault("default_prerelease_bump", defaults.DefaultPreReleaseBump)
	v.SetDefault("tag_prefix", defaults.TagPrefix)
	v.SetDefault("release_branches", defaults.ReleaseBranches)
	v.SetDefault("version_format", defaults.VersionFormat)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.GithubOwner == "" || config.GithubRepo == "" {
		if repoEnv := v.GetString("github_repository"); repoEnv != "" {
			if idx := strings.Index(repoEnv, "/"); idx > 0 && idx < len(repoEnv)-1 {
				config.GithubOwner = repoEnv[:idx]
				config.GithubRepo = repoEnv[idx+1:]
			}
		}
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
