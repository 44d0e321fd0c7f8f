package domain

// Tag is a raw tag record as returned by the repository. Raw tags are
// untrusted: the name may not match the configured prefix or parse as semver.
type Tag struct {
	Name      string
	CommitSHA string
}

// Commit is a single commit in the range between the baseline and the
// current ref. Only the hash and message are ever needed.
type Commit struct {
	SHA     string
	Message string
}

// VersionedTag is a catalog entry: the original display name and commit,
// plus the canonical semver parsed from it.
type VersionedTag struct {
	Tag
	Version *Version
}
