package domain

// BumpSignal is the abstract urgency classification derived from a commit range.
type BumpSignal string

const (
	BumpNone  BumpSignal = "none"
	BumpPatch BumpSignal = "patch"
	BumpMinor BumpSignal = "minor"
	BumpMajor BumpSignal = "major"
)

var bumpSeverity = map[BumpSignal]int{
	BumpNone:  0,
	BumpPatch: 1,
	BumpMinor: 2,
	BumpMajor: 3,
}

// Stronger returns the more severe of the two signals.
func (s BumpSignal) Stronger(other BumpSignal) BumpSignal {
	if bumpSeverity[other] > bumpSeverity[s] {
		return other
	}
	return s
}

// Release maps the signal to its plain release type. BumpNone has no
// release type and returns ReleaseSkip.
func (s BumpSignal) Release() ReleaseType {
	switch s {
	case BumpMajor:
		return ReleaseMajor
	case BumpMinor:
		return ReleaseMinor
	case BumpPatch:
		return ReleasePatch
	default:
		return ReleaseSkip
	}
}
