package apiscan

import "github.com/google/uuid"

// FileReport is the result for a file in which at least one pattern matched.
// Only the first matching category is reported.
type FileReport struct {
	// ID is a deterministic identifier derived from Path and Category.
	ID uuid.UUID

	// Path is the scan root joined with the file's relative path.
	Path string

	// Category names the pattern that matched first.
	Category string

	// Matches holds at most MaxSamples matched substrings in file order.
	Matches []string

	// TotalMatches counts every match of Category in the file,
	// including those dropped from Matches.
	TotalMatches int

	// Checksum is the SHA-256 of the file content as read.
	Checksum string
}

// OutcomeKind classifies what happened to one examined file.
type OutcomeKind int

const (
	// OutcomeNoMatch means the file was read and no pattern matched.
	OutcomeNoMatch OutcomeKind = iota
	// OutcomeReported means a pattern matched and Report is set.
	OutcomeReported
	// OutcomeSkipped means the file could not be used and SkipReason is set.
	OutcomeSkipped
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoMatch:
		return "no-match"
	case OutcomeReported:
		return "reported"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// SkipReason explains why a file was skipped.
type SkipReason string

const (
	SkipReadError   SkipReason = "read-error"
	SkipInvalidUTF8 SkipReason = "invalid-utf8"
	SkipMatchError  SkipReason = "match-error"
)

// FileOutcome is the per-file result of a scan.
type FileOutcome struct {
	Kind OutcomeKind

	// Path is the display path of the file (root joined with relative path).
	Path string

	// Report is set when Kind is OutcomeReported.
	Report *FileReport

	// SkipReason and Err are set when Kind is OutcomeSkipped.
	SkipReason SkipReason
	Err        error
}

// ScanSummary aggregates outcomes of one scan pass.
type ScanSummary struct {
	Examined  int `json:"examined"`
	Reported  int `json:"reported"`
	Unmatched int `json:"unmatched"`
	Skipped   int `json:"skipped"`
}

// Add records one outcome in the summary.
func (s *ScanSummary) Add(o FileOutcome) {
	s.Examined++
	switch o.Kind {
	case OutcomeReported:
		s.Reported++
	case OutcomeSkipped:
		s.Skipped++
	default:
		s.Unmatched++
	}
}
