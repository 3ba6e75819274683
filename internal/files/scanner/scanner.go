package scanner

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/apiscan/internal/checksum"
	"github.com/vvka-141/apiscan/internal/files/filesystem"
	"github.com/vvka-141/apiscan/internal/identity"
	"github.com/vvka-141/apiscan/internal/patterns"
	"github.com/vvka-141/apiscan/pkg/apiscan"
)

// errStopWalk ends the directory walk when the consumer stops ranging.
var errStopWalk = errors.New("scan stopped by consumer")

// Scanner discovers source files and matches them against a pattern list.
// Scanner holds no per-scan state; concurrent Scan calls are safe as long as
// the filesystem provider is.
type Scanner struct {
	patterns   *patterns.List
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	extensions []string
}

// NewScanner creates a scanner over the OS filesystem.
// Panics if list or calculator is nil.
func NewScanner(list *patterns.List, calculator checksum.Calculator) *Scanner {
	return NewScannerWithFS(list, calculator, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if any argument is nil.
func NewScannerWithFS(list *patterns.List, calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if list == nil {
		panic("pattern list cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		patterns:   list,
		calculator: calculator,
		fsProvider: fsProvider,
		extensions: apiscan.SourceExtensions(),
	}
}

// Scan walks root and yields one outcome per source file.
//
// Directory order is whatever the provider produces. Per-file failures are
// yielded as OutcomeSkipped, never as errors. The error slot is used only
// when root cannot be opened (wrapping apiscan.ErrRootNotFound) or when the
// walk itself fails; either ends the sequence.
func (s *Scanner) Scan(root string) iter.Seq2[apiscan.FileOutcome, error] {
	return func(yield func(apiscan.FileOutcome, error) bool) {
		dir, err := s.fsProvider.Open(root)
		if err != nil {
			yield(apiscan.FileOutcome{}, fmt.Errorf("%w: %s: %v", apiscan.ErrRootNotFound, root, err))
			return
		}

		// Set while the consumer's loop body runs, so a panic raised there
		// and recovered by Walk is re-raised instead of reported as a walk error.
		inConsumer := false

		err = dir.Walk(func(file filesystem.File, walkErr error) error {
			if walkErr != nil {
				// Unreadable subdirectories are passed over, like any unreadable file.
				return nil
			}
			if file.IsDir() || !s.isSourceFile(file.Name()) {
				return nil
			}

			outcome := s.processFile(filepath.Join(root, file.RelativePath()), file)

			inConsumer = true
			more := yield(outcome, nil)
			inConsumer = false
			if !more {
				return errStopWalk
			}
			return nil
		})

		switch {
		case err == nil, errors.Is(err, errStopWalk):
		case inConsumer:
			panic(err)
		default:
			yield(apiscan.FileOutcome{}, fmt.Errorf("failed to walk %s: %w", root, err))
		}
	}
}

// isSourceFile reports whether name ends with one of the scanned extensions.
func (s *Scanner) isSourceFile(name string) bool {
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// processFile reads one file and classifies it.
func (s *Scanner) processFile(path string, file filesystem.File) apiscan.FileOutcome {
	content, err := file.ReadContent()
	if err != nil {
		return skipped(path, apiscan.SkipReadError, err)
	}

	if !utf8.Valid(content) {
		return skipped(path, apiscan.SkipInvalidUTF8, invalidUTF8Error(content))
	}

	m, ok, err := s.patterns.FirstMatch(normalizeNewlines(string(content)), apiscan.MaxSamples)
	if err != nil {
		return skipped(path, apiscan.SkipMatchError, err)
	}
	if !ok {
		return apiscan.FileOutcome{Kind: apiscan.OutcomeNoMatch, Path: path}
	}

	return apiscan.FileOutcome{
		Kind: apiscan.OutcomeReported,
		Path: path,
		Report: &apiscan.FileReport{
			ID:           identity.ReportID(path, m.Category),
			Path:         path,
			Category:     m.Category,
			Matches:      m.Samples,
			TotalMatches: m.Total,
			Checksum:     s.calculator.Calculate(content),
		},
	}
}

func skipped(path string, reason apiscan.SkipReason, err error) apiscan.FileOutcome {
	return apiscan.FileOutcome{
		Kind:       apiscan.OutcomeSkipped,
		Path:       path,
		SkipReason: reason,
		Err:        err,
	}
}

// invalidUTF8Error locates the first byte that does not start a valid sequence.
func invalidUTF8Error(content []byte) error {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("invalid UTF-8 at byte offset %d", i)
		}
		i += size
	}
	return errors.New("invalid UTF-8")
}

// normalizeNewlines converts CRLF and lone CR line endings to LF,
// so samples read the same regardless of the file's line ending style.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Verify Scanner implements the interface at compile time
var _ apiscan.FileScanner = (*Scanner)(nil)
