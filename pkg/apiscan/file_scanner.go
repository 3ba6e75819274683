package apiscan

import "iter"

// FileScanner discovers source files under a root and classifies each one.
type FileScanner interface {
	// Scan walks root and yields one FileOutcome per examined file.
	// Files filtered out by extension are never opened and yield nothing.
	// A root that cannot be opened yields a single error wrapping
	// ErrRootNotFound. Each call performs a fresh traversal.
	Scan(root string) iter.Seq2[FileOutcome, error]
}
