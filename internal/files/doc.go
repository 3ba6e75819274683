// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Source file discovery and per-file pattern matching
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/apiscan/internal/files/scanner"
//	    "github.com/vvka-141/apiscan/internal/patterns"
//	)
//
//	fileScanner := scanner.NewScanner(patterns.MustDefault(), checksum.New())
//	for outcome, err := range fileScanner.Scan("src") {
//	    ...
//	}
package files
