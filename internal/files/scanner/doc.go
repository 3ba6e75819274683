// Package scanner discovers frontend source files and classifies their HTTP
// client usage.
//
// The scanner package is responsible for:
//   - Recursively discovering .js, .jsx, .ts and .tsx files in a directory tree
//   - Reading and UTF-8 validating each candidate file
//   - Evaluating an ordered pattern list and keeping the first category that matches
//   - Reporting every examined file as a first-class outcome (reported,
//     no match, or skipped with a reason)
//
// Results are produced lazily as an iter.Seq2, one outcome per examined file.
// Files whose names do not carry a source extension are never opened.
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
