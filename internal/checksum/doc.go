// Package checksum provides file content hashing for scan reports.
//
// A report carries the SHA-256 of the bytes that were scanned, so consumers
// of JSON output can tell whether a file changed between two scans without
// re-reading it.
//
//	calculator := checksum.New()
//	sum := calculator.Calculate(fileContent)
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
