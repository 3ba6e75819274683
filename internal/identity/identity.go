// Package identity derives stable identifiers for scan reports.
package identity

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NamespaceReport is the UUID v5 namespace for report identities,
// derived from "apiscan/report-identity/v1" under the URL namespace.
var NamespaceReport = uuid.NewSHA1(uuid.NameSpaceURL, []byte("apiscan/report-identity/v1"))

// ReportID returns a deterministic UUID v5 for a report of category in path.
// The same file and category always produce the same ID across runs and
// platforms, so JSON reports from two scans can be diffed by ID.
//
// Path normalization:
//  1. Forward slashes
//  2. Leading "./" removed
//
// Case is preserved: JavaScript module paths are case-sensitive.
func ReportID(path, category string) uuid.UUID {
	return uuid.NewSHA1(NamespaceReport, []byte(normalizePath(path)+"#"+category))
}

func normalizePath(path string) string {
	normalized := filepath.ToSlash(path)
	return strings.TrimPrefix(normalized, "./")
}
