// Package report renders scan results to an output stream.
//
// The text format is the tool's primary interface and is byte-exact when
// colour is off. The JSON format writes one object per line.
package report

import (
	"fmt"
	"io"

	"github.com/vvka-141/apiscan/pkg/apiscan"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. Empty means FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q (want text or json)", apiscan.ErrInvalidConfig, s)
	}
}

// Renderer writes the parts of a report in order: Begin once, Report per
// matching file, End once after the scan finished.
type Renderer interface {
	Begin() error
	Report(r apiscan.FileReport) error
	End(summary apiscan.ScanSummary) error
}

// New returns the renderer for format writing to w.
// color only affects the text renderer.
func New(format Format, w io.Writer, color bool) (Renderer, error) {
	switch format {
	case FormatText, "":
		return NewTextRenderer(w, color), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", apiscan.ErrInvalidConfig, format)
	}
}
