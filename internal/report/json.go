package report

import (
	"encoding/json"
	"io"

	"github.com/vvka-141/apiscan/pkg/apiscan"
)

// jsonReport is the wire shape of one report line.
type jsonReport struct {
	Type         string   `json:"type"`
	ID           string   `json:"id"`
	Path         string   `json:"path"`
	Category     string   `json:"category"`
	Matches      []string `json:"matches"`
	TotalMatches int      `json:"total_matches"`
	Checksum     string   `json:"checksum"`
}

type jsonSummary struct {
	Type string `json:"type"`
	apiscan.ScanSummary
}

// JSONRenderer writes JSON lines: one "report" object per matching file and
// a final "summary" object.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer creates a JSON lines renderer.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONRenderer{enc: enc}
}

func (r *JSONRenderer) Begin() error { return nil }

func (r *JSONRenderer) Report(rep apiscan.FileReport) error {
	matches := rep.Matches
	if matches == nil {
		matches = []string{}
	}
	return r.enc.Encode(jsonReport{
		Type:         "report",
		ID:           rep.ID.String(),
		Path:         rep.Path,
		Category:     rep.Category,
		Matches:      matches,
		TotalMatches: rep.TotalMatches,
		Checksum:     rep.Checksum,
	})
}

func (r *JSONRenderer) End(summary apiscan.ScanSummary) error {
	return r.enc.Encode(jsonSummary{Type: "summary", ScanSummary: summary})
}
