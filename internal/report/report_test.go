package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/apiscan/internal/identity"
	"github.com/vvka-141/apiscan/pkg/apiscan"
)

const banner = "🔍 FRONTEND API CALLS ANALYSIS\n" +
	"==================================================\n"

const completion = "\n✅ Frontend API scan complete\n"

func sampleReport() apiscan.FileReport {
	return apiscan.FileReport{
		ID:           identity.ReportID("src/api.ts", "fetch"),
		Path:         "src/api.ts",
		Category:     "fetch",
		Matches:      []string{"fetch('/users')", "fetch('/teams')"},
		TotalMatches: 2,
		Checksum:     "abc",
	}
}

func TestTextRenderer_EmptyScan(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	require.NoError(t, r.Begin())
	require.NoError(t, r.End(apiscan.ScanSummary{}))

	assert.Equal(t, banner+completion, buf.String())
}

func TestTextRenderer_ExactFormat(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	require.NoError(t, r.Begin())
	require.NoError(t, r.Report(sampleReport()))
	require.NoError(t, r.End(apiscan.ScanSummary{Examined: 1, Reported: 1}))

	want := banner +
		"📄 src/api.ts\n" +
		"   → fetch('/users')\n" +
		"   → fetch('/teams')\n" +
		completion
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer_MultilineMatchKeptVerbatim(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	rep := sampleReport()
	rep.Matches = []string{"fetch(\n  url\n)"}
	require.NoError(t, r.Report(rep))

	assert.Equal(t, "📄 src/api.ts\n   → fetch(\n  url\n)\n", buf.String())
}

func TestTextRenderer_ColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, true)

	require.NoError(t, r.Begin())
	require.NoError(t, r.Report(sampleReport()))
	require.NoError(t, r.End(apiscan.ScanSummary{}))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	for _, part := range []string{"FRONTEND API CALLS ANALYSIS", "src/api.ts", "fetch('/users')", "Frontend API scan complete"} {
		assert.Contains(t, out, part)
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	require.NoError(t, r.Begin())
	require.NoError(t, r.Report(sampleReport()))
	require.NoError(t, r.End(apiscan.ScanSummary{Examined: 3, Reported: 1, Unmatched: 1, Skipped: 1}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rep map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rep))
	assert.Equal(t, "report", rep["type"])
	assert.Equal(t, identity.ReportID("src/api.ts", "fetch").String(), rep["id"])
	assert.Equal(t, "src/api.ts", rep["path"])
	assert.Equal(t, "fetch", rep["category"])
	assert.Equal(t, []any{"fetch('/users')", "fetch('/teams')"}, rep["matches"])
	assert.EqualValues(t, 2, rep["total_matches"])

	var sum map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &sum))
	assert.Equal(t, "summary", sum["type"])
	assert.EqualValues(t, 3, sum["examined"])
	assert.EqualValues(t, 1, sum["skipped"])
}

func TestJSONRenderer_NoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	rep := sampleReport()
	rep.Matches = []string{"fetch(`/a?x=1&y=<2>`)"}
	require.NoError(t, NewJSONRenderer(&buf).Report(rep))
	assert.Contains(t, buf.String(), "&y=<2>")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apiscan.ErrInvalidConfig))
}

func TestNew(t *testing.T) {
	r, err := New(FormatJSON, &bytes.Buffer{}, false)
	require.NoError(t, err)
	assert.IsType(t, &JSONRenderer{}, r)

	r, err = New(FormatText, &bytes.Buffer{}, false)
	require.NoError(t, err)
	assert.IsType(t, &TextRenderer{}, r)

	_, err = New("yaml", &bytes.Buffer{}, false)
	assert.Error(t, err)
}
