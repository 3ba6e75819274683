package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/apiscan/internal/style"
	"github.com/vvka-141/apiscan/pkg/apiscan"
)

const (
	bannerTitle   = "FRONTEND API CALLS ANALYSIS"
	completeTitle = "Frontend API scan complete"
	ruleWidth     = 50
	matchIndent   = "   "
)

// TextRenderer writes the human-readable report:
//
//	🔍 FRONTEND API CALLS ANALYSIS
//	==================================================
//	📄 src/api.ts
//	   → fetch('/users')
//
//	✅ Frontend API scan complete
type TextRenderer struct {
	w      io.Writer
	color  bool
	styles style.Styles
}

// NewTextRenderer creates a text renderer. With color false the output
// contains no escape sequences.
func NewTextRenderer(w io.Writer, color bool) *TextRenderer {
	r := &TextRenderer{w: w, color: color}
	if color {
		r.styles = style.NewStyles(w)
	}
	return r
}

func (r *TextRenderer) Begin() error {
	title := style.SymbolSearch + " " + bannerTitle
	rule := strings.Repeat("=", ruleWidth)
	if r.color {
		title = style.SymbolSearch + " " + r.styles.Banner.Render(bannerTitle)
		rule = r.styles.Rule.Render(rule)
	}
	_, err := fmt.Fprintf(r.w, "%s\n%s\n", title, rule)
	return err
}

func (r *TextRenderer) Report(rep apiscan.FileReport) error {
	var b strings.Builder

	path := rep.Path
	arrow := style.SymbolArrow
	if r.color {
		path = r.styles.FilePath.Render(path)
		arrow = r.styles.Arrow.Render(arrow)
	}
	b.WriteString(style.SymbolFile + " " + path + "\n")

	for _, m := range rep.Matches {
		if r.color {
			m = renderLines(r.styles.Match.Render, m)
		}
		b.WriteString(matchIndent + arrow + " " + m + "\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) End(apiscan.ScanSummary) error {
	title := style.SymbolComplete + " " + completeTitle
	if r.color {
		title = style.SymbolComplete + " " + r.styles.Complete.Render(completeTitle)
	}
	_, err := fmt.Fprintf(r.w, "\n%s\n", title)
	return err
}

// renderLines styles each line on its own so lipgloss does not pad a
// multi-line match into a block.
func renderLines(render func(...string) string, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = render(line)
		}
	}
	return strings.Join(lines, "\n")
}
