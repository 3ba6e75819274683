package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorMatch   = lipgloss.Color("214") // Orange
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles groups the styles of a text report.
type Styles struct {
	Banner   lipgloss.Style
	Rule     lipgloss.Style
	FilePath lipgloss.Style
	Arrow    lipgloss.Style
	Match    lipgloss.Style
	Complete lipgloss.Style
}

// NewStyles builds report styles bound to a renderer for w.
// The renderer is forced to ANSI 256 colours, since the caller has already
// decided through ShouldColor that w gets coloured output.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	return Styles{
		Banner:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Rule:     r.NewStyle().Foreground(ColorMuted),
		FilePath: r.NewStyle().Bold(true),
		Arrow:    r.NewStyle().Foreground(ColorMuted),
		Match:    r.NewStyle().Foreground(ColorMatch),
		Complete: r.NewStyle().Bold(true).Foreground(ColorSuccess),
	}
}

// Symbols used in the text report.
const (
	SymbolSearch   = "🔍"
	SymbolFile     = "📄"
	SymbolArrow    = "→"
	SymbolComplete = "✅"
)
