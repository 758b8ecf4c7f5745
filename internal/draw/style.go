package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styler renders TextStyle with lipgloss. The color profile is forced to truecolor
// because output goes to raw-mode terminals and SSH sessions where termenv cannot query the terminal.
type Styler struct {
	renderer *lipgloss.Renderer
}

// NewStyler creates a styler for output written to w.
func NewStyler(w io.Writer) *Styler {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)
	return &Styler{renderer: r}
}

// Render returns s wrapped in the escape sequences for style.
func (s *Styler) Render(text string, style TextStyle) string {
	st := s.renderer.NewStyle().
		Foreground(lipgloss.Color(style.Fg.Hex())).
		Background(lipgloss.Color(style.Bg.Hex()))
	if style.Bold {
		st = st.Bold(true)
	}
	return st.Render(text)
}
