package output

import "github.com/charmbracelet/lipgloss"

// Style describes color and decoration attributes for one named style.
// Colors accept anything lipgloss understands: ANSI indexes ("1") or hex
// values ("#F87171").
type Style struct {
	Foreground string
	Background string
	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
}

// render wraps text with the escape sequences the renderer's color profile
// supports. A renderer bound to a non-TTY writer degrades to plain text.
func (s Style) render(r *lipgloss.Renderer, text string) string {
	st := r.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Faint {
		st = st.Faint(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	return st.Render(text)
}

// defaultStyles returns the styles every Output starts with.
func defaultStyles() map[string]Style {
	return map[string]Style{
		"info":    {Foreground: "#60A5FA"},
		"success": {Foreground: "#22C55E"},
		"warning": {Foreground: "#FBBF24"},
		"error":   {Foreground: "#F87171", Bold: true},
	}
}
