package attrfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"tokattr/internal/attrs"
	"tokattr/internal/config"
)

// DefaultSample is the text Preview renders when none is given.
const DefaultSample = "The quick brown fox"

// PreviewOpts controls Preview output.
type PreviewOpts struct {
	Color bool
	Text  string
}

// Style converts decoded attributes into a lipgloss style using the palette
// in cfg. Index 0 and unknown indexes leave the terminal default.
func Style(r *lipgloss.Renderer, f attrs.Fields, cfg *config.Config) lipgloss.Style {
	st := r.NewStyle()
	if cfg != nil {
		if c, ok := cfg.Color(f.Foreground); ok {
			st = st.Foreground(lipgloss.Color(c))
		}
		if c, ok := cfg.Color(f.Background); ok {
			st = st.Background(lipgloss.Color(c))
		}
	}
	return st.
		Italic(f.FontStyle.Has(attrs.Italic)).
		Bold(f.FontStyle.Has(attrs.Bold)).
		Underline(f.FontStyle.Has(attrs.Underline)).
		Strikethrough(f.FontStyle.Has(attrs.Strikethrough))
}

// Preview writes each value's label followed by the sample text rendered in
// that value's style.
func Preview(w io.Writer, values []attrs.Encoded, cfg *config.Config, opts PreviewOpts) error {
	text := opts.Text
	if text == "" {
		text = DefaultSample
	}
	labels := make([]string, len(values))
	width := 0
	for i, v := range values {
		f := attrs.Decode(v)
		labels[i] = fmt.Sprintf("0x%08x %s %s", uint32(v), languageLabel(cfg, f.LanguageID), f.TokenType)
		width = max(width, runewidth.StringWidth(labels[i]))
	}

	r := lipgloss.NewRenderer(w)
	if opts.Color {
		// w may be a pipe or a buffer; an explicit request wins over detection
		r.SetColorProfile(termenv.TrueColor)
	}
	for i, v := range values {
		sample := text
		if opts.Color {
			sample = Style(r, attrs.Decode(v), cfg).Render(text)
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(labels[i], width), sample); err != nil {
			return err
		}
	}
	return nil
}
