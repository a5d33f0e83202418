// Package attrfmt renders decoded token attributes for humans and tools.
package attrfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"tokattr/internal/attrs"
	"tokattr/internal/config"
)

// PrettyOpts controls Pretty output.
type PrettyOpts struct {
	Color  bool
	Binary bool // also print the 32-bit binary form
}

type palette struct {
	index *color.Color
	label *color.Color
	value *color.Color
	dim   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		index: color.New(color.FgHiBlack),
		label: color.New(color.FgCyan),
		value: color.New(color.FgYellow, color.Bold),
		dim:   color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.index, p.label, p.value, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty writes one line per value. cfg may be nil.
func Pretty(w io.Writer, values []attrs.Encoded, cfg *config.Config, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for i, v := range values {
		f := attrs.Decode(v)
		line := p.index.Sprintf("%3d:", i+1) + " " + p.value.Sprintf("0x%08x", uint32(v))
		line += field(p, "lang", languageLabel(cfg, f.LanguageID))
		line += field(p, "type", f.TokenType.String())
		line += field(p, "balanced", fmt.Sprintf("%t", f.BalancedBrackets))
		line += field(p, "font", f.FontStyle.String())
		line += field(p, "fg", colorLabel(cfg, f.Foreground))
		line += field(p, "bg", colorLabel(cfg, f.Background))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if opts.Binary {
			if _, err := fmt.Fprintln(w, "     "+p.dim.Sprint(v.BinaryString())); err != nil {
				return err
			}
		}
	}
	return nil
}

func field(p palette, name, value string) string {
	return " " + p.label.Sprint(name) + "=" + value
}

func languageLabel(cfg *config.Config, id uint32) string {
	if cfg != nil {
		if name, ok := cfg.LanguageName(id); ok {
			return fmt.Sprintf("%d(%s)", id, name)
		}
	}
	return fmt.Sprintf("%d", id)
}

func colorLabel(cfg *config.Config, index uint32) string {
	if cfg != nil {
		if c, ok := cfg.Color(index); ok {
			return fmt.Sprintf("%d(%s)", index, c)
		}
	}
	return fmt.Sprintf("%d", index)
}

// Layout writes the bit layout table.
func Layout(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-18s %-6s %-5s %-12s %s\n", "FIELD", "BITS", "WIDTH", "MASK", "MAX"); err != nil {
		return err
	}
	for _, f := range attrs.Layout {
		bits := fmt.Sprintf("%d", f.Offset)
		if f.Width > 1 {
			bits = fmt.Sprintf("%d-%d", f.Offset, f.Offset+f.Width-1)
		}
		if _, err := fmt.Fprintf(w, "%-18s %-6s %-5d 0x%08x   %d\n", f.Name, bits, f.Width, f.Mask, f.Max()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "layout version %d\n", attrs.LayoutVersion)
	return err
}
