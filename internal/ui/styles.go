// Package ui renders sheaf command output for the terminal.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Semantic colors, adaptive to light and dark terminals.
var (
	ColorPass   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	ColorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorFail   = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	ColorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

// Status icons.
const (
	IconPass = "✓"
	IconWarn = "⚠"
	IconFail = "✗"
	IconInfo = "ℹ"
)

// SeparatorHeavy frames banners and summaries.
const SeparatorHeavy = "================================="

// Printer writes styled output to a writer.
type Printer struct {
	w     io.Writer
	color bool

	pass, warn, fail, muted, accent, bold, banner lipgloss.Style
}

// NewPrinter creates a Printer. Colors are used only when color is true.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		color:  color,
		pass:   r.NewStyle().Foreground(ColorPass),
		warn:   r.NewStyle().Foreground(ColorWarn),
		fail:   r.NewStyle().Foreground(ColorFail),
		muted:  r.NewStyle().Foreground(ColorMuted),
		accent: r.NewStyle().Foreground(ColorAccent),
		bold:   r.NewStyle().Bold(true),
		banner: r.NewStyle().Bold(true).Foreground(ColorAccent),
	}
}

// ColorEnabled reports whether w should receive colored output.
// NO_COLOR and noColor both turn colors off, as does anything but a terminal.
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *Printer) Pass(s string) string   { return p.render(p.pass, s) }
func (p *Printer) Warn(s string) string   { return p.render(p.warn, s) }
func (p *Printer) Fail(s string) string   { return p.render(p.fail, s) }
func (p *Printer) Muted(s string) string  { return p.render(p.muted, s) }
func (p *Printer) Accent(s string) string { return p.render(p.accent, s) }
func (p *Printer) Bold(s string) string   { return p.render(p.bold, s) }
