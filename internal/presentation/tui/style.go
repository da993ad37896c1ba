package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Style colors states and illegal inputs for terminal output.
type Style struct {
	profile termenv.Profile
}

// NewStyle returns a Style for the given color profile.
func NewStyle(profile termenv.Profile) Style {
	return Style{profile: profile}
}

// StyleFor picks a Style for w: colored when w is a terminal, plain (Ascii) otherwise.
func StyleFor(w io.Writer) Style {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewStyle(termenv.ColorProfile())
	}
	return NewStyle(termenv.Ascii)
}

func (s Style) State(v string) string {
	return s.profile.String(v).Foreground(s.profile.Color("#818cf8")).String()
}

func (s Style) Illegal(v string) string {
	return s.profile.String(v).Foreground(s.profile.Color("#fb7185")).Bold().String()
}

func (s Style) Heading(v string) string {
	return s.profile.String(v).Bold().String()
}
