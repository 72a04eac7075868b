// Package term colors board output for terminals.
package term

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Highlighter paints set squares green and unset squares red.
type Highlighter struct {
	set   *color.Color
	unset *color.Color
}

func NewHighlighter(enabled bool) *Highlighter {
	h := &Highlighter{
		set:   color.New(color.FgGreen),
		unset: color.New(color.FgRed),
	}
	if enabled {
		h.set.EnableColor()
		h.unset.EnableColor()
	} else {
		h.set.DisableColor()
		h.unset.DisableColor()
	}
	return h
}

func (h *Highlighter) Highlight(text string, set bool) string {
	if set {
		return h.set.Sprint(text)
	}
	return h.unset.Sprint(text)
}

// Enabled decides whether output to f should be colored.
// In auto mode NO_COLOR and non terminal outputs disable color.
func Enabled(mode Mode, f *os.File) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Output wraps f so ANSI escapes work on Windows consoles.
// When color is disabled escapes are stripped instead.
func Output(f *os.File, enabled bool) io.Writer {
	if enabled {
		return colorable.NewColorable(f)
	}
	return colorable.NewNonColorable(f)
}
