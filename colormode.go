package huex

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode controls whether a render emits ANSI styling.
type ColorMode int

const (
	// ColorAuto enables styling only when the sink is an interactive
	// terminal and NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorAlways enables styling regardless of the sink.
	ColorAlways
	// ColorNever disables styling.
	ColorNever
)

// ColorOff is an alias for ColorNever, for callers used to tools that
// call the mode "off".
const ColorOff = ColorNever

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode maps the usual CLI spellings to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on", "force":
		return ColorAlways, nil
	case "never", "off", "none":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("huex: unknown color mode %q (use auto, always or never)", s)
}

// Enabled resolves the mode against w once, before a render begins.
// Auto requires w to expose an Fd() that isatty recognizes; pipes,
// buffers, and unknown writer types resolve to no color.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return isTerminal(w)
}

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
