package huex

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"pkt.systems/huex/internal/palette"
)

// TokenClass is the semantic category of a rendered span of text. It
// selects the Style a Theme applies to that span.
type TokenClass int

const (
	TokenObjectKey TokenClass = iota
	TokenString
	TokenNumber
	TokenBool
	TokenNull
	TokenArrayBracket
	TokenObjectBrace
	TokenComma
	TokenColon
	numTokenClasses
)

func (c TokenClass) String() string {
	switch c {
	case TokenObjectKey:
		return "object key"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenBool:
		return "bool"
	case TokenNull:
		return "null"
	case TokenArrayBracket:
		return "array bracket"
	case TokenObjectBrace:
		return "object brace"
	case TokenComma:
		return "comma"
	case TokenColon:
		return "colon"
	}
	return "invalid"
}

// ErrIncompleteTheme is returned by NewTheme when the style map does
// not cover every token class.
var ErrIncompleteTheme = errors.New("huex: theme is missing token class styles")

// Theme is a complete, immutable assignment of Lip Gloss styles to all
// token classes. A Theme is constructed once and may be shared across
// concurrent renders.
type Theme struct {
	styles [numTokenClasses]lipgloss.Style
}

// styleRenderer emits with a fixed ANSI-256 profile, so a Theme's
// escape sequences do not depend on the capabilities of the process'
// own stdout. Whether styling is emitted at all is the ColorMode
// resolver's decision, not the renderer's.
var styleRenderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return r
}()

// NewTheme builds a Theme from a per-class style map. Every token
// class must be present; an incomplete map is a construction-time
// error, never a per-token one.
func NewTheme(styles map[TokenClass]lipgloss.Style) (*Theme, error) {
	var t Theme
	var missing []string
	for c := TokenClass(0); c < numTokenClasses; c++ {
		s, ok := styles[c]
		if !ok {
			missing = append(missing, c.String())
			continue
		}
		t.styles[c] = s
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteTheme, strings.Join(missing, ", "))
	}
	return &t, nil
}

// Style returns the style bound to class. The lookup is total for any
// constructed Theme.
func (t *Theme) Style(class TokenClass) lipgloss.Style {
	if class < 0 || class >= numTokenClasses {
		return styleRenderer.NewStyle()
	}
	return t.styles[class]
}

const themeDefaultName = "default"

var themeRegistry = map[string]palette.Palette{
	themeDefaultName: palette.OneDark,
	"one-dark":       palette.OneDark,
	"jq":             palette.JQ,
	"dracula":        palette.Dracula,
	"nord":           palette.Nord,
	"gruvbox-light":  palette.GruvboxLight,
	"monokai":        palette.Monokai,
	"tokyo-night":    palette.TokyoNight,
}

var defaultTheme = fromPalette(palette.OneDark)

// DefaultTheme returns the built-in One Dark-ish theme: keys blue
// bold, strings green, numbers orange, booleans cyan, null faint gray,
// punctuation muted gray so values stand out.
func DefaultTheme() *Theme { return defaultTheme }

// ThemeNames returns the sorted list of named themes, including
// "none".
func ThemeNames() []string {
	names := make([]string, 0, len(themeRegistry)+1)
	for name := range themeRegistry {
		names = append(names, name)
	}
	names = append(names, "none")
	sort.Strings(names)
	return names
}

// LookupTheme resolves a registry name to a Theme. The special name
// "none" yields a theme with no styling at all, and "" means the
// default.
func LookupTheme(name string) (*Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = themeDefaultName
	}
	if key == "none" {
		return &Theme{}, nil
	}
	p, ok := themeRegistry[key]
	if !ok {
		return nil, fmt.Errorf("huex: unknown theme %q (use one of: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return fromPalette(p), nil
}

func fromPalette(p palette.Palette) *Theme {
	var t Theme
	t.styles[TokenObjectKey] = styleFrom(p.Key)
	t.styles[TokenString] = styleFrom(p.String)
	t.styles[TokenNumber] = styleFrom(p.Number)
	t.styles[TokenBool] = styleFrom(p.Bool)
	t.styles[TokenNull] = styleFrom(p.Null)
	t.styles[TokenArrayBracket] = styleFrom(p.ArrayBracket)
	t.styles[TokenObjectBrace] = styleFrom(p.ObjectBrace)
	t.styles[TokenComma] = styleFrom(p.Comma)
	t.styles[TokenColon] = styleFrom(p.Colon)
	return &t
}

func styleFrom(ps palette.Style) lipgloss.Style {
	s := styleRenderer.NewStyle()
	if ps.Color != "" {
		s = s.Foreground(lipgloss.Color(ps.Color))
	}
	if ps.Bold {
		s = s.Bold(true)
	}
	if ps.Faint {
		s = s.Faint(true)
	}
	return s
}
