package huex

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Options controls a single render call. The zero value means: resolve
// color automatically, pretty layout with no indentation unit, no line
// prefix, the default theme, and the default depth limit.
type Options struct {
	// Color decides whether ANSI styling is emitted. Default ColorAuto.
	Color ColorMode
	// Compact suppresses all line breaks and indentation. The colon is
	// not followed by a space in compact mode.
	Compact bool
	// Indent is the string written per nesting level in pretty mode.
	// Default two spaces.
	Indent string
	// Prefix is prepended to every output line.
	Prefix string
	// Theme names a registered theme (see ThemeNames). Empty means the
	// default theme.
	Theme string
	// MaxDepth bounds value nesting before rendering fails with
	// ErrTooDeep instead of exhausting the stack. Zero means the
	// default of 10000.
	MaxDepth int
}

// DefaultOptions holds the fallback render configuration.
var DefaultOptions = &Options{Color: ColorAuto, Indent: "  "}

const defaultMaxDepth = 10000

var (
	// ErrInvalidNumber reports a number value whose text is not a
	// finite JSON number (NaN, Infinity, or other non-grammar forms).
	ErrInvalidNumber = errors.New("huex: number is not a finite JSON number")
	// ErrTooDeep reports value nesting beyond Options.MaxDepth.
	ErrTooDeep = errors.New("huex: value nesting exceeds the depth limit")
)

// Render renders v into a string. An in-memory buffer is never a
// terminal, so ColorAuto resolves to plain output; only ColorAlways
// styles the result.
func Render(v Value, opts *Options) (string, error) {
	o := withDefaults(opts)
	t, err := themeFor(o, nil)
	if err != nil {
		return "", err
	}
	out, err := renderBytes(v, o, t, o.Color == ColorAlways)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// RenderTo renders v to w, resolving ColorAuto against w's terminal
// capability. The document is rendered fully before a single write, so
// a write failure never leaves an unterminated escape sequence; the
// sink's error is returned verbatim.
func RenderTo(w io.Writer, v Value, opts *Options) error {
	return RenderWith(w, v, opts, nil)
}

// RenderWith is RenderTo with a caller-supplied Theme, bypassing the
// named registry. A nil theme falls back to Options.Theme.
func RenderWith(w io.Writer, v Value, opts *Options, theme *Theme) error {
	o := withDefaults(opts)
	t, err := themeFor(o, theme)
	if err != nil {
		return err
	}
	out, err := renderBytes(v, o, t, o.Color.Enabled(w))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// RenderJSON renders already-serialized JSON text into a string. The
// text is parsed into a Value first; huex never lexes raw text itself.
func RenderJSON(src []byte, opts *Options) (string, error) {
	v, err := Parse(src)
	if err != nil {
		return "", err
	}
	return Render(v, opts)
}

// RenderJSONTo renders already-serialized JSON text to w.
func RenderJSONTo(w io.Writer, src []byte, opts *Options) error {
	v, err := Parse(src)
	if err != nil {
		return err
	}
	return RenderTo(w, v, opts)
}

func withDefaults(opts *Options) *Options {
	if opts == nil {
		opts = DefaultOptions
	}
	o := *opts
	if o.MaxDepth <= 0 {
		o.MaxDepth = defaultMaxDepth
	}
	return &o
}

func themeFor(o *Options, explicit *Theme) (*Theme, error) {
	if explicit != nil {
		return explicit, nil
	}
	if o.Theme == "" {
		return DefaultTheme(), nil
	}
	return LookupTheme(o.Theme)
}

func renderBytes(v Value, o *Options, t *Theme, color bool) ([]byte, error) {
	p := &printer{
		theme:    t,
		color:    color,
		compact:  o.Compact,
		indent:   o.Indent,
		prefix:   o.Prefix,
		maxDepth: o.MaxDepth,
	}
	buf := make([]byte, 0, 128)
	if len(p.prefix) != 0 {
		buf = append(buf, p.prefix...)
	}
	return p.value(buf, v, 0)
}

// printer drives the recursive descent over a Value's shape. It
// appends to a caller-owned buffer and touches no sink of its own.
type printer struct {
	theme    *Theme
	color    bool
	compact  bool
	indent   string
	prefix   string
	maxDepth int
	scratch  []byte
}

func (p *printer) value(dst []byte, v Value, depth int) ([]byte, error) {
	if depth > p.maxDepth {
		return dst, fmt.Errorf("%w (limit %d)", ErrTooDeep, p.maxDepth)
	}
	switch v.Kind() {
	case KindNull:
		return p.token(dst, TokenNull, "null"), nil
	case KindBool:
		if v.Bool() {
			return p.token(dst, TokenBool, "true"), nil
		}
		return p.token(dst, TokenBool, "false"), nil
	case KindNumber:
		n := string(v.Number())
		if !validNumber(n) {
			return dst, fmt.Errorf("%w: %q", ErrInvalidNumber, n)
		}
		return p.token(dst, TokenNumber, n), nil
	case KindString:
		return p.stringToken(dst, TokenString, v.Str()), nil
	case KindArray:
		return p.array(dst, v.Elems(), depth)
	case KindObject:
		return p.object(dst, v.Members(), depth)
	}
	return dst, fmt.Errorf("huex: cannot render value of kind %v", v.Kind())
}

func (p *printer) array(dst []byte, elems []Value, depth int) ([]byte, error) {
	dst = p.token(dst, TokenArrayBracket, "[")
	if len(elems) == 0 {
		return p.token(dst, TokenArrayBracket, "]"), nil
	}
	var err error
	for i, e := range elems {
		if i > 0 {
			dst = p.token(dst, TokenComma, ",")
		}
		dst = p.newline(dst)
		dst = p.pad(dst, depth+1)
		dst, err = p.value(dst, e, depth+1)
		if err != nil {
			return dst, err
		}
	}
	dst = p.newline(dst)
	dst = p.pad(dst, depth)
	return p.token(dst, TokenArrayBracket, "]"), nil
}

func (p *printer) object(dst []byte, members []Member, depth int) ([]byte, error) {
	dst = p.token(dst, TokenObjectBrace, "{")
	if len(members) == 0 {
		return p.token(dst, TokenObjectBrace, "}"), nil
	}
	var err error
	for i, m := range members {
		if i > 0 {
			dst = p.token(dst, TokenComma, ",")
		}
		dst = p.newline(dst)
		dst = p.pad(dst, depth+1)
		dst = p.stringToken(dst, TokenObjectKey, m.Key)
		dst = p.token(dst, TokenColon, ":")
		if !p.compact {
			dst = append(dst, ' ')
		}
		dst, err = p.value(dst, m.Value, depth+1)
		if err != nil {
			return dst, err
		}
	}
	dst = p.newline(dst)
	dst = p.pad(dst, depth)
	return p.token(dst, TokenObjectBrace, "}"), nil
}

// token writes one styled span. The style's escape sequences wrap
// exactly the token text; indentation and line breaks stay unstyled.
func (p *printer) token(dst []byte, class TokenClass, text string) []byte {
	if !p.color {
		return append(dst, text...)
	}
	return append(dst, p.theme.Style(class).Render(text)...)
}

func (p *printer) stringToken(dst []byte, class TokenClass, s string) []byte {
	p.scratch = appendQuoted(p.scratch[:0], s)
	return p.token(dst, class, string(p.scratch))
}

func (p *printer) newline(dst []byte) []byte {
	if p.compact {
		return dst
	}
	return append(dst, '\n')
}

func (p *printer) pad(dst []byte, depth int) []byte {
	if p.compact {
		return dst
	}
	if len(p.prefix) != 0 {
		dst = append(dst, p.prefix...)
	}
	if p.indent == "  " {
		for i := 0; i < depth; i++ {
			dst = append(dst, ' ', ' ')
		}
		return dst
	}
	for i := 0; i < depth; i++ {
		dst = append(dst, p.indent...)
	}
	return dst
}

const hexDigits = "0123456789abcdef"

// appendQuoted appends s as a JSON string literal, quotes included.
// Control characters escape per the JSON grammar; valid UTF-8 passes
// through untouched. No HTML escaping: huex writes to terminals.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		if b := s[i]; b < utf8.RuneSelf {
			if b >= 0x20 && b != '"' && b != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch b {
			case '"':
				dst = append(dst, '\\', '"')
			case '\\':
				dst = append(dst, '\\', '\\')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, "�"...)
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// validNumber checks s against the JSON number grammar:
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?. NaN and Infinity in
// any spelling fail here, as do hex and octal forms.
func validNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && '1' <= s[i] && s[i] <= '9':
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i == len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i == len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i == len(s)
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
