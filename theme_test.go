package huex

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewThemeRequiresEveryClass(t *testing.T) {
	styles := map[TokenClass]lipgloss.Style{}
	for c := TokenClass(0); c < numTokenClasses; c++ {
		styles[c] = lipgloss.NewStyle()
	}
	if _, err := NewTheme(styles); err != nil {
		t.Fatalf("complete style map rejected: %v", err)
	}

	delete(styles, TokenComma)
	delete(styles, TokenNull)
	_, err := NewTheme(styles)
	if !errors.Is(err, ErrIncompleteTheme) {
		t.Fatalf("expected ErrIncompleteTheme, got %v", err)
	}
	for _, name := range []string{"comma", "null"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error does not name missing class %q: %v", name, err)
		}
	}
}

func TestThemeStyleIsTotal(t *testing.T) {
	th := DefaultTheme()
	for c := TokenClass(0); c < numTokenClasses; c++ {
		// Must not panic; styled output wraps the text.
		out := th.Style(c).Render("x")
		if !strings.Contains(out, "x") {
			t.Fatalf("style for %v lost its text: %q", c, out)
		}
	}
}

func TestDefaultThemeDistinguishesKeysFromStrings(t *testing.T) {
	th := DefaultTheme()
	key := th.Style(TokenObjectKey).Render("x")
	str := th.Style(TokenString).Render("x")
	if key == str {
		t.Fatalf("object keys and string values share a style: %q", key)
	}
	for _, punct := range []TokenClass{TokenArrayBracket, TokenObjectBrace, TokenComma, TokenColon} {
		p := th.Style(punct).Render("x")
		for _, val := range []TokenClass{TokenString, TokenNumber, TokenBool, TokenNull} {
			if p == th.Style(val).Render("x") {
				t.Fatalf("punctuation %v styled like value class %v", punct, val)
			}
		}
	}
}

func TestLookupTheme(t *testing.T) {
	for _, name := range []string{"", "default", "one-dark", "jq", "dracula", "nord", "gruvbox-light", "monokai", "tokyo-night", "NONE", " default "} {
		if _, err := LookupTheme(name); err != nil {
			t.Fatalf("LookupTheme(%q) failed: %v", name, err)
		}
	}

	_, err := LookupTheme("does-not-exist")
	if err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if !strings.Contains(err.Error(), "default") {
		t.Fatalf("unknown-theme error does not list valid names: %v", err)
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("theme names not sorted: %v", names)
	}
	want := map[string]bool{"default": false, "none": false, "jq": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Fatalf("theme %q missing from %v", n, names)
		}
	}
}

func TestNoneThemeRendersPlainEvenWhenForced(t *testing.T) {
	none, err := LookupTheme("none")
	if err != nil {
		t.Fatalf("LookupTheme(none) failed: %v", err)
	}
	for c := TokenClass(0); c < numTokenClasses; c++ {
		if out := none.Style(c).Render("x"); out != "x" {
			t.Fatalf("none theme styled %v: %q", c, out)
		}
	}
}

func TestTokenClassString(t *testing.T) {
	seen := map[string]bool{}
	for c := TokenClass(0); c < numTokenClasses; c++ {
		name := c.String()
		if name == "invalid" || seen[name] {
			t.Fatalf("bad or duplicate token class name %q for %d", name, c)
		}
		seen[name] = true
	}
}
