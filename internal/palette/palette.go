// Package palette holds the raw color data behind the named huex
// themes. Colors are Lip Gloss color values: "#rrggbb" hex, an
// ANSI-256 index like "219", or "" for the terminal's default
// foreground.
package palette

// Style is one visual attribute set for a single token class.
type Style struct {
	Color string
	Bold  bool
	Faint bool
}

// Palette assigns a Style to every huex token class.
type Palette struct {
	Key          Style
	String       Style
	Number       Style
	Bool         Style
	Null         Style
	ArrayBracket Style
	ObjectBrace  Style
	Comma        Style
	Colon        Style
}

// OneDark is the huex default, a VS Code / One Dark inspired palette.
var OneDark = Palette{
	Key:          Style{Color: "#61AFEF", Bold: true},
	String:       Style{Color: "#98C379"},
	Number:       Style{Color: "#D19A66"},
	Bool:         Style{Color: "#56B6C2"},
	Null:         Style{Color: "#5C6370", Faint: true},
	ArrayBracket: Style{Color: "#ABB2BF", Bold: true},
	ObjectBrace:  Style{Color: "#ABB2BF", Bold: true},
	Comma:        Style{Color: "#ABB2BF"},
	Colon:        Style{Color: "#ABB2BF"},
}

// JQ mirrors jq's default JQ_COLORS: blue bold keys, green strings,
// default-foreground numbers and booleans, gray null, bold brackets.
var JQ = Palette{
	Key:          Style{Color: "4", Bold: true},
	String:       Style{Color: "2"},
	Number:       Style{},
	Bool:         Style{},
	Null:         Style{Color: "8"},
	ArrayBracket: Style{Bold: true},
	ObjectBrace:  Style{Bold: true},
	Comma:        Style{Bold: true},
	Colon:        Style{Bold: true},
}

// Dracula carries pink, purple, and cyan accents.
var Dracula = Palette{
	Key:          Style{Color: "219"},
	String:       Style{Color: "141"},
	Number:       Style{Color: "111"},
	Bool:         Style{Color: "81"},
	Null:         Style{Color: "240", Faint: true},
	ArrayBracket: Style{Color: "147"},
	ObjectBrace:  Style{Color: "147"},
	Comma:        Style{Color: "95"},
	Colon:        Style{Color: "95"},
}

// Nord channels cool glacier blues.
var Nord = Palette{
	Key:          Style{Color: "153"},
	String:       Style{Color: "152"},
	Number:       Style{Color: "109"},
	Bool:         Style{Color: "115"},
	Null:         Style{Color: "245", Faint: true},
	ArrayBracket: Style{Color: "110"},
	ObjectBrace:  Style{Color: "110"},
	Comma:        Style{Color: "245"},
	Colon:        Style{Color: "245"},
}

// GruvboxLight is a light-background variant with warm browns.
var GruvboxLight = Palette{
	Key:          Style{Color: "130"},
	String:       Style{Color: "108"},
	Number:       Style{Color: "66"},
	Bool:         Style{Color: "142"},
	Null:         Style{Color: "180", Faint: true},
	ArrayBracket: Style{Color: "136"},
	ObjectBrace:  Style{Color: "136"},
	Comma:        Style{Color: "180"},
	Colon:        Style{Color: "180"},
}

// Monokai mixes neon yellows and minty greens.
var Monokai = Palette{
	Key:          Style{Color: "229"},
	String:       Style{Color: "121"},
	Number:       Style{Color: "198"},
	Bool:         Style{Color: "118"},
	Null:         Style{Color: "59", Faint: true},
	ArrayBracket: Style{Color: "141"},
	ObjectBrace:  Style{Color: "141"},
	Comma:        Style{Color: "59"},
	Colon:        Style{Color: "59"},
}

// TokyoNight draws on neon blues and violets.
var TokyoNight = Palette{
	Key:          Style{Color: "69"},
	String:       Style{Color: "110"},
	Number:       Style{Color: "176"},
	Bool:         Style{Color: "117"},
	Null:         Style{Color: "244", Faint: true},
	ArrayBracket: Style{Color: "74"},
	ObjectBrace:  Style{Color: "74"},
	Comma:        Style{Color: "244"},
	Colon:        Style{Color: "244"},
}
