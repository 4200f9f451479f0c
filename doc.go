// Package huex renders parsed JSON values as human-readable,
// color-highlighted text for terminal display.
//
// huex is a presentation layer: it walks an already-parsed Value tree,
// classifies every token (object key, string, number, bool, null,
// punctuation) and emits it through a Theme of Lip Gloss styles. Color
// is resolved once per render from a ColorMode (auto, always, never)
// against the destination writer; plain output is byte-identical to
// colored output with the escape sequences removed.
//
// Basic usage:
//
//	v, err := huex.Parse([]byte(`{"name":"John Doe","age":43}`))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := huex.RenderTo(os.Stdout, v, nil); err != nil {
//		log.Fatal(err)
//	}
//
// Rendering raw JSON text to a string, without color:
//
//	opts := &huex.Options{Color: huex.ColorNever, Indent: "  "}
//	s, err := huex.RenderJSON(src, opts)
//
// Compact, single-line output with a named theme:
//
//	opts := &huex.Options{Compact: true, Theme: "dracula"}
//	if err := huex.RenderJSONTo(os.Stdout, src, opts); err != nil {
//		log.Fatal(err)
//	}
package huex
