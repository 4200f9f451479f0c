package huex

import (
	"reflect"
	"strings"
	"testing"
)

const fuzzMaxInput = 1 << 20

func FuzzRenderJSON(f *testing.F) {
	seeds := [][]byte{
		[]byte("null"),
		[]byte("true"),
		[]byte("123"),
		[]byte("-0.5e+7"),
		[]byte("\"hello\""),
		[]byte("[1,2,3]"),
		[]byte("{}"),
		[]byte("[[[[]]]]"),
		[]byte("{\"a\":1,\"b\":[true,false],\"c\":null}"),
		[]byte("  {\"a\":\"x\\\"y\\u2603\"}  "),
		sampleJSON,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > fuzzMaxInput {
			return
		}

		v, err := Parse(data)
		if err != nil {
			return // invalid input is the parser's concern, not ours
		}

		for _, compact := range []bool{false, true} {
			out, err := Render(v, &Options{Color: ColorNever, Compact: compact, Indent: "  "})
			if err != nil {
				t.Fatalf("Render failed for valid value: %v\ninput: %q", err, data)
			}
			if strings.ContainsRune(out, '\u001b') {
				t.Fatalf("plain render emitted escape sequences: %q", out)
			}
			if compact && strings.ContainsRune(out, '\n') {
				t.Fatalf("compact render emitted a line break: %q", out)
			}

			again, err := Parse([]byte(out))
			if err != nil {
				t.Fatalf("rendered output does not parse: %v\noutput: %q", err, out)
			}
			if !reflect.DeepEqual(v, again) {
				t.Fatalf("render/parse round trip changed the value\ninput:  %q\noutput: %q", data, out)
			}

			colored, err := Render(v, &Options{Color: ColorAlways, Compact: compact, Indent: "  "})
			if err != nil {
				t.Fatalf("colored render failed: %v", err)
			}
			if stripEscapes(colored) != out {
				t.Fatalf("styling altered structural text\nplain:    %q\nstripped: %q", out, stripEscapes(colored))
			}
		}
	})
}
