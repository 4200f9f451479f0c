package huex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Value is a parsed JSON document: a closed tagged variant over null,
// bool, number, string, array, and object. Object members keep their
// insertion order, and numbers keep the textual form they were parsed
// with. The renderer treats Values as read-only.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  []Member
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a JSON number value carrying the given textual form.
// The text is not validated here; rendering rejects forms outside the
// JSON number grammar (NaN, Infinity, hex, and the like).
func Number(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// Int returns a JSON number value for i.
func Int(i int64) Value { return Number(json.Number(strconv.FormatInt(i, 10))) }

// Float returns a JSON number value for f. Non-finite floats produce a
// textual form the renderer refuses, since JSON cannot express them.
func Float(f float64) Value {
	return Number(json.Number(strconv.FormatFloat(f, 'g', -1, 64)))
}

// String returns a JSON string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns a JSON array of the given elements.
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Object returns a JSON object of the given members, in order.
func Object(members ...Member) Value { return Value{kind: KindObject, obj: members} }

// Field builds an object member.
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }

// Kind reports the shape of v.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.b }

// Number returns the number payload. Valid only for KindNumber.
func (v Value) Number() json.Number { return v.num }

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string { return v.str }

// Elems returns the array elements. Valid only for KindArray.
func (v Value) Elems() []Value { return v.arr }

// Members returns the object members in insertion order. Valid only
// for KindObject.
func (v Value) Members() []Member { return v.obj }

// Parse builds a Value tree from a single serialized JSON document.
// Object key order is preserved and numbers keep their original text.
// Anything but trailing whitespace after the document is an error.
func Parse(src []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("huex: parse: %w", err)
	}
	if dec.More() {
		return Value{}, errors.New("huex: parse: trailing data after JSON document")
	}
	return v, nil
}

// From adapts any Go value through encoding/json marshalling. Object
// keys arrive in encoding/json's order (sorted for maps, declaration
// order for structs).
func From(x any) (Value, error) {
	raw, err := json.Marshal(x)
	if err != nil {
		return Value{}, fmt.Errorf("huex: from: %w", err)
	}
	return Parse(raw)
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var members []Member
			for dec.More() {
				ktok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := ktok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key token %v", ktok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				members = append(members, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return Object(members...), nil
		case '[':
			var elems []Value
			for dec.More() {
				e, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, e)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return Array(elems...), nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}
