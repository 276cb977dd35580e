// Package model contains the data shapes exchanged with the DocuAgent backend.
// The backend owns every entity; these are transient request-scoped copies.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var errInvalidValue = errors.New("model: invalid JSON value")

// Kind classifies the JSON shape held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	// KindOther covers shapes outside the scalar union (objects, nested lists).
	// They are kept verbatim so unknown data survives a round trip.
	KindOther
)

// Value is one entry of an open metadata or settings bag: a string, number, boolean or
// list of scalars. The original JSON text is retained and re-emitted unchanged.
type Value struct {
	raw json.RawMessage
}

// StringValue returns a string Value.
func StringValue(s string) Value { return mustValue(s) }

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value {
	return Value{raw: json.RawMessage(strconv.FormatFloat(f, 'f', -1, 64))}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return mustValue(b) }

// ListValue returns a list Value. Elements should themselves be scalars.
func ListValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return mustValue(items)
}

func mustValue(v any) Value {
	b, err := json.Marshal(v)
	if err != nil {
		return Value{}
	}
	return Value{raw: b}
}

// MarshalJSON emits the stored JSON text unchanged.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// UnmarshalJSON stores a copy of the raw JSON text.
func (v *Value) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		return errInvalidValue
	}
	v.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Kind reports which member of the union v holds.
func (v Value) Kind() Kind {
	t := bytes.TrimSpace(v.raw)
	if len(t) == 0 {
		return KindNull
	}
	switch t[0] {
	case 'n':
		return KindNull
	case '"':
		return KindString
	case 't', 'f':
		return KindBool
	case '[':
		if _, ok := v.AsList(); ok {
			return KindList
		}
		return KindOther
	case '{':
		return KindOther
	default:
		return KindNumber
	}
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil || v.isNull() {
		return "", false
	}
	return s, true
}

// AsFloat returns the number held by v.
func (v Value) AsFloat() (float64, bool) {
	var f float64
	if err := json.Unmarshal(v.raw, &f); err != nil || v.isNull() {
		return 0, false
	}
	return f, true
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	var b bool
	if err := json.Unmarshal(v.raw, &b); err != nil || v.isNull() {
		return false, false
	}
	return b, true
}

// AsList returns the elements of v when it is a list of scalars.
func (v Value) AsList() ([]Value, bool) {
	var items []Value
	if err := json.Unmarshal(v.raw, &items); err != nil || v.isNull() {
		return nil, false
	}
	for _, it := range items {
		switch k := it.Kind(); k {
		case KindString, KindNumber, KindBool, KindNull:
		default:
			return nil, false
		}
	}
	return items, true
}

// String renders v for display: strings unquoted, lists comma separated, anything else as JSON.
func (v Value) String() string {
	switch v.Kind() {
	case KindNull:
		return ""
	case KindString:
		s, _ := v.AsString()
		return s
	case KindList:
		items, _ := v.AsList()
		parts := make([]string, 0, len(items))
		for _, it := range items {
			parts = append(parts, it.String())
		}
		return strings.Join(parts, ", ")
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, v.raw); err != nil {
			return string(v.raw)
		}
		return buf.String()
	}
}

func (v Value) isNull() bool {
	t := bytes.TrimSpace(v.raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
