// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bounded

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString marshals values with their types as strings, like `"i32[1,10](2)"`.
	JSONModeString = iota
	// JSONModeValue marshals values as bare numbers, like `2`.
	// Such values can only be unmarshaled into an Int, which already has a type.
	JSONModeValue
	// JSONModeObject marshals values as objects, like `{"w":32,"lo":1,"hi":10,"v":2}`.
	JSONModeObject
)

type jsonInt struct {
	W  Width `json:"w"`
	Lo int64 `json:"lo"`
	Hi int64 `json:"hi"`
	V  int64 `json:"v"`
}

// ParseType parses a type in the form of "i32[1,10]".
func ParseType(s string) (Type, error) {
	t, end, err := parseType(s)
	if err == nil {
		if rest := strings.TrimSpace(s[end:]); len(rest) > 0 {
			err = newPosError(fmt.Sprintf("unexpected symbol %q", rest[0]), strings.Index(s[end:], rest)+end+1)
		}
	}
	if err != nil {
		return Type{}, fmt.Errorf("parsing %q failed: %w", s, err)
	}
	return t, nil
}

// ParseInt parses a value in the form of "i32[1,10](2)".
func ParseInt(s string) (Int, error) {
	v, err := parseInt(s)
	if err != nil {
		return Int{}, fmt.Errorf("parsing %q failed: %w", s, err)
	}
	return v, nil
}

func parseInt(s string) (Int, error) {
	t, end, err := parseType(s)
	if err != nil {
		return Int{}, err
	}
	open := strings.IndexByte(s[end:], '(')
	if open < 0 || len(strings.TrimSpace(s[end:end+open])) > 0 {
		return Int{}, newPosError("expected '('", end+1)
	}
	open += end
	closing := strings.IndexByte(s[open:], ')')
	if closing < 0 {
		return Int{}, newPosError("expected ')'", len(s)+1)
	}
	closing += open
	if rest := strings.TrimSpace(s[closing+1:]); len(rest) > 0 {
		return Int{}, newPosError(fmt.Sprintf("unexpected symbol %q", rest[0]), strings.Index(s[closing+1:], rest)+closing+2)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s[open+1:closing]), 10, 64)
	if err != nil {
		return Int{}, newPosError("bad value", open+2)
	}
	return t.New(v)
}

// parseType parses the "i32[1,10]" prefix of s.
// Returns the type and the index of the first symbol after ']'.
func parseType(s string) (Type, int, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return Type{}, 0, newPosError("expected '['", len(s)+1)
	}
	w, err := ParseWidth(strings.TrimSpace(s[:open]))
	if err != nil {
		return Type{}, 0, err
	}
	closing := strings.IndexByte(s[open:], ']')
	if closing < 0 {
		return Type{}, 0, newPosError("expected ']'", len(s)+1)
	}
	closing += open
	bounds := s[open+1 : closing]
	comma := strings.IndexByte(bounds, ',')
	if comma < 0 {
		return Type{}, 0, newPosError("expected ','", closing+1)
	}
	lo, err := strconv.ParseInt(strings.TrimSpace(bounds[:comma]), 10, 64)
	if err != nil {
		return Type{}, 0, newPosError("bad lower bound", open+2)
	}
	hi, err := strconv.ParseInt(strings.TrimSpace(bounds[comma+1:]), 10, 64)
	if err != nil {
		return Type{}, 0, newPosError("bad upper bound", open+comma+3)
	}
	t, err := NewType(w, lo, hi)
	return t, closing + 1, err
}

// MarshalText returns the type as "i32[1,10]".
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: invalid type", ErrBounds)
	}
	return []byte(t.String()), nil
}

// UnmarshalText parses a type, see ParseType.
func (t *Type) UnmarshalText(data []byte) error {
	parsed, err := ParseType(string(data))
	if err == nil {
		*t = parsed
	}
	return err
}

// MarshalText returns the value as "i32[1,10](2)".
func (v Int) MarshalText() ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: invalid type", ErrBounds)
	}
	return []byte(v.String()), nil
}

// UnmarshalText parses a value, see ParseInt.
func (v *Int) UnmarshalText(data []byte) error {
	parsed, err := ParseInt(string(data))
	if err == nil {
		*v = parsed
	}
	return err
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Int) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode)
}

func (v Int) toJSON(mode int) ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: invalid type", ErrBounds)
	}
	switch mode {
	case JSONModeValue:
		return []byte(strconv.FormatInt(v.v, 10)), nil
	case JSONModeObject:
		return json.Marshal(jsonInt{W: v.t.w, Lo: v.t.iv.Lo, Hi: v.t.iv.Hi, V: v.v})
	default: // marshal as a string
		return []byte(strconv.Quote(v.String())), nil
	}
}

// UnmarshalJSON unmarshals a string, an object, or a number into a value.
// A number is checked against the type v already has. A null leaves v unchanged.
func (v *Int) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return v.UnmarshalText([]byte(s))
	case '{':
		var d jsonInt
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		t, err := NewType(d.W, d.Lo, d.Hi)
		if err != nil {
			return err
		}
		value, err := t.New(d.V)
		if err != nil {
			return err
		}
		*v = value
	default:
		if !v.IsValid() {
			return fmt.Errorf("%w: a bare number needs a typed value", ErrBounds)
		}
		var n int64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		value, err := v.t.New(n)
		if err != nil {
			return err
		}
		*v = value
	}
	return nil
}
