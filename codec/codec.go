// Package codec wraps the external TOML and JSON codecs behind the
// parse(text)->mapping / serialize(mapping)->text contract the rest of the
// library consumes. No parsing happens in this repository; malformed input
// errors come from the underlying codecs and are wrapped with ErrParse.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrParse wraps all malformed-input errors from the underlying codecs.
var ErrParse = errors.New("parse error")

// DecodeTOML parses TOML text into a nested mapping.
func DecodeTOML(d []byte) (map[string]any, error) {
	var m map[string]any
	if err := toml.Unmarshal(d, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// EncodeTOML serializes a nested mapping to TOML text.
func EncodeTOML(m map[string]any) ([]byte, error) {
	return toml.Marshal(m)
}

// DecodeJSON parses JSON text into a nested mapping. Numbers decode through
// json.Number so integral values stay integral.
func DecodeJSON(d []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return m, nil
}

// EncodeJSON serializes a value to JSON text with the given indent width.
func EncodeJSON(m any, indent int) ([]byte, error) {
	var pad string
	for range indent {
		pad += " "
	}
	return json.MarshalIndent(m, "", pad)
}
