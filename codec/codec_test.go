package codec

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeTOML(t *testing.T) {
	m, err := DecodeTOML([]byte("[server]\nhost = \"localhost\"\nport = 8080\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"server": map[string]any{
			"host": "localhost",
			"port": int64(8080),
		},
	}
	if d := cmp.Diff(want, m); d != "" {
		t.Errorf("decoded mapping differs: %s", d)
	}
}

func TestDecodeTOML_Empty(t *testing.T) {
	m, err := DecodeTOML(nil)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil || len(m) != 0 {
		t.Errorf("expected empty mapping, got %v", m)
	}
}

func TestDecodeTOML_Malformed(t *testing.T) {
	_, err := DecodeTOML([]byte("key = = 1"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	in := map[string]any{
		"name": "svc",
		"deep": map[string]any{"n": int64(1)},
	}
	d, err := EncodeTOML(in)
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeTOML(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, back); diff != "" {
		t.Errorf("round trip differs: %s", diff)
	}
}

func TestDecodeJSON_UseNumber(t *testing.T) {
	m, err := DecodeJSON([]byte(`{"i": 42, "f": 2.5}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m["i"].(json.Number); !ok {
		t.Errorf("integer decoded as %T, want json.Number", m["i"])
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	if _, err := DecodeJSON([]byte("{")); !errors.Is(err, ErrParse) {
		t.Error("expected ErrParse")
	}
}

func TestEncodeJSON_Indent(t *testing.T) {
	d, err := EncodeJSON(map[string]any{"a": map[string]any{"b": 1}}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d), "\n    \"a\"") {
		t.Errorf("expected 4-space indent in %q", d)
	}
}
