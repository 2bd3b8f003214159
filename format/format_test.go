package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"t", TOMLFormat},
		{"toml", TOMLFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := ParseFormat("yaml"); !errors.Is(err, ErrBadFormat) {
		t.Error("expected ErrBadFormat")
	}
}

func TestFormat_TextRoundTrip(t *testing.T) {
	for _, f := range []Format{TOMLFormat, JSONFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("%s round-tripped to %s", f, back)
		}
	}
}

func TestFormat_Suffix(t *testing.T) {
	if TOMLFormat.Suffix() != ".toml" || JSONFormat.Suffix() != ".json" {
		t.Error("wrong suffixes")
	}
}
