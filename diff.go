package tomltree

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tomltree/go-tomltree/codec"
	"github.com/tomltree/go-tomltree/debug"
)

// Diff returns a line-oriented textual diff of the canonical TOML
// serializations of two documents, with -/+ prefixed lines for removals and
// insertions. It returns "" when the documents serialize identically.
func Diff(from, to *Config) (string, error) {
	diffs, err := diffLines(from, to)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for line := range strings.Lines(d.Text) {
			b.WriteString(prefix)
			b.WriteString(strings.TrimSuffix(line, "\n"))
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// DiffPretty is Diff with the diff library's ANSI-colored rendering,
// including unchanged context, for terminal display.
func DiffPretty(from, to *Config) (string, error) {
	diffs, err := diffLines(from, to)
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(diffs), nil
}

func diffLines(from, to *Config) ([]diffpatch.Diff, error) {
	fromText, err := codec.EncodeTOML(from.ToMap())
	if err != nil {
		return nil, err
	}
	toText, err := codec.EncodeTOML(to.ToMap())
	if err != nil {
		return nil, err
	}
	if debug.Diff() {
		debug.Logf("diffing %d bytes against %d bytes\n", len(fromText), len(toText))
	}
	dmp := diffpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(string(fromText), string(toText))
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	return dmp.DiffCharsToLines(diffs, lines), nil
}
