// Package encode renders node trees to an io.Writer in a chosen text
// format, with optional terminal colors for display.
package encode

import (
	"io"

	"github.com/tomltree/go-tomltree/codec"
	"github.com/tomltree/go-tomltree/format"
	"github.com/tomltree/go-tomltree/tree"
)

// Encode writes n to w. Table nodes render in the configured format
// (TOML by default); other nodes always render as JSON values since TOML
// has no top-level scalar form.
func Encode(n *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: format.TOMLFormat, indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	var (
		text []byte
		err  error
	)
	switch {
	case n.Type != tree.TableType, es.format == format.JSONFormat:
		text, err = codec.EncodeJSON(n.ToGo(), es.indent)
		if err != nil {
			return err
		}
		text = append(text, '\n')
	default:
		text, err = codec.EncodeTOML(n.ToGo().(map[string]any))
		if err != nil {
			return err
		}
		if es.colors != nil {
			text = []byte(es.colors.colorize(string(text)))
		}
	}
	_, err = w.Write(text)
	return err
}
