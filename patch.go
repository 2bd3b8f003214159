package tomltree

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/tomltree/go-tomltree/codec"
	"github.com/tomltree/go-tomltree/debug"
	"github.com/tomltree/go-tomltree/tree"
)

// Patch applies an RFC 6902 JSON patch to the document. The patch operates
// on the JSON projection of the tree; the result is re-imported through the
// construction rule, replacing the document's content in place. The origin
// path, if any, survives.
func (c *Config) Patch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%w: %w", codec.ErrParse, err)
	}
	doc, err := codec.EncodeJSON(c.ToMap(), 0)
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("patching %s\n", doc)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	return c.reload(out)
}

// MergePatch applies an RFC 7386 merge patch to the document, with the same
// projection contract as Patch.
func (c *Config) MergePatch(patch []byte) error {
	doc, err := codec.EncodeJSON(c.ToMap(), 0)
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("merge patching %s with %s\n", doc, patch)
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return fmt.Errorf("error applying merge patch: %w", err)
	}
	return c.reload(out)
}

func (c *Config) reload(jsonDoc []byte) error {
	m, err := codec.DecodeJSON(jsonDoc)
	if err != nil {
		return err
	}
	root, err := tree.FromMap(m)
	if err != nil {
		return err
	}
	// assign through the pointer so Sub views sharing this node see the result
	*c.root = *root
	return nil
}
