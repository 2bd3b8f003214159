package tomltree

import (
	"maps"

	"github.com/tomltree/go-tomltree/eval"
)

// Expand evaluates $[expr] spans inside the document's string values. The
// environment is the document's own ToMap projection with extra merged on
// top, so values can reference sibling keys:
//
//	[server]
//	host = "db.internal"
//	url = "https://$[server.host]/"
//
// The document is modified in place.
func (c *Config) Expand(extra eval.Env) error {
	env := eval.Env(c.ToMap())
	maps.Copy(env, extra)
	return eval.Expand(c.root, env)
}
