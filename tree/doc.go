// Package tree provides the node representation for TOML configuration
// documents.
//
// # Overview
//
// Every value in a document (whether parsed from a file, imported from JSON,
// or created programmatically) is represented as a *Node. A Node is a simple
// recursive tagged union: the Type field selects which of the other fields
// carry the value. Tables keep their keys in insertion order in parallel
// Keys/Values slices, mirroring source order from parsed documents.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := tree.FromString("hello")
//	num := tree.FromInt(42)
//	tbl := tree.NewTable()
//	tbl.Set("key", tree.FromBool(true))
//
// FromGo and FromMap convert the plain any-trees produced by the TOML and
// JSON codecs; ToGo is the inverse projection.
//
// # Thread Safety
//
// Node structures are not thread-safe. Access from multiple goroutines must
// be synchronized by the caller.
//
// # Related Packages
//
//   - github.com/tomltree/go-tomltree - the document-level Config API
//   - github.com/tomltree/go-tomltree/codec - TOML/JSON text codecs
package tree
