// Package tomltree exposes TOML documents as attribute-style object trees.
//
// A document is loaded into a Config, whose nested tables are reached by
// chaining Sub and whose leaves are read with Get. Dotted keys mutate the
// tree through AddItem, UpdateItem and RemoveItem; the document round-trips
// to JSON with ToJSON/FromJSON and back to disk with Save/SaveToFile.
//
//	cfg, err := tomltree.Load("app.toml")
//	db, err := cfg.Sub("database")
//	host, err := db.Get("host")
//	err = cfg.AddItem("database.pool.size", 10)
//	err = cfg.Save()
//
// The TOML grammar itself belongs to the codec package's underlying
// library; this package only maps parsed tables onto node trees and back.
package tomltree
