package tomltree

import (
	"fmt"
	"os"
	"strings"

	"github.com/tomltree/go-tomltree/codec"
	"github.com/tomltree/go-tomltree/tree"
)

// Config is a TOML table exposed as a navigable object: the document root
// returned by Load, or any nested table reached through Sub. The origin path
// is not data; it lives outside the tree and is recorded only by Load, so
// only the loaded root can Save itself.
type Config struct {
	root *tree.Node
	path string
}

// New returns an empty document.
func New() *Config {
	return &Config{root: tree.NewTable()}
}

// FromMap builds a Config from a plain nested mapping. Mapping values
// recursively become sub-tables; everything else is bound as-is. No origin
// path is attached.
func FromMap(m map[string]any) (*Config, error) {
	root, err := tree.FromMap(m)
	if err != nil {
		return nil, err
	}
	return &Config{root: root}, nil
}

// Load reads the TOML document at path and returns its root Config with
// path recorded as the origin. A missing file is created empty (a touch,
// never a truncation), so loading a nonexistent path yields an empty
// document. Malformed content fails with an error wrapping codec.ErrParse.
func Load(path string) (*Config, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("error touching %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	m, err := codec.DecodeTOML(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	root, err := tree.FromMap(m)
	if err != nil {
		return nil, err
	}
	return &Config{root: root, path: path}, nil
}

// FromJSON reads the JSON document at path and builds a Config from it via
// the same construction rule as FromMap. The result carries no origin path,
// so it can only be written back with SaveToFile.
func FromJSON(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	m, err := codec.DecodeJSON(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return FromMap(m)
}

// Tree returns the underlying table node. Mutations through it are visible
// to the Config.
func (c *Config) Tree() *tree.Node {
	return c.root
}

// Path returns the origin path, or "" when none is recorded.
func (c *Config) Path() string {
	return c.path
}

// Has reports whether key is bound on this table. No dot splitting.
func (c *Config) Has(key string) bool {
	return c.root.Has(key)
}

// Sub returns the sub-table bound to key as a live view: mutations through
// the returned Config are visible to the parent. It fails with a KeyError
// when key is absent and a tree.TypeError when the bound value is not a
// table. Sub views carry no origin path.
func (c *Config) Sub(key string) (*Config, error) {
	n := c.root.Get(key)
	if n == nil {
		return nil, &KeyError{Key: key}
	}
	if n.Type != tree.TableType {
		return nil, &tree.TypeError{Path: key, Want: tree.TableType, Got: n.Type}
	}
	return &Config{root: n}, nil
}

// Get returns the value bound to key on this table. Scalars and arrays
// project to plain Go values. A sub-table projects to a map[string]any
// snapshot with one level of unwrapping: its scalar and array entries
// project to Go values while nested sub-tables appear as live *Config
// views. Get is single-level; dotted traversal for reads is done by
// chaining Sub, not by Get.
func (c *Config) Get(key string) (any, error) {
	n := c.root.Get(key)
	if n == nil {
		return nil, &KeyError{Key: key}
	}
	if n.Type != tree.TableType {
		return n.ToGo(), nil
	}
	res := make(map[string]any, n.Len())
	for _, k := range n.TableKeys() {
		v := n.Get(k)
		if v.Type == tree.TableType {
			res[k] = &Config{root: v}
			continue
		}
		res[k] = v.ToGo()
	}
	return res, nil
}

// AddItem binds value at the dotted key, creating missing intermediate
// tables along the way. The leaf is bound unconditionally, overwriting any
// existing value, scalar or table alike. Descending through a bound
// non-table value fails with a tree.TypeError naming the offending prefix.
func (c *Config) AddItem(key string, value any) error {
	segs, err := splitKey(key)
	if err != nil {
		return err
	}
	n, err := tree.FromGo(value)
	if err != nil {
		return err
	}
	cur := c.root
	for i, seg := range segs[:len(segs)-1] {
		next := cur.Get(seg)
		if next == nil {
			next = tree.NewTable()
			cur.Set(seg, next)
		} else if next.Type != tree.TableType {
			return &tree.TypeError{
				Path: strings.Join(segs[:i+1], "."),
				Want: tree.TableType,
				Got:  next.Type,
			}
		}
		cur = next
	}
	cur.Set(segs[len(segs)-1], n)
	return nil
}

// AddItems applies AddItem for every key/value pair of every mapping in
// items. There is no atomicity: a failure partway through leaves earlier
// items applied.
func (c *Config) AddItems(items []map[string]any) error {
	for _, item := range items {
		for key, value := range item {
			if err := c.AddItem(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// UpdateItem rebinds an existing key on this table. Unlike AddItem it does
// no dot splitting and never creates: an absent key fails with a KeyError.
func (c *Config) UpdateItem(key string, value any) error {
	if !c.root.Has(key) {
		return &KeyError{Key: key}
	}
	n, err := tree.FromGo(value)
	if err != nil {
		return err
	}
	c.root.Set(key, n)
	return nil
}

// RemoveItem unbinds the dotted key. Every segment along the path must
// already exist; a missing one fails with a KeyError carrying the full
// original dotted key. Now-empty intermediate tables are not pruned.
func (c *Config) RemoveItem(key string) error {
	segs, err := splitKey(key)
	if err != nil {
		return err
	}
	cur := c.root
	for i, seg := range segs[:len(segs)-1] {
		next := cur.Get(seg)
		if next == nil {
			return &KeyError{Key: key}
		}
		if next.Type != tree.TableType {
			return &tree.TypeError{
				Path: strings.Join(segs[:i+1], "."),
				Want: tree.TableType,
				Got:  next.Type,
			}
		}
		cur = next
	}
	if !cur.Delete(segs[len(segs)-1]) {
		return &KeyError{Key: key}
	}
	return nil
}

// ToMap exports the document as a plain nested mapping: sub-tables recurse,
// scalars and arrays pass through, null-valued keys are excluded. The
// origin path is not part of the tree and so never appears. This is the
// canonical projection used by both TOML and JSON export.
func (c *Config) ToMap() map[string]any {
	return c.root.ToGo().(map[string]any)
}

// ToJSON renders the ToMap projection as JSON with 4-space indentation.
func (c *Config) ToJSON() (string, error) {
	d, err := codec.EncodeJSON(c.ToMap(), 4)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// SaveToFile serializes the document as TOML and writes it to path,
// overwriting existing content.
func (c *Config) SaveToFile(path string) error {
	d, err := codec.EncodeTOML(c.ToMap())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, d, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// Save writes the document back to its origin path. It fails with ErrNoPath
// when the Config was not produced by Load.
func (c *Config) Save() error {
	if c.path == "" {
		return ErrNoPath
	}
	return c.SaveToFile(c.path)
}

func splitKey(key string) ([]string, error) {
	segs := strings.Split(key, ".")
	for _, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("invalid key %q", key)
		}
	}
	return segs, nil
}
