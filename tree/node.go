package tree

import (
	"slices"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Node is one value in a configuration document. It works as a recursive
// tagged union: the Type field selects which of the other fields carry the
// value.
//
// For TableType nodes, Keys[i] is the key for the value at Values[i], so
// there are always the same number of keys as values. Keys are unique within
// a table and keep their insertion order. ArrayType nodes use Values only.
//
// NumberType nodes carry exactly one of Int64, Float64. DatetimeType nodes
// carry exactly one of Time, LocalDate, LocalDateTime, LocalTime; the local
// variants are kept in the codec's own types so a document using them
// round-trips unchanged.
//
// NullType is the absence marker: it only arises from JSON imports and is
// excluded when a table is projected back to plain data.
type Node struct {
	Type Type

	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64

	Time          *time.Time
	LocalDate     *toml.LocalDate
	LocalDateTime *toml.LocalDateTime
	LocalTime     *toml.LocalTime
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromTime(v time.Time) *Node {
	return &Node{Type: DatetimeType, Time: &v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// NewTable returns an empty table node.
func NewTable() *Node {
	return &Node{Type: TableType}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// Get returns the value bound to key on a table node, or nil when the key is
// absent or the node is not a table.
func (n *Node) Get(key string) *Node {
	if n.Type != TableType {
		return nil
	}
	for i := range n.Keys {
		if n.Keys[i] == key {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Has(key string) bool {
	return n.Get(key) != nil
}

// Set binds key to v, overwriting an existing binding in place so key order
// is stable under rebinding.
func (n *Node) Set(key string, v *Node) {
	for i := range n.Keys {
		if n.Keys[i] == key {
			n.Values[i] = v
			return
		}
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, v)
}

// Delete unbinds key and reports whether it was bound.
func (n *Node) Delete(key string) bool {
	for i := range n.Keys {
		if n.Keys[i] == key {
			n.Keys = slices.Delete(n.Keys, i, i+1)
			n.Values = slices.Delete(n.Values, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of keys of a table or elements of an array.
func (n *Node) Len() int {
	return len(n.Values)
}

// TableKeys returns a copy of the table's keys in insertion order.
func (n *Node) TableKeys() []string {
	return slices.Clone(n.Keys)
}

func (n *Node) Clone() *Node {
	res := &Node{
		Type:   n.Type,
		String: n.String,
		Bool:   n.Bool,
	}
	if n.Keys != nil {
		res.Keys = slices.Clone(n.Keys)
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	if n.Int64 != nil {
		i := *n.Int64
		res.Int64 = &i
	}
	if n.Float64 != nil {
		f := *n.Float64
		res.Float64 = &f
	}
	if n.Time != nil {
		t := *n.Time
		res.Time = &t
	}
	if n.LocalDate != nil {
		d := *n.LocalDate
		res.LocalDate = &d
	}
	if n.LocalDateTime != nil {
		dt := *n.LocalDateTime
		res.LocalDateTime = &dt
	}
	if n.LocalTime != nil {
		lt := *n.LocalTime
		res.LocalTime = &lt
	}
	return res
}

// Visit walks the node tree in pre- and post-order. f is called with isPost
// false before descending and true after; returning false from the pre call
// skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
