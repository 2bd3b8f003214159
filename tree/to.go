package tree

// ToGo projects a node back to plain Go data. Tables become map[string]any
// with null-valued keys excluded; arrays become []any and keep null elements
// as nil. Datetime nodes come back as the codec's own types so the
// projection re-encodes the way it was written.
func (n *Node) ToGo() any {
	switch n.Type {
	case TableType:
		res := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			if n.Values[i].Type == NullType {
				continue
			}
			res[k] = n.Values[i].ToGo()
		}
		return res
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = v.ToGo()
		}
		return res
	case StringType:
		return n.String
	case NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		return *n.Float64
	case BoolType:
		return n.Bool
	case DatetimeType:
		switch {
		case n.Time != nil:
			return *n.Time
		case n.LocalDate != nil:
			return *n.LocalDate
		case n.LocalDateTime != nil:
			return *n.LocalDateTime
		default:
			return *n.LocalTime
		}
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
