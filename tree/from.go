package tree

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// FromGo converts a plain Go value to a node. It accepts the value shapes
// the TOML and JSON codecs produce when decoding into any: scalars,
// json.Number, time values, []any, map[string]any, and already-built nodes.
// Other slices and string-keyed maps (e.g. the []map[string]any the TOML
// codec yields for arrays of tables) are handled through a reflection
// fallback.
func FromGo(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return fromNumber(x)
	case time.Time:
		return FromTime(x), nil
	case toml.LocalDate:
		return &Node{Type: DatetimeType, LocalDate: &x}, nil
	case toml.LocalDateTime:
		return &Node{Type: DatetimeType, LocalDateTime: &x}, nil
	case toml.LocalTime:
		return &Node{Type: DatetimeType, LocalTime: &x}, nil
	case []any:
		vs := make([]*Node, len(x))
		for i, elt := range x {
			n, err := FromGo(elt)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		return FromMap(x)
	}
	return fromGoReflect(v)
}

// FromMap converts a plain nested mapping to a table node, recursing into
// mapping values. Keys are taken in sorted order so construction from a Go
// map is deterministic; callers that need a different order build the table
// with Set directly.
func FromMap(m map[string]any) (*Node, error) {
	res := NewTable()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		n, err := FromGo(m[k])
		if err != nil {
			return nil, err
		}
		res.Set(k, n)
	}
	return res, nil
}

func fromUint(v uint64) (*Node, error) {
	if v > math.MaxInt64 {
		return nil, fmt.Errorf("uint value %d overflows int64", v)
	}
	return FromInt(int64(v)), nil
}

func fromNumber(v json.Number) (*Node, error) {
	if i, err := v.Int64(); err == nil {
		return FromInt(i), nil
	}
	f, err := v.Float64()
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", v.String(), err)
	}
	return FromFloat(f), nil
}

func fromGoReflect(v any) (*Node, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		vs := make([]*Node, rv.Len())
		for i := range rv.Len() {
			n, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &UnsupportedTypeError{Type: rv.Type()}
		}
		res := NewTable()
		for _, key := range rv.MapKeys() {
			n, err := FromGo(rv.MapIndex(key).Interface())
			if err != nil {
				return nil, err
			}
			res.Set(key.String(), n)
		}
		return res, nil
	default:
		return nil, &UnsupportedTypeError{Type: reflect.TypeOf(v)}
	}
}
