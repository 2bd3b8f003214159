package tree

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	DatetimeType
	TableType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TableType:    "Table",
		ArrayType:    "Array",
		StringType:   "String",
		NumberType:   "Number",
		BoolType:     "Bool",
		DatetimeType: "Datetime",
		NullType:     "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":     NullType,
		"Bool":     BoolType,
		"Number":   NumberType,
		"String":   StringType,
		"Datetime": DatetimeType,
		"Array":    ArrayType,
		"Table":    TableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
		DatetimeType,
		TableType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case TableType, ArrayType:
		return false
	default:
		return true
	}
}
