package ir

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	BinaryType
	TimestampType
	ListType
	MapType
)

func (t Type) String() string {
	return map[Type]string{
		NullType:      "null",
		BoolType:      "bool",
		IntType:       "int",
		FloatType:     "float",
		StringType:    "string",
		BinaryType:    "binary",
		TimestampType: "timestamp",
		ListType:      "list",
		MapType:       "map",
	}[t]
}

// Types returns all value types.
func Types() []Type {
	return []Type{
		NullType, BoolType, IntType, FloatType, StringType,
		BinaryType, TimestampType, ListType, MapType,
	}
}

// Value is a single node of a JASN/JAML document tree.
type Value struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	Str     string
	Bytes   []byte
	Time    time.Time

	// Keys holds map keys, parallel to Values. Values holds list elements
	// for ListType and map values for MapType.
	Keys   []string
	Values []*Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int64: v}
}

func FromFloat(v float64) *Value {
	return &Value{Type: FloatType, Float64: v}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, Str: v}
}

func FromBinary(d []byte) *Value {
	return &Value{Type: BinaryType, Bytes: d}
}

func FromTimestamp(t time.Time) *Value {
	return &Value{Type: TimestampType, Time: t}
}

func FromSlice(vs []*Value) *Value {
	return &Value{Type: ListType, Values: vs}
}

// FromMap builds a map value from a Go map. Entries are ordered by key
// since Go map iteration order is unspecified.
func FromMap(m map[string]*Value) *Value {
	res := &Value{
		Type:   MapType,
		Keys:   make([]string, 0, len(m)),
		Values: make([]*Value, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Keys = append(res.Keys, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals builds a map value preserving the given entry order. A
// repeated key is an error, never a silent overwrite.
func FromKeyVals(kvs []KeyVal) (*Value, error) {
	res := &Value{
		Type:   MapType,
		Keys:   make([]string, 0, len(kvs)),
		Values: make([]*Value, 0, len(kvs)),
	}
	for i := range kvs {
		kv := &kvs[i]
		if slices.Contains(res.Keys, kv.Key) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, kv.Key)
		}
		res.Keys = append(res.Keys, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res, nil
}

func (v *Value) IsNull() bool      { return v.Type == NullType }
func (v *Value) IsBool() bool      { return v.Type == BoolType }
func (v *Value) IsInt() bool       { return v.Type == IntType }
func (v *Value) IsFloat() bool     { return v.Type == FloatType }
func (v *Value) IsString() bool    { return v.Type == StringType }
func (v *Value) IsBinary() bool    { return v.Type == BinaryType }
func (v *Value) IsTimestamp() bool { return v.Type == TimestampType }
func (v *Value) IsList() bool      { return v.Type == ListType }
func (v *Value) IsMap() bool       { return v.Type == MapType }

func (v *Value) AsBool() (bool, bool) {
	if v.Type != BoolType {
		return false, false
	}
	return v.Bool, true
}

func (v *Value) AsInt() (int64, bool) {
	if v.Type != IntType {
		return 0, false
	}
	return v.Int64, true
}

func (v *Value) AsFloat() (float64, bool) {
	if v.Type != FloatType {
		return 0, false
	}
	return v.Float64, true
}

func (v *Value) AsString() (string, bool) {
	if v.Type != StringType {
		return "", false
	}
	return v.Str, true
}

func (v *Value) AsBinary() ([]byte, bool) {
	if v.Type != BinaryType {
		return nil, false
	}
	return v.Bytes, true
}

func (v *Value) AsTimestamp() (time.Time, bool) {
	if v.Type != TimestampType {
		return time.Time{}, false
	}
	return v.Time, true
}

func (v *Value) AsList() ([]*Value, bool) {
	if v.Type != ListType {
		return nil, false
	}
	return v.Values, true
}

// AsMap returns the map entries as a Go map. The returned map is a fresh
// view; mutating it does not affect the value or its entry order.
func (v *Value) AsMap() (map[string]*Value, bool) {
	if v.Type != MapType {
		return nil, false
	}
	res := make(map[string]*Value, len(v.Keys))
	for i, key := range v.Keys {
		res[key] = v.Values[i]
	}
	return res, true
}

// Get returns the map value for field, or nil if v is not a map or has no
// such entry.
func (v *Value) Get(field string) *Value {
	if v.Type != MapType {
		return nil
	}
	for i, key := range v.Keys {
		if key == field {
			return v.Values[i]
		}
	}
	return nil
}

// Take extracts the value, leaving null in its place. Bridge code uses
// this to move subtrees out without copying.
func (v *Value) Take() *Value {
	taken := *v
	*v = Value{Type: NullType}
	return &taken
}

func (v *Value) Clone() *Value {
	res := &Value{
		Type:    v.Type,
		Bool:    v.Bool,
		Int64:   v.Int64,
		Float64: v.Float64,
		Str:     v.Str,
		Time:    v.Time,
	}
	if v.Bytes != nil {
		res.Bytes = slices.Clone(v.Bytes)
	}
	if v.Keys != nil {
		res.Keys = slices.Clone(v.Keys)
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			res.Values[i] = vv.Clone()
		}
	}
	return res
}

// Visit walks the tree in depth-first order, calling f before (isPost
// false) and after (isPost true) each node's children. Returning false
// from the pre-order call skips the children.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
