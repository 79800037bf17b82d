// Package convert bridges ir.Value trees to Go any-trees and to JSON
// and YAML documents. It is the interop layer for callers that already
// hold data as encoding/json- or yaml-shaped structures.
package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/arakholia/go-jasn/ir"
)

var ErrConvert = errors.New("cannot convert")

// ToAny maps a value tree onto plain Go types: nil, bool, int64,
// float64, string, []byte, time.Time, []any and map[string]any.
func ToAny(v *ir.Value) any {
	switch v.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return v.Bool
	case ir.IntType:
		return v.Int64
	case ir.FloatType:
		return v.Float64
	case ir.StringType:
		return v.Str
	case ir.BinaryType:
		return v.Bytes
	case ir.TimestampType:
		return v.Time
	case ir.ListType:
		res := make([]any, len(v.Values))
		for i, el := range v.Values {
			res[i] = ToAny(el)
		}
		return res
	case ir.MapType:
		res := make(map[string]any, len(v.Keys))
		for i, key := range v.Keys {
			res[key] = ToAny(v.Values[i])
		}
		return res
	default:
		panic("impossible production")
	}
}

// FromAny builds a value tree from plain Go data. Map entries are
// ordered by key; numbers widen to int64/float64; json.Number tries
// int64 first.
func FromAny(v any) (*ir.Value, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Value:
		return t.Clone(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int8:
		return ir.FromInt(int64(t)), nil
	case int16:
		return ir.FromInt(int64(t)), nil
	case int32:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return ir.FromInt(int64(t)), nil
	case uint16:
		return ir.FromInt(int64(t)), nil
	case uint32:
		return ir.FromInt(int64(t)), nil
	case uint64:
		return fromUint(t)
	case float32:
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrConvert, t.String())
		}
		return ir.FromFloat(f), nil
	case []byte:
		return ir.FromBinary(t), nil
	case time.Time:
		return ir.FromTimestamp(t), nil
	case []any:
		res := make([]*ir.Value, len(t))
		for i, el := range t {
			v, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return ir.FromSlice(res), nil
	case map[string]any:
		res := make(map[string]*ir.Value, len(t))
		for key, el := range t {
			v, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			res[key] = v
		}
		return ir.FromMap(res), nil
	case map[any]any:
		res := make(map[string]*ir.Value, len(t))
		for key, el := range t {
			sk, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string map key %v", ErrConvert, key)
			}
			v, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			res[sk] = v
		}
		return ir.FromMap(res), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrConvert, v)
	}
}

func fromUint(u uint64) (*ir.Value, error) {
	if u > 1<<63-1 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrConvert, u)
	}
	return ir.FromInt(int64(u)), nil
}

// MarshalJSON renders v as JSON. Binary becomes a base64 string and
// timestamps RFC 3339 strings, per encoding/json conventions; NaN and
// infinities have no JSON form and error.
func MarshalJSON(v *ir.Value) ([]byte, error) {
	return json.Marshal(ToAny(v))
}

func UnmarshalJSON(d []byte) (*ir.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return FromAny(v)
}

func MarshalYAML(v *ir.Value) ([]byte, error) {
	return yaml.Marshal(ToAny(v))
}

func UnmarshalYAML(d []byte) (*ir.Value, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return FromAny(v)
}
