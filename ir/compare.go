package ir

import (
	"bytes"
	"math"
)

// Equal reports whether two values are structurally equal. Float NaN is
// treated as equal to NaN so that round-tripped trees compare equal;
// timestamps must denote the same instant at the same UTC offset.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.Int64 == b.Int64
	case FloatType:
		if math.IsNaN(a.Float64) || math.IsNaN(b.Float64) {
			return math.IsNaN(a.Float64) && math.IsNaN(b.Float64)
		}
		return a.Float64 == b.Float64
	case StringType:
		return a.Str == b.Str
	case BinaryType:
		return bytes.Equal(a.Bytes, b.Bytes)
	case TimestampType:
		if !a.Time.Equal(b.Time) {
			return false
		}
		_, aOff := a.Time.Zone()
		_, bOff := b.Time.Zone()
		return aOff == bOff
	case ListType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case MapType:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		for i, key := range a.Keys {
			bv := b.Get(key)
			if bv == nil || !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	}
	return false
}
