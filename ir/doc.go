// Package ir provides the in-memory representation shared by the JASN and
// JAML syntaxes.
//
// A Value is a recursive tagged union. The Type field indicates which of
// the per-variant fields is meaningful:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - IntType: Int64
//   - FloatType: Float64 (including ±Inf and NaN)
//   - StringType: Str
//   - BinaryType: Bytes
//   - TimestampType: Time (always offset-carrying, never naive)
//   - ListType: Values
//   - MapType: Keys and Values in parallel, keys unique
//
// Map entries keep the order they were constructed in. Constructors that
// receive explicit key/value pairs (FromKeyVals) reject duplicate keys
// rather than overwriting; FromMap sorts keys since Go map iteration order
// is unspecified. Sorted-by-key output is a formatting concern handled by
// the encode package.
//
// A Value tree is a strict tree: each node is exclusively owned by its
// parent and there is no aliasing, so a completed tree may be shared
// read-only across goroutines without synchronization.
package ir
