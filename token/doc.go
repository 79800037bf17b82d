// Package token decodes and encodes the scalar literals shared by the
// JASN and JAML grammars: integers (decimal, hex, binary, octal, with _
// digit grouping), floats (including inf and nan), quoted strings with
// the JSON-style escape set, binary blobs (b64"..."/h"..."/hex"...") and
// RFC 3339 timestamps (ts"...").
//
// The parsers determine a token's category and span; this package turns
// the span's text into a value or a precise error.
package token
