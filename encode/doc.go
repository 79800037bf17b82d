// Package encode renders ir.Value trees to JASN or JAML text.
//
// # Usage
//
//	v := ir.FromMap(map[string]*ir.Value{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	text, err := encode.String(v)
//
//	// JAML, hex binary, single-line JASN
//	text, err = encode.String(v, encode.EncodeFormat(format.JAML))
//	text, err = encode.String(v, encode.BinaryAs(encode.Hex))
//	text, err = encode.String(v, encode.Compact())
//
// Rendering is total over well-formed values: every option combination
// produces text that parses back to an equal value.
package encode
