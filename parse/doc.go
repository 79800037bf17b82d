// Package parse turns JASN or JAML text into an ir.Value tree.
//
// The JASN parser is a plain recursive descent over the bracketed
// grammar. The JAML parser is line oriented: it splits the input into
// indentation-levelled lines and descends over those, delegating any
// scalar span (including inline bracketed collections) back to the JASN
// parser. Both reject duplicate map keys and bound nesting depth.
package parse
