package token

import "fmt"

// Pos is a position in an input document. Line and Col are 1-based.
type Pos struct {
	Off  int
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Col)
}

// Err wraps an error with a position for parser error reporting.
type Err struct {
	Err error
	Pos Pos
}

func (e *Err) Unwrap() error {
	return e.Err
}

func (e *Err) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func NewErr(err error, p Pos) *Err {
	return &Err{Err: err, Pos: p}
}
