package ir

import "errors"

var ErrDuplicateKey = errors.New("duplicate key")
