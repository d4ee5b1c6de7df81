package notation

import "errors"

// ErrInvalidFEN is returned, wrapped with the offending detail, when a FEN
// string cannot be read. Positions that parse but fail validation return the
// board package's error instead.
var ErrInvalidFEN = errors.New("invalid FEN")

// ErrInvalidMove is returned when move text does not name a legal move.
var ErrInvalidMove = errors.New("invalid move")
