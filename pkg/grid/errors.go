package grid

import "errors"

var (
	// ErrInvalidDimension is returned when width or height is below one.
	ErrInvalidDimension = errors.New("grid: invalid dimension")
	// ErrDegenerateWrap is returned when wrapping is requested on a board
	// narrower or shorter than two cells.
	ErrDegenerateWrap = errors.New("grid: wrap requires width and height of at least 2")
	// ErrUnknownCoordinate is returned for lookups outside the board.
	ErrUnknownCoordinate = errors.New("grid: unknown coordinate")
	// ErrAsymmetricLink reports a neighbor slot without its reverse link.
	ErrAsymmetricLink = errors.New("grid: asymmetric link")
	// ErrDiagonalMismatch reports a diagonal that disagrees with its cardinals
	// on an unwrapped board.
	ErrDiagonalMismatch = errors.New("grid: diagonal does not match cardinals")
)
