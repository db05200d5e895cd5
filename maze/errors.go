package maze

import "errors"

var (
	// ErrInvalidDimension is returned when rows or columns is not positive.
	ErrInvalidDimension = errors.New("maze: rows and columns must be at least 1")
	// ErrInvalidStart is returned when the requested start cell lies outside the grid.
	ErrInvalidStart = errors.New("maze: start cell is out of bounds")
)
