package core

import "errors"

// Sentinel errors for core grid construction.
var (
	// ErrEmptyGrid indicates the input 2D cost slice has no rows or
	// no columns.
	ErrEmptyGrid = errors.New("core: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("core: all rows must have the same length")
)
