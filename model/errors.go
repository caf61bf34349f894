package model

import "github.com/pkg/errors"

var (
	// ErrEmptyBoard is returned when a render window is requested for an empty infinite board
	ErrEmptyBoard = errors.New("board has no live cells")
	// ErrInvalidDimensions is returned for a finite board with a non-positive width or height
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	// ErrUnknownPattern is returned by Pattern for names it does not know
	ErrUnknownPattern = errors.New("unknown pattern")
)
