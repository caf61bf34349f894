package model

// Bounds decides which coordinates may exist on a board.
// The zero value is unbounded; Rect builds a fixed wall-bounded rectangle.
type Bounds struct {
	finite bool
	width  int
	height int
}

// Unbounded returns bounds that accept every coordinate
func Unbounded() Bounds {
	return Bounds{}
}

// Rect returns bounds accepting exactly [0, width) x [0, height)
func Rect(width, height int) Bounds {
	return Bounds{finite: true, width: width, height: height}
}

// Contains reports whether c lies inside the bounds
func (b Bounds) Contains(c Cell) bool {
	if !b.finite {
		return true
	}
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// IsFinite reports whether the bounds are a fixed rectangle
func (b Bounds) IsFinite() bool {
	return b.finite
}

// Width returns the rectangle width, 0 when unbounded
func (b Bounds) Width() int {
	return b.width
}

// Height returns the rectangle height, 0 when unbounded
func (b Bounds) Height() int {
	return b.height
}

func (b Bounds) tag() string {
	if b.finite {
		return "finite"
	}
	return "infinite"
}
