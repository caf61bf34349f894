package model

import "fmt"

// Cell is a single (x, y) coordinate on the board
type Cell struct {
	X int
	Y int
}

// neighborOffsets is the Moore neighbourhood, row-major, excluding the centre
var neighborOffsets = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the 8 cells at Chebyshev distance 1
func (c Cell) Neighbors() [8]Cell {
	var out [8]Cell
	for i, off := range neighborOffsets {
		out[i] = Cell{X: c.X + off.X, Y: c.Y + off.Y}
	}
	return out
}

// Add returns the cell translated by d
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// less orders cells row-major: by Y, then X
func (c Cell) less(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}
