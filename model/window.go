package model

// Window is an inclusive rectangle of cells to render
type Window struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Grow returns the window expanded by n cells on every side
func (w Window) Grow(n int) Window {
	return Window{MinX: w.MinX - n, MinY: w.MinY - n, MaxX: w.MaxX + n, MaxY: w.MaxY + n}
}

// Width returns the number of columns
func (w Window) Width() int {
	return w.MaxX - w.MinX + 1
}

// Height returns the number of rows
func (w Window) Height() int {
	return w.MaxY - w.MinY + 1
}
