package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Board is an immutable generation: a set of live cells plus the bounds
// that decide which coordinates may exist. An unbounded Board grows freely;
// a finite one is walled at [0, width) x [0, height).
type Board struct {
	bounds Bounds
	alive  map[Cell]struct{}
}

// NewInfiniteBoard creates an unbounded board with the given live cells
func NewInfiniteBoard(cells ...Cell) *Board {
	return newBoard(Unbounded(), cells)
}

// NewFiniteBoard creates a wall-bounded board. Cells outside the rectangle are dropped.
func NewFiniteBoard(width, height int, cells ...Cell) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewFiniteBoard] got %dx%d", width, height)
	}
	return newBoard(Rect(width, height), cells), nil
}

// NewBoard creates a board with the given bounds
func NewBoard(bounds Bounds, cells ...Cell) (*Board, error) {
	if bounds.IsFinite() {
		return NewFiniteBoard(bounds.Width(), bounds.Height(), cells...)
	}
	return NewInfiniteBoard(cells...), nil
}

func newBoard(bounds Bounds, cells []Cell) *Board {
	alive := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		if bounds.Contains(c) {
			alive[c] = struct{}{}
		}
	}
	return &Board{bounds: bounds, alive: alive}
}

// Bounds returns the board's boundary strategy
func (b *Board) Bounds() Bounds {
	return b.bounds
}

// IsEmpty reports whether no cell is alive
func (b *Board) IsEmpty() bool {
	return len(b.alive) == 0
}

// IsAlive reports whether c is in the live set
func (b *Board) IsAlive(c Cell) bool {
	_, ok := b.alive[c]
	return ok
}

// IsDead reports whether c is not in the live set
func (b *Board) IsDead(c Cell) bool {
	return !b.IsAlive(c)
}

// Population returns the number of live cells
func (b *Board) Population() int {
	return len(b.alive)
}

// Cells returns the live cells in row-major order
func (b *Board) Cells() []Cell {
	out := make([]Cell, 0, len(b.alive))
	for c := range b.alive {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, c Cell) int {
		switch {
		case a.less(c):
			return -1
		case c.less(a):
			return 1
		}
		return 0
	})
	return out
}

// neighbors returns the in-bounds Moore neighbours of c
func (b *Board) neighbors(c Cell) []Cell {
	all := c.Neighbors()
	out := all[:0]
	for _, n := range all {
		if b.bounds.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// CountNeighbors returns how many in-bounds neighbours of c are alive
func (b *Board) CountNeighbors(c Cell) (count int) {
	for _, n := range b.neighbors(c) {
		if b.IsAlive(n) {
			count++
		}
	}
	return
}

// Tick returns the next generation. The receiver is not modified.
func (b *Board) Tick() *Board {
	counts := defaultCountPool.Get()
	defer defaultCountPool.Put(counts)

	// Every candidate is a neighbour of some live cell, and its count is the
	// number of live cells it neighbours.
	for c := range b.alive {
		for _, n := range b.neighbors(c) {
			counts[n]++
		}
	}

	next := &Board{bounds: b.bounds, alive: make(map[Cell]struct{}, len(b.alive))}
	for c, n := range counts {
		if rules.ApplyConwayRules(n, b.IsAlive(c)) {
			next.alive[c] = struct{}{}
		}
	}
	return next
}

// TickN advances the board n generations
func (b *Board) TickN(n int) *Board {
	cur := b
	for range n {
		cur = cur.Tick()
	}
	return cur
}

// Equal reports structural equality: same variant, same dimensions, same live set.
// Finite and infinite boards are never equal.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.bounds != o.bounds || len(b.alive) != len(o.alive) {
		return false
	}
	for c := range b.alive {
		if _, ok := o.alive[c]; !ok {
			return false
		}
	}
	return true
}

// Hash returns an MD5 digest of the variant, dimensions and sorted live set.
// Equal boards always hash equal.
func (b *Board) Hash() string {
	h := md5.New()
	h.Write([]byte(b.bounds.tag()))

	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	writeInt(b.bounds.Width())
	writeInt(b.bounds.Height())
	for _, c := range b.Cells() {
		writeInt(c.X)
		writeInt(c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Window returns the rectangle a renderer should draw.
// Finite boards always return their full rectangle; infinite boards return
// the live bounding box grown by one cell on each side, or ErrEmptyBoard.
func (b *Board) Window() (Window, error) {
	if b.bounds.IsFinite() {
		return Window{MinX: 0, MinY: 0, MaxX: b.bounds.Width() - 1, MaxY: b.bounds.Height() - 1}, nil
	}
	if b.IsEmpty() {
		return Window{}, errors.Wrap(ErrEmptyBoard, "[Window] no bounding box")
	}

	var (
		w     Window
		first = true
	)
	for c := range b.alive {
		if first {
			w = Window{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			first = false
			continue
		}
		w.MinX = min(w.MinX, c.X)
		w.MaxX = max(w.MaxX, c.X)
		w.MinY = min(w.MinY, c.Y)
		w.MaxY = max(w.MaxY, c.Y)
	}
	return w.Grow(1), nil
}

func (b *Board) String() string {
	if b.bounds.IsFinite() {
		return fmt.Sprintf("finite %dx%d %v", b.bounds.Width(), b.bounds.Height(), b.Cells())
	}
	return fmt.Sprintf("infinite %v", b.Cells())
}
