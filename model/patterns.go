package model

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// patterns are named starting configurations anchored near the origin
var patterns = map[string][]Cell{
	"empty": {},
	// still life
	"block": {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	// period 2
	"blinker": {{0, 1}, {1, 1}, {2, 1}},
	"toad":    {{1, 1}, {2, 1}, {3, 1}, {0, 2}, {1, 2}, {2, 2}},
	"beacon":  {{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
	// moves one cell diagonally every 4 generations
	"glider": {{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}},
	// methuselah, stabilises after 1103 generations on an infinite board
	"r-pentomino": {{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
}

// Pattern returns a copy of the named pattern's live cells
func Pattern(name string) ([]Cell, error) {
	cells, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Pattern] %q", name)
	}
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out, nil
}

// PatternNames lists the known pattern names, sorted
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translate shifts every cell by (dx, dy)
func Translate(cells []Cell, dx, dy int) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = c.Add(Cell{X: dx, Y: dy})
	}
	return out
}

// RandomCells fills a width x height area, each cell alive with the given probability
func RandomCells(width, height int, density float64, rng *rand.Rand) []Cell {
	var cells []Cell
	for y := range height {
		for x := range width {
			if rng.Float64() < density {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}
