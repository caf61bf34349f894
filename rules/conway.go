// Package rules holds the fixed B3/S23 rule of Conway's Game of Life.
package rules

// ApplyConwayRules reports whether a cell is alive in the next generation,
// given its current state and its number of live neighbours.
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return Survives(neighbors)
	}
	return Born(neighbors)
}

// Survives reports whether a live cell with the given neighbour count stays alive
func Survives(neighbors int) bool {
	return neighbors == 2 || neighbors == 3
}

// Born reports whether a dead cell with the given neighbour count comes alive
func Born(neighbors int) bool {
	return neighbors == 3
}
