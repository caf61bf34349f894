package model

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func TestPattern(t *testing.T) {
	for _, name := range PatternNames() {
		if _, err := Pattern(name); err != nil {
			t.Errorf("Pattern(%q) error = %v", name, err)
		}
	}

	if _, err := Pattern("pulsar-9000"); errors.Cause(err) != ErrUnknownPattern {
		t.Errorf("Pattern(unknown) error = %v, want ErrUnknownPattern", err)
	}

	// callers get a copy
	a, _ := Pattern("block")
	a[0] = Cell{X: 99, Y: 99}
	b, _ := Pattern("block")
	if b[0] == a[0] {
		t.Errorf("Pattern returned shared storage")
	}
}

func TestTranslate(t *testing.T) {
	got := Translate([]Cell{{0, 0}, {1, 2}}, 3, -1)
	want := []Cell{{3, -1}, {4, 1}}
	if !sameCells(got, want) {
		t.Fatalf("Translate() = %v, want %v", got, want)
	}
}

func TestRandomCells(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if cells := RandomCells(10, 10, 0, rng); len(cells) != 0 {
		t.Errorf("density 0 produced %d cells", len(cells))
	}
	if cells := RandomCells(10, 10, 1, rng); len(cells) != 100 {
		t.Errorf("density 1 produced %d cells, want 100", len(cells))
	}
	for _, c := range RandomCells(4, 3, 0.5, rng) {
		if c.X < 0 || c.X >= 4 || c.Y < 0 || c.Y >= 3 {
			t.Errorf("cell %v outside 4x3", c)
		}
	}
}
