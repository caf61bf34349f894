package sim

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func TestHistoryUnbounded(t *testing.T) {
	h := NewHistory(0, false)
	b := model.NewInfiniteBoard(model.Cell{X: 1, Y: 1})

	if h.Contains(b) {
		t.Fatalf("empty history contains %v", b)
	}
	for i := 0; i < 100; i++ {
		if err := h.Add(model.NewInfiniteBoard(model.Cell{X: i})); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	if h.Len() != 100 {
		t.Errorf("Len() = %d, want 100", h.Len())
	}
	if !h.Contains(model.NewInfiniteBoard(model.Cell{X: 0})) {
		t.Errorf("oldest board lost from an unbounded history")
	}
}

func TestHistoryStructuralMembership(t *testing.T) {
	h := NewHistory(0, false)
	cells := []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if err := h.Add(model.NewInfiniteBoard(cells...)); err != nil {
		t.Fatal(err)
	}

	if !h.Contains(model.NewInfiniteBoard(cells[1], cells[0])) {
		t.Errorf("equal board built separately not found")
	}
	fin, err := model.NewFiniteBoard(2, 1, cells...)
	if err != nil {
		t.Fatal(err)
	}
	if h.Contains(fin) {
		t.Errorf("finite board matched an infinite one")
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(2, true)
	boards := []*model.Board{
		model.NewInfiniteBoard(model.Cell{X: 0}),
		model.NewInfiniteBoard(model.Cell{X: 1}),
		model.NewInfiniteBoard(model.Cell{X: 2}),
	}
	for _, b := range boards {
		if err := h.Add(b); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	if h.Len() != 2 || h.Capacity() != 2 {
		t.Fatalf("Len() = %d, Capacity() = %d, want 2 and 2", h.Len(), h.Capacity())
	}
	if h.Contains(boards[0]) {
		t.Errorf("oldest board not evicted")
	}
	if !h.Contains(boards[1]) || !h.Contains(boards[2]) {
		t.Errorf("recent boards missing")
	}
}

func TestHistoryEvictionWithDuplicates(t *testing.T) {
	h := NewHistory(2, true)
	a := model.NewInfiniteBoard(model.Cell{X: 0})
	for range 3 {
		if err := h.Add(a); err != nil {
			t.Fatal(err)
		}
	}
	if h.Len() != 2 || !h.Contains(a) {
		t.Fatalf("Len() = %d, Contains() = %v", h.Len(), h.Contains(a))
	}
}

func TestHistoryFull(t *testing.T) {
	h := NewHistory(1, false)
	if err := h.Add(model.NewInfiniteBoard()); err != nil {
		t.Fatal(err)
	}
	err := h.Add(model.NewInfiniteBoard(model.Cell{}))
	if errors.Cause(err) != ErrHistoryFull {
		t.Fatalf("Add() error = %v, want ErrHistoryFull", err)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d after refused Add", h.Len())
	}
}
