package sim

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// History is the set of boards already seen in a run.
//
// A capacity of 0 keeps every board. With a positive capacity the history
// either evicts the oldest board on overflow (repeats are then detected only
// within the retained window) or refuses the insert with ErrHistoryFull.
type History struct {
	capacity int
	evict    bool

	order  []*model.Board
	byHash map[string][]*model.Board
}

// NewHistory creates a history holding at most capacity boards (0 = unbounded)
func NewHistory(capacity int, evict bool) *History {
	return &History{
		capacity: max(capacity, 0),
		evict:    evict,
		byHash:   make(map[string][]*model.Board),
	}
}

// Len returns the number of retained boards
func (h *History) Len() int {
	return len(h.order)
}

// Capacity returns the configured capacity, 0 when unbounded
func (h *History) Capacity() int {
	return h.capacity
}

// Add records b, evicting the oldest board when full and eviction is enabled
func (h *History) Add(b *model.Board) error {
	if h.capacity > 0 && len(h.order) >= h.capacity {
		if !h.evict {
			return errors.Wrapf(ErrHistoryFull, "[Add] capacity %d", h.capacity)
		}
		h.removeOldest()
	}

	key := b.Hash()
	h.order = append(h.order, b)
	h.byHash[key] = append(h.byHash[key], b)
	return nil
}

// Contains reports whether a board equal to b is retained
func (h *History) Contains(b *model.Board) bool {
	for _, seen := range h.byHash[b.Hash()] {
		if seen.Equal(b) {
			return true
		}
	}
	return false
}

func (h *History) removeOldest() {
	oldest := h.order[0]
	h.order[0] = nil
	h.order = h.order[1:]

	key := oldest.Hash()
	bucket := h.byHash[key]
	for i, b := range bucket {
		if b == oldest {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(h.byHash, key)
		return
	}
	h.byHash[key] = bucket
}
