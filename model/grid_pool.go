package model

import "sync"

// CountPool hands out scratch neighbour-count maps so Tick doesn't allocate
// a fresh map per generation. Maps never escape the tick that borrowed them.
type CountPool struct {
	pool sync.Pool
}

func NewCountPool() *CountPool {
	return &CountPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(map[Cell]int)
			},
		},
	}
}

// Get retrieves an empty count map from the pool
func (p *CountPool) Get() map[Cell]int {
	return p.pool.Get().(map[Cell]int)
}

// Put returns a count map to the pool, clearing its state
func (p *CountPool) Put(m map[Cell]int) {
	clear(m)
	p.pool.Put(m)
}

var defaultCountPool = NewCountPool()
