package sim

import "github.com/pkg/errors"

var (
	// ErrHistoryFull is returned when a non-evicting history reaches its capacity
	ErrHistoryFull = errors.New("history capacity exceeded")
	// ErrTerminated is returned when Run is called on a runner that already finished
	ErrTerminated = errors.New("runner already terminated")
)
