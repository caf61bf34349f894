package sim

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// State of a Runner
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "TERMINATED"
	}
	return "RUNNING"
}

// Reason explains why a run terminated
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonExtinct means the board ran out of live cells
	ReasonExtinct
	// ReasonRepeated means the board matched one already in the history
	ReasonRepeated
	// ReasonGenerationLimit means Options.MaxGenerations was reached
	ReasonGenerationLimit
)

func (r Reason) String() string {
	switch r {
	case ReasonExtinct:
		return "extinction"
	case ReasonRepeated:
		return "repeated state"
	case ReasonGenerationLimit:
		return "generation limit"
	}
	return "none"
}

// Frame is handed to the observer after every render
type Frame struct {
	Generation int
	Board      *model.Board
	Text       string
}

// Result summarises a finished run
type Result struct {
	Reason      Reason
	Generations int
	Final       *model.Board
}

// Options configures a Runner. The zero value runs without delay, with an
// unbounded history and no generation limit.
type Options struct {
	Delay time.Duration
	Clock Clock

	// HistoryCapacity bounds the seen-state set, 0 = unbounded
	HistoryCapacity int
	// EvictHistory drops the oldest state on overflow instead of failing with ErrHistoryFull
	EvictHistory bool

	// MaxGenerations stops the run after that many ticks, 0 = no limit
	MaxGenerations int

	Observer func(Frame)
}

// Runner drives a board generation by generation until it dies out or repeats.
//
// A board that never dies and never repeats (a glider on an infinite board)
// keeps the runner going until ctx is cancelled or MaxGenerations is hit.
type Runner struct {
	current    *model.Board
	sink       Sink
	opts       Options
	history    *History
	generation int
	state      State
	result     Result
}

// NewRunner creates a runner starting from board
func NewRunner(board *model.Board, sink Sink, opts Options) *Runner {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	return &Runner{
		current: board,
		sink:    sink,
		opts:    opts,
		history: NewHistory(opts.HistoryCapacity, opts.EvictHistory),
		state:   Running,
	}
}

// State returns RUNNING until Run has finished
func (r *Runner) State() State {
	return r.state
}

// Current returns the board most recently rendered
func (r *Runner) Current() *model.Board {
	return r.current
}

// Generation returns the number of ticks computed so far
func (r *Runner) Generation() int {
	return r.generation
}

// Run renders the current board, waits, records it, ticks, and checks the
// next board against the recorded ones, repeating until a terminal state.
// The next board is checked before it is itself recorded.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.state == Terminated {
		return r.result, errors.Wrap(ErrTerminated, "[Run] cannot restart")
	}

	if err := r.render(); err != nil {
		return r.result, err
	}
	if r.current.IsEmpty() {
		return r.terminate(ReasonExtinct), nil
	}

	for {
		if r.opts.MaxGenerations > 0 && r.generation >= r.opts.MaxGenerations {
			return r.terminate(ReasonGenerationLimit), nil
		}

		if err := r.opts.Clock.Sleep(ctx, r.opts.Delay); err != nil {
			return r.result, errors.Wrapf(err, "[Run] interrupted at generation %d", r.generation)
		}

		if err := r.history.Add(r.current); err != nil {
			return r.result, errors.Wrapf(err, "[Run] failed to record generation %d", r.generation)
		}

		next := r.current.Tick()
		r.generation++

		reason := ReasonNone
		switch {
		case next.IsEmpty():
			reason = ReasonExtinct
		case r.history.Contains(next):
			reason = ReasonRepeated
		}

		r.current = next
		if err := r.render(); err != nil {
			return r.result, err
		}
		if reason != ReasonNone {
			return r.terminate(reason), nil
		}
	}
}

func (r *Runner) terminate(reason Reason) Result {
	r.state = Terminated
	r.result = Result{Reason: reason, Generations: r.generation, Final: r.current}
	return r.result
}

func (r *Runner) render() error {
	text, err := frameText(r.current)
	if err != nil {
		return errors.Wrapf(err, "[render] failed to render generation %d", r.generation)
	}
	if err := r.sink.Clear(); err != nil {
		return errors.Wrapf(err, "[render] failed to clear sink at generation %d", r.generation)
	}
	if err := r.sink.Draw(text); err != nil {
		return errors.Wrapf(err, "[render] failed to draw generation %d", r.generation)
	}
	if r.opts.Observer != nil {
		r.opts.Observer(Frame{Generation: r.generation, Board: r.current, Text: text})
	}
	return nil
}

// frameText renders b, drawing an empty infinite board as an empty frame
func frameText(b *model.Board) (string, error) {
	if b.IsEmpty() && !b.Bounds().IsFinite() {
		return "", nil
	}
	return model.Render(b)
}
