// Package tui draws simulation frames in a full-screen terminal UI.
package tui

import (
	"strings"
	"sync"

	tl "github.com/JoelOtter/termloop"
)

const (
	aliveRune = '#'
	deadRune  = '.'

	// board rows start below the status line
	boardTop = 2
)

// Sink is a sim.Sink backed by a termloop game. Frames arrive from the
// runner goroutine and are picked up by termloop's draw loop.
type Sink struct {
	game  *tl.Game
	board *boardEntity
}

// New creates a terminal sink refreshing at fps frames per second
func New(fps float64) *Sink {
	s := &Sink{
		game:  tl.NewGame(),
		board: &boardEntity{},
	}
	s.game.SetEndKey(tl.KeyCtrlC)
	s.game.Screen().SetFps(fps)
	s.game.Screen().AddEntity(s.board)
	return s
}

// Start runs the terminal UI until the user presses Ctrl+C
func (s *Sink) Start() {
	s.game.Start()
}

// Clear is a no-op: Draw swaps the whole frame at once, so the draw loop never sees a blank board
func (s *Sink) Clear() error {
	return nil
}

// Draw replaces the current frame
func (s *Sink) Draw(frame string) error {
	if frame == "" {
		s.board.set(nil)
		return nil
	}
	s.board.set(strings.Split(frame, "\n"))
	return nil
}

// SetStatus replaces the line shown above the board
func (s *Sink) SetStatus(status string) {
	s.board.setStatus(status)
}

// Snapshot returns the current frame rows and status line
func (s *Sink) Snapshot() ([]string, string) {
	return s.board.snapshot()
}

type boardEntity struct {
	mu     sync.Mutex
	rows   []string
	status string
}

func (e *boardEntity) set(rows []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rows = rows
}

func (e *boardEntity) setStatus(status string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = status
}

func (e *boardEntity) snapshot() ([]string, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rows := make([]string, len(e.rows))
	copy(rows, e.rows)
	return rows, e.status
}

func (e *boardEntity) Tick(tl.Event) {}

func (e *boardEntity) Draw(screen *tl.Screen) {
	rows, status := e.snapshot()

	for x, ch := range []rune(status) {
		screen.RenderCell(x, 0, &tl.Cell{Fg: tl.ColorWhite, Ch: ch})
	}
	for y, row := range rows {
		for x, ch := range []rune(row) {
			screen.RenderCell(x, boardTop+y, cellFor(ch))
		}
	}
}

func cellFor(ch rune) *tl.Cell {
	switch ch {
	case aliveRune:
		return &tl.Cell{Fg: tl.ColorGreen, Ch: ch}
	case deadRune:
		return &tl.Cell{Fg: tl.ColorWhite, Ch: ch}
	}
	return &tl.Cell{Ch: ch}
}
