package model

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "#"
	gridPosDead  = "."

	// ansiClearHome clears the screen and moves the cursor to the top-left corner
	ansiClearHome = "\033[H\033[2J"
)

// Render draws the board over its own Window: one row per line,
// cells separated by a single space. Empty infinite boards have no window.
func Render(b *Board) (string, error) {
	w, err := b.Window()
	if err != nil {
		return "", errors.Wrap(err, "[Render] failed to compute window")
	}
	return RenderWindow(b, w), nil
}

// RenderWindow draws the board over an explicit window
func RenderWindow(b *Board, w Window) string {
	var sb strings.Builder
	for y := w.MinY; y <= w.MaxY; y++ {
		for x := w.MinX; x <= w.MaxX; x++ {
			if x > w.MinX {
				sb.WriteByte(' ')
			}
			if b.IsAlive(Cell{X: x, Y: y}) {
				sb.WriteString(gridPosAlive)
			} else {
				sb.WriteString(gridPosDead)
			}
		}
		if y < w.MaxY {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// TerminalRenderer writes frames to a terminal, clearing between them with ANSI sequences
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Draw writes a frame followed by a newline
func (r *TerminalRenderer) Draw(frame string) error {
	if _, err := fmt.Fprintln(r.Out, frame); err != nil {
		return errors.Wrap(err, "[Draw] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.Out, ansiClearHome); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
