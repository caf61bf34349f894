package main

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/sim"
	"github.com/sheikhrachel/go-life/utils"
)

func TestBuildBoard(t *testing.T) {
	config := utils.DefaultConfig()
	config.Pattern = "block"
	config.OffsetX, config.OffsetY = 3, 4

	board, err := buildBoard(config)
	if err != nil {
		t.Fatal(err)
	}
	if !board.Bounds().IsFinite() || board.Bounds().Width() != config.Width {
		t.Errorf("bounds = %+v", board.Bounds())
	}
	for _, c := range []model.Cell{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 5}} {
		if !board.IsAlive(c) {
			t.Errorf("%v not alive", c)
		}
	}

	config.Finite = false
	if board, err = buildBoard(config); err != nil || board.Bounds().IsFinite() {
		t.Errorf("infinite config built %v, %v", board, err)
	}

	config.Pattern = "nope"
	if _, err = buildBoard(config); errors.Cause(err) != model.ErrUnknownPattern {
		t.Errorf("unknown pattern error = %v", err)
	}
}

func TestBuildBoardRandomIsSeeded(t *testing.T) {
	config := utils.DefaultConfig()
	config.Pattern = randomPattern
	config.RandomDensity = 0.5

	a, err := buildBoard(config)
	if err != nil {
		t.Fatal(err)
	}
	b, err := buildBoard(config)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("same seed produced different boards")
	}
}

func TestRunnerOptions(t *testing.T) {
	config := utils.DefaultConfig()
	config.FrameRate = 0
	config.MaxGenerations = 3

	var (
		stats  = utils.NewStats()
		frames int
	)
	board, err := buildBoard(config)
	if err != nil {
		t.Fatal(err)
	}

	opts := runnerOptions(config, stats, func(sim.Frame) { frames++ })
	if opts.HistoryCapacity != config.HistoryCapacity || opts.EvictHistory != config.EvictHistory {
		t.Errorf("history options not copied: %+v", opts)
	}

	res, err := sim.NewRunner(board, &sim.FrameRecorder{}, opts).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != sim.ReasonGenerationLimit || frames != 4 {
		t.Errorf("reason = %v, frames = %d", res.Reason, frames)
	}
	if stats.TotalGenerations != 3 || stats.PeakPopulation != 5 {
		t.Errorf("stats = %+v", stats)
	}
}
