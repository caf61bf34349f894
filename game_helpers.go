package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/sim"
	"github.com/sheikhrachel/go-life/utils"
)

const randomPattern = "random"

// buildBoard creates the starting board described by config
func buildBoard(config utils.Config) (*model.Board, error) {
	var cells []model.Cell
	if config.Pattern == randomPattern {
		rng := rand.New(rand.NewSource(config.Seed))
		cells = model.RandomCells(config.Width, config.Height, config.RandomDensity, rng)
	} else {
		pattern, err := model.Pattern(config.Pattern)
		if err != nil {
			return nil, errors.Wrap(err, "[buildBoard] failed to load pattern")
		}
		cells = model.Translate(pattern, config.OffsetX, config.OffsetY)
	}

	if !config.Finite {
		return model.NewInfiniteBoard(cells...), nil
	}

	board, err := model.NewFiniteBoard(config.Width, config.Height, cells...)
	if err != nil {
		return nil, errors.Wrap(err, "[buildBoard] failed to create finite board")
	}
	return board, nil
}

// runnerOptions maps config onto runner options, feeding every frame into stats
func runnerOptions(config utils.Config, stats *utils.Stats, onFrame func(sim.Frame)) sim.Options {
	lastFrame := time.Now()
	return sim.Options{
		Delay:           config.FrameRate,
		Clock:           sim.RealClock{},
		HistoryCapacity: config.HistoryCapacity,
		EvictHistory:    config.EvictHistory,
		MaxGenerations:  config.MaxGenerations,
		Observer: func(f sim.Frame) {
			now := time.Now()
			stats.Update(f.Generation, f.Board.Population(), now.Sub(lastFrame))
			lastFrame = now
			if onFrame != nil {
				onFrame(f)
			}
		},
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	kind := "infinite"
	if config.Finite {
		kind = fmt.Sprintf("finite %dx%d", config.Width, config.Height)
	}
	history := "unbounded"
	if config.HistoryCapacity > 0 {
		history = fmt.Sprintf("%d states (evict: %v)", config.HistoryCapacity, config.EvictHistory)
	}

	fmt.Printf("Board: %s | Pattern: %s | Initial living cells: %d\n", kind, config.Pattern, board.Population())
	fmt.Printf("History: %s | Frame delay: %v\n", history, config.FrameRate)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// statusLine summarises a frame for the TUI header
func statusLine(f sim.Frame) string {
	return fmt.Sprintf("Gen: %d | Living: %d", f.Generation, f.Board.Population())
}

// displayFinalStats prints how the run ended
func displayFinalStats(result sim.Result, stats *utils.Stats) {
	fmt.Printf("\nFinished after %d generations: %s\n", result.Generations, result.Reason)
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d peak population, %.1fs runtime\n",
		stats.OverallRate(), stats.AveragePopulation, stats.PeakPopulation, stats.Runtime().Seconds())
}
