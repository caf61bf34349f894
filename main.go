package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/sim"
	"github.com/sheikhrachel/go-life/tui"
	"github.com/sheikhrachel/go-life/utils"
)

const tuiFps = 30

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to a JSON config file")
		pattern    = flag.String("pattern", "", "starting pattern: random, "+strings.Join(model.PatternNames(), ", "))
		finite     = flag.Bool("finite", true, "wall the board at width x height")
		useTUI     = flag.Bool("tui", false, "draw frames in a full-screen terminal UI")
		delay      = flag.Duration("delay", 0, "pause between frames")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("failed to load config: %+v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pattern":
			config.Pattern = *pattern
		case "finite":
			config.Finite = *finite
		case "tui":
			config.UseTUI = *useTUI
		case "delay":
			config.FrameRate = *delay
		}
	})
	if err = config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	board, err := buildBoard(config)
	if err != nil {
		log.Fatalf("failed to build board: %+v", err)
	}

	displayGameInfo(config, board)

	var (
		ctx            = context.Background()
		sink  sim.Sink = model.NewTerminalRenderer()
		front frontend
	)
	if config.UseTUI {
		// termloop reads Ctrl+C as a key; SIGTERM keeps its default action
		screen := tui.New(tuiFps)
		sink, front = screen, screen
	} else {
		// Handle Ctrl+C gracefully
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err = (sim.RealClock{}).Sleep(ctx, time.Second); err != nil {
			fmt.Println("\n🛑 Shutting down gracefully...")
			return
		}
	}

	result, stats, err := run(ctx, config, board, sink, front)
	if err != nil && errors.Cause(err) != context.Canceled {
		log.Fatalf("simulation failed: %+v", err)
	}
	if err != nil {
		fmt.Println("\n🛑 Shutting down gracefully...")
	}
	displayFinalStats(result, stats)
}

// frontend is a full-screen display that owns the terminal until its own exit key
type frontend interface {
	sim.Sink
	SetStatus(status string)
	Start()
}

// run drives the simulation and, when front is set, the display alongside it.
// A failed run is reported on the status line; the display stays up until the user leaves it.
func run(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	sink sim.Sink,
	front frontend,
) (sim.Result, *utils.Stats, error) {
	var (
		stats   = utils.NewStats()
		result  sim.Result
		onFrame func(sim.Frame)
	)

	eg, ctx := errgroup.WithContext(ctx)

	if front != nil {
		onFrame = func(f sim.Frame) { front.SetStatus(statusLine(f)) }
		eg.Go(func() error {
			front.Start()
			return context.Canceled
		})
	}

	runner := sim.NewRunner(board, sink, runnerOptions(config, stats, onFrame))
	eg.Go(func() error {
		res, err := runner.Run(ctx)
		result = res
		if err != nil {
			err = errors.Wrap(err, "[run] simulation stopped")
			if front != nil {
				front.SetStatus(fmt.Sprintf("Stopped: %v | Ctrl+C to exit", err))
			}
			return err
		}
		if front != nil {
			front.SetStatus(fmt.Sprintf("Finished after %d generations: %s | Ctrl+C to exit",
				res.Generations, res.Reason))
		}
		return nil
	})

	err := eg.Wait()
	if result.Final == nil {
		result = sim.Result{Generations: runner.Generation(), Final: runner.Current()}
	}
	return result, stats, err
}
