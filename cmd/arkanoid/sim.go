package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

var (
	flagFrames int
	flagIntent string
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run the simulation headless",
	Long: `Step the simulation for a fixed number of frames without a terminal UI
and print the final state. Two runs with the same config, frame count and
intent print the same hash.

Intent options:
  none   - Paddle stays still
  left   - Paddle held left
  right  - Paddle held right
  sweep  - Left, still, right, 30 frames each, repeated

Examples:
  arkanoid sim --frames 600
  arkanoid sim arkanoid_classic --frames 3600 --intent sweep -v`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simCmd.Flags().StringVar(&flagIntent, "intent", "none", "Paddle intent: none, left, right, sweep")
}

// intentFunc returns the paddle direction for a frame.
type intentFunc func(frame int) core.Direction

func parseIntent(s string) (intentFunc, error) {
	switch s {
	case "none", "":
		return func(int) core.Direction { return core.DirNone }, nil
	case "left":
		return func(int) core.Direction { return core.DirLeft }, nil
	case "right":
		return func(int) core.Direction { return core.DirRight }, nil
	case "sweep":
		return func(frame int) core.Direction {
			return core.Direction((frame/30)%3 - 1)
		}, nil
	default:
		return nil, fmt.Errorf("unknown intent %q (want none, left, right or sweep)", s)
	}
}

// simResult is the state printed after a headless run.
type simResult struct {
	ID     string
	Frames uint64
	Blocks int
	Total  int
	Ball   [6]int
	LostAt uint64 // Frame the ball froze on, 0 if it never did
	Hash   uint64
	Events map[core.EventKind]int
}

// simulate resets the game and steps it frames times.
func simulate(game *arkanoid.Game, frames int, intent intentFunc, onEvent func(frame uint64, ev core.Event)) (simResult, error) {
	if err := game.Reset(core.DefaultConfig()); err != nil {
		return simResult{}, err
	}

	res := simResult{ID: game.ID(), Events: make(map[core.EventKind]int)}
	in := core.NewInputFrame()
	for i := range frames {
		in.Intent = intent(i)
		step := game.Step(in)
		for _, ev := range step.Events {
			res.Events[ev.Kind]++
			if ev.Kind == core.EventBallLost {
				res.LostAt = step.State.Frame
			}
			if onEvent != nil {
				onEvent(step.State.Frame, ev)
			}
		}
	}

	snap := game.Simulation().Snapshot()
	res.Frames = snap.Frame
	res.Blocks = snap.BlocksRemaining()
	res.Total = len(snap.BlockAlpha)
	res.Ball = snap.Ball
	res.Hash = snap.Hash()
	return res, nil
}

func runSim(cmd *cobra.Command, args []string) {
	intent, err := parseIntent(flagIntent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFrames < 0 {
		fmt.Fprintf(os.Stderr, "Error: --frames must not be negative, got %d\n", flagFrames)
		os.Exit(1)
	}

	if err := simGame(cmd.OutOrStdout(), gameID(args), flagFrames, intent); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simGame runs a headless simulation and writes the result to w.
func simGame(w io.Writer, id string, frames int, intent intentFunc) error {
	gameCfg, err := loadGameConfig(flagDifficulty)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out, closeLog, err := openLogOutput(os.Stderr)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()
	logger := newLogger(out, logLevel()).With("game", id)

	created, err := registry.Create(id, gameCfg)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	game, ok := created.(*arkanoid.Game)
	if !ok {
		return fmt.Errorf("game %q cannot run headless", id)
	}

	logger.Debug("simulating", "frames", frames, "intent", flagIntent)
	res, err := simulate(game, frames, intent, func(frame uint64, ev core.Event) {
		logger.Debug(ev.Kind.String(), "frame", frame, "index", ev.Index)
	})
	if err != nil {
		return err
	}

	printSimResult(w, res)
	return nil
}

func printSimResult(w io.Writer, res simResult) {
	fmt.Fprintf(w, "game:      %s\n", res.ID)
	fmt.Fprintf(w, "frames:    %d\n", res.Frames)
	fmt.Fprintf(w, "blocks:    %d/%d remaining\n", res.Blocks, res.Total)
	fmt.Fprintf(w, "ball:      x=%d y=%d vx=%d vy=%d\n", res.Ball[0], res.Ball[1], res.Ball[4], res.Ball[5])
	if res.LostAt > 0 {
		fmt.Fprintf(w, "lost:      yes (frame %d)\n", res.LostAt)
	} else {
		fmt.Fprintln(w, "lost:      no")
	}
	fmt.Fprintf(w, "bounces:   wall=%d paddle=%d\n", res.Events[core.EventWallBounce], res.Events[core.EventPaddleBounce])
	fmt.Fprintf(w, "hash:      %016x\n", res.Hash)
}
