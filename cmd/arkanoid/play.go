package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing. The game defaults to "arkanoid".

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  P/Esc      - Pause
  R          - Restart
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow ball, fast wide paddle
  normal - Values from the config file
  hard   - Fast ball, narrow paddle

Examples:
  arkanoid play
  arkanoid play arkanoid_classic
  arkanoid play --difficulty easy
  arkanoid play --config ./my-arkanoid.yaml --log-file arkanoid.log -v`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	id := gameID(args)

	// Check if game exists
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'arkanoid list' to see available games.")
		os.Exit(1)
	}

	if err := playGame(id, flagDifficulty, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// playGame loads the config and runs the game in the terminal until the
// player quits.
func playGame(id, difficulty string, cfg core.RuntimeConfig) error {
	if cfg.TickRate <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", cfg.TickRate)
	}

	gameCfg, err := loadGameConfig(difficulty)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere
	out, closeLog, err := openLogOutput(io.Discard)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()

	game, err := registry.Create(id, gameCfg)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, tui.Options{
		ReleaseAfterTicks: gameCfg.Input.ReleaseAfterTicks,
		Logger:            newLogger(out, logLevel()),
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
