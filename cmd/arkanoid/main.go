// arkanoid is a fixed-timestep brick breaker for the terminal.
//
// Usage:
//
//	arkanoid [play] [game]   - Play in the terminal (default command)
//	arkanoid menu            - Pick a variant and difficulty interactively
//	arkanoid sim             - Run the simulation headless and print its state
//	arkanoid list            - List available game variants
//	arkanoid config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Config file (YAML or TOML)
//	--difficulty <name>   - Preset: easy, normal, hard
//	--verbose             - Debug logging
//	--log-file <path>     - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid [game]",
	Short: "Arkanoid - break blocks in your terminal",
	Long: `Arkanoid is a fixed-timestep brick breaker that runs in the terminal.

Available commands:
  play     - Play in the terminal (default)
  menu     - Pick a variant and difficulty
  sim      - Run headless for a number of frames
  list     - Show available game variants
  config   - Print the effective configuration

Examples:
  arkanoid
  arkanoid play arkanoid_classic --difficulty hard
  arkanoid menu
  arkanoid sim --frames 3600 --intent sweep
  arkanoid config --config ./arkanoid.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play logs are discarded otherwise)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the config from the search path and applies the
// difficulty preset.
func loadGameConfig(difficulty string) (config.ArkanoidConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	return cfg, cfg.Validate()
}

// gameID returns the game named in args, or the default game.
func gameID(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "arkanoid"
}
