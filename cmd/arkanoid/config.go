package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after the search
path and the difficulty preset are applied, as YAML. The first line names
the file it was loaded from.

Search order:
  --config <path>
  ~/.arkanoid/configs/arkanoid.{yaml,yml,toml}
  ./configs/arkanoid.{yaml,yml,toml}
  embedded defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead (a starting point for ~/.arkanoid/configs/arkanoid.yaml)")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := loadGameConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", config.Source(flagConfig))
	if flagDifficulty != "" {
		fmt.Printf("# difficulty: %s\n", flagDifficulty)
	}
	fmt.Print(string(data))
}
