package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the built-in configuration. It matches the
// embedded YAML and is the last fallback if that fails to parse.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Playfield: Playfield{
			Width:  320,
			Height: 180,
		},
		Physics: Physics{
			BallSpeed:   2,
			PaddleSpeed: 4,
		},
		Ball: Ball{
			X:    160,
			Y:    125,
			Size: 4,
		},
		Paddle: Paddle{
			X:      160,
			Y:      170,
			Width:  32,
			Height: 4,
		},
		Blocks: Blocks{
			Rows:         12,
			Columns:      10,
			Width:        32,
			Height:       4,
			RowsPerColor: 2,
		},
		Palette: []string{
			"#c84848",
			"#c66c3a",
			"#b47a30",
			"#a2a22a",
			"#48a048",
			"#4248c8",
		},
		Input: Input{
			ReleaseAfterTicks: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
