package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are tried in order inside each search directory.
var configNames = []string{"arkanoid.yaml", "arkanoid.yml", "arkanoid.toml"}

// Load loads the arkanoid configuration.
// Search order: customPath -> ~/.arkanoid/configs/arkanoid.{yaml,yml,toml}
// -> ./configs/arkanoid.{yaml,yml,toml} -> embedded default.
// Files found in the search directories that fail to parse are skipped; a
// custom path that fails to read or parse is an error. The result is
// validated in every case.
func Load(customPath string) (ArkanoidConfig, error) {
	cfg, _, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Source reports which file Load reads its values from, or "embedded" when
// none of the search locations has one that parses.
func Source(customPath string) string {
	_, source, err := load(customPath)
	if err != nil {
		return customPath
	}
	return source
}

// load returns the decoded config and the path it came from.
func load(customPath string) (ArkanoidConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ArkanoidConfig{}, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return ArkanoidConfig{}, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user then local config directories
	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := decode(path, data); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := decode("arkanoid.yaml", defaultArkanoidYAML)
	if err != nil {
		return DefaultArkanoidConfig(), "embedded", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// decode parses data on top of the defaults, so a file only needs to list
// the values it changes. The format follows the file extension.
func decode(path string, data []byte) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()
	cfg.Palette = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultArkanoidConfig().Palette
	}
	return cfg, nil
}

// Marshal renders the config as YAML, for the config command.
func Marshal(cfg ArkanoidConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// searchDirs lists the user and local config directories.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".arkanoid", "configs"))
	}
	return append(dirs, "configs")
}
