// Package config loads phase10 settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete configuration
type Config struct {
	Game    GameSettings
	Storage StorageSettings
	Log     LogSettings
}

// GameSettings contains rules that vary between households. A MaxRoundScore
// of zero removes the per-round limit.
type GameSettings struct {
	MinPlayers    int
	MaxPlayers    int
	MaxRoundScore int
}

// StorageSettings controls where games and history are kept
type StorageSettings struct {
	DataDir      string `hcl:"data_dir,optional"`
	HistoryLimit int    `hcl:"history_limit,optional"`
}

// LogSettings controls diagnostic output
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// fileGame distinguishes an explicit zero from an absent attribute.
type fileGame struct {
	MinPlayers    *int `hcl:"min_players,optional"`
	MaxPlayers    *int `hcl:"max_players,optional"`
	MaxRoundScore *int `hcl:"max_round_score,optional"`
}

// fileConfig mirrors Config with every block optional.
type fileConfig struct {
	Game    *fileGame        `hcl:"game,block"`
	Storage *StorageSettings `hcl:"storage,block"`
	Log     *LogSettings     `hcl:"log,block"`
}

var validLevels = map[string]log.Level{
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
}

// DefaultDataDir returns ~/.phase10, or .phase10 when there is no home directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".phase10"
	}
	return filepath.Join(home, ".phase10")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			MinPlayers:    2,
			MaxPlayers:    6,
			MaxRoundScore: 500,
		},
		Storage: StorageSettings{
			DataDir:      DefaultDataDir(),
			HistoryLimit: 50,
		},
		Log: LogSettings{
			Level: "warn",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply file values over the defaults
	if fc.Game != nil {
		if fc.Game.MinPlayers != nil {
			cfg.Game.MinPlayers = *fc.Game.MinPlayers
		}
		if fc.Game.MaxPlayers != nil {
			cfg.Game.MaxPlayers = *fc.Game.MaxPlayers
		}
		if fc.Game.MaxRoundScore != nil {
			cfg.Game.MaxRoundScore = *fc.Game.MaxRoundScore
		}
	}
	if fc.Storage != nil {
		if fc.Storage.DataDir != "" {
			cfg.Storage.DataDir = fc.Storage.DataDir
		}
		if fc.Storage.HistoryLimit != 0 {
			cfg.Storage.HistoryLimit = fc.Storage.HistoryLimit
		}
	}
	if fc.Log != nil && fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.MinPlayers < 2 {
		return fmt.Errorf("min_players must be at least 2, got %d", c.Game.MinPlayers)
	}
	if c.Game.MaxPlayers < c.Game.MinPlayers {
		return fmt.Errorf("max_players (%d) must not be less than min_players (%d)",
			c.Game.MaxPlayers, c.Game.MinPlayers)
	}
	if c.Game.MaxRoundScore < 0 {
		return fmt.Errorf("max_round_score must not be negative, got %d", c.Game.MaxRoundScore)
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("data_dir must be set")
	}
	if c.Storage.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be positive, got %d", c.Storage.HistoryLimit)
	}
	if _, ok := validLevels[c.Log.Level]; !ok {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// LogLevel returns the configured level, defaulting to info.
func (c *Config) LogLevel() log.Level {
	if level, ok := validLevels[c.Log.Level]; ok {
		return level
	}
	return log.InfoLevel
}
