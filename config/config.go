package config

import (
	"checkers/game"
	"checkers/meta"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

var ErrInvalidConfig = errors.New("invalid config")

// NoPruning is the Optimization value that disables alpha-beta pruning.
const NoPruning = "O0"

type BotConfig struct {
	IsWhiteBot     bool   `json:"IsWhiteBot"`
	IsBlackBot     bool   `json:"IsBlackBot"`
	WhiteBotLevel  int    `json:"WhiteBotLevel"`
	BlackBotLevel  int    `json:"BlackBotLevel"`
	BotScoringType string `json:"BotScoringType"`
	Optimization   string `json:"Optimization"`
	NoRandom       bool   `json:"NoRandom"`
	BotDelayMS     int    `json:"BotDelayMS"`
}

type GameConfig struct {
	MaxNumTurns int `json:"MaxNumTurns"`
}

type Config struct {
	Bot  BotConfig  `json:"Bot"`
	Game GameConfig `json:"Game"`
}

func DefaultConfig() Config {
	return Config{
		Bot: BotConfig{
			IsWhiteBot:     false,
			IsBlackBot:     true,
			WhiteBotLevel:  meta.BOT_LEVEL,
			BlackBotLevel:  meta.BOT_LEVEL,
			BotScoringType: meta.SCORING,
			Optimization:   meta.OPTIMIZATION,
			NoRandom:       false,
			BotDelayMS:     meta.BOT_DELAY_MS,
		},
		Game: GameConfig{
			MaxNumTurns: meta.MAX_TURNS,
		},
	}
}

// Load reads the settings file at path. An empty path searches the XDG config
// directories; if no file is found there the defaults are returned. Fields missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		found, err := xdg.SearchConfigFile(meta.CONFIG_FILE)
		if err != nil {
			return &cfg, nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config as indented JSON. An empty path writes to the XDG config home.
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := xdg.ConfigFile(meta.CONFIG_FILE)
		if err != nil {
			return fmt.Errorf("failed to locate config file: %w", err)
		}
		path = p
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, fs.FileMode(0664))
}

func (c *Config) Validate() error {
	if c.Bot.WhiteBotLevel < 0 {
		return fmt.Errorf("%w: WhiteBotLevel must not be negative, got %d", ErrInvalidConfig, c.Bot.WhiteBotLevel)
	}
	if c.Bot.BlackBotLevel < 0 {
		return fmt.Errorf("%w: BlackBotLevel must not be negative, got %d", ErrInvalidConfig, c.Bot.BlackBotLevel)
	}
	if _, err := game.ParseScoringMode(c.Bot.BotScoringType); err != nil {
		return fmt.Errorf("%w: BotScoringType: %v", ErrInvalidConfig, err)
	}
	if c.Bot.BotDelayMS < 0 {
		return fmt.Errorf("%w: BotDelayMS must not be negative, got %d", ErrInvalidConfig, c.Bot.BotDelayMS)
	}
	if c.Game.MaxNumTurns <= 0 {
		return fmt.Errorf("%w: MaxNumTurns must be positive, got %d", ErrInvalidConfig, c.Game.MaxNumTurns)
	}
	return nil
}

// SearchDepth returns the bot level configured for color.
func (c *Config) SearchDepth(color game.Color) int {
	if color == game.White {
		return c.Bot.WhiteBotLevel
	}
	return c.Bot.BlackBotLevel
}

func (c *Config) IsBot(color game.Color) bool {
	if color == game.White {
		return c.Bot.IsWhiteBot
	}
	return c.Bot.IsBlackBot
}

func (c *Config) PruningEnabled() bool {
	return c.Bot.Optimization != NoPruning
}

// ScoringMode falls back to ScoringNumber for unknown values; Validate reports them.
func (c *Config) ScoringMode() game.ScoringMode {
	mode, err := game.ParseScoringMode(c.Bot.BotScoringType)
	if err != nil {
		return game.ScoringNumber
	}
	return mode
}

func (c *Config) StepDelay() time.Duration {
	return time.Duration(c.Bot.BotDelayMS) * time.Millisecond
}
