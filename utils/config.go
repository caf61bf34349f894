package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Width           int           `json:"width"`
	Height          int           `json:"height"`
	Finite          bool          `json:"finite"`
	Pattern         string        `json:"pattern"`
	OffsetX         int           `json:"offset_x"`
	OffsetY         int           `json:"offset_y"`
	RandomDensity   float64       `json:"random_density"`
	Seed            int64         `json:"seed"`
	FrameRate       time.Duration `json:"frame_rate"`
	HistoryCapacity int           `json:"history_capacity"`
	EvictHistory    bool          `json:"evict_history"`
	MaxGenerations  int           `json:"max_generations"`
	UseTUI          bool          `json:"use_tui"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:           20,
		Height:          20,
		Finite:          true,
		Pattern:         "glider",
		RandomDensity:   0.2,
		Seed:            1,
		FrameRate:       150 * time.Millisecond,
		HistoryCapacity: 1024, // oldest states are evicted past this
		EvictHistory:    true,
		MaxGenerations:  0,
		UseTUI:          false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid values in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the fields a run depends on
func (c Config) Validate() error {
	switch {
	case c.Finite && (c.Width <= 0 || c.Height <= 0):
		return errors.Wrapf(ErrInvalidConfig, "finite board needs positive dimensions, got %dx%d", c.Width, c.Height)
	case c.Pattern == "":
		return errors.Wrap(ErrInvalidConfig, "pattern must be set")
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density %v outside [0, 1]", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "negative frame_rate %v", c.FrameRate)
	case c.HistoryCapacity < 0:
		return errors.Wrapf(ErrInvalidConfig, "negative history_capacity %d", c.HistoryCapacity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "negative max_generations %d", c.MaxGenerations)
	}
	return nil
}
