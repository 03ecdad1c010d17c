package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Columns       int           `json:"columns"`
	Rows          int           `json:"rows"`
	CellSize      int           `json:"cell_size"`
	Margin        int           `json:"margin"`
	TickInterval  time.Duration `json:"tick_interval"`
	MinInterval   time.Duration `json:"min_interval"`
	MaxInterval   time.Duration `json:"max_interval"`
	Workers       int           `json:"workers"`
	UseMemoryPool bool          `json:"use_memory_pool"`
	RandomDensity float64       `json:"random_density"`
	Seed          int64         `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Columns:       80,
		Rows:          50,
		CellSize:      10,
		Margin:        10,
		TickInterval:  150 * time.Millisecond,
		MinInterval:   25 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		Workers:       0, // one per CPU
		UseMemoryPool: true,
		RandomDensity: 0.15,
		Seed:          42,
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

	return config, config.Validate()
}

// Validate checks the config for values the driver cannot run with.
func (c Config) Validate() error {
	if c.Columns <= 0 || c.Rows <= 0 {
		return errors.Errorf("[Config.Validate] invalid grid dimensions: %dx%d", c.Columns, c.Rows)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("[Config.Validate] invalid cell size: %d", c.CellSize)
	}
	if c.Margin < 0 {
		return errors.Errorf("[Config.Validate] invalid margin: %d", c.Margin)
	}
	if c.MinInterval <= 0 || c.MaxInterval < c.MinInterval {
		return errors.Errorf("[Config.Validate] invalid interval bounds: [%v, %v]", c.MinInterval, c.MaxInterval)
	}
	if c.TickInterval < c.MinInterval || c.TickInterval > c.MaxInterval {
		return errors.Errorf("[Config.Validate] tick interval %v outside [%v, %v]", c.TickInterval, c.MinInterval, c.MaxInterval)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Config.Validate] invalid random density: %v", c.RandomDensity)
	}
	return nil
}
