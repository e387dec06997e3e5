package render

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the render settings for a gradient image.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Output string `yaml:"output"`
	// Workers bounds the number of rows rendered concurrently.
	// Zero or negative means one worker per CPU.
	Workers int `yaml:"workers"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Width:  256,
		Height: 256,
		Output: "gradient.png",
	}
}

// Load reads a YAML config file. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

func (c Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
