// Package config holds the skeleton's settings. Command-line arguments are not read;
// an optional TOML file named by SKELETON_CONFIG overrides the defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kjkrol/sdlskel/internal/platform"
	"github.com/pelletier/go-toml/v2"
)

const (
	EnvPath      = "SKELETON_CONFIG"
	DefaultTitle = "SDL3 Project: {{projectName}}"
)

type Config struct {
	ProjectName string `toml:"project_name"`
	Title       string `toml:"title"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	OpenGL      bool   `toml:"opengl"`
	LogLevel    string `toml:"log_level"`
	IdleSleepMs int    `toml:"idle_sleep_ms"`
	// DrainMax caps events handled per loop iteration; 0 drains the whole queue.
	DrainMax int `toml:"drain_max"`
}

func Default() Config {
	return Config{
		Title:    DefaultTitle,
		Width:    platform.DefaultWidth,
		Height:   platform.DefaultHeight,
		OpenGL:   true,
		LogLevel: "warn",
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("config: %w", err)
	}
	if err := Parse(data, &conf); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// FromEnv loads the file named by SKELETON_CONFIG.
func FromEnv() (Config, error) {
	return Load(os.Getenv(EnvPath))
}

func Parse(data []byte, conf *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(conf); err != nil {
		return err
	}
	return conf.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.IdleSleepMs < 0 {
		errs = append(errs, fmt.Errorf("idle_sleep_ms %d must not be negative", c.IdleSleepMs))
	}
	if c.DrainMax < 0 {
		errs = append(errs, fmt.Errorf("drain_max %d must not be negative", c.DrainMax))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

func (c Config) IdleSleep() time.Duration {
	return time.Duration(c.IdleSleepMs) * time.Millisecond
}

// Window returns the window parameters with title as the final window title.
func (c Config) Window(title string) platform.WindowConfig {
	return platform.WindowConfig{
		Title:  title,
		Width:  c.Width,
		Height: c.Height,
		OpenGL: c.OpenGL,
	}
}
