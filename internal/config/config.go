// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Camera      CameraConfig      `yaml:"camera"`
	Animation   AnimationConfig   `yaml:"animation"`
	Screenshots ScreenshotsConfig `yaml:"screenshots"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"` // samples per pixel, 0 disables
}

// CameraConfig holds the initial perspective camera.
type CameraConfig struct {
	FOV      float32    `yaml:"fov"` // vertical, degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
}

// AnimationConfig holds rotor animation settings.
type AnimationConfig struct {
	Slider float32 `yaml:"slider"` // initial speed slider value, 0-100
}

// ScreenshotsConfig holds screenshot capture settings.
type ScreenshotsConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
		},
		Camera: CameraConfig{
			FOV:      45,
			Near:     1,
			Far:      100,
			Position: [3]float32{-25, 20, 50},
		},
		Animation: AnimationConfig{
			Slider: 50,
		},
		Screenshots: ScreenshotsConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// ErrInvalid is returned by Validate for out of range settings.
var ErrInvalid = errors.New("invalid config")

// Validate checks that settings can be used to open a window and build a
// camera.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("window size %dx%d: %w", c.Graphics.Width, c.Graphics.Height, ErrInvalid)
	case c.Graphics.MSAA < 0 || c.Graphics.MSAA > 16:
		return fmt.Errorf("msaa %d: %w", c.Graphics.MSAA, ErrInvalid)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("camera fov %g: %w", c.Camera.FOV, ErrInvalid)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("camera clip range %g-%g: %w", c.Camera.Near, c.Camera.Far, ErrInvalid)
	case c.Animation.Slider < 0 || c.Animation.Slider > 100:
		return fmt.Errorf("animation slider %g: %w", c.Animation.Slider, ErrInvalid)
	}
	return nil
}
