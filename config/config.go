// Package config loads window, input, scene and log settings from TOML or
// YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dasa.cc/silky/tutorial"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	VSync  bool   `toml:"vsync" yaml:"vsync"`
}

// Input names keys and gamepad buttons; see host.ParseKey and
// host.ParseButton for accepted names.
type Input struct {
	ExitKey        string `toml:"exit_key" yaml:"exit_key"`
	ExitButton     string `toml:"exit_button" yaml:"exit_button"`
	IncreaseKey    string `toml:"increase_key" yaml:"increase_key"`
	DecreaseKey    string `toml:"decrease_key" yaml:"decrease_key"`
	IncreaseButton string `toml:"increase_button" yaml:"increase_button"`
	DecreaseButton string `toml:"decrease_button" yaml:"decrease_button"`
}

type Scene struct {
	Name           string  `toml:"name" yaml:"name"`
	VertexShader   string  `toml:"vertex_shader" yaml:"vertex_shader"`
	FragmentShader string  `toml:"fragment_shader" yaml:"fragment_shader"`
	Texture        string  `toml:"texture" yaml:"texture"`
	Overlay        string  `toml:"overlay" yaml:"overlay"`
	Label          string  `toml:"label" yaml:"label"`
	Blend          float32 `toml:"blend" yaml:"blend"`
	MaxTextureSize int     `toml:"max_texture_size" yaml:"max_texture_size"`
}

type Log struct {
	Level       string `toml:"level" yaml:"level"`
	Development bool   `toml:"development" yaml:"development"`
}

type Config struct {
	Window Window `toml:"window" yaml:"window"`
	Input  Input  `toml:"input" yaml:"input"`
	Scene  Scene  `toml:"scene" yaml:"scene"`
	Log    Log    `toml:"log" yaml:"log"`
}

// Default returns the settings used for anything a file leaves out.
func Default() Config {
	return Config{
		Window: Window{Title: "Silky-Way", Width: 1280, Height: 720, VSync: true},
		Input: Input{
			ExitKey:        "escape",
			ExitButton:     "back",
			IncreaseKey:    "up",
			DecreaseKey:    "down",
			IncreaseButton: "dpad_up",
			DecreaseButton: "dpad_down",
		},
		Scene: Scene{Name: "blend", Label: "silky", Blend: 0.5},
		Log:   Log{Level: "info"},
	}
}

// Load decodes the file at path over Default and validates the result. The
// format follows the extension: .toml, or .yaml and .yml.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err = dec.Decode(&c); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return c, fmt.Errorf("config: %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first setting out of range.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case !slices.Contains(tutorial.Names(), c.Scene.Name):
		return fmt.Errorf("unknown scene %q, have %v", c.Scene.Name, tutorial.Names())
	case c.Scene.Blend < 0 || c.Scene.Blend > 1:
		return fmt.Errorf("blend %v outside [0, 1]", c.Scene.Blend)
	case c.Scene.MaxTextureSize < 0:
		return fmt.Errorf("max texture size %d is negative", c.Scene.MaxTextureSize)
	case (c.Scene.VertexShader == "") != (c.Scene.FragmentShader == ""):
		return errors.New("vertex and fragment shader files must be set together")
	case strings.EqualFold(c.Input.IncreaseKey, c.Input.DecreaseKey):
		return fmt.Errorf("increase and decrease keys are both %q", c.Input.IncreaseKey)
	case strings.EqualFold(c.Input.IncreaseButton, c.Input.DecreaseButton):
		return fmt.Errorf("increase and decrease buttons are both %q", c.Input.IncreaseButton)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Options returns the scene settings as tutorial options for GLSL version glsl.
func (s Scene) Options(glsl string) tutorial.Options {
	return tutorial.Options{
		GLSL:           glsl,
		VertexShader:   s.VertexShader,
		FragmentShader: s.FragmentShader,
		Texture:        s.Texture,
		Overlay:        s.Overlay,
		Label:          s.Label,
		Blend:          s.Blend,
		MaxTextureSize: s.MaxTextureSize,
	}
}

// Logger builds a console logger in development mode and a JSON logger
// otherwise, both at the configured level.
func (l Log) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
