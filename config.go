package rcore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file form of window creation options.
//
//	width: 1280
//	height: 720
//	title: demo
//	flags: [resizable, vsync, highdpi]
//	exit_key: Escape
//	gl_version: gl3.3
//	debug: true
type Config struct {
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Title     string   `yaml:"title"`
	Flags     []string `yaml:"flags"`
	ExitKey   string   `yaml:"exit_key"`
	GLVersion string   `yaml:"gl_version"`
	Debug     bool     `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{Width: 800, Height: 450, Title: "rcore", ExitKey: "Escape"}
}

// LoadConfig decodes YAML over DefaultConfig; unknown fields are an error.
// Empty input yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return LoadConfig(bytes.NewReader(data))
}

// Validate checks sizes and resolves every name once so errors surface at
// load time.
func (cfg Config) Validate() error {
	if cfg.Width < 0 || cfg.Height < 0 {
		return fmt.Errorf("config: negative window size %dx%d", cfg.Width, cfg.Height)
	}
	if _, err := cfg.ConfigFlags(); err != nil {
		return err
	}
	if _, err := cfg.ResolveExitKey(); err != nil {
		return err
	}
	if _, err := cfg.ResolveGLVersion(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (cfg Config) ConfigFlags() (ConfigFlags, error) {
	f, err := ParseConfigFlags(cfg.Flags)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return f, nil
}

// ResolveExitKey maps the exit key name; "none" disables the exit key.
func (cfg Config) ResolveExitKey() (Key, error) {
	name := strings.TrimSpace(cfg.ExitKey)
	switch strings.ToLower(name) {
	case "":
		return KeyEscape, nil
	case "none":
		return KeyNull, nil
	}
	k, ok := ParseKey(name)
	if !ok {
		return KeyNull, fmt.Errorf("config: unknown exit key %q", cfg.ExitKey)
	}
	return k, nil
}

func (cfg Config) ResolveGLVersion() (GLVersion, error) {
	return ParseGLVersion(cfg.GLVersion)
}

// Apply puts the resolved options on a core that has not been initialized.
func (cfg Config) Apply(c *Core) error {
	flags, err := cfg.ConfigFlags()
	if err != nil {
		return err
	}
	key, err := cfg.ResolveExitKey()
	if err != nil {
		return err
	}
	gl, err := cfg.ResolveGLVersion()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.SetConfigFlags(flags).SetGLVersion(gl)
	c.SetExitKey(key)
	if cfg.Debug {
		c.Logger().SetDebug(true)
	}
	return nil
}
