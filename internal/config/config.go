package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "config/config.yaml"

type FilesConfig struct {
	RootDir  string `yaml:"root_dir"`
	FontPath string `yaml:"font_path"`
}

type PipelineConfig struct {
	// Seed loads the demo deals, contacts and tasks at startup.
	Seed bool `yaml:"seed"`
	// StrictTransitions limits stage moves to the suggested ones.
	StrictTransitions bool `yaml:"strict_transitions"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Files    FilesConfig    `yaml:"files"`
	Log      LogConfig      `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Pipeline.Seed = true
	return cfg
}

// Load reads path, or DefaultPath when path is empty. A missing DefaultPath
// yields Default(); a missing explicit path or a file that does not parse is
// an error. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	cfg := Default()

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("open %s: %w", path, err)
	default:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Files.RootDir == "" {
		c.Files.RootDir = "./files"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// applyEnvOverrides lets DEALDESK_* variables win over the file.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("DEALDESK_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DEALDESK_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("DEALDESK_SEED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DEALDESK_SEED: %w", err)
		}
		c.Pipeline.Seed = b
	}
	if v := os.Getenv("DEALDESK_STRICT_TRANSITIONS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DEALDESK_STRICT_TRANSITIONS: %w", err)
		}
		c.Pipeline.StrictTransitions = b
	}
	if v := os.Getenv("DEALDESK_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("DEALDESK_FILES_DIR"); v != "" {
		c.Files.RootDir = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	return nil
}
