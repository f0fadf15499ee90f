package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"snipkit/internal/logging"
)

const (
	DefaultRegistryPath    = "registry.json"
	DefaultSourceDir       = "lib"
	DefaultDest            = "."
	DefaultReadConcurrency = 8

	envPrefix = "SNIPKIT_"
)

// ConfigFileNames are looked up, in order, in the working directory
var ConfigFileNames = []string{".snipkit.toml", "snipkit.toml"}

// Config is the resolved snipkit configuration
type Config struct {
	Registry RegistryConfig `koanf:"registry"`
	Source   SourceConfig   `koanf:"source"`
	Install  InstallConfig  `koanf:"install"`
	Build    BuildConfig    `koanf:"build"`
	History  HistoryConfig  `koanf:"history"`

	// File is the config file that was loaded, empty when none was found
	File string `koanf:"-"`
}

type RegistryConfig struct {
	Path string `koanf:"path"`
}

type SourceConfig struct {
	Dir string `koanf:"dir"`
}

type InstallConfig struct {
	Dest string `koanf:"dest"`
}

type BuildConfig struct {
	ReadConcurrency int `koanf:"read_concurrency"`
}

type HistoryConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"registry.path":          DefaultRegistryPath,
		"source.dir":             DefaultSourceDir,
		"install.dest":           DefaultDest,
		"build.read_concurrency": DefaultReadConcurrency,
		"history.enabled":        true,
		"history.path":           filepath.Join(logging.StateDir(), "history.db"),
	}
}

// Load layers defaults, the project config file found in dir, and SNIPKIT_*
// environment variables, in that order.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	var loaded string
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		loaded = path
		break
	}

	// SNIPKIT_BUILD_READ_CONCURRENCY -> build.read_concurrency
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.File = loaded

	if cfg.Build.ReadConcurrency < 1 {
		cfg.Build.ReadConcurrency = 1
	}

	return &cfg, nil
}
