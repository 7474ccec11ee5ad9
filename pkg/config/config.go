// Package config loads the tool's layered configuration: built-in defaults,
// then an optional .autoheader.toml in the scan root, then AUTOHEADER_*
// environment variables, then explicit overrides from CLI flags. Later
// layers win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/autoheader/pkg/errors"
	"github.com/arthur-debert/autoheader/pkg/logging"
)

// FileName is the per-project config file looked up in the scan root
const FileName = ".autoheader.toml"

// envPrefix namespaces the environment variable layer
const envPrefix = "AUTOHEADER_"

// Config is the fully merged tool configuration.
type Config struct {
	// Header is the desired header text
	Header string `koanf:"header" toml:"header" comment:"Header text inserted at the top of supported files."`

	// HeaderFile, when set, is read and used as the header text instead
	HeaderFile string `koanf:"header_file" toml:"header_file,omitempty" comment:"Read the header text from this file instead."`

	// Ignore lists doublestar globs excluded from the walk
	Ignore []string `koanf:"ignore" toml:"ignore" comment:"Glob patterns excluded from processing."`

	// Jobs bounds the number of files processed concurrently
	Jobs int `koanf:"jobs" toml:"jobs" comment:"Number of files processed concurrently."`
}

// DefaultHeader is the built-in template used when no header is configured
func DefaultHeader() string {
	return fmt.Sprintf("Copyright %d. All rights reserved.", time.Now().Year())
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"header": DefaultHeader(),
		"ignore": []string{},
		"jobs":   runtime.NumCPU(),
	}
}

// Load merges all configuration layers for a scan rooted at root. The
// overrides map carries values set explicitly on the command line.
func Load(root string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	configPath := filepath.Join(root, FileName)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("loaded project config")
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.HeaderFile != "" {
		data, err := os.ReadFile(cfg.HeaderFile)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read header file %s", cfg.HeaderFile)
		}
		cfg.Header = strings.TrimRight(string(data), "\n")
	}

	if cfg.Jobs < 1 {
		return nil, errors.Newf(errors.ErrConfigValid, "jobs must be positive, got %d", cfg.Jobs)
	}

	return &cfg, nil
}

// Generate renders a commented default config file, ready to be saved as
// .autoheader.toml and edited.
func Generate() ([]byte, error) {
	cfg := Config{
		Header: DefaultHeader(),
		Ignore: []string{"vendor/**", "node_modules/**"},
		Jobs:   runtime.NumCPU(),
	}
	out, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}
	return out, nil
}
