// Package config loads fmodgo settings from YAML.
//
// Documents are validated against a JSON schema reflected from Config before
// they are decoded, so misspelled keys and unknown values are rejected
// instead of being silently ignored.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/obinnaokechukwu/fmodgo/result"
)

// Config holds library discovery, logging and suppression settings.
type Config struct {
	// LibraryPaths are searched before the platform defaults.
	LibraryPaths []string `yaml:"library_paths" json:"library_paths,omitempty" jsonschema:"description=Directories searched for the FMOD libraries before the platform defaults"`

	// LoggingLibrary loads libfmodL/libfmodstudioL instead of the release builds.
	LoggingLibrary bool `yaml:"logging_library" json:"logging_library,omitempty"`

	// LogLevel is the slog level for fmodgo's own diagnostics.
	LogLevel string `yaml:"log_level" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`

	// Suppress is the default suppression toggle state callers apply to facades.
	Suppress SuppressConfig `yaml:"suppress" json:"suppress,omitempty"`

	// Debug configures forwarding of FMOD's debug output.
	Debug DebugConfig `yaml:"debug" json:"debug,omitempty"`
}

// SuppressConfig mirrors result.Policy.
type SuppressConfig struct {
	InvalidHandle bool `yaml:"invalid_handle" json:"invalid_handle,omitempty"`
	HandleStolen  bool `yaml:"handle_stolen" json:"handle_stolen,omitempty"`
}

// DebugConfig selects FMOD debug categories by name; see DebugFlagNames.
type DebugConfig struct {
	Flags []string `yaml:"flags" json:"flags,omitempty" jsonschema:"uniqueItems=true"`
}

// DebugFlagNames are the accepted entries of debug.flags, one per
// FMOD_DEBUG_* bit.
var DebugFlagNames = []string{
	"error", "warning", "log",
	"memory", "file", "codec", "trace",
	"timestamps", "linenumbers", "thread",
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse validates and decodes a YAML document. Fields the document omits
// keep their Default values.
func Parse(data []byte) (Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := validateDocument(doc); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.validateDebugFlags(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Policy returns the suppression policy described by c.Suppress.
func (c Config) Policy() result.Policy {
	return result.Policy{
		SuppressInvalidHandle: c.Suppress.InvalidHandle,
		SuppressHandleStolen:  c.Suppress.HandleStolen,
	}
}

// SlogLevel maps LogLevel to a slog.Level. Empty means info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) validateDebugFlags() error {
	known := make(map[string]bool, len(DebugFlagNames))
	for _, n := range DebugFlagNames {
		known[n] = true
	}
	for _, f := range c.Debug.Flags {
		if !known[f] {
			return fmt.Errorf("config: debug.flags: %w: unknown flag %q", result.ErrInvalidArgument, f)
		}
	}
	return nil
}
