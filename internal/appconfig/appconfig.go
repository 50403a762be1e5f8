// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultSize is the corpus size benchmarked when none is configured.
	DefaultSize = "1MB"
	// DefaultIterations is the number of timed iterations per runner.
	DefaultIterations = 100
	// DefaultWarmup is the number of discarded warmup iterations per runner.
	DefaultWarmup = 10
	// DefaultEncoding is the tokenizer encoding benchmarked by default.
	DefaultEncoding = "o200k_base"
	// DefaultSeed drives deterministic corpus generation.
	DefaultSeed = 42
)

// SupportedEncodings enumerates the tokenizer encodings the harness accepts.
var SupportedEncodings = []string{"cl100k_base", "o200k_base"}

// Config represents the top-level application configuration.
type Config struct {
	Size            string `json:"size"`
	Iterations      int    `json:"iterations"`
	Warmup          int    `json:"warmup"`
	Encoding        string `json:"encoding"`
	Seed            int64  `json:"seed"`
	CandidateBinary string `json:"candidateBinary,omitempty"`
	JSONOutput      bool   `json:"jsonOutput"`
	Output          string `json:"output,omitempty"`
	Debug           bool   `json:"debug"`
	LogFile         string `json:"logFile,omitempty"`
	ConfigPath      string `json:"-"`
}

// CandidateBinaryPath returns the resolved candidate binary path, choosing a
// conventional build-output location based on the OS if not provided.
func (c Config) CandidateBinaryPath() string {
	if b := strings.TrimSpace(c.CandidateBinary); b != "" {
		return b
	}
	if runtime.GOOS == "windows" {
		return "zig-out/bin/llm-cost.exe"
	}
	return "./zig-out/bin/llm-cost"
}

// Validate checks the pre-run fatal conditions: an unsupported encoding or
// nonsensical iteration counts are reported before any measurement begins.
func (c Config) Validate() error {
	supported := false
	for _, enc := range SupportedEncodings {
		if c.Encoding == enc {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported encoding %q (supported: %s)", c.Encoding, strings.Join(SupportedEncodings, ", "))
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warmup must not be negative, got %d", c.Warmup)
	}
	return nil
}

// Load reads the application configuration from the specified path. A
// missing file at the default path is not an error; flags and defaults
// cover every setting. The file, when present, is validated against the
// embedded schema before decoding.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// defaultConfig returns the built-in configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		Iterations: DefaultIterations,
		Warmup:     DefaultWarmup,
		Encoding:   DefaultEncoding,
		Seed:       DefaultSeed,
	}
}
