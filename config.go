package logger

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// MaxTranscript is the default cap, in characters, on transcript content
// persisted to a crash file. Content beyond the cap is truncated, never
// split across files.
const MaxTranscript = 480000

// Config defines the logger configuration parameters.
// All fields can be provided via TOML or JSON configuration files.
type Config struct {
	Module        string `json:"module" toml:"module"`                 // Initial module label, empty for none
	Directory     string `json:"directory" toml:"directory"`           // Directory crash files are written to
	FileName      string `json:"file_name" toml:"file_name"`           // Base name for crash files
	MaxTranscript int    `json:"max_transcript" toml:"max_transcript"` // Max transcript characters persisted
}

// defaultConfig values are used if a value is not provided by the user.
func defaultConfig() *Config {
	return &Config{
		Module:        "",
		Directory:     ".",
		FileName:      "log",
		MaxTranscript: MaxTranscript,
	}
}

// mergeConfig fills zero-value fields of the user configuration with their
// defaults. Module is passed through as-is because the empty label is valid.
func mergeConfig(cfg ...*Config) *Config {
	def := defaultConfig()
	if len(cfg) == 0 || cfg[0] == nil {
		return def
	}

	user := cfg[0]
	return &Config{
		Module:        user.Module,
		Directory:     getConfigValue(def.Directory, user.Directory),
		FileName:      getConfigValue(def.FileName, user.FileName),
		MaxTranscript: getConfigValue(def.MaxTranscript, user.MaxTranscript),
	}
}

// getConfigValue returns defaultVal if cfgVal equals the zero value for type T,
// otherwise returns cfgVal. Type T must satisfy the comparable constraint.
func getConfigValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}

// LoadConfig reads a TOML configuration file and merges it with the
// defaults. A missing file is not an error; it yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return mergeConfig(&cfg), nil
}

// Configure re-applies a configuration at runtime, merging zero fields with
// defaults. The transcript accumulated so far is preserved.
func (l *Logger) Configure(cfg *Config) {
	l.apply(mergeConfig(cfg))
}

// apply copies merged configuration onto the instance.
func (l *Logger) apply(cfg *Config) {
	l.label = cfg.Module
	l.directory = cfg.Directory
	l.fileName = cfg.FileName
	l.maxTranscript = cfg.MaxTranscript
}
