package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file the CLI reads when present.
const DefaultConfigFile = "hxattrs.yaml"

// Config is the hxattrs.yaml project configuration.
type Config struct {
	// Packages are the package patterns generate and clean operate on.
	Packages []string `yaml:"packages"`
	// Suffix names generated files (default "_attrs.go").
	Suffix string `yaml:"suffix"`
	// Element configures the element command.
	Element ElementConfig `yaml:"element"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ElementConfig configures where the Element struct is written.
type ElementConfig struct {
	Package string `yaml:"package"`
	Output  string `yaml:"output"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Packages: []string{"./..."},
		Suffix:   DefaultSuffix,
		Element: ElementConfig{
			Package: "hxattrs",
			Output:  "element_gen.go",
		},
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file over the defaults. Unknown keys are
// rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Packages) == 0 {
		return fmt.Errorf("packages must not be empty")
	}
	if !strings.HasSuffix(c.Suffix, ".go") || c.Suffix == ".go" {
		return fmt.Errorf("suffix %q must name a Go file and differ from \".go\"", c.Suffix)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
