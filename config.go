package sexpr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings read from a configuration file.
type Config struct {
	MaxDepth           int    `yaml:"max_depth"`
	Trace              bool   `yaml:"trace"`
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	History            string `yaml:"history"`
}

// DefaultConfig returns the settings used when no configuration file is given.
func DefaultConfig() Config {
	return Config{
		MaxDepth:           DefaultMaxDepth,
		Prompt:             "sexpr> ",
		ContinuationPrompt: "  ...> ",
		History:            "~/.sexpr_history",
	}
}

// LoadConfig decodes a YAML document. Missing keys keep their default value
// and unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads the configuration file at the given path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// HistoryPath returns the history file path with a leading "~/" replaced by
// the home directory. An empty path means history is disabled.
func (c Config) HistoryPath() (string, error) {
	if !strings.HasPrefix(c.History, "~/") {
		return c.History, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", c.History, err)
	}
	return filepath.Join(home, c.History[2:]), nil
}
