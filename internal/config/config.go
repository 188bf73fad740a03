package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
)

// DefaultTypes is the allow-list of type tags recognised out of the box.
var DefaultTypes = []string{"Controller", "Entity", "Form", "Repository", "Command"}

const (
	DefaultPrefix        = "App"
	DefaultIndexFileName = "_category_.json"
	DefaultStartPosition = 2
	DefaultLabel         = "{{ .Title }} Documentation"
	DefaultDescription   = "Browse all available {{ .Type }}s in this project."
)

// Config represents the converter configuration
type Config struct {
	Classify ClassifyConfig `yaml:"classify"`
	Index    IndexConfig    `yaml:"index"`
}

// ClassifyConfig controls how filenames are mapped to type tags.
type ClassifyConfig struct {
	Prefix   string   `yaml:"prefix,omitempty"`    // Leading filename segment, "App" in App-Entity-User.html
	Types    []string `yaml:"types,omitempty"`     // Allow-list of type tags, compared case-insensitively
	MatchAny bool     `yaml:"match_any,omitempty"` // Accept any letter run as a type, ignoring Types
}

// IndexConfig controls the generated-index sidecar written per type directory.
type IndexConfig struct {
	FileName      string `yaml:"file_name,omitempty"`
	StartPosition int    `yaml:"start_position,omitempty"`
	Label         string `yaml:"label,omitempty"`       // text/template, fields .Type and .Title
	Description   string `yaml:"description,omitempty"` // text/template, fields .Type and .Title
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file. An empty path yields Default().
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil && !errors.Is(err, errNoEnvFile) {
		return nil, cerrors.ConfigInvalid(".env", err)
	}

	if configPath == "" {
		return Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, cerrors.ConfigNotFound(configPath)
	}

	// #nosec G304 - path supplied by the operator on the command line
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, cerrors.ConfigInvalid(configPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, cerrors.ConfigInvalid(configPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration, expanding ${VAR} references first.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Classify.Prefix == "" {
		c.Classify.Prefix = DefaultPrefix
	}
	if len(c.Classify.Types) == 0 && !c.Classify.MatchAny {
		c.Classify.Types = append([]string(nil), DefaultTypes...)
	}
	if c.Index.FileName == "" {
		c.Index.FileName = DefaultIndexFileName
	}
	if c.Index.StartPosition == 0 {
		c.Index.StartPosition = DefaultStartPosition
	}
	if c.Index.Label == "" {
		c.Index.Label = DefaultLabel
	}
	if c.Index.Description == "" {
		c.Index.Description = DefaultDescription
	}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
