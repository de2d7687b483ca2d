package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "proxyfmt.yaml"

type Config struct {
	Output string      `yaml:"output"` // yaml | json
	Scan   ScanConfig  `yaml:"scan"`
	Clash  ClashConfig `yaml:"clash"`
}

type ScanConfig struct {
	Schemes  []string `yaml:"schemes"`
	Dedupe   bool     `yaml:"dedupe"`
	Progress bool     `yaml:"progress"`
}

type ClashConfig struct {
	Strict bool `yaml:"strict"` // run clash.Validate after decoding
}

func Default() *Config {
	return &Config{
		Output: "yaml",
		Scan: ScanConfig{
			Schemes:  []string{"ss", "vmess"},
			Dedupe:   true,
			Progress: true,
		},
	}
}

// Load reads path on top of the defaults. With an empty path the default
// file is optional.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output {
	case "yaml", "json":
	case "":
		c.Output = "yaml"
	default:
		return fmt.Errorf("invalid output %q: want yaml or json", c.Output)
	}
	if len(c.Scan.Schemes) == 0 {
		c.Scan.Schemes = []string{"ss", "vmess"}
	}
	return nil
}

// SelectSchemes replaces the scan schemes with names when any are given.
// Names need not appear in the configured list; a cipher name selects
// SIP002 links that carry it as their scheme.
func (c *Config) SelectSchemes(names []string) {
	if len(names) == 0 {
		return
	}
	seen := make(map[string]bool)
	var selected []string
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		selected = append(selected, n)
	}
	c.Scan.Schemes = selected
}
