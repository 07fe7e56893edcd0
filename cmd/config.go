package cmd

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/agentic-research/afstext/clientdata"
)

// Config tunes the CLI: log verbosity and how matched terms are rendered.
type Config struct {
	LogLevel  string           `hcl:"log_level,optional"`
	Highlight *HighlightConfig `hcl:"highlight,block"`
}

// HighlightConfig overrides the markers wrapped around highlighted text.
// Empty fields keep their defaults.
type HighlightConfig struct {
	MatchPrefix string `hcl:"match_prefix,optional"`
	MatchSuffix string `hcl:"match_suffix,optional"`
	Truncate    string `hcl:"truncate,optional"`
}

// DefaultConfig returns warn-level logging and the built-in bold rendering.
func DefaultConfig() *Config {
	return &Config{LogLevel: "warn"}
}

// LoadConfig reads an HCL config file, or returns DefaultConfig when path is
// empty.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return cfg, nil
}

// Visitor builds the highlight strategy the config describes.
func (c *Config) Visitor() clientdata.TagVisitor {
	v := clientdata.DefaultVisitor()
	if c.Highlight == nil {
		return v
	}
	if c.Highlight.MatchPrefix != "" {
		v.MatchPrefix = c.Highlight.MatchPrefix
	}
	if c.Highlight.MatchSuffix != "" {
		v.MatchSuffix = c.Highlight.MatchSuffix
	}
	if c.Highlight.Truncate != "" {
		v.Truncate = c.Highlight.Truncate
	}
	return v
}

// RenderOptions returns the options handed to every extraction call. The same
// tags drive both payload kinds.
func (c *Config) RenderOptions() *clientdata.RenderOptions {
	v := c.Visitor()
	return &clientdata.RenderOptions{Formatter: v, Visitor: v}
}
