// Package config describes which walk counts pathcount computes.
//
// A config file is YAML:
//
//	directed: true
//	queries:
//	  - name: base
//	    from: you
//	    to: out
//	  - name: waypoints
//	    from: svr
//	    to: out
//	    via: [fft, dac]
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ErrInvalidConfig is returned by Validate for unusable query sets.
var ErrInvalidConfig = errors.New("config: invalid")

// Query is one walk count: From ⇝ To through Via, in order.
type Query struct {
	Name string   `yaml:"name"`
	From string   `yaml:"from"`
	To   string   `yaml:"to"`
	Via  []string `yaml:"via,omitempty"`
}

// Config is the top-level query file.
type Config struct {
	// Directed selects the graph orientation; nil means directed.
	Directed *bool `yaml:"directed,omitempty"`

	// Queries run in file order.
	Queries []Query `yaml:"queries"`
}

// Default returns the two standard queries: you ⇝ out, and svr ⇝ out
// through fft then dac.
func Default() *Config {
	return &Config{
		Queries: []Query{
			{Name: "base", From: "you", To: "out"},
			{Name: "waypoints", From: "svr", To: "out", Via: []string{"fft", "dac"}},
		},
	}
}

// IsDirected reports the effective orientation.
func (c *Config) IsDirected() bool {
	return c.Directed == nil || *c.Directed
}

// Find returns the query called name.
func (c *Config) Find(name string) (Query, bool) {
	for _, q := range c.Queries {
		if q.Name == name {
			return q, true
		}
	}

	return Query{}, false
}

// Validate checks that every query is named uniquely and has both endpoints.
func (c *Config) Validate() error {
	if len(c.Queries) == 0 {
		return fmt.Errorf("%w: no queries", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Queries))
	for i, q := range c.Queries {
		if q.Name == "" {
			return fmt.Errorf("%w: query %d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[q.Name]; dup {
			return fmt.Errorf("%w: duplicate query %q", ErrInvalidConfig, q.Name)
		}
		seen[q.Name] = struct{}{}
		if q.From == "" || q.To == "" {
			return fmt.Errorf("%w: query %q needs from and to", ErrInvalidConfig, q.Name)
		}
		for _, w := range q.Via {
			if w == "" {
				return fmt.Errorf("%w: query %q has an empty waypoint", ErrInvalidConfig, q.Name)
			}
		}
	}

	return nil
}

// Parse decodes and validates a YAML config. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}
