package runner

import (
	"context"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/pabigot/camelint/checker"
	"github.com/pabigot/camelint/report"
)

// Config drives a lint run: the rule options plus file selection and
// output settings.
type Config struct {
	Rule    checker.Options `yaml:"rule" json:"rule"`
	Include []string        `yaml:"include,omitempty" json:"include,omitempty"`
	Exclude []string        `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Format  string          `yaml:"format,omitempty" json:"format,omitempty"`
}

// DefaultConfig returns the selection used when no configuration file
// is present.
func DefaultConfig() *Config {
	return &Config{
		Include: []string{"**/*.js", "**/*.jsx", "**/*.mjs", "**/*.cjs"},
		Exclude: []string{"**/node_modules/**", "**/.git/**"},
		Format:  "text",
	}
}

// LoadConfig reads, defaults and validates a configuration file.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if len(c.Include) == 0 {
		c.Include = defaults.Include
	}
	if c.Exclude == nil {
		c.Exclude = defaults.Exclude
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
}

// Validate checks the selection globs and the output format.
func (c *Config) Validate() error {
	for _, pattern := range c.Include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid include pattern: %q", pattern)
		}
	}
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern: %q", pattern)
		}
	}
	if _, err := report.NewFormatter(c.Format); err != nil {
		return err
	}
	return nil
}

// Matches reports whether a path relative to the walk root is selected
// by the include globs and not rejected by the exclude globs.
func (c *Config) Matches(relative string) bool {
	included := false
	for _, pattern := range c.Include {
		if ok, _ := doublestar.Match(pattern, relative); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, pattern := range c.Exclude {
		if ok, _ := doublestar.Match(pattern, relative); ok {
			return false
		}
	}
	return true
}
