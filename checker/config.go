package checker

import (
	"fmt"
	"strings"

	"github.com/pabigot/camelint/checker/match"
)

// RuleName identifies the convention this package checks.
const RuleName = "camelcase"

// PropertyPolicy controls whether member properties and object keys are
// subject to the check.
type PropertyPolicy int

const (
	// PolicyAlways checks properties and object keys. The default.
	PolicyAlways PropertyPolicy = iota
	// PolicyNever skips properties and object keys entirely.
	PolicyNever
)

func (p PropertyPolicy) String() string {
	if p == PolicyNever {
		return "never"
	}
	return "always"
}

// Config is the resolved, immutable configuration for one run. Build it
// with Resolve; matcher lists keep their declaration order, first match
// wins.
type Config struct {
	PropertyPolicy  PropertyPolicy
	AllowedPrefixes []match.Matcher
	AllowedSuffixes []match.Matcher
	Exceptions      []match.Matcher
}

// DefaultConfig returns the configuration used when no options are
// given.
func DefaultConfig() *Config {
	return &Config{PropertyPolicy: PolicyAlways}
}

// Resolve compiles raw options into a Config. An unrecognized
// propertyPolicy value silently falls back to PolicyAlways; a pattern
// that does not compile aborts with an error wrapping
// *match.PatternError, before any identifier is looked at.
func Resolve(opts Options) (*Config, error) {
	cfg := &Config{PropertyPolicy: PolicyAlways}
	if opts.PropertyPolicy == "never" {
		cfg.PropertyPolicy = PolicyNever
	}
	var err error
	if cfg.AllowedPrefixes, err = compileDescriptors("allowedPrefixes", opts.AllowedPrefixes); err != nil {
		return nil, err
	}
	if cfg.AllowedSuffixes, err = compileDescriptors("allowedSuffixes", opts.AllowedSuffixes); err != nil {
		return nil, err
	}
	if cfg.Exceptions, err = compileDescriptors("exceptions", opts.Exceptions); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compileDescriptors(field string, descriptors []Descriptor) ([]match.Matcher, error) {
	if len(descriptors) == 0 {
		return nil, nil
	}
	matchers := make([]match.Matcher, 0, len(descriptors))
	for _, descriptor := range descriptors {
		m, err := descriptor.compile()
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s: %w", field, err)
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// CheckableName derives the string the style verdict runs on: leading
// and trailing underscore runs are trimmed, then at most one allowed
// prefix and one allowed suffix are stripped, in that order.
func (c *Config) CheckableName(raw string) string {
	name := strings.Trim(raw, "_")
	name = match.StripFirstMatchingPrefix(name, c.AllowedPrefixes)
	name = match.StripFirstMatchingSuffix(name, c.AllowedSuffixes)
	return name
}

// IsException reports whether the checkable name is exempted wholesale
// by a configured exception.
func (c *Config) IsException(name string) bool {
	return match.AnyMatches(name, c.Exceptions)
}

// IsStyleViolating reports whether name breaks the camelCase convention:
// it contains an underscore and is not an all-uppercase constant form.
func IsStyleViolating(name string) bool {
	return strings.Contains(name, "_") && name != strings.ToUpper(name)
}
