package checker

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pabigot/camelint/checker/match"
)

// Options is the serialized form of the rule configuration, as read from
// a config file or assembled from flags. Resolve compiles it into an
// immutable Config.
type Options struct {
	PropertyPolicy  string       `yaml:"propertyPolicy,omitempty" json:"propertyPolicy,omitempty"`
	AllowedPrefixes []Descriptor `yaml:"allowedPrefixes,omitempty" json:"allowedPrefixes,omitempty"`
	AllowedSuffixes []Descriptor `yaml:"allowedSuffixes,omitempty" json:"allowedSuffixes,omitempty"`
	Exceptions      []Descriptor `yaml:"exceptions,omitempty" json:"exceptions,omitempty"`
}

// Descriptor is one affix or exception entry: either a bare literal
// string or a {pattern, flags} mapping.
type Descriptor struct {
	Literal string `json:"literal,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	Flags   string `json:"flags,omitempty"`
}

// Literals builds plain literal descriptors, the common flag-driven
// case.
func Literals(values ...string) []Descriptor {
	if len(values) == 0 {
		return nil
	}
	descriptors := make([]Descriptor, 0, len(values))
	for _, value := range values {
		descriptors = append(descriptors, Descriptor{Literal: value})
	}
	return descriptors
}

// UnmarshalYAML accepts either a scalar literal or a pattern mapping.
func (d *Descriptor) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&d.Literal)
	case yaml.MappingNode:
		var entry struct {
			Pattern string `yaml:"pattern"`
			Flags   string `yaml:"flags"`
		}
		if err := value.Decode(&entry); err != nil {
			return err
		}
		if entry.Pattern == "" {
			return fmt.Errorf("matcher entry at line %d requires a pattern", value.Line)
		}
		d.Pattern = entry.Pattern
		d.Flags = entry.Flags
		return nil
	default:
		return fmt.Errorf("unsupported matcher entry at line %d", value.Line)
	}
}

// MarshalYAML renders literals as scalars and patterns as mappings.
func (d Descriptor) MarshalYAML() (interface{}, error) {
	if d.Pattern != "" {
		entry := struct {
			Pattern string `yaml:"pattern"`
			Flags   string `yaml:"flags,omitempty"`
		}{d.Pattern, d.Flags}
		return entry, nil
	}
	return d.Literal, nil
}

func (d Descriptor) compile() (match.Matcher, error) {
	if d.Pattern != "" {
		return match.Compile(d.Pattern, d.Flags)
	}
	return match.Literal(d.Literal), nil
}
