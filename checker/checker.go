// Package checker implements a camelCase naming check over tree-sitter
// JavaScript syntax trees: affix and exception matching, identifier and
// context classification, and per-node violation reporting.
package checker

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/pabigot/camelint/syntax"
)

// Checker drives the check for one tree traversal. It owns the resolved
// configuration, the source the tree was parsed from, and the run's
// sink. A Checker must not be shared between concurrent runs; build one
// per tree.
type Checker struct {
	config *Config
	source []byte
	sink   *Sink
}

// NewChecker creates a run-scoped checker over source. A nil config uses
// the defaults.
func NewChecker(config *Config, source []byte) *Checker {
	if config == nil {
		config = DefaultConfig()
	}
	return &Checker{config: config, source: source, sink: NewSink()}
}

// Check walks the tree rooted at root and visits every identifier node
// in pre-order.
func (c *Checker) Check(root *sitter.Node) {
	syntax.Walk(root, func(n *sitter.Node) bool {
		c.Visit(n)
		return true
	})
}

// Visit applies the check to a single node; non-identifier nodes are
// ignored. Callers driving their own traversal invoke this once per
// node.
func (c *Checker) Visit(n *sitter.Node) {
	if !syntax.IsIdentifier(n) || syntax.IsJSXName(n) {
		return
	}
	raw := n.Content(c.source)
	name := c.config.CheckableName(raw)
	if c.config.IsException(name) {
		return
	}
	if !IsStyleViolating(name) {
		return
	}
	for _, occurrence := range c.classify(n, raw) {
		c.apply(occurrence)
	}
}

// apply enforces the role decision table for one style-violating
// occurrence.
func (c *Checker) apply(occurrence Occurrence) {
	switch occurrence.Role {
	case RolePatternShorthandValue:
		// The name is bound by the destructured data shape.
		return
	case RoleMemberObject:
		if c.config.PropertyPolicy == PolicyNever {
			return
		}
		c.sink.Report(occurrence.Node, occurrence.Name)
	case RoleMemberProperty:
		if c.config.PropertyPolicy == PolicyNever {
			return
		}
		if c.memberAssignmentTarget(occurrence.Node, occurrence.Name) {
			c.sink.Report(occurrence.Node, occurrence.Name)
		}
	case RoleObjectKey:
		if c.config.PropertyPolicy == PolicyNever {
			return
		}
		if c.isCallCallee(occurrence.Node) {
			return
		}
		c.sink.Report(occurrence.Node, occurrence.Name)
	default:
		if c.isCallCallee(occurrence.Node) {
			return
		}
		c.sink.Report(occurrence.Node, occurrence.Name)
	}
}

// Violations returns the violations recorded so far, in traversal
// order.
func (c *Checker) Violations() []Violation {
	return c.sink.Violations()
}
