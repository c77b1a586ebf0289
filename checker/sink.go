package checker

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

const messageFormat = "Identifier '%s' is not in camel case."

// Violation is one naming violation anchored to a syntax node. Name is
// the original identifier text, before underscore or affix stripping.
type Violation struct {
	Node    *sitter.Node
	Name    string
	Message string
}

// Sink collects violations for a single run and guarantees at most one
// record per distinct node, even when an occurrence reaches it through
// two classification paths.
type Sink struct {
	reported   map[uint32]struct{}
	violations []Violation
}

// NewSink returns an empty run-scoped sink.
func NewSink() *Sink {
	return &Sink{reported: make(map[uint32]struct{})}
}

// Report records a violation for n unless one was already recorded.
// Identifier nodes are leaves, so the start byte identifies a node
// within one tree.
func (s *Sink) Report(n *sitter.Node, raw string) {
	if _, seen := s.reported[n.StartByte()]; seen {
		return
	}
	s.reported[n.StartByte()] = struct{}{}
	s.violations = append(s.violations, Violation{
		Node:    n,
		Name:    raw,
		Message: fmt.Sprintf(messageFormat, raw),
	})
}

// Violations returns the recorded violations in report order.
func (s *Sink) Violations() []Violation {
	return s.violations
}
