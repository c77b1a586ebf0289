package checker

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/pabigot/camelint/syntax"
)

// Occurrence is one identifier sighting surfaced to the pass: the node
// handle, its raw text, and its structural role. The pass only reads
// from the tree, never mutates it.
type Occurrence struct {
	Node *sitter.Node
	Name string
	Role Role
}

// classify derives the occurrence roles for an identifier node. The
// result has one element except for destructuring shorthands, which
// carry both a key aspect and a bound-value aspect for the same node.
func (c *Checker) classify(n *sitter.Node, raw string) []Occurrence {
	switch n.Type() {
	case syntax.KindShorthandProperty:
		return []Occurrence{{n, raw, RoleObjectKey}}
	case syntax.KindShorthandPropertyPattern:
		return []Occurrence{
			{n, raw, RoleObjectKey},
			{n, raw, RolePatternShorthandValue},
		}
	}
	parent := syntax.StructuralParent(n)
	if parent == nil {
		return []Occurrence{{n, raw, RoleBare}}
	}
	switch parent.Type() {
	case syntax.KindMemberExpression:
		object := parent.ChildByFieldName("object")
		if object != nil && syntax.IsIdentifier(object) && object.Content(c.source) == raw {
			return []Occurrence{{n, raw, RoleMemberObject}}
		}
		return []Occurrence{{n, raw, RoleMemberProperty}}
	case syntax.KindPair, syntax.KindPairPattern:
		if syntax.Same(parent.ChildByFieldName("key"), n) {
			return []Occurrence{{n, raw, RoleObjectKey}}
		}
	case syntax.KindSubscriptExpression, syntax.KindComputedPropertyName:
		// Bracket subscripts and computed keys are value references,
		// not spelled names.
		return []Occurrence{{n, raw, RoleBare}}
	}
	return []Occurrence{{n, raw, RoleBare}}
}

// isCallCallee reports whether the occurrence names the invoked
// expression of a call or constructor, resolved through a member-access
// effective parent.
func (c *Checker) isCallCallee(n *sitter.Node) bool {
	target := n
	if parent := syntax.StructuralParent(n); parent != nil && parent.Type() == syntax.KindMemberExpression {
		target = parent
	}
	parent := syntax.StructuralParent(target)
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case syntax.KindCallExpression, syntax.KindNewExpression:
		return true
	}
	return false
}

// memberAssignmentTarget applies the member-property reporting rule: the
// identifier must reach a plain or augmented assignment through its
// member access, and either the assignment's right-hand side is not a
// member access or its left-hand side writes the same property name.
func (c *Checker) memberAssignmentTarget(n *sitter.Node, raw string) bool {
	member := syntax.StructuralParent(n)
	if member == nil || member.Type() != syntax.KindMemberExpression {
		return false
	}
	assignment := syntax.StructuralParent(member)
	if assignment == nil {
		return false
	}
	switch assignment.Type() {
	case syntax.KindAssignmentExpression, syntax.KindAugmentedAssignment:
	default:
		return false
	}
	right := syntax.Unparenthesize(assignment.ChildByFieldName("right"))
	if right == nil || right.Type() != syntax.KindMemberExpression {
		return true
	}
	left := syntax.Unparenthesize(assignment.ChildByFieldName("left"))
	if left == nil || left.Type() != syntax.KindMemberExpression {
		return false
	}
	property := left.ChildByFieldName("property")
	return property != nil && property.Content(c.source) == raw
}
