package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Node kind names produced by the tree-sitter javascript grammar.
const (
	KindIdentifier               = "identifier"
	KindPropertyIdentifier       = "property_identifier"
	KindShorthandProperty        = "shorthand_property_identifier"
	KindShorthandPropertyPattern = "shorthand_property_identifier_pattern"
	KindStatementIdentifier      = "statement_identifier"

	KindMemberExpression        = "member_expression"
	KindSubscriptExpression     = "subscript_expression"
	KindCallExpression          = "call_expression"
	KindNewExpression           = "new_expression"
	KindAssignmentExpression    = "assignment_expression"
	KindAugmentedAssignment     = "augmented_assignment_expression"
	KindPair                    = "pair"
	KindPairPattern             = "pair_pattern"
	KindParenthesizedExpression = "parenthesized_expression"
	KindComputedPropertyName    = "computed_property_name"
	KindNestedIdentifier        = "nested_identifier"
	KindComment                 = "comment"

	KindJSXOpeningElement     = "jsx_opening_element"
	KindJSXClosingElement     = "jsx_closing_element"
	KindJSXSelfClosingElement = "jsx_self_closing_element"
	KindJSXAttribute          = "jsx_attribute"
)

// IsIdentifier reports whether n is an identifier-bearing leaf: a plain
// identifier, a dotted property name, an object or pattern shorthand, or
// a statement label.
func IsIdentifier(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case KindIdentifier, KindPropertyIdentifier, KindShorthandProperty,
		KindShorthandPropertyPattern, KindStatementIdentifier:
		return true
	}
	return false
}

// StructuralParent returns the nearest ancestor of n that is not a
// parenthesized expression, so structural classification sees the same
// shape with or without grouping parentheses.
func StructuralParent(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	parent := n.Parent()
	for parent != nil && parent.Type() == KindParenthesizedExpression {
		parent = parent.Parent()
	}
	return parent
}

// Unparenthesize descends through grouping parentheses to the wrapped
// expression, skipping interleaved comments.
func Unparenthesize(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == KindParenthesizedExpression {
		var inner *sitter.Node
		for i := uint32(0); i < n.NamedChildCount(); i++ {
			child := n.NamedChild(int(i))
			if child.Type() == KindComment {
				continue
			}
			inner = child
			break
		}
		if inner == nil {
			return n
		}
		n = inner
	}
	return n
}

// Same reports whether two handles refer to the same node within one
// tree. Handle values are not comparable directly; span plus kind is.
func Same(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// IsJSXName reports whether n names a JSX element or attribute. Those
// names belong to the markup vocabulary, not the surrounding program.
func IsJSXName(n *sitter.Node) bool {
	parent := n.Parent()
	for parent != nil && (parent.Type() == KindMemberExpression || parent.Type() == KindNestedIdentifier) {
		parent = parent.Parent()
	}
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case KindJSXOpeningElement, KindJSXClosingElement, KindJSXSelfClosingElement, KindJSXAttribute:
		return true
	}
	return false
}

// Position returns the 1-based line and column of the start of n.
func Position(n *sitter.Node) (line, column int) {
	point := n.StartPoint()
	return int(point.Row) + 1, int(point.Column) + 1
}
