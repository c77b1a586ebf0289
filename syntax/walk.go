package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Walk traverses the tree rooted at n in pre-order and invokes fn for
// every named node. Returning false from fn prunes that node's subtree.
func Walk(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for i := uint32(0); i < n.NamedChildCount(); i++ {
		Walk(n.NamedChild(int(i)), fn)
	}
}
