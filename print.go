package bstree

import (
	"cmp"
	"fmt"

	"github.com/xlab/treeprint"
)

// String renders the tree shape with treeprint, tagging each child branch L
// or R. Intended for debugging and the bst CLI, not for machine parsing.
func (t *Tree[K, V]) String() string {
	if t.root == nil {
		return "(empty)\n"
	}
	out := treeprint.NewWithRoot(nodeLabel(t.root))
	addChildren(out, t.root)
	return out.String()
}

func nodeLabel[K cmp.Ordered, V any](n *node[K, V]) string {
	return fmt.Sprintf("%v=%v", n.key, n.value)
}

func addChildren[K cmp.Ordered, V any](br treeprint.Tree, n *node[K, V]) {
	addBranch(br, n.left, "L")
	addBranch(br, n.right, "R")
}

func addBranch[K cmp.Ordered, V any](parent treeprint.Tree, n *node[K, V], side string) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		parent.AddMetaNode(side, nodeLabel(n))
		return
	}
	addChildren(parent.AddMetaBranch(side, nodeLabel(n)), n)
}
