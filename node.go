package bstree

import "cmp"

// node is a single tree node. A node exclusively owns its children; nodes are
// never shared between trees and carry no parent pointers.
type node[K cmp.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// count returns the number of nodes in the subtree rooted at n; 0 when n is
// nil. Walks with an explicit stack so degenerate spines stay off the call
// stack.
func (n *node[K, V]) count() int {
	if n == nil {
		return 0
	}
	total := 0
	stack := []*node[K, V]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		if cur.left != nil {
			stack = append(stack, cur.left)
		}
		if cur.right != nil {
			stack = append(stack, cur.right)
		}
	}
	return total
}

// height returns the number of nodes on the longest root-to-leaf path of the
// subtree rooted at n; 0 when n is nil. Level-by-level walk, same call-stack
// constraint as count.
func (n *node[K, V]) height() int {
	h := 0
	level := []*node[K, V]{}
	if n != nil {
		level = append(level, n)
	}
	for len(level) > 0 {
		h++
		var next []*node[K, V]
		for _, cur := range level {
			if cur.left != nil {
				next = append(next, cur.left)
			}
			if cur.right != nil {
				next = append(next, cur.right)
			}
		}
		level = next
	}
	return h
}
