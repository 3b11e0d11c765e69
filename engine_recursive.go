package bstree

import "cmp"

// recursiveEngine implements every operation with plain recursion. Call-stack
// usage is O(depth), which on an unbalanced tree can mean O(n).
type recursiveEngine[K cmp.Ordered, V any] struct{}

func (e recursiveEngine[K, V]) insert(root *node[K, V], key K, value V) (*node[K, V], bool) {
	if root == nil {
		return &node[K, V]{key: key, value: value}, true
	}
	var added bool
	switch {
	case key < root.key:
		root.left, added = e.insert(root.left, key, value)
	case key > root.key:
		root.right, added = e.insert(root.right, key, value)
	default:
		root.value = value
	}
	return root, added
}

func (e recursiveEngine[K, V]) find(root *node[K, V], key K) *node[K, V] {
	if root == nil {
		return nil
	}
	switch {
	case key < root.key:
		return e.find(root.left, key)
	case key > root.key:
		return e.find(root.right, key)
	}
	return root
}

func (e recursiveEngine[K, V]) min(root *node[K, V]) *node[K, V] {
	if root == nil {
		return nil
	}
	if root.left == nil {
		return root
	}
	return e.min(root.left)
}

func (e recursiveEngine[K, V]) max(root *node[K, V]) *node[K, V] {
	if root == nil {
		return nil
	}
	if root.right == nil {
		return root
	}
	return e.max(root.right)
}

// successor: on an exact key match the answer is the minimum of the right
// subtree; otherwise it is the deepest node passed while branching left.
func (e recursiveEngine[K, V]) successor(root *node[K, V], key K) *node[K, V] {
	if root == nil {
		return nil
	}
	switch {
	case root.key > key:
		if s := e.successor(root.left, key); s != nil {
			return s
		}
		return root
	case root.key < key:
		return e.successor(root.right, key)
	}
	return e.min(root.right)
}

func (e recursiveEngine[K, V]) predecessor(root *node[K, V], key K) *node[K, V] {
	if root == nil {
		return nil
	}
	switch {
	case root.key < key:
		if p := e.predecessor(root.right, key); p != nil {
			return p
		}
		return root
	case root.key > key:
		return e.predecessor(root.left, key)
	}
	return e.max(root.left)
}

func (e recursiveEngine[K, V]) delete(root *node[K, V], key K) (*node[K, V], bool) {
	if root == nil {
		return nil, false
	}
	var removed bool
	switch {
	case key < root.key:
		root.left, removed = e.delete(root.left, key)
	case key > root.key:
		root.right, removed = e.delete(root.right, key)
	default:
		return e.splice(root), true
	}
	return root, removed
}

// splice removes n while keeping its descendants reachable: leaves vanish, a
// single child steps up, and a node with two children is replaced by the
// minimum of its right subtree.
func (e recursiveEngine[K, V]) splice(n *node[K, V]) *node[K, V] {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}
	rest, m := e.removeMin(n.right)
	m.left = n.left
	m.right = rest
	return m
}

// removeMin detaches the minimum node of the subtree rooted at n, returning
// the remaining subtree and the detached node. n must not be nil.
func (e recursiveEngine[K, V]) removeMin(n *node[K, V]) (*node[K, V], *node[K, V]) {
	if n.left == nil {
		return n.right, n
	}
	rest, m := e.removeMin(n.left)
	n.left = rest
	return n, m
}

func (e recursiveEngine[K, V]) takeSubtree(root *node[K, V], key K) (*node[K, V], *node[K, V]) {
	if root == nil {
		return nil, nil
	}
	var taken *node[K, V]
	switch {
	case key < root.key:
		root.left, taken = e.takeSubtree(root.left, key)
	case key > root.key:
		root.right, taken = e.takeSubtree(root.right, key)
	default:
		return nil, root
	}
	return root, taken
}

func (e recursiveEngine[K, V]) preorderKeys(root *node[K, V]) []K {
	return e.appendPreorder(nil, root)
}

func (e recursiveEngine[K, V]) appendPreorder(keys []K, n *node[K, V]) []K {
	if n == nil {
		return keys
	}
	keys = append(keys, n.key)
	keys = e.appendPreorder(keys, n.left)
	return e.appendPreorder(keys, n.right)
}

func (e recursiveEngine[K, V]) inorderKeys(root *node[K, V]) []K {
	return e.appendInorder(nil, root)
}

func (e recursiveEngine[K, V]) appendInorder(keys []K, n *node[K, V]) []K {
	if n == nil {
		return keys
	}
	keys = e.appendInorder(keys, n.left)
	keys = append(keys, n.key)
	return e.appendInorder(keys, n.right)
}

func (e recursiveEngine[K, V]) postorderKeys(root *node[K, V]) []K {
	return e.appendPostorder(nil, root)
}

func (e recursiveEngine[K, V]) appendPostorder(keys []K, n *node[K, V]) []K {
	if n == nil {
		return keys
	}
	keys = e.appendPostorder(keys, n.left)
	keys = e.appendPostorder(keys, n.right)
	return append(keys, n.key)
}

// levelOrderKeys is breadth-first and has no recursive formulation; both
// engines use the same FIFO queue discipline.
func (e recursiveEngine[K, V]) levelOrderKeys(root *node[K, V]) []K {
	if root == nil {
		return nil
	}
	var keys []K
	queue := []*node[K, V]{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		keys = append(keys, cur.key)
		if cur.left != nil {
			queue = append(queue, cur.left)
		}
		if cur.right != nil {
			queue = append(queue, cur.right)
		}
	}
	return keys
}
