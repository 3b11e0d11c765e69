package bstree

import "cmp"

// iterativeEngine implements every operation without recursion: explicit
// stack and queue slices for traversal, pointer-to-link walks for splicing.
// Auxiliary call depth stays O(1) no matter how degenerate the tree gets.
type iterativeEngine[K cmp.Ordered, V any] struct{}

func (iterativeEngine[K, V]) insert(root *node[K, V], key K, value V) (*node[K, V], bool) {
	link := &root
	for *link != nil {
		cur := *link
		switch {
		case key < cur.key:
			link = &cur.left
		case key > cur.key:
			link = &cur.right
		default:
			cur.value = value
			return root, false
		}
	}
	*link = &node[K, V]{key: key, value: value}
	return root, true
}

func (iterativeEngine[K, V]) find(root *node[K, V], key K) *node[K, V] {
	cur := root
	for cur != nil {
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

func (iterativeEngine[K, V]) min(root *node[K, V]) *node[K, V] {
	if root == nil {
		return nil
	}
	cur := root
	for cur.left != nil {
		cur = cur.left
	}
	return cur
}

func (iterativeEngine[K, V]) max(root *node[K, V]) *node[K, V] {
	if root == nil {
		return nil
	}
	cur := root
	for cur.right != nil {
		cur = cur.right
	}
	return cur
}

// successor walks the search path once, remembering the last node whose key
// exceeded the target. An exact match just keeps walking right, which lands
// on the minimum of the right subtree.
func (iterativeEngine[K, V]) successor(root *node[K, V], key K) *node[K, V] {
	var best *node[K, V]
	for cur := root; cur != nil; {
		if cur.key > key {
			best = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return best
}

func (iterativeEngine[K, V]) predecessor(root *node[K, V], key K) *node[K, V] {
	var best *node[K, V]
	for cur := root; cur != nil; {
		if cur.key < key {
			best = cur
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	return best
}

func (iterativeEngine[K, V]) delete(root *node[K, V], key K) (*node[K, V], bool) {
	link := &root
	for *link != nil && (*link).key != key {
		if key < (*link).key {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	target := *link
	if target == nil {
		return root, false
	}
	switch {
	case target.left == nil:
		*link = target.right
	case target.right == nil:
		*link = target.left
	default:
		// Two children: splice the minimum out of the right subtree and
		// promote it into target's position, same shape as the recursive
		// engine's splice.
		minLink := &target.right
		for (*minLink).left != nil {
			minLink = &(*minLink).left
		}
		m := *minLink
		*minLink = m.right
		m.left = target.left
		m.right = target.right
		*link = m
	}
	return root, true
}

func (iterativeEngine[K, V]) takeSubtree(root *node[K, V], key K) (*node[K, V], *node[K, V]) {
	link := &root
	for *link != nil {
		cur := *link
		switch {
		case key < cur.key:
			link = &cur.left
		case key > cur.key:
			link = &cur.right
		default:
			*link = nil
			return root, cur
		}
	}
	return root, nil
}

func (iterativeEngine[K, V]) preorderKeys(root *node[K, V]) []K {
	var keys []K
	var stack []*node[K, V]
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			keys = append(keys, cur.key)
			stack = append(stack, cur)
			cur = cur.left
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur = top.right
	}
	return keys
}

func (iterativeEngine[K, V]) inorderKeys(root *node[K, V]) []K {
	var keys []K
	var stack []*node[K, V]
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, top.key)
		cur = top.right
	}
	return keys
}

// postorderKeys visits a node only once its right subtree is exhausted,
// tracked by the prev pointer.
func (iterativeEngine[K, V]) postorderKeys(root *node[K, V]) []K {
	var keys []K
	var stack []*node[K, V]
	var prev *node[K, V]
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		top := stack[len(stack)-1]
		if top.right == nil || top.right == prev {
			keys = append(keys, top.key)
			prev = top
			stack = stack[:len(stack)-1]
		} else {
			cur = top.right
		}
	}
	return keys
}

func (iterativeEngine[K, V]) levelOrderKeys(root *node[K, V]) []K {
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
