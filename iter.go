package bstree

import "iter"

// PreOrder returns a fresh lazy sequence over the tree in preorder: each node
// before its left subtree, left subtree before right.
func (t *Tree[K, V]) PreOrder() iter.Seq2[K, V] {
	return t.pairs(t.engine().preorderKeys(t.root))
}

// InOrder returns a fresh lazy sequence over the tree in ascending key
// order.
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return t.pairs(t.engine().inorderKeys(t.root))
}

// PostOrder returns a fresh lazy sequence over the tree in postorder: both
// subtrees before their node.
func (t *Tree[K, V]) PostOrder() iter.Seq2[K, V] {
	return t.pairs(t.engine().postorderKeys(t.root))
}

// LevelOrder returns a fresh lazy sequence over the tree breadth-first, root
// first, each level left to right.
func (t *Tree[K, V]) LevelOrder() iter.Seq2[K, V] {
	return t.pairs(t.engine().levelOrderKeys(t.root))
}

// pairs materializes a visitation-ordered key slice into a lazy pair
// sequence. The key order is fixed when the traversal method is called; each
// pair is re-resolved through a lookup while the caller ranges, so a key
// deleted in between is skipped rather than yielded stale. Call the traversal
// method again for a sequence over the tree's current shape.
func (t *Tree[K, V]) pairs(keys []K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range keys {
			k, v, ok := t.GetPair(key)
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}
