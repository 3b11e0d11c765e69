package bstree

import "cmp"

// Tree is an ordered key-value map backed by an unbalanced binary search
// tree. The zero value is an empty tree ready to use. A Tree is not safe for
// concurrent use; each instance expects a single owning caller.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
	eng  engine[K, V]
}

// New returns an empty tree wired to the default engine for this build:
// recursive unless the bstree_iterative build tag is set.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{eng: defaultEngine[K, V]()}
}

// EngineName reports which engine New selects in this build, "recursive" or
// "iterative".
func EngineName() string {
	return defaultEngineName
}

func (t *Tree[K, V]) engine() engine[K, V] {
	if t.eng == nil {
		t.eng = defaultEngine[K, V]()
	}
	return t.eng
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path: 0 for
// an empty tree, 1 for a lone root. Without balancing this reaches Len when
// keys arrive in sorted order.
func (t *Tree[K, V]) Height() int {
	return t.root.height()
}

// Insert stores value under key. Inserting a key that is already present
// overwrites its value in place; the node count never changes on overwrite.
func (t *Tree[K, V]) Insert(key K, value V) {
	var added bool
	t.root, added = t.engine().insert(t.root, key, value)
	if added {
		t.size++
	}
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if n := t.engine().find(t.root, key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// GetPair returns the stored key and value for key.
func (t *Tree[K, V]) GetPair(key K) (K, V, bool) {
	return pairOf(t.engine().find(t.root, key))
}

// GetOr returns the value stored under key, or fallback when key is absent.
func (t *Tree[K, V]) GetOr(key K, fallback V) V {
	if v, ok := t.Get(key); ok {
		return v
	}
	return fallback
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.engine().find(t.root, key) != nil
}

// Min returns the smallest key and its value; ok is false iff the tree is
// empty.
func (t *Tree[K, V]) Min() (K, V, bool) {
	return pairOf(t.engine().min(t.root))
}

// Max returns the largest key and its value; ok is false iff the tree is
// empty.
func (t *Tree[K, V]) Max() (K, V, bool) {
	return pairOf(t.engine().max(t.root))
}

// Successor returns the pair with the smallest key strictly greater than
// key. The queried key itself is never returned, present or not; ok is false
// when no key exceeds it.
func (t *Tree[K, V]) Successor(key K) (K, V, bool) {
	return pairOf(t.engine().successor(t.root, key))
}

// Predecessor returns the pair with the largest key strictly less than key.
// The queried key itself is never returned, present or not; ok is false when
// no key is below it.
func (t *Tree[K, V]) Predecessor(key K) (K, V, bool) {
	return pairOf(t.engine().predecessor(t.root, key))
}

// Delete removes key's node, promoting descendants so they stay reachable.
// Deleting an absent key is a no-op, not an error.
func (t *Tree[K, V]) Delete(key K) {
	var removed bool
	t.root, removed = t.engine().delete(t.root, key)
	if removed {
		t.size--
	}
}

// DeleteSubtree removes key's node together with its whole subtree, with no
// splicing. At the root it empties the tree; an absent key is a no-op.
func (t *Tree[K, V]) DeleteSubtree(key K) {
	var taken *node[K, V]
	t.root, taken = t.engine().takeSubtree(t.root, key)
	t.size -= taken.count()
}

// TakeSubtree excises key's node and its whole subtree into a newly returned
// tree running the same engine. The source keeps everything outside that
// branch. When key is absent the source is untouched and the result is a
// valid empty tree; excising the root moves the entire contents.
func (t *Tree[K, V]) TakeSubtree(key K) *Tree[K, V] {
	var taken *node[K, V]
	t.root, taken = t.engine().takeSubtree(t.root, key)
	n := taken.count()
	t.size -= n
	return &Tree[K, V]{root: taken, size: n, eng: t.engine()}
}

// Clear drops every node, leaving an empty tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// pairOf unpacks a node into a comma-ok pair result.
func pairOf[K cmp.Ordered, V any](n *node[K, V]) (K, V, bool) {
	if n == nil {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}
	return n.key, n.value, true
}
