package bstree

import "cmp"

// engine is the strategy interface behind Tree. Implementations work on raw
// node structures; Tree owns the bookkeeping (size counter, engine wiring).
//
// Mutating methods take a subtree root and return its replacement for the
// caller to re-attach. insert and delete additionally report whether the node
// set changed; takeSubtree returns the excised subtree root (nil when the key
// is absent). The two implementations must produce identical shapes and
// orders for identical inputs; engine_test.go holds them to that.
type engine[K cmp.Ordered, V any] interface {
	insert(root *node[K, V], key K, value V) (*node[K, V], bool)
	delete(root *node[K, V], key K) (*node[K, V], bool)
	takeSubtree(root *node[K, V], key K) (*node[K, V], *node[K, V])

	find(root *node[K, V], key K) *node[K, V]
	min(root *node[K, V]) *node[K, V]
	max(root *node[K, V]) *node[K, V]
	successor(root *node[K, V], key K) *node[K, V]
	predecessor(root *node[K, V], key K) *node[K, V]

	preorderKeys(root *node[K, V]) []K
	inorderKeys(root *node[K, V]) []K
	postorderKeys(root *node[K, V]) []K
	levelOrderKeys(root *node[K, V]) []K
}
