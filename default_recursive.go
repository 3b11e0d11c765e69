//go:build !bstree_iterative

package bstree

import "cmp"

const defaultEngineName = "recursive"

func defaultEngine[K cmp.Ordered, V any]() engine[K, V] {
	return recursiveEngine[K, V]{}
}
