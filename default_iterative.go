//go:build bstree_iterative

package bstree

import "cmp"

const defaultEngineName = "iterative"

func defaultEngine[K cmp.Ordered, V any]() engine[K, V] {
	return iterativeEngine[K, V]{}
}
