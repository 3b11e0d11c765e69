/*
In-memory ordered key-value map backed by an unbalanced binary search tree (BST).

## Semantics

node: owns a key, a value, and up to two children. every key in a node's left
subtree compares less than the node's key, every key in its right subtree
compares greater. keys are unique: inserting an existing key overwrites the
value in place and never adds a node.

shape: there is no balancing. the tree's shape depends entirely on insertion
order, so sorted input degenerates into a linked list and worst-case depth is
O(n). callers who need guaranteed logarithmic depth want a B-tree or red-black
tree, not this package.

absence: lookups report absence with comma-ok results, never errors. Delete
and DeleteSubtree are no-ops on missing keys, and TakeSubtree on a missing key
returns a valid empty tree.

## Engines

every structural algorithm exists twice: a recursive engine (plain call-stack
recursion, O(depth) stack frames) and an iterative engine (explicit stack and
queue slices plus pointer-to-link splicing, O(1) call depth). both must build
identical trees and yield identical traversal orders for every input. the
"bstree_iterative" build tag selects which one New wires in; both are always
compiled, so the test suite can diff one against the other in a single binary.

## Tricky Bits

- deleting a node with two children promotes the minimum of its right subtree.
  the engines must splice that minimum out the same way or shapes diverge and
  the preorder/postorder/level-order traversals stop agreeing.
- Successor and Predecessor never return the queried key itself, present or
  not.
- traversal sequences collect the key order first and re-resolve each pair
  while the caller ranges, so a key deleted between materialization and
  consumption is skipped, not yielded stale.
*/
package bstree
