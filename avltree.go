// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avltree implements an in-memory ordered map from int keys to
// ordered values, kept balanced as an AVL tree.
//
// Every node also records the size of its subtree, so the tree answers
// order-statistics queries ([Tree.Rank], [Tree.Select]) in logarithmic
// time. Insert and Delete report how many rebalancing operations they
// performed: one for each stored height that changed and one for each
// single rotation.
//
// A Tree is not safe for concurrent use. A *Node returned by a query is
// valid until the next mutation that removes it; passing a removed node
// to [Tree.Delete] or [Tree.Rank] returns [ErrInvalidNode].
package avltree

// See:
// https://en.wikipedia.org/wiki/AVL_tree
// https://en.wikipedia.org/wiki/Order_statistic_tree

import "cmp"

// A Tree is an ordered map[int]V kept balanced as an AVL tree.
// The zero value of a Tree is an empty tree ready to use.
type Tree[V cmp.Ordered] struct {
	root  *Node[V]
	opts  options
	stats Stats
}

// A Node is a node in the tree.
//
// A nil *Node stands for a virtual node: the absent child of a leaf,
// or the result of a failed lookup. Its height is -1 and its size 0,
// so the methods below can be called on the children of any real node
// without checking for nil.
type Node[V cmp.Ordered] struct {
	parent *Node[V]
	left   *Node[V]
	right  *Node[V]
	tree   *Tree[V] // nil once the node has been removed
	key    int
	val    V
	_h     int
	_size  int
}

// Stats holds cumulative counters for the mutations applied to a tree.
type Stats struct {
	Inserts         uint64
	Deletes         uint64
	Rebalances      uint64 // sum of the counts returned by Insert and Delete
	HeightUpdates   uint64
	Rotations       uint64 // single rotations; a double rotation counts twice
	DoubleRotations uint64
	Rejected        uint64 // calls that failed a precondition
}

// An Entry is a key/value pair, as returned by [Tree.ToSlice].
type Entry[V cmp.Ordered] struct {
	Key   int
	Value V
}

// New returns an empty tree configured by opts.
func New[V cmp.Ordered](opts ...Option) *Tree[V] {
	t := &Tree[V]{}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

func (x *Node[V]) height() int {
	if x == nil {
		return -1
	}
	return x._h
}

func (x *Node[V]) size() int {
	if x == nil {
		return 0
	}
	return x._size
}

// computeHeight derives x's height from its children.
func (x *Node[V]) computeHeight() int {
	return 1 + max(x.left.height(), x.right.height())
}

// balanceFactor is the height of x's left subtree minus that of its right.
func (x *Node[V]) balanceFactor() int {
	return x.left.height() - x.right.height()
}

// subtreeMin returns the node in x's subtree with the smallest key.
// x must not be nil.
func (x *Node[V]) subtreeMin() *Node[V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// subtreeMax returns the node in x's subtree with the largest key.
// x must not be nil.
func (x *Node[V]) subtreeMax() *Node[V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// successor returns the node with the next larger key, or nil.
func (x *Node[V]) successor() *Node[V] {
	if x.right != nil {
		return x.right.subtreeMin()
	}
	for x.parent != nil && x.parent.right == x {
		x = x.parent
	}
	return x.parent
}

// predecessor returns the node with the next smaller key, or nil.
func (x *Node[V]) predecessor() *Node[V] {
	if x.left != nil {
		return x.left.subtreeMax()
	}
	for x.parent != nil && x.parent.left == x {
		x = x.parent
	}
	return x.parent
}

// IsReal reports whether x is a real node rather than a virtual one.
func (x *Node[V]) IsReal() bool { return x != nil }

// Key returns x's key, or 0 for a virtual node.
func (x *Node[V]) Key() int {
	if x == nil {
		return 0
	}
	return x.key
}

// Value returns x's value, or the zero value for a virtual node.
func (x *Node[V]) Value() V {
	if x == nil {
		var zero V
		return zero
	}
	return x.val
}

// Height returns the height of x's subtree: 0 for a leaf, -1 for a virtual node.
func (x *Node[V]) Height() int { return x.height() }

// Size returns the number of nodes in x's subtree.
func (x *Node[V]) Size() int { return x.size() }

// BalanceFactor returns the height of x's left subtree minus that of its right.
func (x *Node[V]) BalanceFactor() int {
	if x == nil {
		return 0
	}
	return x.balanceFactor()
}

func (x *Node[V]) Left() *Node[V] {
	if x == nil {
		return nil
	}
	return x.left
}

func (x *Node[V]) Right() *Node[V] {
	if x == nil {
		return nil
	}
	return x.right
}

func (x *Node[V]) Parent() *Node[V] {
	if x == nil {
		return nil
	}
	return x.parent
}

// Next returns the node with the smallest key greater than x's, or nil.
func (x *Node[V]) Next() *Node[V] {
	if x == nil {
		return nil
	}
	return x.successor()
}

// Prev returns the node with the largest key less than x's, or nil.
func (x *Node[V]) Prev() *Node[V] {
	if x == nil {
		return nil
	}
	return x.predecessor()
}

// owns reports whether x is a live node of t.
func (t *Tree[V]) owns(x *Node[V]) bool {
	return x != nil && x.tree == t
}

// find returns the node holding key, or nil, along with the last real
// node visited on the way down.
func (t *Tree[V]) find(key int) (x, parent *Node[V]) {
	for x = t.root; x != nil; {
		if x.key == key {
			return x, parent
		}
		parent = x
		if key < x.key {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil, parent
}

// Search returns the node holding key, or nil if there is none.
func (t *Tree[V]) Search(key int) *Node[V] {
	x, _ := t.find(key)
	return x
}

// Get returns the value stored under key and reports whether it exists.
func (t *Tree[V]) Get(key int) (V, bool) {
	if x := t.Search(key); x != nil {
		return x.val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is in t.
func (t *Tree[V]) Contains(key int) bool {
	return t.Search(key) != nil
}

// Root returns the root node, or nil if t is empty.
func (t *Tree[V]) Root() *Node[V] { return t.root }

// Size returns the number of keys in t.
func (t *Tree[V]) Size() int { return t.root.size() }

// Height returns the height of t: -1 if t is empty, 0 for a single key.
func (t *Tree[V]) Height() int { return t.root.height() }

// Stats returns the cumulative mutation counters of t.
func (t *Tree[V]) Stats() Stats { return t.stats }

// Min returns the smallest key in t and true.
// If t is empty, the second return value is false.
func (t *Tree[V]) Min() (int, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.subtreeMin().key, true
}

// Max returns the largest key in t and true.
// If t is empty, the second return value is false.
func (t *Tree[V]) Max() (int, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.subtreeMax().key, true
}

// Clear removes every key from t. Nodes obtained before the call
// become invalid.
func (t *Tree[V]) Clear() {
	if t.root != nil {
		t.opts.logger().Info("clearing tree", "size", t.root.size())
	}
	disown(t.root)
	t.root = nil
}

func disown[V cmp.Ordered](x *Node[V]) {
	if x == nil {
		return
	}
	x.tree = nil
	disown(x.left)
	disown(x.right)
}

// Clone returns a copy of t with the same shape and options.
// Its statistics start from zero.
func (t *Tree[V]) Clone() *Tree[V] {
	t2 := &Tree[V]{opts: t.opts}
	t2.root = t.root.clone(t2, nil)
	return t2
}

func (x *Node[V]) clone(t *Tree[V], parent *Node[V]) *Node[V] {
	if x == nil {
		return nil
	}
	c := *x
	x2 := &c
	x2.tree = t
	x2.parent = parent
	x2.left = x.left.clone(t, x2)
	x2.right = x.right.clone(t, x2)
	return x2
}
