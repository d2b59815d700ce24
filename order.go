// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avltree

import "fmt"

// Rank returns the 1-based position of x's key among the keys of t.
// The error wraps [ErrInvalidNode] if x is not a live node of t.
func (t *Tree[V]) Rank(x *Node[V]) (int, error) {
	if !t.owns(x) {
		t.reject("rank of invalid node")
		return 0, fmt.Errorf("rank: %w", ErrInvalidNode)
	}
	r := x.left.size() + 1
	for ; x.parent != nil; x = x.parent {
		if x.parent.right == x {
			r += x.parent.left.size() + 1
		}
	}
	return r, nil
}

// Select returns the node whose key has 1-based rank i.
// The error wraps [ErrOutOfRange] unless 1 ≤ i ≤ t.Size().
func (t *Tree[V]) Select(i int) (*Node[V], error) {
	if i < 1 || i > t.Size() {
		t.reject("select out of range", "rank", i, "size", t.Size())
		return nil, fmt.Errorf("select %d of %d: %w", i, t.Size(), ErrOutOfRange)
	}
	return t.root.selectRank(i), nil
}

// selectRank finds rank i within x's subtree, which must hold it.
func (x *Node[V]) selectRank(i int) *Node[V] {
	for x != nil {
		r := x.left.size() + 1
		switch {
		case i == r:
			return x
		case i < r:
			x = x.left
		default:
			i -= r
			x = x.right
		}
	}
	panic("corrupt tree")
}

// At returns the key and value at the 0-based index i in key order.
// It panics if i is out of range.
func (t *Tree[V]) At(i int) (int, V) {
	if i < 0 || i >= t.Size() {
		panic(fmt.Sprintf("avltree: index %d out of range [0, %d)", i, t.Size()))
	}
	x := t.root.selectRank(i + 1)
	return x.key, x.val
}
