// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avltree

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/jba/avltree/rng"
)

// All returns an iterator over t from smallest to largest key.
// t must not be modified during the iteration.
func (t *Tree[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		x := t.root
		if x != nil {
			x = x.subtreeMin()
		}
		for x != nil && yield(x.key, x.val) {
			x = x.successor()
		}
	}
}

// Backward returns an iterator over t from largest to smallest key.
// t must not be modified during the iteration.
func (t *Tree[V]) Backward() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		x := t.root
		if x != nil {
			x = x.subtreeMax()
		}
		for x != nil && yield(x.key, x.val) {
			x = x.predecessor()
		}
	}
}

// ToSlice returns every entry of t in key order.
func (t *Tree[V]) ToSlice() []Entry[V] {
	out := make([]Entry[V], 0, t.Size())
	var walk func(*Node[V])
	walk = func(x *Node[V]) {
		if x == nil {
			return
		}
		walk(x.left)
		out = append(out, Entry[V]{x.key, x.val})
		walk(x.right)
	}
	walk(t.root)
	return out
}

// ceiling returns the node with the least key ≥ key, or nil.
func (t *Tree[V]) ceiling(key int) *Node[V] {
	var best *Node[V]
	for x := t.root; x != nil; {
		if x.key >= key {
			best = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return best
}

// floor returns the node with the greatest key ≤ key, or nil.
func (t *Tree[V]) floor(key int) *Node[V] {
	var best *Node[V]
	for x := t.root; x != nil; {
		if x.key <= key {
			best = x
			x = x.right
		} else {
			x = x.left
		}
	}
	return best
}

// first returns the node with the smallest key in r, or nil.
func (t *Tree[V]) first(r rng.Range[int]) *Node[V] {
	var x *Node[V]
	lo, inf, incl := r.Low()
	switch {
	case t.root == nil:
		return nil
	case inf:
		x = t.root.subtreeMin()
	default:
		x = t.ceiling(lo)
		if x != nil && x.key == lo && !incl {
			x = x.successor()
		}
	}
	if x == nil || !r.BelowHigh(x.key, cmp.Compare[int]) {
		return nil
	}
	return x
}

// last returns the node with the largest key in r, or nil.
func (t *Tree[V]) last(r rng.Range[int]) *Node[V] {
	var x *Node[V]
	hi, inf, incl := r.High()
	switch {
	case t.root == nil:
		return nil
	case inf:
		x = t.root.subtreeMax()
	default:
		x = t.floor(hi)
		if x != nil && x.key == hi && !incl {
			x = x.predecessor()
		}
	}
	if x == nil || !r.AboveLow(x.key, cmp.Compare[int]) {
		return nil
	}
	return x
}

// Scan returns an iterator over the keys of t that lie in r,
// from largest to smallest if r is backwards.
// t must not be modified during the iteration.
func (t *Tree[V]) Scan(r rng.Range[int]) iter.Seq2[int, V] {
	if r.IsBackwards() {
		return func(yield func(int, V) bool) {
			for x := t.last(r); x != nil && r.AboveLow(x.key, cmp.Compare[int]); x = x.predecessor() {
				if !yield(x.key, x.val) {
					return
				}
			}
		}
	}
	return func(yield func(int, V) bool) {
		for x := t.first(r); x != nil && r.BelowHigh(x.key, cmp.Compare[int]); x = x.successor() {
			if !yield(x.key, x.val) {
				return
			}
		}
	}
}

// MaxIn returns the node with the greatest value among those whose key
// lies in r, or nil if there are none. Ties go to the smallest key.
func (t *Tree[V]) MaxIn(r rng.Range[int]) *Node[V] {
	var best *Node[V]
	for x := t.first(r); x != nil && r.BelowHigh(x.key, cmp.Compare[int]); x = x.successor() {
		if best == nil || x.val > best.val {
			best = x
		}
	}
	return best
}

// MaxInRange returns the node with the greatest value among those whose
// key k satisfies a ≤ k ≤ b, or nil if there are none.
// The error wraps [ErrInvalidRange] unless a < b.
func (t *Tree[V]) MaxInRange(a, b int) (*Node[V], error) {
	if a >= b {
		t.reject("max of invalid range", "low", a, "high", b)
		return nil, fmt.Errorf("max in [%d, %d]: %w", a, b, ErrInvalidRange)
	}
	return t.MaxIn(rng.Closed(a, b)), nil
}
