// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avltree

import "fmt"

// update recomputes x's size and height from its children.
func (x *Node[V]) update() {
	x._size = 1 + x.left.size() + x.right.size()
	x._h = x.computeHeight()
}

// replaceChild puts y where x was under p. y may be nil.
func (t *Tree[V]) replaceChild(p, x, y *Node[V]) {
	if y != nil {
		y.parent = p
	}
	switch {
	case p == nil:
		t.root = y
	case p.left == x:
		p.left = y
	case p.right == x:
		p.right = y
	default:
		// unreachable
		panic("corrupt tree")
	}
}

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c).
func (t *Tree[V]) rotateLeft(x *Node[V]) {
	// p -> (x a (y b c))
	p := x.parent
	y := x.right
	b := y.left

	y.left = x
	x.parent = y
	x.right = b
	if b != nil {
		b.parent = x
	}
	t.replaceChild(p, x, y)

	// x is now y's child, so it goes first.
	x.update()
	y.update()
	t.stats.Rotations++
	t.traceRotation("left", x, y)
}

// rotateRight rotates the subtree rooted at node y,
// turning (y (x a b) c) into (x a (y b c)).
func (t *Tree[V]) rotateRight(y *Node[V]) {
	// p -> (y (x a b) c)
	p := y.parent
	x := y.left
	b := x.right

	x.right = y
	y.parent = x
	y.left = b
	if b != nil {
		b.parent = y
	}
	t.replaceChild(p, y, x)

	y.update()
	x.update()
	t.stats.Rotations++
	t.traceRotation("right", y, x)
}

func (t *Tree[V]) traceRotation(dir string, pivot, promoted *Node[V]) {
	if !t.opts.trace {
		return
	}
	t.opts.logger().Debug("rotate", "direction", dir, "pivot", pivot.key, "promoted", promoted.key)
}

// rebalanceUpward walks from x to the root after a node was attached
// below x (delta 1) or removed from below x (delta -1). It refreshes
// heights, adds delta to sizes and rotates away any balance factor of ±2.
// It returns the number of rebalancing operations: one per height that
// changed, one per single rotation.
func (t *Tree[V]) rebalanceUpward(x *Node[V], delta int) int {
	ops := 0
	for x != nil {
		bf := x.balanceFactor()
		if bf > -2 && bf < 2 {
			if h := x.computeHeight(); h != x._h {
				x._h = h
				ops++
				t.stats.HeightUpdates++
			}
			x._size += delta
			x = x.parent
			continue
		}

		if bf > 0 {
			if x.left.balanceFactor() == -1 {
				t.rotateLeft(x.left)
				t.rotateRight(x)
				t.stats.DoubleRotations++
				ops += 2
			} else {
				t.rotateRight(x)
				ops++
			}
		} else {
			if x.right.balanceFactor() == 1 {
				t.rotateRight(x.right)
				t.rotateLeft(x)
				t.stats.DoubleRotations++
				ops += 2
			} else {
				t.rotateLeft(x)
				ops++
			}
		}
		// The rotation fixed the new subtree root; continue above it.
		x = x.parent.parent
	}
	return ops
}

// Insert adds key with value val to t and returns the number of
// rebalancing operations it caused.
// If key is already present, t is unchanged and the error wraps [ErrDuplicateKey].
func (t *Tree[V]) Insert(key int, val V) (int, error) {
	x, parent := t.find(key)
	if x != nil {
		t.reject("insert of duplicate key", "key", key)
		return 0, fmt.Errorf("insert %d: %w", key, ErrDuplicateKey)
	}
	return t.attach(parent, key, val), nil
}

// Set sets t[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (t *Tree[V]) Set(key int, val V) (old V, added bool) {
	x, parent := t.find(key)
	if x != nil {
		old = x.val
		x.val = val
		return old, false
	}
	t.attach(parent, key, val)
	return old, true
}

// attach hangs a new leaf below parent, which must be the last node
// visited by find(key), and rebalances.
func (t *Tree[V]) attach(parent *Node[V], key int, val V) int {
	x := &Node[V]{parent: parent, tree: t, key: key, val: val, _size: 1}
	switch {
	case parent == nil:
		t.root = x
	case key < parent.key:
		parent.left = x
	default:
		parent.right = x
	}
	ops := t.rebalanceUpward(parent, 1)
	t.stats.Inserts++
	t.stats.Rebalances += uint64(ops)
	return ops
}

// Delete removes the node x from t and returns the number of
// rebalancing operations it caused.
//
// When x has two children, x keeps its place in the tree and takes
// over the key and value of its successor, whose node is removed
// instead. Either way, the removed node must not be used afterwards.
//
// If x is nil, belongs to another tree or was already removed, the
// error wraps [ErrInvalidNode].
func (t *Tree[V]) Delete(x *Node[V]) (int, error) {
	if !t.owns(x) {
		t.reject("delete of invalid node")
		return 0, fmt.Errorf("delete: %w", ErrInvalidNode)
	}
	ops := t.delete(x)
	t.stats.Deletes++
	t.stats.Rebalances += uint64(ops)
	return ops, nil
}

// DeleteKey removes key from t and returns the number of rebalancing
// operations it caused. The error wraps [ErrKeyNotFound] if key is absent.
func (t *Tree[V]) DeleteKey(key int) (int, error) {
	x := t.Search(key)
	if x == nil {
		t.reject("delete of missing key", "key", key)
		return 0, fmt.Errorf("delete %d: %w", key, ErrKeyNotFound)
	}
	return t.Delete(x)
}

func (t *Tree[V]) delete(x *Node[V]) int {
	parent := x.parent
	switch {
	case x.left == nil && x.right == nil:
		t.replaceChild(parent, x, nil)
	case x.left == nil:
		t.replaceChild(parent, x, x.right)
	case x.right == nil:
		t.replaceChild(parent, x, x.left)
	default:
		// The successor is the minimum of x.right, so it has no left child.
		s := x.successor()
		key, val := s.key, s.val
		ops := t.delete(s)
		x.key, x.val = key, val
		return ops
	}
	x.parent, x.left, x.right, x.tree = nil, nil, nil, nil
	return t.rebalanceUpward(parent, -1)
}

func (t *Tree[V]) reject(msg string, args ...any) {
	t.stats.Rejected++
	t.opts.logger().Warn(msg, args...)
}
