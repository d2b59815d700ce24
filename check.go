// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avltree

import "fmt"

// Verify checks the structure of t: parent links, ownership, key
// order, stored heights and sizes, and the AVL balance bound.
// It returns nil or an error wrapping [ErrCorrupt] that names the first
// offending key.
func (t *Tree[V]) Verify() error {
	if t.root != nil && t.root.parent != nil {
		return t.corrupt(t.root, "root has a parent")
	}
	_, err := t.verify(t.root, nil, nil, nil)
	return err
}

// verify checks the subtree at x, whose keys must lie strictly between
// the keys of lo and hi when those are non-nil. It returns the number
// of nodes it saw.
func (t *Tree[V]) verify(x, up, lo, hi *Node[V]) (int, error) {
	if x == nil {
		return 0, nil
	}
	switch {
	case x.parent != up:
		return 0, t.corrupt(x, "wrong parent link")
	case x.tree != t:
		return 0, t.corrupt(x, "node not owned by tree")
	case lo != nil && x.key <= lo.key:
		return 0, t.corrupt(x, fmt.Sprintf("out of order after %d", lo.key))
	case hi != nil && x.key >= hi.key:
		return 0, t.corrupt(x, fmt.Sprintf("out of order before %d", hi.key))
	}
	nl, err := t.verify(x.left, x, lo, x)
	if err != nil {
		return 0, err
	}
	nr, err := t.verify(x.right, x, x, hi)
	if err != nil {
		return 0, err
	}
	switch {
	case x._size != 1+nl+nr:
		return 0, t.corrupt(x, fmt.Sprintf("size %d, counted %d", x._size, 1+nl+nr))
	case x._h != x.computeHeight():
		return 0, t.corrupt(x, fmt.Sprintf("height %d, computed %d", x._h, x.computeHeight()))
	case x.balanceFactor() < -1 || x.balanceFactor() > 1:
		return 0, t.corrupt(x, fmt.Sprintf("balance factor %d", x.balanceFactor()))
	}
	return 1 + nl + nr, nil
}

func (t *Tree[V]) corrupt(x *Node[V], what string) error {
	t.opts.logger().Error("tree check failed", "key", x.key, "reason", what)
	return fmt.Errorf("key %d: %s: %w", x.key, what, ErrCorrupt)
}
