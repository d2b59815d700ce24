// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avltree

import "errors"

var (
	ErrDuplicateKey = errors.New("key already present")
	ErrKeyNotFound  = errors.New("key not found")
	ErrInvalidNode  = errors.New("node is not in the tree")
	ErrOutOfRange   = errors.New("rank out of range")
	ErrInvalidRange = errors.New("range low bound must be less than high bound")
	ErrCorrupt      = errors.New("tree invariant violated")
)
