// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avltree

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a 64-bit xxhash of the entries of t in key order.
// Trees holding the same entries have the same digest, whatever their
// shape or the order in which the entries were inserted.
func (t *Tree[V]) Digest() uint64 {
	d := xxhash.New()
	var buf []byte
	for k, v := range t.All() {
		buf = binary.BigEndian.AppendUint64(buf[:0], uint64(k))
		buf = fmt.Append(buf, v)
		// End with the value length so adjacent entries cannot run together.
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(buf)-8))
		d.Write(buf)
	}
	return d.Sum64()
}
