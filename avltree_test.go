// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avltree

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

// permute inserts the keys 2x+1 for x in a random permutation of [0, n).
// slice[k] is the value stored under k, or 0 if k is absent.
func permute(t *testing.T, m *Tree[int], n int) (perm, slice []int) {
	t.Helper()
	perm = rand.Perm(n)
	slice = make([]int, 2*n+2)
	for i, x := range perm {
		if _, err := m.Insert(2*x+1, i+1); err != nil {
			t.Fatalf("Insert(%d): %v", 2*x+1, err)
		}
		slice[2*x+1] = i + 1
	}
	// Overwrite-Set half the entries.
	for i, x := range perm[:len(perm)/2] {
		old, added := m.Set(2*x+1, i+100)
		if added || old != slice[2*x+1] {
			t.Fatalf("Set(%d) = %d, %t, want %d, false", 2*x+1, old, added, slice[2*x+1])
		}
		slice[2*x+1] = i + 100
	}
	return perm, slice
}

func dump[V int | string](m *Tree[V]) string {
	var buf bytes.Buffer
	var walk func(*Node[V])
	walk = func(x *Node[V]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(%d[h%d s%d] ", x.key, x._h, x._size)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(m.root)
	return buf.String()
}

func test(t *testing.T, f func(*testing.T, func() *Tree[int])) {
	t.Run("New", func(t *testing.T) {
		f(t, func() *Tree[int] { return New[int]() })
	})
	t.Run("Zero", func(t *testing.T) {
		f(t, func() *Tree[int] { return new(Tree[int]) })
	})
	t.Run("Traced", func(t *testing.T) {
		f(t, func() *Tree[int] { return New[int](WithLogger(DiscardLogger{}), WithRotationTrace(true)) })
	})
}

func verify[V int | string](t *testing.T, m *Tree[V]) {
	t.Helper()
	if err := m.Verify(); err != nil {
		t.Fatalf("%v\nM: %s", err, dump(m))
	}
}

func nonzeroIndexes(s []int) []int {
	var r []int
	for k, v := range s {
		if v != 0 {
			r = append(r, k)
		}
	}
	return r
}

func TestSearch(t *testing.T) {
	test(t, func(t *testing.T, newMap func() *Tree[int]) {
		for N := range 11 {
			m := newMap()
			_, slice := permute(t, m, N)
			for k, want := range slice {
				x := m.Search(k)
				if x.IsReal() != (want > 0) || x.Value() != want {
					t.Fatalf("Search(%d) = %v, want value %d\nM: %v", k, x, want, dump(m))
				}
				if x != nil && x.Key() != k {
					t.Fatalf("Search(%d) returned key %d", k, x.Key())
				}
				if again := m.Search(k); again != x {
					t.Fatalf("Search(%d) not repeatable: %p then %p", k, x, again)
				}
				v, ok := m.Get(k)
				if v != want || ok != (want > 0) {
					t.Fatalf("Get(%d) = %d, %v, want %d, %v", k, v, ok, want, want > 0)
				}
			}
		}
	})
}

func TestSet(t *testing.T) {
	test(t, func(t *testing.T, newMap func() *Tree[int]) {
		check := func(gotOld int, gotAdded bool) func(int, bool) {
			return func(wantOld int, wantAdded bool) {
				t.Helper()
				if gotOld != wantOld || gotAdded != wantAdded {
					t.Errorf("got %d, %t, want %d, %t", gotOld, gotAdded, wantOld, wantAdded)
				}
			}
		}

		m := newMap()
		check(m.Set(1, 10))(0, true)
		check(m.Set(2, 20))(0, true)
		check(m.Set(1, 5))(10, false)
		check(m.Set(1, 8))(5, false)
		if m.Size() != 2 {
			t.Errorf("Size() = %d, want 2", m.Size())
		}
		verify(t, m)
	})
}

func TestInsertKeepsInvariants(t *testing.T) {
	test(t, func(t *testing.T, newMap func() *Tree[int]) {
		for _, N := range []int{1, 2, 3, 7, 31, 100, 257} {
			m := newMap()
			for i, k := range rand.Perm(N) {
				if _, err := m.Insert(k, k); err != nil {
					t.Fatal(err)
				}
				verify(t, m)
				if m.Size() != i+1 {
					t.Fatalf("Size() = %d, want %d", m.Size(), i+1)
				}
			}
			// An AVL tree of n nodes is at most about 1.44 log2(n) high.
			bound := 1
			for n := 1; n <= N; n *= 2 {
				bound++
			}
			if h := m.Height(); 2*h > 3*bound {
				t.Errorf("N=%d: height %d too large", N, h)
			}
		}
	})
}

func TestMinMax(t *testing.T) {
	test(t, func(t *testing.T, newMap func() *Tree[int]) {
		for N := range 11 {
			m := newMap()
			permute(t, m, N)
			lo, lok := m.Min()
			hi, hok := m.Max()
			wantLo, wantHi, wok := 1, 2*N-1, true
			if N == 0 {
				wantLo, wantHi, wok = 0, 0, false
			}
			if lo != wantLo || lok != wok {
				t.Errorf("N=%d Min() returned %d, %t want %d, %t", N, lo, lok, wantLo, wok)
			}
			if hi != wantHi || hok != wok {
				t.Errorf("N=%d Max() returned %d, %t want %d, %t", N, hi, hok, wantHi, wok)
			}
		}
	})
}

func TestAll(t *testing.T) {
	test(t, func(t *testing.T, newMap func() *Tree[int]) {
		for N := range 11 {
			m := newMap()
			_, slice := permute(t, m, N)
			var have []int
			for k, v := range m.All() {
				if v != slice[k] {
					t.Errorf("All() returned %d, %d want %d, %d", k, v, k, slice[k])
				}
				have = append(have, k)
				if len(have) > N+5 { // too many; looping?
					break
				}
			}
			want := nonzeroIndexes(slice)
			if !slices.Equal(have, want) {
				t.Errorf("All() = %v, want %v", have, want)
			}

			var entries []int
			for _, e := range m.ToSlice() {
				if e.Value != slice[e.Key] {
					t.Errorf("ToSlice() has %d, %d want %d, %d", e.Key, e.Value, e.Key, slice[e.Key])
				}
				entries = append(entries, e.Key)
			}
			if !slices.Equal(entries, want) {
				t.Errorf("ToSlice() keys = %v, want %v", entries, want)
			}
		}
	})
}

func TestBackward(t *testing.T) {
	test(t, func(t *testing.T, newMap func() *Tree[int]) {
		for N := range 11 {
			m := newMap()
			_, slice := permute(t, m, N)
			var have []int
			for k, v := range m.Backward() {
				if v != slice[k] {
					t.Errorf("Backward() returned %d, %d want %d, %d", k, v, k, slice[k])
				}
				have = append(have, k)
				if len(have) > N+5 { // too many; looping?
					break
				}
			}
			want := nonzeroIndexes(slice)
			slices.Reverse(want)
			if !slices.Equal(have, want) {
				t.Errorf("Backward() = %v, want %v", have, want)
			}
		}
	})
}

func TestDelete(t *testing.T) {
	test(t, func(t *testing.T, newMap func() *Tree[int]) {
		checkSize := func(m *Tree[int], n int) {
			t.Helper()
			if m.Size() != n {
				t.Errorf("m.Size() = %d, want %d", m.Size(), n)
			}
		}

		for N := range 11 {
			m := newMap()
			checkSize(m, 0)
			_, slice := permute(t, m, N)
			checkSize(m, N)
			wantSize := N
			for _, x := range rand.Perm(len(slice)) {
				if n := m.Search(x); n != nil {
					if _, err := m.Delete(n); err != nil {
						t.Fatalf("Delete(%d): %v", x, err)
					}
					wantSize--
				}
				checkSize(m, wantSize)
				verify(t, m)
				slice[x] = 0
				var have []int
				for k := range m.All() {
					have = append(have, k)
				}
				want := nonzeroIndexes(slice)
				if !slices.Equal(have, want) {
					t.Errorf("after Delete(%v), All() = %v, want %v", x, have, want)
				}
			}
			if m.Root() != nil {
				t.Errorf("N=%d: root not nil after deleting everything: %s", N, dump(m))
			}
		}
	})
}

func TestMixedWorkload(t *testing.T) {
	m := New[int]()
	ref := map[int]int{}
	r := rand.New(rand.NewPCG(1, 2))
	inserts, deletes := 0, 0
	for i := range 5000 {
		k := r.IntN(400)
		if _, ok := ref[k]; ok {
			if _, err := m.DeleteKey(k); err != nil {
				t.Fatalf("op %d: DeleteKey(%d): %v", i, k, err)
			}
			delete(ref, k)
			deletes++
		} else {
			if _, err := m.Insert(k, i); err != nil {
				t.Fatalf("op %d: Insert(%d): %v", i, k, err)
			}
			ref[k] = i
			inserts++
		}
		if m.Size() != inserts-deletes {
			t.Fatalf("op %d: Size() = %d, want %d", i, m.Size(), inserts-deletes)
		}
		if i%50 == 0 {
			verify(t, m)
		}
	}
	verify(t, m)
	for k, v := range ref {
		if got, ok := m.Get(k); !ok || got != v {
			t.Errorf("Get(%d) = %d, %t, want %d, true", k, got, ok, v)
		}
	}
	st := m.Stats()
	if st.Inserts != uint64(inserts) || st.Deletes != uint64(deletes) {
		t.Errorf("Stats() = %+v, want %d inserts and %d deletes", st, inserts, deletes)
	}
	if st.Rebalances != st.HeightUpdates+st.Rotations {
		t.Errorf("Stats() = %+v: rebalances != height updates + rotations", st)
	}
}

func TestRankSelect(t *testing.T) {
	test(t, func(t *testing.T, newMap func() *Tree[int]) {
		for N := range 20 {
			m := newMap()
			_, slice := permute(t, m, N)
			keys := nonzeroIndexes(slice)
			for i := 1; i <= m.Size(); i++ {
				x, err := m.Select(i)
				if err != nil {
					t.Fatalf("Select(%d): %v", i, err)
				}
				if x.Key() != keys[i-1] {
					t.Errorf("Select(%d).Key() = %d, want %d", i, x.Key(), keys[i-1])
				}
				r, err := m.Rank(x)
				if err != nil || r != i {
					t.Errorf("Rank(Select(%d)) = %d, %v", i, r, err)
				}
			}
		}
	})
}

func TestAt(t *testing.T) {
	test(t, func(t *testing.T, newMap func() *Tree[int]) {
		for N := range 11 {
			m := newMap()
			_, slice := permute(t, m, N)
			var haveKeys, haveVals []int
			for i := 0; i < N; i++ {
				k, v := m.At(i)
				haveKeys = append(haveKeys, k)
				haveVals = append(haveVals, v)
			}
			var wantKeys, wantVals []int
			for k, v := range slice {
				if v != 0 {
					wantKeys = append(wantKeys, k)
					wantVals = append(wantVals, v)
				}
			}
			if !slices.Equal(haveKeys, wantKeys) {
				t.Errorf("keys: have %v, want %v", haveKeys, wantKeys)
			}
			if !slices.Equal(haveVals, wantVals) {
				t.Errorf("values: have %v, want %v", haveVals, wantVals)
			}
		}
	})
}

func TestNext(t *testing.T) {
	m := New[int]()
	permute(t, m, 10)
	x := m.Search(1)
	var have []int
	for ; x != nil; x = x.Next() {
		have = append(have, x.Key())
	}
	if want := []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}; !slices.Equal(have, want) {
		t.Errorf("Next chain = %v, want %v", have, want)
	}
	have = have[:0]
	for x = m.Search(19); x != nil; x = x.Prev() {
		have = append(have, x.Key())
	}
	if want := []int{19, 17, 15, 13, 11, 9, 7, 5, 3, 1}; !slices.Equal(have, want) {
		t.Errorf("Prev chain = %v, want %v", have, want)
	}
}

func TestClone(t *testing.T) {
	for N := range 11 {
		m := New[int]()
		permute(t, m, N)
		c := m.Clone()
		verify(t, c)
		if !slices.Equal(m.ToSlice(), c.ToSlice()) || dump(m) != dump(c) {
			t.Errorf("N=%d: clone differs:\n%s\n%s", N, dump(m), dump(c))
		}
		if N > 0 {
			// Nodes of the original are not nodes of the clone.
			if _, err := c.Delete(m.Root()); err == nil {
				t.Errorf("N=%d: clone accepted a node of the original", N)
			}
			if _, err := c.Delete(c.Root()); err != nil {
				t.Fatal(err)
			}
			if m.Size() != N || c.Size() != N-1 {
				t.Errorf("N=%d: sizes %d, %d after deleting from clone", N, m.Size(), c.Size())
			}
		}
	}
}

func TestClear(t *testing.T) {
	m := New[int]()
	permute(t, m, 10)
	x := m.Root()
	m.Clear()
	if m.Size() != 0 || m.Root() != nil || m.Height() != -1 {
		t.Fatalf("after Clear: size %d height %d", m.Size(), m.Height())
	}
	if _, err := m.Delete(x); err == nil {
		t.Error("Delete accepted a node from before Clear")
	}
	if _, err := m.Insert(1, 1); err != nil {
		t.Fatal(err)
	}
	verify(t, m)
}

func TestDigest(t *testing.T) {
	var a, b Tree[string]
	for _, k := range rand.Perm(50) {
		a.Set(k, fmt.Sprint("v", k))
	}
	for k := range 50 {
		b.Set(k, fmt.Sprint("v", k))
	}
	if a.Digest() != b.Digest() {
		t.Errorf("equal contents, different digests: %x %x", a.Digest(), b.Digest())
	}
	b.Set(7, "changed")
	if a.Digest() == b.Digest() {
		t.Error("different contents, same digest")
	}
	var e1, e2 Tree[string]
	e2.Set(1, "")
	if e1.Digest() == e2.Digest() {
		t.Error("empty tree and {1: \"\"} have the same digest")
	}
}
