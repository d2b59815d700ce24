package rng

import (
	"cmp"
	"slices"
	"testing"
)

const (
	min = -1
	max = 11
)

func Test(t *testing.T) {
	for _, test := range []struct {
		r    Range[int]
		want []int
	}{
		{Range[int]{}, nil},
		{From(1).To(3), []int{1, 2, 3}},
		{From(3).Below(4), []int{3}},
		{Above(2).To(5), []int{3, 4, 5}},
		{Above(8).Below(10), []int{9}},
		{From(9).Below(8), nil},
	} {
		got := slice(test.r)
		if !slices.Equal(got, test.want) {
			t.Errorf("%s: got %v, want %v", test.r, got, test.want)
		}
		rb := test.r.Backwards()
		t.Log(rb)
		got = slice(rb)
		want := slices.Clone(test.want)
		slices.Reverse(want)
		if !slices.Equal(got, want) {
			t.Errorf("%s: got %v, want %v", rb, got, want)
		}
	}
}

func slice(r Range[int]) []int {
	lo, linf, lincl := r.Low()
	hi, hinf, hincl := r.High()
	if linf {
		lo = min
	} else if !lincl {
		lo++
	}
	if hinf {
		hi = max
	} else if !hincl {
		hi--
	}
	var ints []int
	if r.IsBackwards() {
		for i := hi; i >= lo; i-- {
			ints = append(ints, i)
		}

	} else {
		for i := lo; i <= hi; i++ {
			ints = append(ints, i)
		}
	}
	return ints
}

func TestContains(t *testing.T) {
	for _, test := range []struct {
		r    Range[int]
		want []int
	}{
		{Range[int]{}, nil},
		{Unbounded[int](), []int{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{Closed(2, 4), []int{2, 3, 4}},
		{Unbounded[int]().Below(1), []int{-1, 0}},
		{Above(9), []int{10, 11}},
		{From(3).Below(3), nil},
		{From(3).To(3).Backwards(), []int{3}},
	} {
		var got []int
		for i := min; i <= max; i++ {
			if test.r.Contains(i, cmp.Compare[int]) {
				got = append(got, i)
			}
		}
		if !slices.Equal(got, test.want) {
			t.Errorf("%s: got %v, want %v", test.r, got, test.want)
		}
	}
}

func TestString(t *testing.T) {
	for _, test := range []struct {
		r    Range[int]
		want string
	}{
		{Unbounded[int](), "(-∞, ∞)"},
		{Closed(1, 3), "[1, 3]"},
		{Above(1).Below(3), "(1, 3)"},
		{Unbounded[int]().To(2).Backwards(), "(-∞, 2] backwards"},
	} {
		if got := test.r.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}
