package slices

import (
	"fmt"
)

// Contains checks for the existence of v in s.
func Contains[E comparable](s []E, v E) bool {
	for _, s := range s {
		if v == s {
			return true
		}
	}
	return false
}

type MapFunc[IN, OUT any] interface {
	~func(int, IN) OUT | ~func(IN) OUT
}

// Map turns a []IN to a []OUT using a mapping function.
func Map[IN, OUT any, F MapFunc[IN, OUT]](in []IN, fun F) []OUT {
	if in == nil {
		return nil
	}
	f := func(i int, item IN) OUT {
		switch typ := any(fun).(type) {
		case func(int, IN) OUT:
			return typ(i, item)
		case func(IN) OUT:
			return typ(item)
		}
		panic(fmt.Sprintf("unrecognized Map function type %T", fun))
	}
	out := make([]OUT, len(in))
	for i, item := range in {
		out[i] = f(i, item)
	}
	return out
}

// Distinct removes duplicate items keeping the order
// of first occurrence.
// It returns the distinct items and the indices of the
// removed duplicates.
func Distinct[E comparable](in []E) ([]E, []int) {
	var dups []int
	out := make([]E, 0, len(in))
	for i, item := range in {
		if Contains(out, item) {
			dups = append(dups, i)
			continue
		}
		out = append(out, item)
	}
	return out, dups
}

// SameSet reports if both slices hold the same items
// regardless of order.
// Duplicates are expected to be removed beforehand.
func SameSet[E comparable](s1, s2 []E) bool {
	if len(s1) != len(s2) {
		return false
	}
	for _, item := range s1 {
		if !Contains(s2, item) {
			return false
		}
	}
	return true
}
