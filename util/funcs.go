package util

import (
	"iter"
	"slices"
)

func MapIter[A, B any](iter iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range iter {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Strings formats every element of s with its String method
func Strings[A interface{ String() string }](s []A) []string {
	out := make([]string, 0, len(s))
	for v := range MapIter(slices.Values(s), func(a A) string { return a.String() }) {
		out = append(out, v)
	}
	return out
}
