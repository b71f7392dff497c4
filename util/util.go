// Package util contains common utility functions. This is not part of the common
// package as that is imported without namespacing.
package util

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Position returns the position of the first value in arr for which pred
// returns true and whether there was one. If there is none the index one past
// the last element is returned.
func Position[T any](arr []T, pred func(T) bool) (int, bool) {
	for idx, elem := range arr {
		if pred(elem) {
			return idx, true
		}
	}
	return len(arr), false
}

// Filter retains all values of arr for which pred returns true, keeping their
// order. The input slice is reused.
func Filter[T any](arr []T, pred func(T) bool) []T {
	kept := arr[:0]
	for _, x := range arr {
		if pred(x) {
			kept = append(kept, x)
		}
	}
	return kept
}

// Map applies f to each value of arr.
func Map[T any, U any](arr []T, f func(T) U) []U {
	result := make([]U, len(arr))
	for i, x := range arr {
		result[i] = f(x)
	}
	return result
}

// Sum returns the sum of the elements in arr.
func Sum[T Number](arr []T) T {
	var sum T
	for _, x := range arr {
		sum += x
	}
	return sum
}

// Min returns the minimum of two values.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two values.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp clamps the value in the given inclusive range.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Min(Max(x, lo), hi)
}

// PopFront pops the first value from the given slice.
func PopFront[T any](arr []T) (T, []T) {
	x, xs := arr[0], arr[1:]
	return x, xs
}
