package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func InRange[A constraints.Integer](num A, lo A, hi A) bool {
	return num >= lo && num <= hi
}

func GetKeys[A comparable, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	slices.Sort(keys)
	return keys
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}
