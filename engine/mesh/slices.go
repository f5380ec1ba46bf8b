package mesh

import (
	"golang.org/x/exp/slices"
)

func addUnique(s []int, x int) []int {
	if slices.Contains(s, x) {
		return s
	}
	return append(s, x)
}

func removeValue(s []int, x int) []int {
	if i := slices.Index(s, x); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}

func replaceValue(s []int, from, to int) {
	for i, x := range s {
		if x == from {
			s[i] = to
		}
	}
}

// without returns the elements of s not found in drop.
func without(s, drop []int) []int {
	var out []int
	for _, x := range s {
		if !slices.Contains(drop, x) {
			out = append(out, x)
		}
	}
	return out
}

func sortedDesc(s []int) []int {
	out := slices.Clone(s)
	slices.SortFunc(out, func(a, b int) int { return b - a })
	return out
}
