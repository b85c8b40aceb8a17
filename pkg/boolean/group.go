// Package boolean provides the surface grouping step used when child
// volumes become cavities of a parent volume: boundary-surface tag lists
// that share at least one tag belong to the same connected shell.
package boolean

import "sort"

// Group partitions surface-tag lists into connected components. Lists
// sharing at least one tag are merged into one group. Each returned
// group holds the sorted union of its members' tags; groups appear in
// first-encounter order of their lowest input index.
func Group(surfaceLists [][]int) [][]int {
	parent := make(map[int]int) // tag -> representative tag

	var find func(t int) int
	find = func(t int) int {
		r, ok := parent[t]
		if !ok {
			parent[t] = t
			return t
		}
		if r != t {
			r = find(r)
			parent[t] = r
		}
		return r
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	order := make([]int, 0) // representatives in first-encounter order
	for _, tags := range surfaceLists {
		if len(tags) == 0 {
			continue
		}
		first := tags[0]
		find(first)
		for _, t := range tags[1:] {
			union(first, t)
		}
		order = append(order, first)
	}

	groups := make(map[int][]int)
	for t := range parent {
		r := find(t)
		groups[r] = append(groups[r], t)
	}

	var out [][]int
	seen := make(map[int]bool)
	for _, t := range order {
		r := find(t)
		if seen[r] {
			continue
		}
		seen[r] = true
		g := groups[r]
		sort.Ints(g)
		out = append(out, g)
	}
	return out
}
