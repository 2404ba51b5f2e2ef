// Package markers reconciles the computed visible set against the
// markers a map client currently shows. Pure set arithmetic: the
// package holds no map-library state, so it is testable without any
// rendering surface. The caller applies the returned delta as
// add/remove operations on its layer group.
package markers

import "slices"

type Diff struct {
	ToAdd    []int `json:"toAdd"`
	ToRemove []int `json:"toRemove"`
}

type Stats struct {
	Visible int `json:"visible"`
	Total   int `json:"total"`
}

// Reconcile computes the delta between the visible set and the set of
// markers currently shown: toAdd = visible − shown, toRemove =
// shown − visible. Both slices come back sorted ascending; duplicate
// ids in either input count once.
func Reconcile(visible, shown []int) Diff {
	vis := toSet(visible)
	cur := toSet(shown)

	d := Diff{ToAdd: []int{}, ToRemove: []int{}}
	for id := range vis {
		if _, ok := cur[id]; !ok {
			d.ToAdd = append(d.ToAdd, id)
		}
	}
	for id := range cur {
		if _, ok := vis[id]; !ok {
			d.ToRemove = append(d.ToRemove, id)
		}
	}
	slices.Sort(d.ToAdd)
	slices.Sort(d.ToRemove)
	return d
}

func toSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
