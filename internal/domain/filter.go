package domain

import (
	"cmp"
	"slices"
)

// DropTropicalStorms returns the observations whose category is not the
// tropical-storm marker, preserving their order. The input is not modified.
func DropTropicalStorms(obs []Observation) []Observation {
	out := make([]Observation, 0, len(obs))
	for _, o := range obs {
		if o.Category.IsTropicalStorm() {
			continue
		}
		out = append(out, o)
	}
	return out
}

// CountTropicalStorms returns how many observations carry the tropical-storm marker.
func CountTropicalStorms(obs []Observation) int {
	n := 0
	for _, o := range obs {
		if o.Category.IsTropicalStorm() {
			n++
		}
	}
	return n
}

// SortByCategory orders observations by category marker in place. Rows with
// equal markers keep their relative order.
func SortByCategory(obs []Observation) {
	slices.SortStableFunc(obs, func(a, b Observation) int {
		return cmp.Compare(a.Category, b.Category)
	})
}
