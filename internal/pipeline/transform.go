package pipeline

import (
	"slices"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
)

// hurricaneSet merges both basins, drops tropical storms, and orders the
// remaining rows by category so the scatter plot draws weaker storms first.
func hurricaneSet(east, west []domain.Observation) []domain.Observation {
	all := domain.DropTropicalStorms(slices.Concat(east, west))
	domain.SortByCategory(all)
	return all
}
