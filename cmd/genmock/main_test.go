package main

import (
	"math/rand/v2"
	"testing"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(rand.New(rand.NewPCG(7, 7)), defs[0], 50)
	b := generate(rand.New(rand.NewPCG(7, 7)), defs[0], 50)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different rows (-a +b):\n%s", diff)
	}
}

func TestGenerate_RowsAreConsistent(t *testing.T) {
	obs := generate(rand.New(rand.NewPCG(1, 2)), defs[1], 200)
	assert.Len(t, obs, 200)

	for i, o := range obs {
		assert.Equal(t, domain.BasinWest, o.Basin)
		assert.GreaterOrEqual(t, o.Year, firstYear)
		assert.LessOrEqual(t, o.Year, lastYear)
		assert.Equal(t, domain.CategoryForWind(o.Wind), o.Category)
		assert.Zero(t, int(o.Wind)%5, "wind rounded to 5 mph")
		if o.Year < 1950 {
			assert.Equal(t, "Unnamed", o.Name)
		}
		if i > 0 {
			assert.LessOrEqual(t, obs[i-1].Year, o.Year, "sorted by year")
		}
	}
}
