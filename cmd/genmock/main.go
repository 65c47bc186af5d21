// Command genmock writes deterministic synthetic basin workbooks with the
// same layout as the historical eastern and western Caribbean spreadsheets.
// The output feeds local runs of cmd/hurricanes and cmd/validate.
//
// Usage:
//
//	go run ./cmd/genmock -out-dir data/mock -rows 400 -seed 1950
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"

	"github.com/couchcryptid/hurricane-basin-report/internal/adapter/xlsx"
	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
)

const (
	firstYear = 1851
	lastYear  = 2020
)

type basinDef struct {
	file  string
	basin domain.Basin
	// windBias shifts the basin's wind distribution (mph).
	windBias float64
}

var defs = []basinDef{
	{file: "eastern_data.xlsx", basin: domain.BasinEast, windBias: 0},
	{file: "western_data.xlsx", basin: domain.BasinWest, windBias: 8},
}

var stormNames = []string{
	"Abby", "Allen", "Beulah", "Carla", "Cleo", "Donna", "Edith", "Flora",
	"Gilbert", "Hattie", "Inez", "Ivan", "Janet", "Keith", "Lenny", "Mitch",
	"Omar", "Paloma", "Rita", "Wilma",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out-dir", "", "directory to write eastern_data.xlsx and western_data.xlsx into")
	rows := flag.Int("rows", 400, "observations per basin")
	seed := flag.Uint64("seed", 1950, "random seed")
	flag.Parse()

	if *outDir == "" || *rows <= 0 {
		flag.Usage()
		return fmt.Errorf("missing required flags: -out-dir and a positive -rows")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	for _, d := range defs {
		obs := generate(rng, d, *rows)
		path := filepath.Join(*outDir, d.file)
		if err := xlsx.WriteWorkbook(path, "", obs); err != nil {
			return fmt.Errorf("writing %s: %w", d.file, err)
		}
		log.Printf("wrote %s: %d rows", path, len(obs))
		printStats(d.basin, obs)
	}
	return nil
}

// generate draws n observations for one basin, sorted by year.
// Winds are rounded to 5 mph like the historical best-track records.
func generate(rng *rand.Rand, d basinDef, n int) []domain.Observation {
	obs := make([]domain.Observation, n)
	for i := range obs {
		year := firstYear + rng.IntN(lastYear-firstYear+1)
		wind := 65 + d.windBias + rng.NormFloat64()*28
		wind = math.Max(40, math.Min(185, math.Round(wind/5)*5))

		name := "Unnamed"
		if year >= 1950 {
			name = stormNames[rng.IntN(len(stormNames))]
		}

		obs[i] = domain.Observation{
			Basin:    d.basin,
			Year:     year,
			Month:    6 + rng.IntN(6),
			Day:      1 + rng.IntN(28),
			Name:     name,
			Wind:     wind,
			Category: domain.CategoryForWind(wind),
		}
	}
	slices.SortStableFunc(obs, func(a, b domain.Observation) int { return a.Year - b.Year })
	return obs
}

func printStats(basin domain.Basin, obs []domain.Observation) {
	counts := map[domain.Category]int{}
	for _, o := range obs {
		counts[o.Category]++
	}
	fmt.Printf("%s: ts=%d", basin.Label(), counts[domain.CategoryTropicalStorm])
	for _, c := range domain.HurricaneCategories {
		fmt.Printf(" %s=%d", c, counts[c])
	}
	fmt.Println()
}
