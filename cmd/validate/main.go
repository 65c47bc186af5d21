// Command validate performs integrity checks on the eastern and western
// basin workbooks before they are fed to cmd/hurricanes. It verifies the
// schema, category markers, wind/category consistency on the Saffir-Simpson
// scale, year ranges, and that a report can be built from the data.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -eastern data/mock/eastern_data.xlsx \
//	  -western data/mock/western_data.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/hurricane-basin-report/internal/adapter/xlsx"
	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"github.com/jonboulle/clockwork"
)

// firstRecordYear is the earliest year the basin records cover.
const firstRecordYear = 1850

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	eastern := flag.String("eastern", "eastern_data.xlsx", "path to the eastern basin workbook")
	western := flag.String("western", "western_data.xlsx", "path to the western basin workbook")
	sheet := flag.String("sheet", "", "sheet name (default: first sheet)")
	flag.Parse()

	if code := run(os.Stdout, *eastern, *western, *sheet, clockwork.NewRealClock()); code != 0 {
		os.Exit(code)
	}
}

func run(out io.Writer, easternPath, westernPath, sheet string, clock clockwork.Clock) int {
	fmt.Fprintln(out, "=== Hurricane Workbook Validation ===")
	fmt.Fprintln(out)

	reader := xlsx.NewReader(sheet, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	// ── Load ──
	east, err := reader.Load(ctx, easternPath, domain.BasinEast)
	if err != nil {
		fmt.Fprintf(out, "FATAL: load eastern workbook: %v\n", err)
		return 1
	}
	west, err := reader.Load(ctx, westernPath, domain.BasinWest)
	if err != nil {
		fmt.Fprintf(out, "FATAL: load western workbook: %v\n", err)
		return 1
	}

	all := append(append([]domain.Observation{}, east...), west...)

	// ── Run validation phases ──
	phases := []*phase{
		validateCategories(all),
		validateWindConsistency(all),
		validateYears(all, clock.Now()),
		validateReport(east, west),
	}

	// ── Report results ──
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Records: %d eastern, %d western (%d tropical storms)\n",
		len(east), len(west), domain.CountTropicalStorms(all))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// validateCategories checks that every row carries ts or h1..h5.
func validateCategories(obs []domain.Observation) *phase {
	p := &phase{name: "Phase 1: Category markers"}
	for _, o := range obs {
		if !o.Category.Known() {
			p.errorf("%s row %d: unknown category %q", o.Basin, o.Row, o.Category)
		}
	}
	return p
}

// validateWindConsistency checks that each known category matches its wind
// speed on the Saffir-Simpson scale.
func validateWindConsistency(obs []domain.Observation) *phase {
	p := &phase{name: "Phase 2: Wind/category consistency"}
	for _, o := range obs {
		if !o.Category.Known() {
			continue
		}
		if o.Wind <= 0 {
			p.errorf("%s row %d: non-positive wind %g", o.Basin, o.Row, o.Wind)
			continue
		}
		if want := domain.CategoryForWind(o.Wind); want != o.Category {
			p.errorf("%s row %d: %g mph is %s, recorded as %s", o.Basin, o.Row, o.Wind, want.Label(), o.Category.Label())
		}
	}
	return p
}

// validateYears checks that every year falls within the record period.
func validateYears(obs []domain.Observation, now time.Time) *phase {
	p := &phase{name: "Phase 3: Year range"}
	for _, o := range obs {
		if o.Year < firstRecordYear || o.Year > now.Year() {
			p.errorf("%s row %d: year %d outside %d-%d", o.Basin, o.Row, o.Year, firstRecordYear, now.Year())
		}
	}
	return p
}

// validateReport checks that a full report can be built and that every
// basin/era box has samples.
func validateReport(east, west []domain.Observation) *phase {
	p := &phase{name: "Phase 4: Report coverage"}
	report, err := domain.BuildReport(east, west)
	if err != nil {
		p.errorf("build report: %v", err)
		return p
	}
	for _, s := range report.WindSummaries() {
		if s.Count == 0 {
			p.errorf("%s: no winds above %g mph", s.Label(), domain.HurricaneWindThreshold)
		}
	}
	return p
}
