package xlsx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

// headerAliases maps each field to the header names it may appear under,
// already lower-cased.
var headerAliases = map[string][]string{
	"year":     {"year"},
	"wind":     {"wind", "wind (mph)", "windspeed"},
	"category": {"cat.", "cat", "category"},
	"name":     {"name"},
	"month":    {"month"},
	"day":      {"day"},
}

var requiredFields = []string{"year", "wind", "category"}

// Reader loads basin observations from .xlsx workbooks.
// It implements pipeline.Loader.
type Reader struct {
	sheet  string
	logger *slog.Logger
}

// NewReader creates a workbook reader. An empty sheet name selects the
// first sheet of each workbook.
func NewReader(sheet string, logger *slog.Logger) *Reader {
	return &Reader{sheet: sheet, logger: logger}
}

// Load reads every observation row of the workbook at path and tags it with basin.
func (r *Reader) Load(ctx context.Context, path string, basin domain.Basin) ([]domain.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q is empty", path, sheet)
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	out := make([]domain.Observation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		rowNum := i + 2
		o, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, rowNum, err)
		}
		o.Basin = basin
		o.Row = rowNum
		out = append(out, o)
	}

	r.logger.Debug("workbook loaded", "path", path, "sheet", sheet, "basin", basin, "rows", len(out))
	return out, nil
}

// columns holds the index of each known field, -1 when absent.
type columns map[string]int

func resolveColumns(header []string) (columns, error) {
	cols := make(columns, len(headerAliases))
	for field := range headerAliases {
		cols[field] = -1
	}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for field, aliases := range headerAliases {
			if cols[field] >= 0 {
				continue
			}
			for _, a := range aliases {
				if h == a {
					cols[field] = i
				}
			}
		}
	}

	var missing []string
	for _, field := range requiredFields {
		if cols[field] < 0 {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (domain.Observation, error) {
	year, err := parseInt(cell(row, cols["year"]))
	if err != nil {
		return domain.Observation{}, fmt.Errorf("invalid year: %w", err)
	}
	wind, err := parseFinite(cell(row, cols["wind"]))
	if err != nil {
		return domain.Observation{}, fmt.Errorf("invalid wind: %w", err)
	}

	return domain.Observation{
		Year:     year,
		Month:    parseIntOrZero(cell(row, cols["month"])),
		Day:      parseIntOrZero(cell(row, cols["day"])),
		Name:     cell(row, cols["name"]),
		Wind:     wind,
		Category: domain.NormalizeCategory(cell(row, cols["category"])),
	}, nil
}

// cell returns the trimmed value at index i; rows are ragged because
// excelize drops trailing empty cells.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseFinite parses a number, rejecting the NaN and Inf spellings
// strconv accepts.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// parseInt accepts integers stored as floats ("1851" or "1851.0").
func parseInt(s string) (int, error) {
	v, err := parseFinite(s)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int(v), nil
}

func parseIntOrZero(s string) int {
	if s == "" {
		return 0
	}
	v, err := parseInt(s)
	if err != nil {
		return 0
	}
	return v
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
