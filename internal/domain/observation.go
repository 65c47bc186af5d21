package domain

import (
	"strings"
)

// Basin identifies which Caribbean basin a spreadsheet describes.
type Basin string

const (
	BasinEast Basin = "east"
	BasinWest Basin = "west"
)

// Basins lists every basin in report order.
var Basins = []Basin{BasinEast, BasinWest}

// Label returns the display name used in chart legends.
func (b Basin) Label() string {
	switch b {
	case BasinEast:
		return "Eastern Caribbean"
	case BasinWest:
		return "Western Caribbean"
	default:
		return string(b)
	}
}

// Short returns the one-letter suffix used in box plot tick labels.
func (b Basin) Short() string {
	switch b {
	case BasinEast:
		return "E"
	case BasinWest:
		return "W"
	default:
		return strings.ToUpper(string(b))
	}
}

// Era splits the record at 1950.
type Era string

const (
	EraPre1950 Era = "pre1950"
	EraModern  Era = "modern"
)

// eraBoundary is the first year of the modern era.
const eraBoundary = 1950

// Eras lists every era in chronological order.
var Eras = []Era{EraPre1950, EraModern}

// EraOf returns the era a year belongs to.
func EraOf(year int) Era {
	if year < eraBoundary {
		return EraPre1950
	}
	return EraModern
}

// Label returns the year range shown in reports, e.g. "1850-1949".
func (e Era) Label() string {
	switch e {
	case EraPre1950:
		return "1850-1949"
	case EraModern:
		return "1950-Present"
	default:
		return string(e)
	}
}

// Category is a normalized storm-intensity marker such as "ts" or "h3".
type Category string

const (
	CategoryTropicalStorm Category = "ts"
	CategoryH1            Category = "h1"
	CategoryH2            Category = "h2"
	CategoryH3            Category = "h3"
	CategoryH4            Category = "h4"
	CategoryH5            Category = "h5"
)

// HurricaneCategories lists H1 through H5 in ascending intensity.
var HurricaneCategories = [5]Category{CategoryH1, CategoryH2, CategoryH3, CategoryH4, CategoryH5}

// NormalizeCategory trims and lower-cases a raw spreadsheet marker.
func NormalizeCategory(raw string) Category {
	return Category(strings.ToLower(strings.TrimSpace(raw)))
}

// IsTropicalStorm reports whether c is the tropical-storm marker.
func (c Category) IsTropicalStorm() bool {
	return c == CategoryTropicalStorm
}

// Index returns the zero-based position of c in HurricaneCategories,
// or -1 when c is not a hurricane category.
func (c Category) Index() int {
	for i, h := range HurricaneCategories {
		if c == h {
			return i
		}
	}
	return -1
}

// Known reports whether c is the tropical-storm marker or a hurricane category.
func (c Category) Known() bool {
	return c.IsTropicalStorm() || c.Index() >= 0
}

// Label returns the upper-case display form, e.g. "H3".
func (c Category) Label() string {
	return strings.ToUpper(string(c))
}

// CategoryForWind classifies a sustained wind speed (mph) on the
// Saffir-Simpson scale. Anything below hurricane strength is a tropical storm.
func CategoryForWind(mph float64) Category {
	switch {
	case mph >= 157:
		return CategoryH5
	case mph >= 130:
		return CategoryH4
	case mph >= 111:
		return CategoryH3
	case mph >= 96:
		return CategoryH2
	case mph >= 74:
		return CategoryH1
	default:
		return CategoryTropicalStorm
	}
}

// Observation is a single storm row from a basin spreadsheet.
type Observation struct {
	Basin    Basin    `json:"basin"`
	Year     int      `json:"year"`
	Month    int      `json:"month,omitempty"`
	Day      int      `json:"day,omitempty"`
	Name     string   `json:"name,omitempty"`
	Wind     float64  `json:"wind"` // mph
	Category Category `json:"category"`

	// Row is the 1-based spreadsheet row the observation was read from.
	Row int `json:"-"`
}
