// Package domain models historical Caribbean hurricane observations and the
// descriptive statistics computed over them.
//
// # Data Source
//
// Observations come from two spreadsheets, one per basin (Eastern and Western
// Caribbean). Each row is one storm observation carrying at least a year, a
// maximum sustained wind speed in miles per hour, and an intensity category.
//
// # Category Markers
//
// Categories are stored as short lower-case markers:
//
//	ts        tropical storm (not a hurricane; excluded from the analysis)
//	h1 .. h5  Saffir-Simpson hurricane categories 1 through 5
//
// Markers are normalized on load (trimmed, lower-cased), so " TS " and "ts"
// are the same category. Any other marker is kept verbatim: it is not a
// tropical storm, so it survives filtering and counts toward frequency
// denominators, but it never matches a hurricane category.
//
// Saffir-Simpson wind thresholds (mph), used by [CategoryForWind]:
//
//	ts < 74 | h1 74-95 | h2 96-110 | h3 111-129 | h4 130-156 | h5 >= 157
//
// # Eras
//
// Wind summaries split each basin at 1950: "1850-1949" covers every year
// before 1950 and "1950-Present" covers 1950 onward. Only winds strictly
// above 73 mph enter a wind summary, regardless of the recorded category.
//
// # Statistics
//
// Standard deviations are population (biased) deviations. The trend line is
// an ordinary-least-squares fit of wind speed on year over every hurricane
// row of both basins.
package domain
