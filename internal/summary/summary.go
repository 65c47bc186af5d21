// Package summary prints a finished report for the terminal.
package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
)

// Write prints report to w as an aligned text table or, when format is
// "json", as indented JSON.
func Write(w io.Writer, report domain.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "text", "":
		return writeText(w, report)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeText(w io.Writer, report domain.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Basin\tRows\tTropical storms\tHurricanes")
	for _, b := range report.Basins {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", b.Label, b.RowsLoaded, b.TropicalStorms, b.Frequency.Total)
	}
	fmt.Fprintln(tw)

	fmt.Fprint(tw, "Category")
	for _, b := range report.Basins {
		fmt.Fprintf(tw, "\t%s", b.Label)
	}
	fmt.Fprintln(tw)
	for i, c := range domain.HurricaneCategories {
		fmt.Fprint(tw, c.Label())
		for _, b := range report.Basins {
			fmt.Fprintf(tw, "\t%.3f", b.Frequency.Share[i])
		}
		fmt.Fprintln(tw)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Wind (mph)\tN\tMean\tSt Dev\tMedian")
	for _, s := range report.WindSummaries() {
		if s.Count == 0 {
			fmt.Fprintf(tw, "%s\t0\t-\t-\t-\n", s.Label())
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\n", s.Label(), s.Count, s.Mean, s.StdDev, s.Median)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Trend: wind = %.4f + %.4f * year (R^2 %.3f, n=%d)\n",
		report.Trend.Intercept, report.Trend.Slope, report.Trend.RSquared, report.Trend.N)
	for _, c := range report.Charts {
		fmt.Fprintf(tw, "Chart: %s\t%s\n", c.Title, c.Path)
	}

	return tw.Flush()
}
