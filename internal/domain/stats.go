package domain

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// HurricaneWindThreshold is the wind speed (mph) a reading must exceed to
// enter a wind summary. 74 mph is the lowest category 1 wind.
const HurricaneWindThreshold = 73.0

// ErrInsufficientData is returned when a fit needs more distinct points than
// the data provides.
var ErrInsufficientData = errors.New("insufficient data")

// CategoryFrequency is the share of each hurricane category in one basin.
type CategoryFrequency struct {
	Basin  Basin      `json:"basin"`
	Total  int        `json:"total"`
	Counts [5]int     `json:"counts"`
	Share  [5]float64 `json:"share"`
}

// WindSummary describes the wind speeds of one basin in one era.
// Statistics are zero when Count is zero.
type WindSummary struct {
	Basin  Basin   `json:"basin"`
	Era    Era     `json:"era"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`

	// Samples holds the sorted wind speeds behind the summary, for box plots.
	Samples []float64 `json:"-"`
}

// Label names the group as it appears on the box plot, e.g. "1850-1949 (E)".
func (w WindSummary) Label() string {
	return w.Era.Label() + " (" + w.Basin.Short() + ")"
}

// Trend is an ordinary-least-squares line wind = Intercept + Slope*year.
type Trend struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	RSquared  float64 `json:"r_squared"`
	N         int     `json:"n"`
}

// At evaluates the trend line at the given year.
func (t Trend) At(year float64) float64 {
	return t.Intercept + t.Slope*year
}

// Frequencies computes the share of H1 through H5 among obs. The denominator
// is every row passed in, so callers drop tropical storms first.
// An empty input yields zero shares.
func Frequencies(basin Basin, obs []Observation) CategoryFrequency {
	f := CategoryFrequency{Basin: basin, Total: len(obs)}
	for _, o := range obs {
		if i := o.Category.Index(); i >= 0 {
			f.Counts[i]++
		}
	}
	if f.Total == 0 {
		return f
	}
	for i, c := range f.Counts {
		f.Share[i] = float64(c) / float64(f.Total)
	}
	return f
}

// SummarizeWind returns one summary per era, in Eras order, over the winds in
// obs that exceed HurricaneWindThreshold.
func SummarizeWind(basin Basin, obs []Observation) []WindSummary {
	samples := make(map[Era][]float64, len(Eras))
	for _, o := range obs {
		if o.Wind <= HurricaneWindThreshold {
			continue
		}
		era := EraOf(o.Year)
		samples[era] = append(samples[era], o.Wind)
	}

	out := make([]WindSummary, 0, len(Eras))
	for _, era := range Eras {
		out = append(out, summarize(basin, era, samples[era]))
	}
	return out
}

func summarize(basin Basin, era Era, samples []float64) WindSummary {
	s := WindSummary{Basin: basin, Era: era, Count: len(samples)}
	if len(samples) == 0 {
		return s
	}
	slices.Sort(samples)
	s.Mean, s.StdDev = stat.PopMeanStdDev(samples, nil)
	s.Min = samples[0]
	s.Q1 = stat.Quantile(0.25, stat.Empirical, samples, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, samples, nil)
	s.Q3 = stat.Quantile(0.75, stat.Empirical, samples, nil)
	s.Max = samples[len(samples)-1]
	s.Samples = samples
	return s
}

// FitTrend fits wind speed against year by ordinary least squares. It needs
// at least two observations spanning more than one year.
func FitTrend(obs []Observation) (Trend, error) {
	if len(obs) < 2 {
		return Trend{}, ErrInsufficientData
	}

	xs := make([]float64, len(obs))
	ys := make([]float64, len(obs))
	distinct := false
	for i, o := range obs {
		xs[i] = float64(o.Year)
		ys[i] = o.Wind
		if o.Year != obs[0].Year {
			distinct = true
		}
	}
	if !distinct {
		return Trend{}, ErrInsufficientData
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)
	if math.IsNaN(r2) {
		// Constant wind leaves no variance to explain.
		r2 = 0
	}
	return Trend{
		Intercept: alpha,
		Slope:     beta,
		RSquared:  r2,
		N:         len(obs),
	}, nil
}
