package main

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// maxRoundPrecision is the number of decimal places kept after binning,
// enough to drop the binary noise left by step*round(v/step).
const maxRoundPrecision = 16

const numStats = 10

var statLabels = [numStats]string{
	"mean", "std", "skew", "ex.kur", "~mode",
	"min", "25%", "50%", "75%", "max",
}

// summary holds the statistics of one column.
type summary struct {
	mean       float64
	std        float64 // population (divisor N)
	skew       float64
	exKurtosis float64
	mode       float64 // most frequent value after binning by iqr/10
	min        float64
	q25        float64
	median     float64
	q75        float64
	max        float64
}

// values returns the statistics in the order of statLabels.
func (s *summary) values() [numStats]float64 {
	return [numStats]float64{
		s.mean, s.std, s.skew, s.exKurtosis, s.mode,
		s.min, s.q25, s.median, s.q75, s.max,
	}
}

// summarize describes every column of t. If rng is non-nil the
// statistics are computed on one bootstrap resample of t's rows.
func summarize(t *table, rng *rand.Rand) ([]summary, error) {
	if t.rows == 0 {
		return nil, ErrNoRows
	}
	if rng != nil {
		t = t.resample(rng)
	}
	sums := make([]summary, len(t.cols))
	for j, col := range t.cols {
		sums[j] = summarizeColumn(col)
	}
	return sums, nil
}

// summarizeColumn computes the statistics of a non-empty column.
func summarizeColumn(v []float64) summary {
	sorted := make([]float64, len(v))
	copy(sorted, v)
	sort.Float64s(sorted)

	var s summary
	s.min = sorted[0]
	s.max = sorted[len(sorted)-1]
	s.q25 = percentile(sorted, 0.25)
	s.median = percentile(sorted, 0.5)
	s.q75 = percentile(sorted, 0.75)

	if s.min == s.max {
		// The shape statistics are 0/0 here.
		s.mean = s.min
		s.skew = math.NaN()
		s.exKurtosis = math.NaN()
	} else {
		s.mean, s.std = stat.PopMeanStdDev(v, nil)
		m2 := stat.Moment(2, v, nil)
		s.skew = stat.Moment(3, v, nil) / math.Pow(m2, 1.5)
		s.exKurtosis = stat.Moment(4, v, nil)/(m2*m2) - 3
	}
	s.mode = approxMode(sorted, (s.q75-s.q25)/10)
	return s
}

// percentile returns the p-quantile (0 ≤ p ≤ 1) of sorted by linear
// interpolation between the two closest ranks.
func percentile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// approxMode bins the sorted values to multiples of step and returns the
// most populated bin. Ties go to the smallest bin. A zero step means no
// binning.
func approxMode(sorted []float64, step float64) float64 {
	binned := make([]float64, len(sorted))
	for i, v := range sorted {
		binned[i] = roundToMultiple(v, step, maxRoundPrecision)
	}
	// Binning is monotone, so binned is still sorted and equal bins are adjacent.
	mode, best := binned[0], 0
	for i := 0; i < len(binned); {
		j := i + 1
		for j < len(binned) && binned[j] == binned[i] {
			j++
		}
		if j-i > best {
			mode, best = binned[i], j-i
		}
		i = j
	}
	return mode
}

// roundToMultiple rounds v to the nearest multiple of step (halves away
// from zero) and then to maxPrecision decimal places. A step of 0 leaves v
// unchanged.
func roundToMultiple(v, step float64, maxPrecision int) float64 {
	if step == 0 {
		return v
	}
	r := step * math.Round(v/step)
	if math.IsInf(r*math.Pow10(maxPrecision), 0) {
		return r
	}
	rounded, err := stats.Round(r, maxPrecision)
	if err != nil {
		return r
	}
	return rounded
}

// newResampler returns the random source for bootstrap resampling.
func newResampler(seed uint64, seeded bool) *rand.Rand {
	if !seeded {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// resample draws t.rows rows of t uniformly with replacement.
func (t *table) resample(rng *rand.Rand) *table {
	idx := make([]int, t.rows)
	for i := range idx {
		idx[i] = rng.IntN(t.rows)
	}
	r := &table{
		name:   t.name,
		rows:   t.rows,
		cols:   make([][]float64, len(t.cols)),
		labels: t.labels,
	}
	for j, col := range t.cols {
		c := make([]float64, len(idx))
		for i, row := range idx {
			c[i] = col[row]
		}
		r.cols[j] = c
	}
	return r
}
