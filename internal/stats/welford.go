// Package stats computes descriptive statistics over table columns.
package stats

import "math"

// Welford is an online accumulator for count, mean, and variance using
// Welford's algorithm. The zero value is ready to use.
type Welford struct {
	count int64
	mean  float64
	m2    float64
}

// Add folds one value into the accumulator.
func (w *Welford) Add(value float64) {
	w.count++
	delta := value - w.mean
	w.mean += delta / float64(w.count)
	w.m2 += delta * (value - w.mean)
}

// Count returns the number of values seen.
func (w *Welford) Count() int64 {
	return w.count
}

// Mean returns the arithmetic mean, or NaN when no values were seen.
func (w *Welford) Mean() float64 {
	if w.count == 0 {
		return math.NaN()
	}
	return w.mean
}

// SampleVariance returns the n-1 variance, or NaN when count < 2.
func (w *Welford) SampleVariance() float64 {
	if w.count < 2 {
		return math.NaN()
	}
	return w.m2 / float64(w.count-1)
}

// SampleStdDev returns the n-1 standard deviation, or NaN when count < 2.
func (w *Welford) SampleStdDev() float64 {
	return math.Sqrt(w.SampleVariance())
}
