package analyzer

import (
	"math"
	"slices"
)

// Summary holds descriptive statistics computed over a sample series.
type Summary struct {
	Count    int     `json:"count"`
	Sum      int64   `json:"sum"`
	Min      int64   `json:"min"`
	Max      int64   `json:"max"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Variance float64 `json:"variance"`
}

// Summary computes descriptive statistics over the current sample series.
// It returns the zero Summary when no samples have been added.
func (a *Analyzer) Summary() Summary {
	if len(a.samples) == 0 {
		return Summary{}
	}

	values := make([]int64, len(a.samples))
	copy(values, a.samples)
	slices.Sort(values)

	mean := a.ComputeAverage()

	return Summary{
		Count:    len(values),
		Sum:      sum(values),
		Min:      values[0],
		Max:      values[len(values)-1],
		Mean:     mean,
		Median:   median(values),
		Variance: variance(values, mean),
	}
}

// median expects values sorted in ascending order.
func median(values []int64) float64 {
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return float64(values[mid-1]+values[mid]) / 2
	}

	return float64(values[mid])
}

// sum returns the sum of a set of values.
func sum(values []int64) int64 {
	var sum int64
	for _, value := range values {
		sum += value
	}

	return sum
}

// variance returns the population variance of a set of values.
func variance(values []int64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var variance float64
	for _, value := range values {
		variance += math.Pow(float64(value)-mean, 2)
	}

	return variance / float64(len(values))
}
