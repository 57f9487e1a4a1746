package aggregators

import "math"

// percentile returns the p-th quantile (0 <= p <= 1) of ascending-sorted values using
// linear interpolation between the two closest order statistics, the continuous
// definition SQL's percentile_cont uses. It panics on an empty slice.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	rank := p * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (rank-float64(lo))*(sorted[hi]-sorted[lo])
}
