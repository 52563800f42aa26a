package faresavings

import "sort"

// SavingsStats holds descriptive statistics over a savings sequence.
type SavingsStats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// SummarizeSavings computes min, max, arithmetic mean and median over
// savings. The second result is false for an empty sequence: no statistics
// are defined in that case and the zero value must not be interpreted.
func SummarizeSavings(savings []float64) (SavingsStats, bool) {
	n := len(savings)
	if n == 0 {
		return SavingsStats{}, false
	}
	sorted := make([]float64, n)
	copy(sorted, savings)
	sort.Float64s(sorted)

	sum := 0.0
	for _, s := range sorted {
		sum += s
	}
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return SavingsStats{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   sum / float64(n),
		Median: median,
	}, true
}
