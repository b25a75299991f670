package dose

import "math"

// SumDrainRates totals the drain of every active effect. Entries that are
// negative or not finite contribute nothing.
func SumDrainRates(rates []float64) float64 {
	total := 0.0
	for _, r := range rates {
		total += sanitizeRate(r)
	}
	return total
}

func sanitizeRate(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return 0
	}
	return r
}
