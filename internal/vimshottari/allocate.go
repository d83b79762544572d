package vimshottari

import (
	"math"
	"sort"
)

// apportion splits totalUnits whole units across weighted shares using
// largest-remainder allocation: each share gets the floor of its ideal
// (proportional) amount, then the leftover units go one at a time to the
// shares whose ideal amounts had the largest fractional remainders. The
// returned counts always sum to exactly totalUnits, independent of
// floating-point rounding in the ideal shares.
func apportion(weights []float64, totalUnits int64) []int64 {
	var totalWeight float64
	for _, w := range weights {
		totalWeight += w
	}

	units := make([]int64, len(weights))
	remainders := make([]float64, len(weights))
	var allocated int64
	for i, w := range weights {
		ideal := w / totalWeight * float64(totalUnits)
		floor := math.Floor(ideal)
		units[i] = int64(floor)
		remainders[i] = ideal - floor
		allocated += units[i]
	}

	// Distribute the shortfall to the largest remainders. Ties break on
	// sequence position so allocation is deterministic.
	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	shortfall := totalUnits - allocated
	for i := int64(0); i < shortfall; i++ {
		units[order[i]]++
	}
	return units
}
