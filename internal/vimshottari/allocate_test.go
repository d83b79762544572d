package vimshottari

import (
	"testing"
)

func sumUnits(units []int64) int64 {
	var s int64
	for _, u := range units {
		s += u
	}
	return s
}

func TestApportionConservesTotal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		weights []float64
		total   int64
	}{
		{"vimshottari weights even total", []float64{7, 20, 6, 10, 7, 18, 16, 19, 17}, 120},
		{"vimshottari weights prime total", []float64{7, 20, 6, 10, 7, 18, 16, 19, 17}, 604800001},
		{"equal thirds", []float64{1, 1, 1}, 100},
		{"single share", []float64{5}, 42},
		{"zero total", []float64{3, 2, 1}, 0},
		{"fewer units than shares", []float64{1, 1, 1, 1, 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units := apportion(tt.weights, tt.total)
			if got := sumUnits(units); got != tt.total {
				t.Errorf("apportion sums to %d, want %d (units %v)", got, tt.total, units)
			}
			for i, u := range units {
				if u < 0 {
					t.Errorf("units[%d] = %d, negative allocation", i, u)
				}
			}
		})
	}
}

func TestApportionProportionality(t *testing.T) {
	t.Parallel()
	// Each allocation may differ from its ideal share by less than one unit.
	weights := []float64{7, 20, 6, 10, 7, 18, 16, 19, 17}
	const total = int64(999999937)
	units := apportion(weights, total)
	for i, w := range weights {
		ideal := w / 120 * float64(total)
		diff := float64(units[i]) - ideal
		if diff <= -1 || diff >= 1 {
			t.Errorf("units[%d] = %d, ideal %.3f: off by %.3f units", i, units[i], ideal, diff)
		}
	}
}

func TestApportionDeterministic(t *testing.T) {
	t.Parallel()
	// Equal remainders must resolve by position, identically on every call.
	weights := []float64{1, 1, 1, 1}
	first := apportion(weights, 6)
	for run := 0; run < 10; run++ {
		got := apportion(weights, 6)
		for i := range got {
			if got[i] != first[i] {
				t.Fatalf("run %d: apportion = %v, first run gave %v", run, got, first)
			}
		}
	}
	// With 6 units over 4 equal shares, the first two positions get the
	// extra units.
	want := []int64{2, 2, 1, 1}
	for i := range want {
		if first[i] != want[i] {
			t.Errorf("apportion([1 1 1 1], 6) = %v, want %v", first, want)
		}
	}
}
