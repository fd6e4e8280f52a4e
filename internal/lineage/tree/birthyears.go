package tree

import (
	"math"

	"github.com/louisbranch/lineage/internal/random"
)

// DistributeBirthYears spreads count birth years evenly across [start, end].
// A single child lands on the midpoint. Values are rounded half to even and
// clamped back into the window.
func DistributeBirthYears(start, end, count int) []int {
	if count <= 0 {
		return []int{}
	}
	if count == 1 {
		return []int{int(math.RoundToEven(float64(start+end) / 2))}
	}

	step := float64(end-start) / float64(count-1)
	years := make([]int, count)
	for i := range years {
		year := int(math.RoundToEven(float64(start) + float64(i)*step))
		years[i] = min(end, max(start, year))
	}
	return years
}

// ChildCount draws the number of children for a birth rate: uniform over
// [max(0, ceil(rate-spread)), ceil(rate+spread)].
func ChildCount(src random.Source, birthRate, spread float64) int {
	lo := max(0, int(math.Ceil(birthRate-spread)))
	hi := max(lo, int(math.Ceil(birthRate+spread)))
	return random.IntBetween(src, lo, hi)
}
