// Package weighted implements frequency tables and proportional sampling.
package weighted

import "github.com/louisbranch/lineage/internal/random"

// Entry pairs an item with its relative weight.
type Entry[T any] struct {
	Item   T
	Weight float64
}

// Table is an ordered list of weighted items. Weights need not sum to 1.
type Table[T any] struct {
	entries []Entry[T]
}

// Uniform builds a table where every item has weight 1.
func Uniform[T any](items ...T) Table[T] {
	var t Table[T]
	for _, item := range items {
		t.Add(item, 1)
	}
	return t
}

// Add appends an item.
func (t *Table[T]) Add(item T, weight float64) {
	t.entries = append(t.entries, Entry[T]{Item: item, Weight: weight})
}

// Len returns the number of entries, including zero-weight ones.
func (t Table[T]) Len() int {
	return len(t.entries)
}

// Total returns the sum of the positive weights.
func (t Table[T]) Total() float64 {
	var total float64
	for _, e := range t.entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	return total
}

// Pick selects one item with probability weight/Total using a single
// Float64 draw. Negative weights count as zero. When the table is empty or
// carries no positive weight, fallback is returned without drawing.
func (t Table[T]) Pick(src random.Source, fallback T) T {
	total := t.Total()
	if total <= 0 {
		return fallback
	}
	r := src.Float64() * total
	var cum float64
	last := -1
	for i, e := range t.entries {
		if e.Weight <= 0 {
			continue
		}
		cum += e.Weight
		last = i
		if r < cum {
			return e.Item
		}
	}
	// Float rounding can leave r == cum on the final entry.
	return t.entries[last].Item
}
