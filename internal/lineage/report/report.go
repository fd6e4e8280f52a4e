// Package report summarizes a generated registry: total size, births per
// decade and duplicated full names.
package report

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/louisbranch/lineage/internal/lineage/person"
)

// People is the read-only view of the registry used by reports.
type People interface {
	All() []*person.Person
}

var _ People = (*person.Registry)(nil)

// DecadeCount is the number of people born in one decade.
type DecadeCount struct {
	Decade string
	Start  int
	Count  int
}

// Total returns the number of people.
func Total(people People) int {
	return len(people.All())
}

// ByDecade counts births per decade, ordered by decade start.
func ByDecade(people People) []DecadeCount {
	counts := make(map[int]int)
	for _, p := range people.All() {
		counts[person.DecadeStartOf(p.YearBorn)]++
	}

	out := make([]DecadeCount, 0, len(counts))
	for start, n := range counts {
		out = append(out, DecadeCount{Decade: person.Decade(start), Start: start, Count: n})
	}
	slices.SortFunc(out, func(a, b DecadeCount) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return out
}

// Duplicates returns every full name held by more than one person, sorted
// with the collation rules of tag.
func Duplicates(people People, tag language.Tag) []string {
	counts := make(map[string]int)
	for _, p := range people.All() {
		counts[p.FullName()]++
	}

	var names []string
	for name, n := range counts {
		if n > 1 {
			names = append(names, name)
		}
	}
	collate.New(tag).SortStrings(names)
	return names
}
