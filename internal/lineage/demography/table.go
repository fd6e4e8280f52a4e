// Package demography holds the per-decade statistics that drive generation:
// weighted first and last names, life expectancy, birth rate and marriage
// rate.
//
// Years are clamped into the span of loaded decades before a decade key is
// derived. Decades inside that span with no data resolve to the package
// defaults, so generation never fails on sparse tables.
package demography

import (
	"slices"

	"github.com/louisbranch/lineage/internal/lineage/person"
	"github.com/louisbranch/lineage/internal/lineage/weighted"
)

// Fallback values for decades missing from the loaded data.
const (
	DefaultLifeExpectancy = 80.0
	DefaultBirthRate      = 2.0
	DefaultMarriageRate   = 0.5
)

// Gender axis values used when the first-name data has no genders at all.
const (
	GenderFemale = "female"
	GenderMale   = "male"
)

type nameBucket struct {
	decade string
	gender string
}

// Table is the in-memory demographic table. It is built once at startup
// and read-only afterwards.
type Table struct {
	firstNames     map[nameBucket]weighted.Table[string]
	lastNames      map[string]weighted.Table[string]
	lifeExpectancy map[string]float64
	birthRates     map[string]float64
	marriageRates  map[string]float64
	genders        []string

	hasRange bool
	yearMin  int
	yearMax  int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		firstNames:     make(map[nameBucket]weighted.Table[string]),
		lastNames:      make(map[string]weighted.Table[string]),
		lifeExpectancy: make(map[string]float64),
		birthRates:     make(map[string]float64),
		marriageRates:  make(map[string]float64),
	}
}

// AddFirstName records a first name for a decade and gender.
func (t *Table) AddFirstName(decade, gender, name string, weight float64) {
	key := nameBucket{decade: decade, gender: gender}
	names := t.firstNames[key]
	names.Add(name, weight)
	t.firstNames[key] = names
	if !slices.Contains(t.genders, gender) {
		t.genders = append(t.genders, gender)
		slices.Sort(t.genders)
	}
	t.trackDecade(decade)
}

// AddLastName records a last name for a decade.
func (t *Table) AddLastName(decade, name string, weight float64) {
	names := t.lastNames[decade]
	names.Add(name, weight)
	t.lastNames[decade] = names
	t.trackDecade(decade)
}

// SetLifeExpectancy sets the life expectancy for a decade.
func (t *Table) SetLifeExpectancy(decade string, years float64) {
	t.lifeExpectancy[decade] = years
	t.trackDecade(decade)
}

// SetRates sets the birth and marriage rates for a decade.
func (t *Table) SetRates(decade string, birthRate, marriageRate float64) {
	t.birthRates[decade] = birthRate
	t.marriageRates[decade] = marriageRate
	t.trackDecade(decade)
}

func (t *Table) trackDecade(decade string) {
	start, err := person.DecadeStart(decade)
	if err != nil {
		return
	}
	end := start + 9
	if !t.hasRange {
		t.yearMin, t.yearMax, t.hasRange = start, end, true
		return
	}
	t.yearMin = min(t.yearMin, start)
	t.yearMax = max(t.yearMax, end)
}

// FirstNames returns the weighted first names for a decade and gender.
func (t *Table) FirstNames(decade, gender string) weighted.Table[string] {
	return t.firstNames[nameBucket{decade: decade, gender: gender}]
}

// LastNames returns the weighted last names for a decade.
func (t *Table) LastNames(decade string) weighted.Table[string] {
	return t.lastNames[decade]
}

// LifeExpectancy returns the mean life expectancy for a decade, or
// DefaultLifeExpectancy when the decade is missing.
func (t *Table) LifeExpectancy(decade string) float64 {
	if v, ok := t.lifeExpectancy[decade]; ok {
		return v
	}
	return DefaultLifeExpectancy
}

// BirthRate returns the birth rate for a decade, or DefaultBirthRate.
func (t *Table) BirthRate(decade string) float64 {
	if v, ok := t.birthRates[decade]; ok {
		return v
	}
	return DefaultBirthRate
}

// MarriageRate returns the marriage rate for a decade, or DefaultMarriageRate.
func (t *Table) MarriageRate(decade string) float64 {
	if v, ok := t.marriageRates[decade]; ok {
		return v
	}
	return DefaultMarriageRate
}

// Genders returns the gender axis of the first-name data, sorted.
func (t *Table) Genders() []string {
	if len(t.genders) == 0 {
		return []string{GenderFemale, GenderMale}
	}
	return slices.Clone(t.genders)
}

// YearRange returns the first and last year covered by the loaded decades.
// ok is false for an empty table.
func (t *Table) YearRange() (first, last int, ok bool) {
	return t.yearMin, t.yearMax, t.hasRange
}

// Clamp limits year to the loaded range. Years are returned unchanged when
// the table is empty.
func (t *Table) Clamp(year int) int {
	if !t.hasRange {
		return year
	}
	return min(max(year, t.yearMin), t.yearMax)
}

// DecadeFor returns the decade key used to look up statistics for year.
func (t *Table) DecadeFor(year int) string {
	return person.Decade(t.Clamp(year))
}
