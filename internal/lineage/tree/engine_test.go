package tree

import (
	"maps"
	"math/rand"
	"slices"
	"testing"

	"github.com/louisbranch/lineage/internal/lineage/demography"
	"github.com/louisbranch/lineage/internal/lineage/generator"
	"github.com/louisbranch/lineage/internal/lineage/person"
	"github.com/louisbranch/lineage/internal/lineage/tuning"
	"github.com/louisbranch/lineage/internal/random"
	"github.com/louisbranch/lineage/internal/random/randomtest"
)

// minimalTable holds a single decade: birth rate 2.0, marriage rate 1.0 and
// one name per list.
func minimalTable() *demography.Table {
	table := demography.NewTable()
	table.AddFirstName("1950s", "female", "Mary", 1)
	table.AddFirstName("1950s", "male", "James", 1)
	table.AddLastName("1950s", "Brown", 1)
	table.SetLifeExpectancy("1950s", 70)
	table.SetRates("1950s", 2.0, 1.0)
	return table
}

func richTable() *demography.Table {
	table := demography.NewTable()
	for start := 1950; start <= 2120; start += 10 {
		decade := person.Decade(start)
		table.AddFirstName(decade, "female", "Mary", 3)
		table.AddFirstName(decade, "female", "Linda", 2)
		table.AddFirstName(decade, "male", "James", 3)
		table.AddFirstName(decade, "male", "John", 2)
		table.AddLastName(decade, "Brown", 0.5)
		table.AddLastName(decade, "Garcia", 0.3)
		table.AddLastName(decade, "Miller", 0.2)
		table.SetLifeExpectancy(decade, 68+float64(start-1950)/20)
		table.SetRates(decade, 2.4-float64(start-1950)/200, 0.7)
	}
	return table
}

func grow(t *testing.T, table *demography.Table, src random.Source, params tuning.Tuning) (*person.Registry, *Engine, Stats) {
	t.Helper()
	reg := person.NewRegistry()
	gen := generator.New(table, src, generator.WithLifespanNoise(params.LifespanNoise))
	engine := New(reg, gen, table, src, params)
	stats, err := engine.Grow()
	if err != nil {
		t.Fatalf("grow: %v", err)
	}
	return reg, engine, stats
}

func TestGrowSnapshotWithZeroSource(t *testing.T) {
	reg, engine, stats := grow(t, minimalTable(), randomtest.Zero{}, tuning.Default())

	type row struct {
		name string
		born int
	}
	want := []row{
		{"Desmond Jones", 1950},
		{"Molly Smith", 1950},
		{"Mary Jones", 1985},
		{"Mary Brown", 1975},
		{"Mary Jones", 2010},
		{"Mary Brown", 2000},
		{"Mary Jones", 2035},
		{"Mary Brown", 2025},
		{"Mary Jones", 2060},
		{"Mary Brown", 2050},
		{"Mary Jones", 2085},
		{"Mary Brown", 2075},
		{"Mary Jones", 2110},
		{"Mary Brown", 2100},
	}
	if reg.Len() != len(want) {
		t.Fatalf("registry size = %d, want %d", reg.Len(), len(want))
	}
	for i, p := range reg.All() {
		if p.FullName() != want[i].name || p.YearBorn != want[i].born {
			t.Fatalf("person %d = %s (%d), want %s (%d)", i, p.FullName(), p.YearBorn, want[i].name, want[i].born)
		}
		// Life expectancy 70 with the lowest noise draw.
		if p.YearDied != p.YearBorn+60 {
			t.Fatalf("person %d died %d, want %d", i, p.YearDied, p.YearBorn+60)
		}
	}

	wantStats := Stats{People: 14, Marriages: 6, Children: 6, DroppedChildren: 1, Generations: 7}
	if stats != wantStats {
		t.Fatalf("stats = %+v, want %+v", stats, wantStats)
	}

	a, b := engine.Founders()
	if a != 0 || b != 1 {
		t.Fatalf("founders = %d, %d, want 0, 1", a, b)
	}
	if got := reg.Get(a).Children; !slices.Equal(got, []person.ID{2}) {
		t.Fatalf("founder children = %v, want [2]", got)
	}
	if got := reg.Get(b).Children; !slices.Equal(got, []person.ID{2}) {
		t.Fatalf("second founder children = %v, want [2]", got)
	}
}

func TestGrowSkipsMarriageAboveRate(t *testing.T) {
	table := minimalTable()
	table.SetRates("1950s", 2.0, 0.5)
	// Floats: founders' child has no marriage (0.9 >= 0.5), then gender
	// and name draws default to zero.
	src := &randomtest.Scripted{Floats: []float64{0, 0, 0.9}}
	params := tuning.Default()
	params.CutoffYear = 1990

	reg, _, stats := grow(t, table, src, params)
	if stats.Marriages != 0 {
		t.Fatalf("marriages = %d, want 0", stats.Marriages)
	}
	child := reg.Get(2)
	if child == nil || child.HasSpouse() {
		t.Fatalf("expected unmarried child, got %+v", child)
	}
	// Child born 1985, own children at 2020 are past the cutoff.
	if stats.DroppedChildren != 1 {
		t.Fatalf("dropped = %d, want 1", stats.DroppedChildren)
	}
	if reg.Len() != 3 {
		t.Fatalf("registry size = %d, want 3", reg.Len())
	}
}

func TestGrowZeroChildrenStops(t *testing.T) {
	table := minimalTable()
	table.SetRates("1950s", 0, 1.0)

	reg, _, stats := grow(t, table, randomtest.Zero{}, tuning.Default())
	if reg.Len() != 2 {
		t.Fatalf("registry size = %d, want only founders", reg.Len())
	}
	if stats.Children != 0 || stats.Generations != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestGrowRejectsMissingFounders(t *testing.T) {
	params := tuning.Default()
	params.Founders = params.Founders[:1]
	reg := person.NewRegistry()
	table := minimalTable()
	engine := New(reg, generator.New(table, randomtest.Zero{}), table, randomtest.Zero{}, params)
	if _, err := engine.Grow(); err != ErrNoFounders {
		t.Fatalf("err = %v, want ErrNoFounders", err)
	}
}

func TestGrowInvariants(t *testing.T) {
	params := tuning.Default()
	for seed := int64(1); seed <= 5; seed++ {
		reg, engine, stats := grow(t, richTable(), rand.New(rand.NewSource(seed)), params)
		if stats.People != reg.Len() {
			t.Fatalf("seed %d: stats people = %d, registry = %d", seed, stats.People, reg.Len())
		}

		founderA, founderB := engine.Founders()
		surnames := params.FounderLastNames()
		parents := make(map[person.ID]int)

		for _, p := range reg.All() {
			if p.YearDied <= p.YearBorn {
				t.Fatalf("seed %d: %s died %d before birth %d", seed, p.FullName(), p.YearDied, p.YearBorn)
			}
			if p.YearBorn > params.CutoffYear {
				t.Fatalf("seed %d: %s born %d after cutoff", seed, p.FullName(), p.YearBorn)
			}
			if p.HasSpouse() {
				spouse := reg.Get(p.Spouse)
				if spouse.Spouse != p.ID {
					t.Fatalf("seed %d: spouse link of %d is not symmetric", seed, p.ID)
				}
			}
			seen := make(map[person.ID]bool)
			for _, c := range p.Children {
				if seen[c] {
					t.Fatalf("seed %d: child %d listed twice for %d", seed, c, p.ID)
				}
				seen[c] = true
				parents[c]++
				child := reg.Get(c)
				if child.YearBorn < p.YearBorn-params.SpouseAgeSpread+params.ChildWindow.MinOffset {
					t.Fatalf("seed %d: child %d born %d too early for parent born %d", seed, c, child.YearBorn, p.YearBorn)
				}
			}
			if p.ID != founderA && p.ID != founderB && parents[p.ID] > 0 && !slices.Contains(surnames, p.LastName) {
				t.Fatalf("seed %d: descendant %s lacks a founder surname", seed, p.FullName())
			}
		}

		for id, n := range parents {
			child := reg.Get(id)
			if !slices.Contains(surnames, child.LastName) {
				t.Fatalf("seed %d: descendant %s lacks a founder surname", seed, child.FullName())
			}
			if n > 2 {
				t.Fatalf("seed %d: child %d has %d parents", seed, id, n)
			}
		}
		if len(parents) != stats.Children {
			t.Fatalf("seed %d: %d children recorded, stats say %d", seed, len(parents), stats.Children)
		}
	}
}

func TestGrowIsDeterministicForSeed(t *testing.T) {
	names := func() []string {
		reg, _, _ := grow(t, richTable(), rand.New(rand.NewSource(42)), tuning.Default())
		out := make([]string, 0, reg.Len())
		for _, p := range reg.All() {
			out = append(out, p.FullName())
		}
		return out
	}
	first, second := names(), names()
	if !slices.Equal(first, second) {
		t.Fatal("expected identical registries for the same seed")
	}
}

func TestGrowSnapshotForSeed(t *testing.T) {
	reg, _, stats := grow(t, richTable(), rand.New(rand.NewSource(42)), tuning.Default())

	want := Stats{People: 25, Marriages: 11, Children: 12, DroppedChildren: 19, Generations: 7}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}

	type row struct {
		name string
		born int
		died int
	}
	rows := []row{
		{"Desmond Jones", 1950, 2013},
		{"Molly Smith", 1950, 2010},
		{"Mary Jones", 1985, 2050},
		{"John Brown", 1986, 2054},
		{"Linda Jones", 2020, 2101},
		{"Mary Jones", 2055, 2118},
		{"James Brown", 2059, 2142},
		{"John Jones", 2080, 2152},
		{"John Jones", 2090, 2158},
		{"John Smith", 2100, 2176},
		{"John Garcia", 2072, 2136},
		{"Linda Jones", 2097, 2168},
		{"Mary Jones", 2104, 2175},
		{"Linda Jones", 2110, 2185},
		{"James Smith", 2117, 2196},
		{"John Brown", 2094, 2170},
		{"James Smith", 2115, 2195},
		{"John Miller", 2096, 2165},
		{"James Brown", 2094, 2166},
		{"James Jones", 2119, 2197},
		{"James Garcia", 2104, 2187},
		{"John Garcia", 2111, 2191},
		{"James Brown", 2120, 2189},
		{"Linda Brown", 2120, 2197},
		{"James Brown", 2116, 2188},
	}
	for i, p := range reg.All() {
		got := row{p.FullName(), p.YearBorn, p.YearDied}
		if got != rows[i] {
			t.Fatalf("person %d = %+v, want %+v", i, got, rows[i])
		}
	}

	histogram := make(map[string]int)
	for _, p := range reg.All() {
		histogram[p.Decade()]++
	}
	wantHistogram := map[string]int{
		"1950s": 2, "1980s": 2, "2020s": 1, "2050s": 2, "2070s": 1,
		"2080s": 1, "2090s": 5, "2100s": 3, "2110s": 6, "2120s": 2,
	}
	if !maps.Equal(histogram, wantHistogram) {
		t.Fatalf("histogram = %v, want %v", histogram, wantHistogram)
	}

	// Spouse links and shared children of the founders' only child.
	child := reg.Get(2)
	if child.Spouse != 3 || !slices.Equal(child.Children, []person.ID{4}) || !slices.Equal(reg.Get(3).Children, []person.ID{4}) {
		t.Fatalf("child = %+v, spouse = %+v", child, reg.Get(3))
	}
}
