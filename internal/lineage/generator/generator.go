// Package generator draws individual people from the demographic table.
package generator

import (
	"github.com/louisbranch/lineage/internal/lineage/demography"
	"github.com/louisbranch/lineage/internal/lineage/person"
	"github.com/louisbranch/lineage/internal/lineage/weighted"
	"github.com/louisbranch/lineage/internal/random"
)

// Unknown is used when a weighted name list is empty.
const Unknown = "Unknown"

// DefaultLifespanNoise is the spread, in years, added to life expectancy.
const DefaultLifespanNoise = 10

// Demography is the read-only view of the demographic table used here.
type Demography interface {
	DecadeFor(year int) string
	Genders() []string
	FirstNames(decade, gender string) weighted.Table[string]
	LastNames(decade string) weighted.Table[string]
	LifeExpectancy(decade string) float64
}

var _ Demography = (*demography.Table)(nil)

// Generator creates people born in a given year.
type Generator struct {
	demo          Demography
	rng           random.Source
	genders       weighted.Table[string]
	lifespanNoise int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLifespanNoise sets the +/- spread applied to life expectancy.
func WithLifespanNoise(years int) Option {
	return func(g *Generator) {
		if years >= 0 {
			g.lifespanNoise = years
		}
	}
}

// New creates a Generator over the given table and random source.
func New(demo Demography, rng random.Source, opts ...Option) *Generator {
	g := &Generator{
		demo:          demo,
		rng:           rng,
		genders:       weighted.Uniform(demo.Genders()...),
		lifespanNoise: DefaultLifespanNoise,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PersonOption customizes a single Generate call.
type PersonOption func(*personOptions)

type personOptions struct {
	lastName string
	forced   bool
}

// WithLastName forces the last name instead of drawing one.
func WithLastName(name string) PersonOption {
	return func(o *personOptions) {
		o.lastName = name
		o.forced = true
	}
}

// Generate draws a person born in yearBorn. The year is clamped into the
// table's range for lookups only; the person keeps yearBorn.
//
// Draw order: gender, first name, last name (unless forced), lifespan noise.
func (g *Generator) Generate(yearBorn int, opts ...PersonOption) person.Person {
	var o personOptions
	for _, opt := range opts {
		opt(&o)
	}

	decade := g.demo.DecadeFor(yearBorn)
	gender := g.genders.Pick(g.rng, demography.GenderFemale)
	first := g.demo.FirstNames(decade, gender).Pick(g.rng, Unknown)

	last := o.lastName
	if !o.forced {
		last = g.demo.LastNames(decade).Pick(g.rng, Unknown)
	}

	return person.New(first, last, yearBorn, g.yearDied(yearBorn))
}

// Founder builds a named person; only the death year is drawn.
func (g *Generator) Founder(first, last string, yearBorn int) person.Person {
	return person.New(first, last, yearBorn, g.yearDied(yearBorn))
}

func (g *Generator) yearDied(yearBorn int) int {
	expectancy := g.demo.LifeExpectancy(g.demo.DecadeFor(yearBorn))
	noise := random.IntBetween(g.rng, -g.lifespanNoise, g.lifespanNoise)
	return int(float64(yearBorn) + expectancy + float64(noise))
}
