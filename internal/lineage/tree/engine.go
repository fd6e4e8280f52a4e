// Package tree grows a family tree breadth-first from two founders.
package tree

import (
	"errors"
	"fmt"

	"github.com/louisbranch/lineage/internal/lineage/demography"
	"github.com/louisbranch/lineage/internal/lineage/generator"
	"github.com/louisbranch/lineage/internal/lineage/person"
	"github.com/louisbranch/lineage/internal/lineage/tuning"
	"github.com/louisbranch/lineage/internal/random"
)

// ErrNoFounders indicates the engine was started without two founders.
var ErrNoFounders = errors.New("two founders are required")

// Rates is the read-only view of the demographic rates used by the engine.
type Rates interface {
	DecadeFor(year int) string
	BirthRate(decade string) float64
	MarriageRate(decade string) float64
}

var _ Rates = (*demography.Table)(nil)

// PersonGenerator creates new people.
type PersonGenerator interface {
	Generate(yearBorn int, opts ...generator.PersonOption) person.Person
	Founder(first, last string, yearBorn int) person.Person
}

var _ PersonGenerator = (*generator.Generator)(nil)

// Stats summarizes one growth run.
type Stats struct {
	People          int
	Marriages       int
	Children        int
	DroppedChildren int
	Generations     int
}

// Engine expands the registry. It is single-use and not safe for
// concurrent use; all draws come from one source in a fixed order.
type Engine struct {
	reg     *person.Registry
	gen     PersonGenerator
	rates   Rates
	rng     random.Source
	params  tuning.Tuning
	queue   []queueItem
	founder [2]person.ID
	stats   Stats
}

// queueItem pairs a person with their generation depth.
type queueItem struct {
	id    person.ID
	depth int
}

// New creates an Engine writing into reg.
func New(reg *person.Registry, gen PersonGenerator, rates Rates, rng random.Source, params tuning.Tuning) *Engine {
	return &Engine{
		reg:     reg,
		gen:     gen,
		rates:   rates,
		rng:     rng,
		params:  params,
		founder: [2]person.ID{person.NoID, person.NoID},
	}
}

// Founders returns the IDs of the two founders once Grow has run.
func (e *Engine) Founders() (person.ID, person.ID) {
	return e.founder[0], e.founder[1]
}

// Grow registers the founders as a married couple, then expands the tree
// from the first founder until the queue drains. The second founder is not
// queued so the couple's children are generated once.
func (e *Engine) Grow() (Stats, error) {
	if len(e.params.Founders) != 2 {
		return Stats{}, ErrNoFounders
	}
	for i, f := range e.params.Founders {
		e.founder[i] = e.reg.Add(e.gen.Founder(f.FirstName, f.LastName, f.YearBorn))
	}
	if err := e.reg.Marry(e.founder[0], e.founder[1]); err != nil {
		return Stats{}, fmt.Errorf("marry founders: %w", err)
	}

	e.enqueue(e.founder[0], 0)
	for len(e.queue) > 0 {
		item := e.dequeue()
		if err := e.expand(item); err != nil {
			return e.stats, err
		}
	}
	e.stats.People = e.reg.Len()
	return e.stats, nil
}

func (e *Engine) enqueue(id person.ID, depth int) {
	e.queue = append(e.queue, queueItem{id: id, depth: depth})
	e.stats.Generations = max(e.stats.Generations, depth+1)
}

func (e *Engine) dequeue() queueItem {
	item := e.queue[0]
	e.queue = e.queue[1:]
	return item
}

// expand runs the marriage, fertility and birth steps for one person.
func (e *Engine) expand(item queueItem) error {
	p := e.reg.Get(item.id)
	if p == nil {
		return fmt.Errorf("expand %d: %w", item.id, person.ErrUnknownPerson)
	}
	decade := e.rates.DecadeFor(p.YearBorn)

	if !p.HasSpouse() && e.rng.Float64() < e.rates.MarriageRate(decade) {
		spread := e.params.SpouseAgeSpread
		year := p.YearBorn + random.IntBetween(e.rng, -spread, spread)
		// Nobody in the registry is born after the cutoff, spouses included.
		year = min(year, e.params.CutoffYear)
		spouse := e.reg.Add(e.gen.Generate(year))
		if err := e.reg.Marry(item.id, spouse); err != nil {
			return fmt.Errorf("marry %d: %w", item.id, err)
		}
		e.stats.Marriages++
	}

	count := ChildCount(e.rng, e.rates.BirthRate(decade), e.params.ChildSpread)
	if count == 0 {
		return nil
	}

	elder := p.YearBorn
	if p.HasSpouse() {
		elder = min(elder, e.reg.Get(p.Spouse).YearBorn)
	}
	window := e.params.ChildWindow
	years := DistributeBirthYears(elder+window.MinOffset, elder+window.MaxOffset, count)

	surnames := e.params.FounderLastNames()
	for _, year := range years {
		if year > e.params.CutoffYear {
			e.stats.DroppedChildren++
			continue
		}
		surname := surnames[e.rng.Intn(len(surnames))]
		child := e.reg.Add(e.gen.Generate(year, generator.WithLastName(surname)))
		if err := e.reg.AddChild(item.id, child); err != nil {
			return fmt.Errorf("add child %d to %d: %w", child, item.id, err)
		}
		e.stats.Children++
		e.enqueue(child, item.depth+1)
	}
	return nil
}
