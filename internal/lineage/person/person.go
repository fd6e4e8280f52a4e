// Package person defines family members and the registry that owns them.
//
// People live in a flat, append-only arena. Spouse and child relationships
// are stored as IDs into that arena, so the mutual spouse link is a plain
// association rather than an ownership cycle.
package person

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a person inside a Registry.
type ID int

// NoID marks an absent relationship.
const NoID ID = -1

// Person is one member of the family tree.
type Person struct {
	ID        ID
	FirstName string
	LastName  string
	YearBorn  int
	YearDied  int
	Spouse    ID
	Children  []ID
}

// New returns an unregistered person with no relationships.
func New(first, last string, born, died int) Person {
	return Person{
		ID:        NoID,
		FirstName: first,
		LastName:  last,
		YearBorn:  born,
		YearDied:  died,
		Spouse:    NoID,
	}
}

// FullName returns "First Last".
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Decade returns the decade key of the birth year, e.g. "1950s".
func (p *Person) Decade() string {
	return Decade(p.YearBorn)
}

// HasSpouse reports whether the person is married.
func (p *Person) HasSpouse() bool {
	return p.Spouse != NoID
}

// DecadeStartOf floors a year to the first year of its decade.
func DecadeStartOf(year int) int {
	start := year / 10 * 10
	if year < 0 && year%10 != 0 {
		start -= 10
	}
	return start
}

// Decade formats the decade key for a year.
func Decade(year int) string {
	return fmt.Sprintf("%ds", DecadeStartOf(year))
}

// DecadeStart parses a decade key such as "1950s" back into 1950.
func DecadeStart(key string) (int, error) {
	trimmed := strings.TrimSpace(key)
	if !strings.HasSuffix(trimmed, "s") {
		return 0, fmt.Errorf("decade %q: missing trailing s", key)
	}
	start, err := strconv.Atoi(strings.TrimSuffix(trimmed, "s"))
	if err != nil {
		return 0, fmt.Errorf("decade %q: %w", key, err)
	}
	return start, nil
}
