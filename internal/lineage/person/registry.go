package person

import (
	"errors"
	"slices"
)

var (
	// ErrUnknownPerson indicates an ID that is not in the registry.
	ErrUnknownPerson = errors.New("unknown person")
	// ErrSelfMarriage indicates an attempt to marry a person to themselves.
	ErrSelfMarriage = errors.New("person cannot marry themselves")
	// ErrAlreadyMarried indicates one side of a marriage already has a spouse.
	ErrAlreadyMarried = errors.New("person already married")
	// ErrDuplicateChild indicates the child is already listed for the parent.
	ErrDuplicateChild = errors.New("child already recorded for parent")
)

// Registry is the flat collection of every generated person.
type Registry struct {
	people []*Person
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers p and returns its ID. Relationships on p are reset; use
// Marry and AddChild to link people.
func (r *Registry) Add(p Person) ID {
	id := ID(len(r.people))
	p.ID = id
	p.Spouse = NoID
	p.Children = nil
	r.people = append(r.people, &p)
	return id
}

// Get returns the person for id, or nil when unknown.
func (r *Registry) Get(id ID) *Person {
	if id < 0 || int(id) >= len(r.people) {
		return nil
	}
	return r.people[id]
}

// Len returns the number of registered people.
func (r *Registry) Len() int {
	return len(r.people)
}

// All returns the people in registration order. The slice is shared; callers
// must not modify it.
func (r *Registry) All() []*Person {
	return r.people
}

// Marry links a and b as each other's spouse.
func (r *Registry) Marry(a, b ID) error {
	pa, pb := r.Get(a), r.Get(b)
	if pa == nil || pb == nil {
		return ErrUnknownPerson
	}
	if a == b {
		return ErrSelfMarriage
	}
	if pa.HasSpouse() || pb.HasSpouse() {
		return ErrAlreadyMarried
	}
	pa.Spouse = b
	pb.Spouse = a
	return nil
}

// AddChild appends child to parent's children and, when the parent is
// married, to the spouse's children as well. The child is shared, not
// copied.
func (r *Registry) AddChild(parent, child ID) error {
	p, c := r.Get(parent), r.Get(child)
	if p == nil || c == nil {
		return ErrUnknownPerson
	}
	if slices.Contains(p.Children, child) {
		return ErrDuplicateChild
	}
	p.Children = append(p.Children, child)
	if p.HasSpouse() {
		s := r.Get(p.Spouse)
		if !slices.Contains(s.Children, child) {
			s.Children = append(s.Children, child)
		}
	}
	return nil
}
