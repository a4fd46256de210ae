package main

import (
	"fmt"
	"slices"
)

// Person is one individual to be placed. Friends and Foes hold roster IDs and
// are kept sorted.
type Person struct {
	ID            int
	Name          string
	PreferredSize int
	Friends       []int
	Foes          []int
}

func (p *Person) likes(id int) bool    { return slices.Contains(p.Friends, id) }
func (p *Person) dislikes(id int) bool { return slices.Contains(p.Foes, id) }

// Roster is the validated set of people. People[i].ID == i.
type Roster struct {
	People []Person
	byName map[string]int
}

// NewRoster validates people and builds the name index. The slice is taken
// over by the roster; friend and foe lists are sorted in place.
func NewRoster(people []Person) (*Roster, error) {
	if len(people) == 0 {
		return nil, ErrEmptyRoster
	}
	r := &Roster{People: people, byName: make(map[string]int, len(people))}
	for i := range people {
		p := &people[i]
		if p.ID != i {
			return nil, fmt.Errorf("%w: person %q has id %d at position %d", ErrInvalidRoster, p.Name, p.ID, i)
		}
		if p.PreferredSize < 1 {
			return nil, fmt.Errorf("%w: person %q prefers team size %d", ErrInvalidRoster, p.Name, p.PreferredSize)
		}
		if _, dup := r.byName[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePerson, p.Name)
		}
		r.byName[p.Name] = i
	}
	for i := range people {
		p := &people[i]
		slices.Sort(p.Friends)
		slices.Sort(p.Foes)
		p.Friends = slices.Compact(p.Friends)
		p.Foes = slices.Compact(p.Foes)
		for _, id := range append(slices.Clone(p.Friends), p.Foes...) {
			if id < 0 || id >= len(people) {
				return nil, fmt.Errorf("%w: %q references id %d", ErrUnknownPerson, p.Name, id)
			}
			if id == p.ID {
				return nil, fmt.Errorf("%w: %q lists themself", ErrInvalidRoster, p.Name)
			}
		}
		for _, id := range p.Friends {
			if p.dislikes(id) {
				return nil, fmt.Errorf("%w: %q lists %q as both friend and foe",
					ErrInvalidRoster, p.Name, people[id].Name)
			}
		}
	}
	return r, nil
}

// Len returns the number of people.
func (r *Roster) Len() int { return len(r.People) }

// Lookup returns the ID for a name.
func (r *Roster) Lookup(name string) (int, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Names maps IDs to display names, preserving order.
func (r *Roster) Names(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = r.People[id].Name
	}
	return out
}
