package main

import (
	"cmp"
	"encoding/binary"
	"maps"
	"slices"

	"github.com/zeebo/xxh3"
)

// unassigned marks a person that has no team yet.
const unassigned = -1

// Assignment maps every person to one team and keeps the inverse grouping.
// Costs are cached and rebuilt lazily: Relocate marks the assignment dirty and
// the next cost accessor recomputes, so a stale cost is never returned.
type Assignment struct {
	model costModel

	teamOf  []int         // person -> team, or unassigned
	members map[int][]int // team -> sorted member IDs; empty teams are dropped
	nextID  int

	// derived, valid when !dirty
	costs   []int
	ranking []int // people with positive cost, most expensive first
	total   int
	dirty   bool
}

// newAssignment builds an assignment from a person -> team mapping and
// computes its costs eagerly. Entries may be unassigned.
func newAssignment(model costModel, teamOf []int) *Assignment {
	a := &Assignment{
		model:   model,
		teamOf:  make([]int, len(teamOf)),
		members: make(map[int][]int),
	}
	for i := range a.teamOf {
		a.teamOf[i] = unassigned
	}
	for id, t := range teamOf {
		if t != unassigned {
			a.Relocate(id, t)
		}
	}
	a.Recompute()
	return a
}

// Relocate moves a person into team, creating the team if it does not exist.
// The capacity cap is the caller's responsibility.
func (a *Assignment) Relocate(person, team int) {
	cur := a.teamOf[person]
	if cur == team {
		return
	}
	if cur != unassigned {
		rest := a.members[cur]
		if i, ok := slices.BinarySearch(rest, person); ok {
			rest = slices.Delete(rest, i, i+1)
		}
		if len(rest) == 0 {
			delete(a.members, cur)
		} else {
			a.members[cur] = rest
		}
	}
	dst := a.members[team]
	i, _ := slices.BinarySearch(dst, person)
	a.members[team] = slices.Insert(dst, i, person)
	a.teamOf[person] = team
	if team >= a.nextID {
		a.nextID = team + 1
	}
	a.dirty = true
}

// Recompute rebuilds per-person costs, the ranking and the total cost.
func (a *Assignment) Recompute() {
	n := len(a.teamOf)
	if cap(a.costs) < n {
		a.costs = make([]int, n)
	}
	a.costs = a.costs[:n]
	a.ranking = a.ranking[:0]
	a.total = a.model.cfg.GradingCost * len(a.members)
	for id, t := range a.teamOf {
		if t == unassigned {
			a.costs[id] = 0
			continue
		}
		c := a.model.occupancyCost(&a.model.roster.People[id], a.members[t])
		a.costs[id] = c
		a.total += c
		if c > 0 {
			a.ranking = append(a.ranking, id)
		}
	}
	slices.SortFunc(a.ranking, func(x, y int) int {
		if c := cmp.Compare(a.costs[y], a.costs[x]); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})
	a.dirty = false
}

func (a *Assignment) refresh() {
	if a.dirty {
		a.Recompute()
	}
}

// Clone returns an independent copy.
func (a *Assignment) Clone() *Assignment {
	c := &Assignment{
		model:   a.model,
		teamOf:  slices.Clone(a.teamOf),
		members: make(map[int][]int, len(a.members)),
		nextID:  a.nextID,
		costs:   slices.Clone(a.costs),
		ranking: slices.Clone(a.ranking),
		total:   a.total,
		dirty:   a.dirty,
	}
	for t, ms := range a.members {
		c.members[t] = slices.Clone(ms)
	}
	return c
}

// TotalCost is GradingCost per team plus every person's friction.
func (a *Assignment) TotalCost() int {
	a.refresh()
	return a.total
}

// PersonCost returns the friction of one person in their current team.
func (a *Assignment) PersonCost(person int) int {
	a.refresh()
	return a.costs[person]
}

// Ranking returns the people with positive friction, most expensive first,
// ties by ascending ID. The slice must not be modified.
func (a *Assignment) Ranking() []int {
	a.refresh()
	return a.ranking
}

// TeamOf returns the team of a person, or -1 when unassigned.
func (a *Assignment) TeamOf(person int) int { return a.teamOf[person] }

// Members returns the sorted member IDs of a team. The slice must not be modified.
func (a *Assignment) Members(team int) []int { return a.members[team] }

// NumTeams counts non-empty teams.
func (a *Assignment) NumTeams() int { return len(a.members) }

// TeamIDs returns the non-empty team IDs in ascending order.
func (a *Assignment) TeamIDs() []int { return slices.Sorted(maps.Keys(a.members)) }

// Teams returns copies of the member lists in ascending team ID order.
func (a *Assignment) Teams() [][]int {
	ids := a.TeamIDs()
	out := make([][]int, len(ids))
	for i, t := range ids {
		out[i] = slices.Clone(a.members[t])
	}
	return out
}

// newTeamID returns an ID no team has used yet.
func (a *Assignment) newTeamID() int { return a.nextID }

// Fingerprint hashes the grouping independently of team IDs, so two
// assignments with the same teams under different IDs collide on purpose.
func (a *Assignment) Fingerprint() uint64 {
	groups := a.Teams()
	slices.SortFunc(groups, func(x, y []int) int { return cmp.Compare(x[0], y[0]) })
	buf := make([]byte, 0, 4*(len(a.teamOf)+len(groups)))
	for _, g := range groups {
		for _, id := range g {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(id))
		}
		buf = binary.LittleEndian.AppendUint32(buf, ^uint32(0))
	}
	return xxh3.Hash(buf)
}
