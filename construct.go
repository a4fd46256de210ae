package main

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// squeakTolerance treats standard deviations this close as equal, so rows
// holding the same values in a different order tie and fall back to ID order.
const squeakTolerance = 1e-9

func affinity(p *Person, other int) float64 {
	switch {
	case p.likes(other):
		return 1
	case p.dislikes(other):
		return -1
	}
	return 0
}

// compatibility builds the symmetric n×n matrix where entry (i,j) sums the
// affinity of i towards j and of j towards i. The diagonal is zero.
func compatibility(roster *Roster) *mat.SymDense {
	n := roster.Len()
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, affinity(&roster.People[i], j)+affinity(&roster.People[j], i))
		}
	}
	return m
}

// squeakOrder returns person IDs sorted ascending by the population standard
// deviation of their compatibility row; the squeakiest person is last.
func squeakOrder(roster *Roster) []int {
	m := compatibility(roster)
	n := roster.Len()
	sd := make([]float64, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, m)
		_, sd[i] = stat.PopMeanStdDev(row, nil)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(x, y int) int {
		if math.Abs(sd[x]-sd[y]) > squeakTolerance {
			return cmp.Compare(sd[x], sd[y])
		}
		return cmp.Compare(x, y)
	})
	return order
}

// construct builds the seed assignment: the squeakiest unplaced person opens
// a team, which is then filled with whichever unplaced candidates lower the
// placement cost, one slot at a time.
func construct(model costModel) *Assignment {
	roster := model.roster
	n := roster.Len()
	teamOf := make([]int, n)
	for i := range teamOf {
		teamOf[i] = unassigned
	}
	a := newAssignment(model, teamOf)

	order := squeakOrder(roster)
	placed := make([]bool, n)
	remaining := n
	for next := len(order) - 1; remaining > 0; next-- {
		seed := order[next]
		if placed[seed] {
			continue
		}
		team := a.newTeamID()
		a.Relocate(seed, team)
		placed[seed] = true
		remaining--

		for slot := 1; slot < model.cfg.MaxTeamSize && remaining > 0; slot++ {
			best, bestCost := -1, math.MaxInt
			for c := 0; c < n; c++ {
				if placed[c] {
					continue
				}
				// every unplaced candidate still sits in its own singleton
				if cost := model.placementCost(&roster.People[c], a.Members(team), true); cost < bestCost {
					best, bestCost = c, cost
				}
			}
			if bestCost >= 0 {
				break
			}
			a.Relocate(best, team)
			placed[best] = true
			remaining--
		}
	}
	a.Recompute()
	return a
}
