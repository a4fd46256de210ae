package main

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// person is a compact entry literal for tests.
func person(name string, size int, friends, foes []string) entry {
	return entry{Name: name, Size: size, Friends: friends, Foes: foes}
}

func mustRoster(t *testing.T, maxTeamSize int, entries ...entry) *Roster {
	t.Helper()
	r, err := resolveRoster(entries, maxTeamSize)
	require.NoError(t, err)
	return r
}

// groupNames renders teams as sorted name lists ordered by first name.
func groupNames(a *Assignment, r *Roster) [][]string {
	var out [][]string
	for _, members := range a.Teams() {
		names := r.Names(members)
		slices.Sort(names)
		out = append(out, names)
	}
	slices.SortFunc(out, func(x, y []string) int { return strings.Compare(x[0], y[0]) })
	return out
}

// requireConsistent checks the structural and cost invariants of a.
func requireConsistent(t *testing.T, a *Assignment, model costModel) {
	t.Helper()
	n := model.roster.Len()
	seen := make([]int, n)
	want := model.cfg.GradingCost * a.NumTeams()
	for _, team := range a.TeamIDs() {
		members := a.Members(team)
		require.NotEmpty(t, members, "team %d is empty", team)
		require.LessOrEqual(t, len(members), model.cfg.MaxTeamSize, "team %d over capacity", team)
		for _, id := range members {
			seen[id]++
			require.Equal(t, team, a.TeamOf(id), "person %d", id)
			c := model.occupancyCost(&model.roster.People[id], members)
			require.Equal(t, c, a.PersonCost(id), "person %d cost", id)
			want += c
		}
	}
	for id, count := range seen {
		require.Equal(t, 1, count, "person %d placed %d times", id, count)
	}
	require.Equal(t, want, a.TotalCost())
}

// randomRoster builds a reproducible roster with random preferences.
func randomRoster(t *testing.T, seed int64, n int) *Roster {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	name := func(i int) string { return fmt.Sprintf("p%02d", i) }
	entries := make([]entry, n)
	for i := range entries {
		pick := func(k int) []string {
			var out []string
			for _, j := range rng.Perm(n)[:min(k, n)] {
				if j != i {
					out = append(out, name(j))
				}
			}
			return out
		}
		entries[i] = person(name(i), rng.Intn(5), pick(rng.Intn(4)), pick(rng.Intn(3)))
	}
	return mustRoster(t, 3, entries...)
}
