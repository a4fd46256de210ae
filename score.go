package main

// costModel evaluates friction for a fixed roster and weight set.
type costModel struct {
	cfg    Config
	roster *Roster
}

func newCostModel(cfg Config, roster *Roster) costModel {
	return costModel{cfg: cfg, roster: roster}
}

// occupancyCost is the friction p experiences in team, which must include p.
// Absent friends are counted against at most MaxTeamSize requests.
func (m costModel) occupancyCost(p *Person, team []int) int {
	cost := 0
	if len(team) != p.PreferredSize {
		cost += m.cfg.SizeCost
	}
	present, foes := 0, 0
	for _, id := range team {
		if p.likes(id) {
			present++
		} else if p.dislikes(id) {
			foes++
		}
	}
	absent := min(len(p.Friends), m.cfg.MaxTeamSize) - present
	cost += absent*m.cfg.FriendCost + foes*m.cfg.FoeCost
	return cost
}

// placementCost ranks inserting p into team (which must not contain p).
// Lower is better; it is a comparator, not an absolute cost. dissolves is
// true when p is unplaced or alone, i.e. the move removes a team.
func (m costModel) placementCost(p *Person, team []int, dissolves bool) int {
	grown := len(team) + 1
	complaints := 0
	if grown != p.PreferredSize {
		complaints++
	}
	friends, foes := 0, 0
	for _, id := range team {
		member := &m.roster.People[id]
		if member.PreferredSize != grown {
			complaints++
		}
		if p.likes(id) {
			friends++
		} else if p.dislikes(id) {
			foes++
		}
		if member.likes(p.ID) {
			friends++
		} else if member.dislikes(p.ID) {
			foes++
		}
	}
	cost := complaints*m.cfg.SizeCost + foes*m.cfg.FoeCost - friends*m.cfg.FriendCost
	if len(team) <= 1 || dissolves {
		cost -= m.cfg.GradingCost
	}
	return cost
}
