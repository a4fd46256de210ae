package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ── Optimizer ───────────────────────────────────────────────────────

// Optimizer builds a squeaky-wheel seed and refines it with tabu-guided
// single-person relocations until the best cost stops improving.
type Optimizer struct {
	model   costModel
	log     *zap.Logger
	metrics *searchMetrics
	observe func(Step)
	runID   string
}

// Option customizes an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *Optimizer) { o.log = l }
}

// WithObserver registers a callback invoked after every search iteration.
func WithObserver(fn func(Step)) Option {
	return func(o *Optimizer) { o.observe = fn }
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(o *Optimizer) { o.runID = id }
}

// Step describes one local search iteration.
type Step struct {
	Iteration int
	Person    int // -1 when every costly person was tabu
	From, To  int
	Skipped   int // tabu people passed over
	Cost      int // total cost after the step
	Best      int
}

// Result is the outcome of a run.
type Result struct {
	RunID      string
	Best       *Assignment
	Cost       int
	Iterations int
	Elapsed    time.Duration
}

// NewOptimizer creates an optimizer for roster under cfg.
func NewOptimizer(roster *Roster, cfg Config, opts ...Option) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if roster == nil || roster.Len() == 0 {
		return nil, ErrEmptyRoster
	}
	o := &Optimizer{
		model:   newCostModel(cfg, roster),
		log:     zap.NewNop(),
		metrics: newSearchMetrics(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	o.log = o.log.With(zap.String("run", o.runID))
	return o, nil
}

// ── Main entry point ────────────────────────────────────────────────

// Optimize runs construction then local search. A cancelled context stops
// the search early; the best assignment found so far is still returned.
func (o *Optimizer) Optimize(ctx context.Context) Result {
	start := time.Now()
	cfg := o.model.cfg

	cur := construct(o.model)
	best := cur.Clone()
	o.log.Info("construct",
		zap.Int("people", o.model.roster.Len()),
		zap.Int("teams", cur.NumTeams()),
		zap.Int("cost", cur.TotalCost()))
	o.metrics.bestCost.Set(float64(best.TotalCost()))
	o.metrics.currentCost.Set(float64(cur.TotalCost()))

	tabu := make(map[int]int)
	seen := map[uint64]struct{}{cur.Fingerprint(): {}}
	stall, iter := 0, 0
	for stall < cfg.StagnationLimit {
		if err := ctx.Err(); err != nil {
			o.log.Warn("search interrupted", zap.Int("iteration", iter), zap.Error(err))
			break
		}
		iter++
		next, step := o.step(cur, tabu)
		step.Iteration = iter

		o.metrics.iterations.Inc()
		o.metrics.tabuSkips.Add(float64(step.Skipped))
		if step.From != step.To {
			o.metrics.relocations.Inc()
			fp := next.Fingerprint()
			if _, ok := seen[fp]; ok {
				o.metrics.revisits.Inc()
			}
			seen[fp] = struct{}{}
		}

		if next.TotalCost() < best.TotalCost() {
			best = next.Clone()
			stall = 0
			o.metrics.improvements.Inc()
			o.metrics.bestCost.Set(float64(best.TotalCost()))
		} else {
			stall++
		}
		cur = next
		o.metrics.currentCost.Set(float64(cur.TotalCost()))

		step.Cost = cur.TotalCost()
		step.Best = best.TotalCost()
		if ce := o.log.Check(zap.DebugLevel, "step"); ce != nil {
			ce.Write(zap.Int("iteration", iter), zap.Int("person", step.Person),
				zap.Int("from", step.From), zap.Int("to", step.To),
				zap.Int("skipped", step.Skipped), zap.Int("cost", step.Cost),
				zap.Int("best", step.Best), zap.Int("stall", stall))
		}
		if o.observe != nil {
			o.observe(step)
		}
	}

	o.metrics.teams.Set(float64(best.NumTeams()))
	elapsed := time.Since(start)
	o.log.Info("done",
		zap.Int("cost", best.TotalCost()),
		zap.Int("teams", best.NumTeams()),
		zap.Int("iterations", iter),
		zap.Duration("elapsed", elapsed))
	return Result{
		RunID:      o.runID,
		Best:       best,
		Cost:       best.TotalCost(),
		Iterations: iter,
		Elapsed:    elapsed,
	}
}

// ── Local search step ───────────────────────────────────────────────

// step relocates the costliest non-tabu person of cur to their best team and
// ages the tabu list. cur is never modified; a relocation works on a clone.
func (o *Optimizer) step(cur *Assignment, tabu map[int]int) (*Assignment, Step) {
	st := Step{Person: -1, From: -1, To: -1}
	for _, id := range cur.Ranking() {
		if _, frozen := tabu[id]; frozen {
			st.Skipped++
			continue
		}
		st.Person = id
		break
	}

	next := cur
	if st.Person >= 0 {
		st.From = cur.TeamOf(st.Person)
		st.To = o.bestTeam(cur, st.Person)
		if st.To != st.From {
			next = cur.Clone()
			next.Relocate(st.Person, st.To)
			next.Recompute()
		}
		// marked even when staying put
		tabu[st.Person] = 0
	}
	for id := range tabu {
		tabu[id]++
		if tabu[id] >= o.model.cfg.TabuTenure {
			delete(tabu, id)
		}
	}
	return next, st
}

// bestTeam returns the team with the lowest cost for person: the current
// team at its occupancy cost, or any other non-full team at its placement
// cost. Teams are scanned in ascending ID order and the first minimum wins.
func (o *Optimizer) bestTeam(a *Assignment, person int) int {
	p := &o.model.roster.People[person]
	from := a.TeamOf(person)
	home := a.Members(from)
	bestTeam, bestCost := from, o.model.occupancyCost(p, home)
	dissolves := len(home) == 1
	for _, t := range a.TeamIDs() {
		if t == from {
			continue
		}
		members := a.Members(t)
		if len(members) >= o.model.cfg.MaxTeamSize {
			continue
		}
		if c := o.model.placementCost(p, members, dissolves); c < bestCost {
			bestTeam, bestCost = t, c
		}
	}
	return bestTeam
}
