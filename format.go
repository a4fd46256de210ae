package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteResult.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// PersonReport is the friction one person ends up with.
type PersonReport struct {
	Name string `json:"name" yaml:"name"`
	Team int    `json:"team" yaml:"team"` // 1-based index into Report.Teams
	Cost int    `json:"cost" yaml:"cost"`
}

// Report is the serializable form of a Result.
type Report struct {
	RunID      string         `json:"runId" yaml:"runId"`
	Cost       int            `json:"cost" yaml:"cost"`
	NumTeams   int            `json:"numTeams" yaml:"numTeams"`
	Iterations int            `json:"iterations" yaml:"iterations"`
	ElapsedMs  int64          `json:"elapsedMs" yaml:"elapsedMs"`
	Teams      [][]string     `json:"teams" yaml:"teams"`
	People     []PersonReport `json:"people" yaml:"people"`
}

// NewReport flattens a result into names and per-person costs.
func NewReport(res Result, roster *Roster) Report {
	best := res.Best
	r := Report{
		RunID:      res.RunID,
		Cost:       res.Cost,
		NumTeams:   best.NumTeams(),
		Iterations: res.Iterations,
		ElapsedMs:  res.Elapsed.Milliseconds(),
		People:     make([]PersonReport, roster.Len()),
	}
	for i, members := range best.Teams() {
		r.Teams = append(r.Teams, roster.Names(members))
		for _, id := range members {
			r.People[id] = PersonReport{Name: roster.People[id].Name, Team: i + 1, Cost: best.PersonCost(id)}
		}
	}
	return r
}

// FormatResult renders one line of space-separated names per team followed
// by the total cost.
func FormatResult(res Result, roster *Roster) string {
	var b strings.Builder
	for _, members := range res.Best.Teams() {
		b.WriteString(strings.Join(roster.Names(members), " "))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%d\n", res.Cost)
	return b.String()
}

// FormatInput describes the weights and every person, names resolved.
func FormatInput(roster *Roster, cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Time required for grading assignment -> %d\n", cfg.GradingCost)
	fmt.Fprintf(&b, "Time required for complaining about team size -> %d\n", cfg.SizeCost)
	fmt.Fprintf(&b, "Time required for complaining about not teaming with friends -> %d\n", cfg.FriendCost)
	fmt.Fprintf(&b, "Time required for complaining about teaming with foes -> %d\n\n", cfg.FoeCost)
	for _, p := range roster.People {
		fmt.Fprintf(&b, "%-16s size=%d friends=[%s] foes=[%s]\n", p.Name, p.PreferredSize,
			strings.Join(roster.Names(p.Friends), ","), strings.Join(roster.Names(p.Foes), ","))
	}
	return b.String()
}

// WriteResult writes res in the requested format.
func WriteResult(w io.Writer, format string, res Result, roster *Roster) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, FormatResult(res, roster))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewReport(res, roster))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewReport(res, roster)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
