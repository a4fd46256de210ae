package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// entry is one roster line before names are resolved to IDs.
type entry struct {
	Name    string
	Size    int
	Friends []string
	Foes    []string
}

// LoadRoster reads a roster file. Files ending in .json, or whose first
// non-blank byte opens a JSON value, are parsed as JSON; everything else uses
// the line format "name size friends foes".
func LoadRoster(path string, maxTeamSize int) (*Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var entries []entry
	if isJSON(path, raw) {
		entries, err = parseRosterJSON(string(raw))
	} else {
		entries, err = parseRosterText(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return resolveRoster(entries, maxTeamSize)
}

func isJSON(path string, raw []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return true
	}
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// parseRosterText parses one person per line: name, preferred size, then
// comma-separated friends and foes with "_" meaning none. Blank lines and
// lines starting with '#' are skipped.
func parseRosterText(raw []byte) ([]entry, error) {
	var out []entry
	sc := bufio.NewScanner(bytes.NewReader(raw))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d: want 4 fields, got %d", ErrInvalidRoster, lineNo, len(fields))
		}
		size, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: team size %q: %v", ErrInvalidRoster, lineNo, fields[1], err)
		}
		out = append(out, entry{
			Name:    fields[0],
			Size:    size,
			Friends: splitNames(fields[2]),
			Foes:    splitNames(fields[3]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func splitNames(field string) []string {
	if field == "_" {
		return nil
	}
	var names []string
	for _, n := range strings.Split(field, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// resolveRoster turns named entries into a validated Roster: sizes are
// clamped into [1, maxTeamSize], self references and names listed as both
// friend and foe are dropped, and unknown names are rejected.
func resolveRoster(entries []entry, maxTeamSize int) (*Roster, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyRoster
	}
	ids := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidRoster, i+1)
		}
		if _, dup := ids[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePerson, e.Name)
		}
		ids[e.Name] = i
	}

	people := make([]Person, len(entries))
	for i, e := range entries {
		redundant := map[string]bool{e.Name: true}
		for _, f := range e.Friends {
			if slices.Contains(e.Foes, f) {
				redundant[f] = true
			}
		}
		friends, err := lookupAll(ids, e.Name, e.Friends, redundant)
		if err != nil {
			return nil, err
		}
		foes, err := lookupAll(ids, e.Name, e.Foes, redundant)
		if err != nil {
			return nil, err
		}
		people[i] = Person{
			ID:            i,
			Name:          e.Name,
			PreferredSize: min(max(1, e.Size), maxTeamSize),
			Friends:       friends,
			Foes:          foes,
		}
	}
	return NewRoster(people)
}

func lookupAll(ids map[string]int, owner string, names []string, skip map[string]bool) ([]int, error) {
	var out []int
	for _, n := range names {
		if skip[n] {
			continue
		}
		id, ok := ids[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q lists %q", ErrUnknownPerson, owner, n)
		}
		out = append(out, id)
	}
	return out, nil
}
