package main

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// parseRosterJSON reads either {"people":[...]} or a bare array of
// {"name","size","friends","foes"} objects.
func parseRosterJSON(doc string) ([]entry, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidRoster)
	}
	root := gjson.Parse(doc)
	people := root
	if root.IsObject() {
		people = root.Get("people")
	}
	if !people.IsArray() {
		return nil, fmt.Errorf("%w: no people array", ErrInvalidRoster)
	}

	var out []entry
	var err error
	people.ForEach(func(key, v gjson.Result) bool {
		name := v.Get("name")
		if name.Type != gjson.String {
			err = fmt.Errorf("%w: person %d has no name", ErrInvalidRoster, key.Int()+1)
			return false
		}
		out = append(out, entry{
			Name:    name.String(),
			Size:    int(v.Get("size").Int()),
			Friends: readStringSlice(v.Get("friends")),
			Foes:    readStringSlice(v.Get("foes")),
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func readStringSlice(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	arr := v.Array()
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, item.String())
	}
	return out
}

// applyConfigJSON overrides the fields of base present in v.
func applyConfigJSON(v gjson.Result, base Config) Config {
	if !v.IsObject() {
		return base
	}
	set := func(key string, dst *int) {
		if f := v.Get(key); f.Exists() {
			*dst = int(f.Int())
		}
	}
	set("gradingCost", &base.GradingCost)
	set("sizeCost", &base.SizeCost)
	set("foeCost", &base.FoeCost)
	set("friendCost", &base.FriendCost)
	set("maxTeamSize", &base.MaxTeamSize)
	set("tabuTenure", &base.TabuTenure)
	set("stagnationLimit", &base.StagnationLimit)
	return base
}
