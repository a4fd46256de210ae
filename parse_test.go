package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const textRoster = `# name size friends foes
alice 2 bob _
bob   2 alice,carol dave

carol 1 _ bob
dave  9 _ _
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseRosterText(t *testing.T) {
	got, err := parseRosterText([]byte(textRoster))
	require.NoError(t, err)
	want := []entry{
		{Name: "alice", Size: 2, Friends: []string{"bob"}},
		{Name: "bob", Size: 2, Friends: []string{"alice", "carol"}, Foes: []string{"dave"}},
		{Name: "carol", Size: 1, Foes: []string{"bob"}},
		{Name: "dave", Size: 9},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRosterTextErrors(t *testing.T) {
	for name, input := range map[string]string{
		"too few fields":  "alice 2 bob\n",
		"too many fields": "alice 2 bob _ extra\n",
		"bad size":        "alice two _ _\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseRosterText([]byte(input))
			assert.ErrorIs(t, err, ErrInvalidRoster)
			assert.ErrorContains(t, err, "line 1")
		})
	}
}

func TestParseRosterJSON(t *testing.T) {
	wrapped := `{"people":[{"name":"a","size":2,"friends":["b"]},{"name":"b","size":1,"foes":["a"]}]}`
	bare := `[{"name":"a","size":2,"friends":["b"]},{"name":"b","size":1,"foes":["a"]}]`
	want := []entry{
		{Name: "a", Size: 2, Friends: []string{"b"}},
		{Name: "b", Size: 1, Foes: []string{"a"}},
	}
	for _, doc := range []string{wrapped, bare} {
		got, err := parseRosterJSON(doc)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("entries mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestParseRosterJSONErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"malformed":  `{"people":[`,
		"no array":   `{"people":{}}`,
		"no name":    `[{"size":2}]`,
		"not object": `"people"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseRosterJSON(doc)
			assert.ErrorIs(t, err, ErrInvalidRoster)
		})
	}
}

func TestResolveRoster(t *testing.T) {
	entries := []entry{
		{Name: "a", Size: 0, Friends: []string{"a", "b", "c"}, Foes: []string{"c"}},
		{Name: "b", Size: 7, Friends: []string{"a", "a"}},
		{Name: "c", Size: 2, Foes: []string{"b", "a"}},
	}
	r, err := resolveRoster(entries, 3)
	require.NoError(t, err)

	// self and friend-and-foe names dropped, sizes clamped, lists deduplicated and sorted
	assert.Equal(t, Person{ID: 0, Name: "a", PreferredSize: 1, Friends: []int{1}}, r.People[0])
	assert.Equal(t, Person{ID: 1, Name: "b", PreferredSize: 3, Friends: []int{0}}, r.People[1])
	assert.Equal(t, Person{ID: 2, Name: "c", PreferredSize: 2, Foes: []int{0, 1}}, r.People[2])

	id, ok := r.Lookup("c")
	assert.True(t, ok)
	assert.Equal(t, 2, id)
	_, ok = r.Lookup("zed")
	assert.False(t, ok)
	assert.Equal(t, []string{"c", "a"}, r.Names([]int{2, 0}))
}

func TestResolveRosterErrors(t *testing.T) {
	_, err := resolveRoster(nil, 3)
	assert.ErrorIs(t, err, ErrEmptyRoster)

	_, err = resolveRoster([]entry{{Name: "a", Size: 1}, {Name: "a", Size: 2}}, 3)
	assert.ErrorIs(t, err, ErrDuplicatePerson)

	_, err = resolveRoster([]entry{{Name: "a", Size: 1, Foes: []string{"ghost"}}}, 3)
	assert.ErrorIs(t, err, ErrUnknownPerson)
	assert.ErrorContains(t, err, `"a" lists "ghost"`)

	_, err = resolveRoster([]entry{{Size: 1}}, 3)
	assert.ErrorIs(t, err, ErrInvalidRoster)
}

func TestNewRosterErrors(t *testing.T) {
	tests := []struct {
		name   string
		people []Person
		want   error
	}{
		{"empty", nil, ErrEmptyRoster},
		{"id mismatch", []Person{{ID: 1, Name: "a", PreferredSize: 1}}, ErrInvalidRoster},
		{"size zero", []Person{{ID: 0, Name: "a"}}, ErrInvalidRoster},
		{"duplicate", []Person{{ID: 0, Name: "a", PreferredSize: 1}, {ID: 1, Name: "a", PreferredSize: 1}}, ErrDuplicatePerson},
		{"out of range", []Person{{ID: 0, Name: "a", PreferredSize: 1, Friends: []int{4}}}, ErrUnknownPerson},
		{"self", []Person{{ID: 0, Name: "a", PreferredSize: 1, Foes: []int{0}}}, ErrInvalidRoster},
		{"friend and foe", []Person{
			{ID: 0, Name: "a", PreferredSize: 1, Friends: []int{1}, Foes: []int{1}},
			{ID: 1, Name: "b", PreferredSize: 1},
		}, ErrInvalidRoster},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoster(tt.people)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadRoster(t *testing.T) {
	text := writeFile(t, "class.txt", textRoster)
	r, err := LoadRoster(text, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 3, r.People[3].PreferredSize)

	// detected by content even without the extension
	sniffed := writeFile(t, "class.roster", `  [{"name":"x","size":1},{"name":"y","size":1,"friends":["x"]}]`)
	r, err = LoadRoster(sniffed, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, r.People[1].Friends)

	bad := writeFile(t, "bad.json", `not json`)
	_, err = LoadRoster(bad, 3)
	assert.ErrorIs(t, err, ErrInvalidRoster)

	_, err = LoadRoster(filepath.Join(t.TempDir(), "missing.txt"), 3)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
