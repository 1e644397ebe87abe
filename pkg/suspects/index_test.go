package suspects

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(capacity int, buf *bytes.Buffer) *Index {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewIndex(capacity, logger)
}

func TestIndex_BuildAndLookup(t *testing.T) {
	var buf bytes.Buffer
	x := newTestIndex(0, &buf)
	x.Build([]Pair{
		{Clue: "Wet footprint near the sofa", Suspect: "Marcos"},
		{Clue: "Knife with a broken handle", Suspect: "Ricardo"},
		{Clue: "Page torn from a diary", Suspect: "Mariana"},
		{Clue: "Wine stain on the tablecloth", Suspect: "Marcos"},
	})

	tests := []struct {
		clue    string
		suspect string
		found   bool
	}{
		{"Wet footprint near the sofa", "Marcos", true},
		{"Knife with a broken handle", "Ricardo", true},
		{"Page torn from a diary", "Mariana", true},
		{"Wine stain on the tablecloth", "Marcos", true},
		{"wet footprint near the sofa", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.clue, func(t *testing.T) {
			got, ok := x.Lookup(tt.clue)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.suspect, got)

			// Repeated lookups return the same answer.
			again, ok2 := x.Lookup(tt.clue)
			assert.Equal(t, got, again)
			assert.Equal(t, ok, ok2)
		})
	}

	assert.Equal(t, 4, x.Len())
	assert.Equal(t, []Tally{{"Marcos", 0}, {"Ricardo", 0}, {"Mariana", 0}}, x.Tallies())
}

func TestIndex_InsertOverwrites(t *testing.T) {
	var buf bytes.Buffer
	x := newTestIndex(0, &buf)
	x.Insert("Note with an initial: 'M'", "Marcos")
	x.Insert("Note with an initial: 'M'", "Mariana")

	got, ok := x.Lookup("Note with an initial: 'M'")
	require.True(t, ok)
	assert.Equal(t, "Mariana", got)
	assert.Equal(t, 1, x.Len())

	// Both names were seen as values, so both are on the roster.
	assert.Equal(t, []Tally{{"Marcos", 0}, {"Mariana", 0}}, x.Tallies())
}

func TestIndex_InsertIgnoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	x := newTestIndex(0, &buf)
	x.Insert("", "Marcos")
	x.Insert("clue", "")
	assert.Equal(t, 0, x.Len())
	assert.Empty(t, x.Tallies())
}

func TestIndex_ChainedCollisions(t *testing.T) {
	var buf bytes.Buffer
	x := newTestIndex(1000, &buf)

	// More keys than buckets guarantees shared chains.
	const n = 500
	for i := 0; i < n; i++ {
		x.Insert(fmt.Sprintf("clue-%d", i), fmt.Sprintf("suspect-%d", i%7))
	}
	require.Equal(t, n, x.Len())

	for i := 0; i < n; i++ {
		got, ok := x.Lookup(fmt.Sprintf("clue-%d", i))
		require.True(t, ok, "clue-%d missing", i)
		assert.Equal(t, fmt.Sprintf("suspect-%d", i%7), got)
	}
	assert.Len(t, x.Tallies(), 7)
}

func TestIndex_CollidingKeysStayDistinct(t *testing.T) {
	// Find two keys that land in the same bucket.
	first := "a0"
	var second string
	for i := 1; second == ""; i++ {
		k := fmt.Sprintf("a%d", i)
		if hash(k) == hash(first) {
			second = k
		}
	}

	var buf bytes.Buffer
	x := newTestIndex(0, &buf)
	x.Insert(first, "Marcos")
	x.Insert(second, "Ricardo")

	got, _ := x.Lookup(first)
	assert.Equal(t, "Marcos", got)
	got, _ = x.Lookup(second)
	assert.Equal(t, "Ricardo", got)
	assert.Equal(t, 2, x.Len())
}

func TestIndex_IncrementTally(t *testing.T) {
	var buf bytes.Buffer
	x := newTestIndex(0, &buf)
	x.Build([]Pair{{Clue: "a", Suspect: "Marcos"}, {Clue: "b", Suspect: "Mariana"}})

	x.IncrementTally("Marcos")
	x.IncrementTally("Marcos")
	x.IncrementTally("Mariana")

	count, ok := x.Count("Marcos")
	assert.True(t, ok)
	assert.Equal(t, 2, count)
	count, _ = x.Count("Mariana")
	assert.Equal(t, 1, count)

	t.Run("unknown name is a no-op", func(t *testing.T) {
		before := x.Tallies()
		x.IncrementTally("Nobody")
		x.IncrementTally("marcos")
		assert.Equal(t, before, x.Tallies())
		_, ok := x.Count("Nobody")
		assert.False(t, ok)
	})
}

func TestIndex_TalliesReturnsCopy(t *testing.T) {
	var buf bytes.Buffer
	x := newTestIndex(0, &buf)
	x.Insert("a", "Marcos")

	snapshot := x.Tallies()
	snapshot[0].Count = 99
	count, _ := x.Count("Marcos")
	assert.Equal(t, 0, count)
}

func TestIndex_RosterOverflow(t *testing.T) {
	var buf bytes.Buffer
	x := newTestIndex(2, &buf)

	x.Insert("a", "Marcos")
	x.Insert("b", "Mariana")
	x.Insert("c", "Ricardo")
	x.Insert("d", "Helena")
	x.Insert("e", "Marcos")

	assert.Equal(t, []Tally{{"Marcos", 0}, {"Mariana", 0}}, x.Tallies())
	assert.Equal(t, 1, strings.Count(buf.String(), "Suspect roster full"), "warning should be logged once")

	// Lookups still work for every association, registered or not.
	got, ok := x.Lookup("c")
	assert.True(t, ok)
	assert.Equal(t, "Ricardo", got)

	// Tallies for unregistered suspects are silently dropped.
	x.IncrementTally("Ricardo")
	x.IncrementTally("Marcos")
	assert.Equal(t, []Tally{{"Marcos", 1}, {"Mariana", 0}}, x.Tallies())
}
