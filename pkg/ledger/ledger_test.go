package ledger

import (
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger_Insert(t *testing.T) {
	tests := []struct {
		name     string
		inserts  []string
		expected []string
	}{
		{
			name:     "duplicates collapse",
			inserts:  []string{"B", "A", "B", "C"},
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "empty text ignored",
			inserts:  []string{"", "clue", ""},
			expected: []string{"clue"},
		},
		{
			name:     "descending input",
			inserts:  []string{"e", "d", "c", "b", "a"},
			expected: []string{"a", "b", "c", "d", "e"},
		},
		{
			name:     "case sensitive byte order",
			inserts:  []string{"apple", "Banana", "banana", "Apple"},
			expected: []string{"Apple", "Banana", "apple", "banana"},
		},
		{
			name:     "nothing inserted",
			inserts:  nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			for _, s := range tt.inserts {
				l.Insert(s)
			}
			assert.Equal(t, tt.expected, l.Items())
			assert.Equal(t, len(tt.expected), l.Len())
		})
	}
}

func TestLedger_InsertReportsNewClues(t *testing.T) {
	var l Ledger
	assert.True(t, l.Insert("Wine stain on the tablecloth"))
	assert.False(t, l.Insert("Wine stain on the tablecloth"))
	assert.False(t, l.Insert(""))
	assert.True(t, l.Contains("Wine stain on the tablecloth"))
	assert.False(t, l.Contains("Page torn from a diary"))
}

func TestLedger_OrderIndependentOfInsertion(t *testing.T) {
	clues := []string{
		"Wet footprint near the sofa",
		"Knife with a broken handle",
		"Page torn from a diary",
		"Wine stain on the tablecloth",
		"Note with an initial: 'M'",
		"Knife with a broken handle",
	}

	// Rotate the input to vary the tree shape.
	for shift := range clues {
		l := New()
		for i := range clues {
			l.Insert(clues[(i+shift)%len(clues)])
		}
		items := l.Items()
		assert.True(t, sort.StringsAreSorted(items), "shift %d not sorted: %v", shift, items)
		assert.Len(t, items, 5)
		assert.Equal(t, len(items), len(slices.Compact(slices.Clone(items))), "duplicates present")
	}
}

func TestLedger_AllIsRestartable(t *testing.T) {
	l := New()
	for _, s := range []string{"m", "c", "x", "a"} {
		l.Insert(s)
	}

	seq := l.All()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	// Stopping early must not break later traversals.
	var got []string
	for s := range seq {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "c"}, got)
	assert.Equal(t, []string{"a", "c", "m", "x"}, slices.Collect(seq))
}
