// Package suspects maps clue texts to the suspect they implicate and keeps a
// running tally of evidence per suspect.
package suspects

import (
	"log/slog"
)

const (
	// bucketCount is the fixed size of the hash table.
	bucketCount = 101

	// DefaultRosterCapacity is the number of distinct suspects the roster holds.
	DefaultRosterCapacity = 32
)

// Pair associates a clue with a suspect.
type Pair struct {
	Clue    string `json:"clue"`
	Suspect string `json:"suspect"`
}

// Tally is the number of discovery events implicating a suspect.
type Tally struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type entry struct {
	clue    string
	suspect string
	next    *entry
}

// Index is a chained hash table from clue text to suspect name plus the
// roster of suspects in first-seen order.
type Index struct {
	buckets  [bucketCount]*entry
	size     int
	roster   []Tally
	capacity int
	warned   bool
	logger   *slog.Logger
}

// NewIndex creates an empty index. A capacity <= 0 uses DefaultRosterCapacity.
func NewIndex(capacity int, logger *slog.Logger) *Index {
	if capacity <= 0 {
		capacity = DefaultRosterCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Index{
		capacity: capacity,
		roster:   make([]Tally, 0, capacity),
		logger:   logger,
	}
}

// Build inserts every pair in order. Later pairs overwrite earlier ones with
// the same clue.
func (x *Index) Build(pairs []Pair) {
	for _, p := range pairs {
		x.Insert(p.Clue, p.Suspect)
	}
}

// Insert associates clue with suspect, replacing any previous suspect for the
// same clue, and registers the suspect on the roster if it is new.
func (x *Index) Insert(clue, suspect string) {
	if clue == "" || suspect == "" {
		return
	}
	defer x.register(suspect)

	idx := hash(clue)
	for e := x.buckets[idx]; e != nil; e = e.next {
		if e.clue == clue {
			e.suspect = suspect
			return
		}
	}
	x.buckets[idx] = &entry{clue: clue, suspect: suspect, next: x.buckets[idx]}
	x.size++
}

// Lookup returns the suspect associated with clue.
func (x *Index) Lookup(clue string) (string, bool) {
	for e := x.buckets[hash(clue)]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// IncrementTally adds one to the named suspect's count. Unknown names are
// ignored.
func (x *Index) IncrementTally(name string) {
	for i := range x.roster {
		if x.roster[i].Name == name {
			x.roster[i].Count++
			return
		}
	}
}

// Count returns the tally for a suspect, matched exactly.
func (x *Index) Count(name string) (int, bool) {
	for _, t := range x.roster {
		if t.Name == name {
			return t.Count, true
		}
	}
	return 0, false
}

// Tallies returns a copy of the roster in first-seen order.
func (x *Index) Tallies() []Tally {
	out := make([]Tally, len(x.roster))
	copy(out, x.roster)
	return out
}

// Len returns the number of associations stored.
func (x *Index) Len() int {
	return x.size
}

func (x *Index) register(name string) {
	for _, t := range x.roster {
		if t.Name == name {
			return
		}
	}
	if len(x.roster) >= x.capacity {
		if !x.warned {
			x.logger.Warn("Suspect roster full, ignoring new suspects", "capacity", x.capacity, "suspect", name)
			x.warned = true
		}
		return
	}
	x.roster = append(x.roster, Tally{Name: name})
}

// hash is djb2 reduced to a bucket index.
func hash(s string) uint32 {
	var h uint64 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint64(s[i])
	}
	return uint32(h % bucketCount)
}
