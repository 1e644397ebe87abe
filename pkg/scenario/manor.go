package scenario

import (
	"fmt"

	"github.com/jwebster45206/detective-quest/pkg/suspects"
)

const (
	ClueWetFootprint = "Wet footprint near the sofa"
	ClueBrokenKnife  = "Knife with a broken handle"
	ClueTornPage     = "Page torn from a diary"
	ClueWineStain    = "Wine stain on the tablecloth"
	ClueInitialNote  = "Note with an initial: 'M'"
)

// StartRoom is the name of the map root.
const StartRoom = "Entrance Hall"

// BuildFixedMap constructs the manor the player explores.
//
//	Entrance Hall
//	├── Living Room ── Library, Dining Room
//	└── Kitchen ────── Hallway, Bedroom
func BuildFixedMap() *Room {
	hall := NewRoom(StartRoom, "")
	living := NewRoom("Living Room", ClueWetFootprint)
	kitchen := NewRoom("Kitchen", ClueBrokenKnife)
	library := NewRoom("Library", ClueTornPage)
	dining := NewRoom("Dining Room", ClueWineStain)
	hallway := NewRoom("Hallway", "")
	bedroom := NewRoom("Bedroom", ClueInitialNote)

	hall.Left, hall.Right = living, kitchen
	living.Left, living.Right = library, dining
	kitchen.Left, kitchen.Right = hallway, bedroom

	return hall
}

// Associations returns the fixed clue to suspect pairs, in registration order.
func Associations() []suspects.Pair {
	return []suspects.Pair{
		{Clue: ClueWetFootprint, Suspect: "Marcos"},
		{Clue: ClueBrokenKnife, Suspect: "Ricardo"},
		{Clue: ClueTornPage, Suspect: "Mariana"},
		{Clue: ClueWineStain, Suspect: "Marcos"},
		{Clue: ClueInitialNote, Suspect: "Marcos"},
	}
}

// Validate checks a map against its associations and returns every problem
// found. Room names must be unique and every clue should resolve to a suspect.
func Validate(root *Room, pairs []suspects.Pair) []string {
	var problems []string
	if root == nil {
		return []string{"map has no root room"}
	}

	known := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		known[p.Clue] = true
	}

	seen := make(map[string]bool)
	root.Walk(func(r *Room) bool {
		if r.Name == "" {
			problems = append(problems, "room with empty name")
		}
		if seen[r.Name] {
			problems = append(problems, fmt.Sprintf("duplicate room name %q", r.Name))
		}
		seen[r.Name] = true
		if r.HasClue() && !known[r.Clue] {
			problems = append(problems, fmt.Sprintf("clue %q in %s has no associated suspect", r.Clue, r.Name))
		}
		return true
	})
	return problems
}
