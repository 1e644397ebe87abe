package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwebster45206/detective-quest/pkg/scenario"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
)

func main() {
	if err := validate(os.Stdout, scenario.BuildFixedMap(), scenario.Associations()); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
}

// validate checks the case file and prints a short inventory of it.
func validate(w io.Writer, root *scenario.Room, pairs []suspects.Pair) error {
	fmt.Fprintln(w, "Validating case file...")

	if problems := scenario.Validate(root, pairs); len(problems) > 0 {
		return fmt.Errorf("validation errors:\n%s", strings.Join(problems, "\n"))
	}

	rooms, clues := 0, 0
	root.Walk(func(r *scenario.Room) bool {
		rooms++
		if r.HasClue() {
			clues++
		}
		return true
	})

	index := suspects.NewIndex(suspects.DefaultRosterCapacity, nil)
	index.Build(pairs)

	fmt.Fprintf(w, "Rooms: %d, clues: %d, associations: %d, suspects: %d\n", rooms, clues, index.Len(), len(index.Tallies()))
	fmt.Fprintln(w, "Case file is valid!")
	return nil
}
