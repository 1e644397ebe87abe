package console

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/detective-quest/pkg/scenario"
	"github.com/jwebster45206/detective-quest/pkg/state"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

const (
	Welcome        = "Welcome to Detective Quest: The Final Judgment"
	StartHint      = "Your exploration begins in the " + scenario.StartRoom + "."
	ExploreBegin   = "--- Exploration begins ---"
	ExploreEnd     = "--- Exploration over ---"
	MenuText       = "Options: (e) left, (d) right, (s) stop and end exploration"
	ChoicePrompt   = "Choice: "
	AccusePrompt   = "Who do you accuse? Type the suspect's name: "
	ReadFailure    = "Could not read input. Ending exploration."
	AccuseFailure  = "Could not read input."
	NoName         = "No name entered. No decision possible."
	Farewell       = "Game over. Thanks for investigating!"
	NoCluesVisible = "There are no visible clues in this room."
	NoSuspect      = "(No suspect is associated with this clue.)"
)

// DescribeDiscovery renders what the player sees on entering a room.
func DescribeDiscovery(d state.Discovery) []string {
	lines := []string{"You are in: " + d.Room}
	if !d.HasClue() {
		return append(lines, NoCluesVisible)
	}
	lines = append(lines, fmt.Sprintf("You found a clue: %q", d.Clue))
	if !d.Associated {
		lines = append(lines, NoSuspect)
	}
	return lines
}

// DescribeOutcome renders the response to a command, if any.
func DescribeOutcome(out state.Outcome) string {
	switch out.Kind {
	case state.OutcomeBlocked:
		return fmt.Sprintf("There is no path to the %s from here.", out.Direction)
	case state.OutcomeInvalid:
		return "Invalid command. Use 'e', 'd' or 's'."
	case state.OutcomeEnded:
		return "Leaving the exploration..."
	}
	return ""
}

// Report renders the collected clues in order, the tally per suspect and the
// number of turns taken.
func Report(clues []string, tallies []suspects.Tally, turns int) string {
	var b strings.Builder
	b.WriteString("Collected clues (alphabetical order):\n")
	if len(clues) == 0 {
		b.WriteString("No clues were collected during the exploration.\n")
	}
	for _, c := range clues {
		b.WriteString("- " + c + "\n")
	}

	b.WriteString("\nClue count per suspect:\n")
	for _, t := range tallies {
		fmt.Fprintf(&b, "- %s: %d clue(s)\n", t.Name, t.Count)
	}
	fmt.Fprintf(&b, "\nTurns taken: %d\n", turns)
	return b.String()
}

// DescribeVerdict renders the decision on an accusation.
func DescribeVerdict(res verdict.Result) []string {
	lines := []string{fmt.Sprintf("Decision: you accused '%s'.", res.Accused)}
	if res.Supported {
		return append(lines, fmt.Sprintf("Result: there is enough evidence (>= %d clues) to support the accusation.", verdict.Threshold))
	}
	return append(lines, fmt.Sprintf("Result: there is not enough evidence to support the accusation (fewer than %d clues).", verdict.Threshold))
}
