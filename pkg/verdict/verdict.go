// Package verdict decides whether an accusation is backed by enough evidence.
package verdict

import (
	"strings"

	"github.com/jwebster45206/detective-quest/pkg/suspects"
	"golang.org/x/text/cases"
)

// Threshold is the minimum tally that supports an accusation.
const Threshold = 2

// Result describes the outcome of an accusation.
type Result struct {
	Accused   string `json:"accused"`             // Name as typed by the player
	Suspect   string `json:"suspect,omitempty"`   // Roster name it matched, if any
	Count     int    `json:"count"`               // Tally of the matched suspect
	Known     bool   `json:"known"`               // Whether the name matched the roster
	Supported bool   `json:"supported"`
}

// Decide matches accused against the roster ignoring case and compares the
// suspect's tally with Threshold. Unknown names are never supported.
func Decide(roster []suspects.Tally, accused string) Result {
	res := Result{Accused: accused}
	name := strings.TrimSpace(accused)
	if name == "" {
		return res
	}

	fold := cases.Fold()
	key := fold.String(name)
	for _, t := range roster {
		if fold.String(t.Name) == key {
			res.Suspect = t.Name
			res.Count = t.Count
			res.Known = true
			res.Supported = t.Count >= Threshold
			return res
		}
	}
	return res
}

// Supported is Decide reduced to its boolean outcome.
func Supported(roster []suspects.Tally, accused string) bool {
	return Decide(roster, accused).Supported
}
