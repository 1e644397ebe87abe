package state

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/detective-quest/pkg/ledger"
	"github.com/jwebster45206/detective-quest/pkg/scenario"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

// Session owns everything one run of the game mutates: the cursor over the
// map, the clue ledger and the suspect index with its tallies.
type Session struct {
	ID       uuid.UUID
	Root     *scenario.Room
	Cursor   *scenario.Room
	Ledger   *ledger.Ledger
	Suspects *suspects.Index
	Turns    int // Recognized commands processed
	Ended    bool

	logger *slog.Logger
}

// Discovery is what the player finds on entering a room.
type Discovery struct {
	Room       string `json:"room"`
	Clue       string `json:"clue,omitempty"`
	NewClue    bool   `json:"new_clue"` // First time this text entered the ledger
	Suspect    string `json:"suspect,omitempty"`
	Associated bool   `json:"associated"` // Clue resolved to a suspect
}

// HasClue reports whether the room held a clue.
func (d Discovery) HasClue() bool {
	return d.Clue != ""
}

type OutcomeKind string

const (
	OutcomeMoved   OutcomeKind = "moved"
	OutcomeBlocked OutcomeKind = "blocked"
	OutcomeEnded   OutcomeKind = "ended"
	OutcomeInvalid OutcomeKind = "invalid"
	OutcomeIdle    OutcomeKind = "idle"
)

// Outcome is the result of applying one command.
type Outcome struct {
	Kind      OutcomeKind        `json:"kind"`
	Direction scenario.Direction `json:"direction,omitempty"`
	From      string             `json:"from"`
	To        string             `json:"to"`
}

// NewSession starts a session at the root of the map with the given index.
func NewSession(root *scenario.Room, index *suspects.Index, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	return &Session{
		ID:       id,
		Root:     root,
		Cursor:   root,
		Ledger:   ledger.New(),
		Suspects: index,
		logger:   logger.With("session_id", id.String()),
	}
}

// NewFixedSession builds the manor and its associations.
func NewFixedSession(logger *slog.Logger) *Session {
	index := suspects.NewIndex(suspects.DefaultRosterCapacity, logger)
	index.Build(scenario.Associations())
	return NewSession(scenario.BuildFixedMap(), index, logger)
}

// Examine processes the room under the cursor: its clue goes into the ledger
// and, when it resolves to a suspect, that suspect's tally grows by one. Every
// call counts, so examining the same room twice tallies twice.
func (s *Session) Examine() Discovery {
	room := s.Cursor
	d := Discovery{Room: room.Name}
	if !room.HasClue() {
		return d
	}

	d.Clue = room.Clue
	d.NewClue = !s.Ledger.Contains(room.Clue)
	s.Ledger.Insert(room.Clue)
	if name, ok := s.Suspects.Lookup(room.Clue); ok {
		s.Suspects.IncrementTally(name)
		d.Suspect = name
		d.Associated = true
	}
	s.logger.Debug("Clue examined", "room", room.Name, "clue", room.Clue, "suspect", d.Suspect, "new", d.NewClue)
	return d
}

// Apply runs one command against the session. A blocked move leaves the
// cursor where it was.
func (s *Session) Apply(cmd CommandType) Outcome {
	out := Outcome{From: s.Cursor.Name, To: s.Cursor.Name}
	if s.Ended {
		out.Kind = OutcomeEnded
		return out
	}

	switch cmd {
	case CmdIdle:
		out.Kind = OutcomeIdle
	case CmdEnd:
		s.Turns++
		s.Ended = true
		out.Kind = OutcomeEnded
	case CmdLeft, CmdRight:
		s.Turns++
		dir := scenario.Left
		if cmd == CmdRight {
			dir = scenario.Right
		}
		out.Direction = dir
		next, err := s.Cursor.Traverse(dir)
		if errors.Is(err, scenario.ErrNoPath) {
			out.Kind = OutcomeBlocked
			return out
		}
		s.Cursor = next
		out.Kind = OutcomeMoved
		out.To = next.Name
	default:
		out.Kind = OutcomeInvalid
	}
	return out
}

// End stops exploration, e.g. when input runs out.
func (s *Session) End() {
	s.Ended = true
}

// Clues returns the collected clues in ascending order.
func (s *Session) Clues() []string {
	return s.Ledger.Items()
}

// Tallies returns the current evidence count per suspect.
func (s *Session) Tallies() []suspects.Tally {
	return s.Suspects.Tallies()
}

// Accuse decides an accusation against the current tallies.
func (s *Session) Accuse(name string) verdict.Result {
	res := verdict.Decide(s.Suspects.Tallies(), name)
	s.logger.Info("Accusation decided", "accused", name, "known", res.Known, "count", res.Count, "supported", res.Supported)
	return res
}
