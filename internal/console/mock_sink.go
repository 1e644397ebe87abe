package console

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwebster45206/detective-quest/pkg/state"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

// MockSink is a mock implementation of Sink for testing
type MockSink struct {
	Err error // Returned from every publish when set

	// Track calls for testing
	Discoveries []state.Discovery
	EndedClues  [][]string
	EndedTally  [][]suspects.Tally
	Verdicts    []verdict.Result
	GameIDs     []uuid.UUID
}

// NewMockSink creates a new mock sink
func NewMockSink() *MockSink {
	return &MockSink{}
}

func (m *MockSink) PublishRoomExamined(ctx context.Context, gameID uuid.UUID, d state.Discovery) error {
	m.GameIDs = append(m.GameIDs, gameID)
	m.Discoveries = append(m.Discoveries, d)
	return m.Err
}

func (m *MockSink) PublishSessionEnded(ctx context.Context, gameID uuid.UUID, clues []string, tallies []suspects.Tally) error {
	m.GameIDs = append(m.GameIDs, gameID)
	m.EndedClues = append(m.EndedClues, clues)
	m.EndedTally = append(m.EndedTally, tallies)
	return m.Err
}

func (m *MockSink) PublishVerdict(ctx context.Context, gameID uuid.UUID, res verdict.Result) error {
	m.GameIDs = append(m.GameIDs, gameID)
	m.Verdicts = append(m.Verdicts, res)
	return m.Err
}

// Ensure MockSink implements Sink interface
var _ Sink = (*MockSink)(nil)
