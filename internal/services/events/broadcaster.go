package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/detective-quest/pkg/state"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

// EventType represents the type of event being broadcast
type EventType string

const (
	EventTypeRoomExamined   EventType = "room.examined"
	EventTypeSessionEnded   EventType = "session.ended"
	EventTypeVerdictDecided EventType = "verdict.decided"
)

// Event represents a generic event structure
type Event struct {
	Type   EventType              `json:"type"`
	GameID string                 `json:"game_id,omitempty"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

// Broadcaster publishes session events to Redis Pub/Sub so another process
// can follow an investigation as it happens.
type Broadcaster struct {
	redisClient *redis.Client
	prefix      string
	logger      *slog.Logger
}

// Connect parses redisURL, opens a client and checks the connection.
func Connect(ctx context.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Connected to Redis for event feed", "addr", opt.Addr)
	return rdb, nil
}

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster(redisClient *redis.Client, prefix string, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		prefix:      prefix,
		logger:      logger,
	}
}

// Channel returns the Pub/Sub channel for a game.
func (b *Broadcaster) Channel(gameID uuid.UUID) string {
	return b.prefix + gameID.String()
}

// PublishRoomExamined publishes a room.examined event
func (b *Broadcaster) PublishRoomExamined(ctx context.Context, gameID uuid.UUID, d state.Discovery) error {
	event := Event{
		Type:   EventTypeRoomExamined,
		GameID: gameID.String(),
		Data: map[string]interface{}{
			"room":       d.Room,
			"clue":       d.Clue,
			"new_clue":   d.NewClue,
			"suspect":    d.Suspect,
			"associated": d.Associated,
		},
	}
	return b.publishToGame(ctx, gameID, event)
}

// PublishSessionEnded publishes the final ledger and tallies
func (b *Broadcaster) PublishSessionEnded(ctx context.Context, gameID uuid.UUID, clues []string, tallies []suspects.Tally) error {
	event := Event{
		Type:   EventTypeSessionEnded,
		GameID: gameID.String(),
		Data: map[string]interface{}{
			"clues":   clues,
			"tallies": tallies,
		},
	}
	return b.publishToGame(ctx, gameID, event)
}

// PublishVerdict publishes a verdict.decided event
func (b *Broadcaster) PublishVerdict(ctx context.Context, gameID uuid.UUID, res verdict.Result) error {
	event := Event{
		Type:   EventTypeVerdictDecided,
		GameID: gameID.String(),
		Data: map[string]interface{}{
			"accused":   res.Accused,
			"suspect":   res.Suspect,
			"count":     res.Count,
			"known":     res.Known,
			"supported": res.Supported,
		},
	}
	return b.publishToGame(ctx, gameID, event)
}

// publishToGame publishes an event to the game-specific channel
func (b *Broadcaster) publishToGame(ctx context.Context, gameID uuid.UUID, event Event) error {
	channel := b.Channel(gameID)

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Published event", "type", event.Type, "channel", channel)
	return nil
}
