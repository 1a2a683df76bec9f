package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/devpoints/codecasino/internal/domain"
)

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	BetSettled         Type = "bet.settled"
	ChallengeGenerated Type = "challenge.generated"
	DailyCachePruned   Type = "daily_cache.pruned"
)

// ChallengeGeneratedPayloadV1 is the typed payload for challenge.generated events
type ChallengeGeneratedPayloadV1 struct {
	ChallengeID int64  `json:"challenge_id"`
	Source      string `json:"source"`
	TechStack   string `json:"tech_stack"`
	Timestamp   int64  `json:"timestamp"`
}

// DailyCachePrunedPayloadV1 is the typed payload for daily_cache.pruned events
type DailyCachePrunedPayloadV1 struct {
	Pruned    int   `json:"pruned"`
	Remaining int   `json:"remaining"`
	Timestamp int64 `json:"timestamp"`
}

// NewDailyCachePrunedEvent creates a new daily_cache.pruned event
func NewDailyCachePrunedEvent(pruned, remaining int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DailyCachePruned,
		Payload: DailyCachePrunedPayloadV1{
			Pruned:    pruned,
			Remaining: remaining,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBetSettledEvent creates a new bet.settled event with type-safe payload
func NewBetSettledEvent(payload domain.BetSettledPayload) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BetSettled,
		Payload: payload,
	}
}

// NewChallengeGeneratedEvent creates a new challenge.generated event
func NewChallengeGeneratedEvent(challengeID int64, source domain.ChallengeSource, techStack string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ChallengeGenerated,
		Payload: ChallengeGeneratedPayloadV1{
			ChallengeID: challengeID,
			Source:      string(source),
			TechStack:   techStack,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// settlement has already committed by the time an event is published, so a
// failing handler never unwinds a settlement.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
