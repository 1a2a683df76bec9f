package metrics

import (
	"context"

	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/event"
	"github.com/devpoints/codecasino/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.BetSettled,
		event.ChallengeGenerated,
		event.DailyCachePruned,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case domain.BetSettledPayload:
		result := ResultLoss
		pointsWon := 0
		if payload.IsCorrect {
			result = ResultWin
			pointsWon = payload.PointsDelta
		}
		RecordSettlement(result, string(payload.ChallengeSource), payload.PointsBet, pointsWon)

	case event.ChallengeGeneratedPayloadV1:
		ChallengesGenerated.WithLabelValues(payload.Source).Inc()

	case event.DailyCachePrunedPayloadV1:
		DailyCacheEntries.Set(float64(payload.Remaining))

	default:
		log.Debug(LogMsgEventPayloadUnsupported, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
