package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/segmentio/kafka-go"
)

// EntryCreatedEvent is the event type published after a mood entry is stored.
const EntryCreatedEvent = "mood_entry.created"

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes mood entry events to Kafka.
type EventPublisher struct {
	kafkaWriter KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(kafkaWriter KafkaWriter) *EventPublisher {
	return &EventPublisher{kafkaWriter: kafkaWriter}
}

// PublishEntryCreated publishes a mood_entry.created event. Failures are logged
// and never reach the caller: the entry is already stored.
func (p *EventPublisher) PublishEntryCreated(ctx context.Context, entry models.MoodEntry) {
	if p.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "entry_id", entry.ID)
		return
	}

	event := models.MoodEntryEvent{
		EventID:         uuid.NewString(),
		Type:            EntryCreatedEvent,
		EntryID:         entry.ID.String(),
		UserID:          entry.UserID.String(),
		MoodScore:       entry.MoodScore,
		MedicationTaken: entry.MedicationTaken,
		Timestamp:       entry.CreatedAt.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal mood entry event", "entry_id", entry.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EntryID),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish mood entry event to Kafka", "entry_id", entry.ID, "error", err)
	} else {
		logger.Log.Infow("Mood entry event published to Kafka", "entry_id", entry.ID, "event_id", event.EventID)
	}
}
