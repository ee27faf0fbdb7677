package models

import (
	"time"

	"github.com/google/uuid"
)

// Mood score bounds, inclusive
const (
	MinMoodScore = 0
	MaxMoodScore = 10
)

// MoodEntry represents a mood_entries row in the database
type MoodEntry struct {
	ID              uuid.UUID `json:"id" db:"id"`                             // Primary key, assigned by the store
	UserID          uuid.UUID `json:"user_id" db:"user_id"`                   // Owning user profile
	MoodScore       int       `json:"mood_score" db:"mood_score"`             // 0..10
	Notes           string    `json:"notes" db:"notes"`                       // Free text
	MedicationTaken bool      `json:"medication_taken" db:"medication_taken"` // Medication taken that day
	CreatedAt       time.Time `json:"created_at" db:"created_at"`             // Assigned by the store, immutable
}

// ValidMoodScore reports whether score lies in the inclusive 0..10 range.
func ValidMoodScore(score int) bool {
	return score >= MinMoodScore && score <= MaxMoodScore
}

// MoodLabel maps a score to its display band.
func MoodLabel(score int) string {
	switch {
	case score <= 2:
		return "Severe Depression"
	case score <= 4:
		return "Mild Depression"
	case score == 5:
		return "Neutral"
	case score <= 7:
		return "Elevated"
	default:
		return "Mania"
	}
}

// MoodEntryEvent is published to Kafka after an entry is stored.
type MoodEntryEvent struct {
	EventID         string `json:"event_id"`         // Unique event identifier
	Type            string `json:"type"`             // Always "mood_entry.created"
	EntryID         string `json:"entry_id"`         // Stored entry id
	UserID          string `json:"user_id"`          // Owner of the entry
	MoodScore       int    `json:"mood_score"`       // Reported score
	MedicationTaken bool   `json:"medication_taken"` // Medication flag
	Timestamp       int64  `json:"timestamp"`        // Entry creation time, Unix seconds
}
