package models

import (
	"time"

	"github.com/google/uuid"
)

// Insight represents an ai_insights row. Rows are written by the external insight
// generator; this service only reads them.
type Insight struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
