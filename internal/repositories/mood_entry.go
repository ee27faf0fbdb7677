package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
)

// MoodEntryWriteRepository stores new mood entries.
type MoodEntryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMoodEntryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MoodEntryWriteRepository {
	return &MoodEntryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts entry. The id and created_at of the returned entry are assigned by the database.
func (r *MoodEntryWriteRepository) Save(ctx context.Context, entry models.MoodEntry) (*models.MoodEntry, error) {
	const query = `
		INSERT INTO mood_entries (user_id, mood_score, notes, medication_taken)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, mood_score, notes, medication_taken, created_at
	`
	args := []any{entry.UserID, entry.MoodScore, entry.Notes, entry.MedicationTaken}

	var saved models.MoodEntry
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", args,
		"result", saved.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// MoodEntryReadRepository reads mood entries.
type MoodEntryReadRepository struct {
	db *sqlx.DB
}

func NewMoodEntryReadRepository(db *sqlx.DB) *MoodEntryReadRepository {
	return &MoodEntryReadRepository{db: db}
}

// ListByUser returns every entry of the user, oldest first.
func (r *MoodEntryReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MoodEntry, error) {
	const query = `
		SELECT id, user_id, mood_score, notes, medication_taken, created_at
		FROM mood_entries
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	entries := []models.MoodEntry{}
	err := r.db.SelectContext(ctx, &entries, query, userID)

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", []any{userID},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
