package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
)

const userColumns = `id, email, notification_preferences, medication_reminder, dark_mode, subscription_tier, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user profile, or nil if it has not been created yet.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", []any{id},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the profile. When a profile with the same id already exists the
// stored row is returned unchanged.
func (r *UserWriteRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	const query = `
		INSERT INTO users (id, email, notification_preferences, medication_reminder, dark_mode, subscription_tier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET updated_at = users.updated_at
		RETURNING ` + userColumns

	args := []any{
		user.ID,
		user.Email,
		user.NotificationPreferences,
		user.MedicationReminder,
		user.DarkMode,
		user.SubscriptionTier,
	}

	var created models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", args,
		"result", created,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ModifyPreferences locks the profile row, passes it to apply and writes back the
// preference columns of the result. Concurrent changes to the same profile are
// serialized on the row lock, so a change never overwrites a sibling field with a
// stale copy. The request transaction is used when one is bound to ctx, otherwise
// a transaction of its own. sql.ErrNoRows is returned when the profile does not exist.
func (r *UserWriteRepository) ModifyPreferences(ctx context.Context, id uuid.UUID, apply func(models.User) (models.User, error)) (*models.User, error) {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return modifyPreferences(ctx, tx, id, apply)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	updated, err := modifyPreferences(ctx, tx, id, apply)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return updated, nil
}

func modifyPreferences(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, apply func(models.User) (models.User, error)) (*models.User, error) {
	const selectQuery = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		FOR UPDATE
	`

	var current models.User
	err := tx.GetContext(ctx, &current, selectQuery, id)

	logger.Log.Infow("db query",
		"query", oneLine(selectQuery),
		"args", []any{id},
		"result", current,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	next, err := apply(current)
	if err != nil {
		return nil, err
	}

	const updateQuery = `
		UPDATE users
		SET notification_preferences = $2,
		    medication_reminder = $3,
		    dark_mode = $4,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	args := []any{id, next.NotificationPreferences, next.MedicationReminder, next.DarkMode}

	var updated models.User
	err = tx.GetContext(ctx, &updated, updateQuery, args...)

	logger.Log.Infow("db query",
		"query", oneLine(updateQuery),
		"args", args,
		"result", updated,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the profile. Mood entries and insights go with it.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
