package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
)

type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByEmail returns the account registered with email, or nil if there is none.
func (r *AccountReadRepository) GetByEmail(ctx context.Context, email string) (*models.AccountDB, error) {
	const query = `
		SELECT id, email, password_hash, created_at
		FROM accounts
		WHERE email = $1
		LIMIT 1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, email)

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", []any{email},
		"result", account.AccountID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

const uniqueViolation = "23505"

// Save inserts a new account and returns its id. models.ErrEmailTaken is
// returned when the email is already registered.
func (r *AccountWriteRepository) Save(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO accounts (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, uuid.New(), email, passwordHash)

	// password hash is never logged
	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", []any{email},
		"result", id,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return uuid.Nil, models.ErrEmailTaken
	}
	return id, err
}

// Delete removes the account row.
func (r *AccountWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM accounts WHERE id = $1`

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
