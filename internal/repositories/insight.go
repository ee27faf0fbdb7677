package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
)

type InsightReadRepository struct {
	db *sqlx.DB
}

func NewInsightReadRepository(db *sqlx.DB) *InsightReadRepository {
	return &InsightReadRepository{db: db}
}

// ListByUser returns the insights of a user, newest first.
func (r *InsightReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Insight, error) {
	const query = `
		SELECT id, user_id, content, created_at
		FROM ai_insights
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	insights := []models.Insight{}
	err := r.db.SelectContext(ctx, &insights, query, userID)

	logger.Log.Infow("db query",
		"query", oneLine(query),
		"args", []any{userID},
		"result", len(insights),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return insights, nil
}
