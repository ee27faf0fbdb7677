package services

//go:generate mockgen -source=insight.go -destination=insight_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
)

// InsightReader lists insights.
type InsightReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Insight, error)
}

// InsightService reads the insights generated for a user.
type InsightService struct {
	reader InsightReader
}

func NewInsightService(reader InsightReader) *InsightService {
	return &InsightService{reader: reader}
}

// List returns the insights newest first.
func (s *InsightService) List(ctx context.Context, userID uuid.UUID) ([]models.Insight, error) {
	insights, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list insights", "userID", userID, "error", err)
		return nil, err
	}
	return insights, nil
}
