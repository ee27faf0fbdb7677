package services

//go:generate mockgen -source=stats.go -destination=stats_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/sbilibin2017/mood-recall/internal/stats"
)

// EntrySource provides the entries statistics are computed from.
type EntrySource interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.MoodEntry, error)
	Entries(ctx context.Context, userID uuid.UUID) ([]models.MoodEntry, error)
}

// StatsService computes the history chart and the profile summary.
type StatsService struct {
	entries EntrySource
	loc     *time.Location
	now     func() time.Time
}

// NewStatsService creates a StatsService. Calendar days are taken in loc.
func NewStatsService(entries EntrySource, loc *time.Location, now func() time.Time) *StatsService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &StatsService{entries: entries, loc: loc, now: now}
}

// History reloads the entries and returns them with the chart series.
func (s *StatsService) History(ctx context.Context, userID uuid.UUID) ([]models.MoodEntry, []stats.Point, error) {
	entries, err := s.entries.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load history", "userID", userID, "error", err)
		return nil, nil, err
	}
	return entries, stats.Series(entries, s.loc), nil
}

// Summary computes the profile statistics from the cached entries.
func (s *StatsService) Summary(ctx context.Context, userID uuid.UUID) (stats.Summary, error) {
	entries, err := s.entries.Entries(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load entries for stats", "userID", userID, "error", err)
		return stats.Summary{}, err
	}
	return stats.Compute(entries, s.now().In(s.loc)), nil
}
