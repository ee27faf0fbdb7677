package services

//go:generate mockgen -source=preference.go -destination=preference_mock.go -package=services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/sbilibin2017/mood-recall/internal/state"
)

// PreferenceWriter changes the preference columns of a profile. apply receives the
// stored profile and runs while no other change to that profile can interleave.
type PreferenceWriter interface {
	ModifyPreferences(ctx context.Context, userID uuid.UUID, apply func(models.User) (models.User, error)) (*models.User, error)
}

// PreferenceService reads and changes user settings.
type PreferenceService struct {
	reader ProfileReader
	writer PreferenceWriter
	states StateStore
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(reader ProfileReader, writer PreferenceWriter, states StateStore) *PreferenceService {
	return &PreferenceService{reader: reader, writer: writer, states: states}
}

// Get returns the stored profile and refreshes the cached one.
func (s *PreferenceService) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user profile", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	s.states.Update(userID, func(snap state.Snapshot) state.Snapshot { return snap.WithUser(*user) })
	return user, nil
}

// UpdatePreference merges value at path into the stored profile. The merge is
// applied to the row as stored at write time. The cached profile changes only
// when the store accepted the update.
func (s *PreferenceService) UpdatePreference(ctx context.Context, userID uuid.UUID, path string, value json.RawMessage) (*models.User, error) {
	updated, err := s.writer.ModifyPreferences(ctx, userID, func(current models.User) (models.User, error) {
		return models.ApplyPreference(current, path, value)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrUserNotFound
	case errors.Is(err, models.ErrUnknownPreference), errors.Is(err, models.ErrInvalidPreferenceValue):
		logger.Log.Warnw("invalid preference update", "userID", userID, "path", path, "error", err)
		return nil, err
	case err != nil:
		logger.Log.Errorw("failed to update preferences", "userID", userID, "path", path, "error", err)
		return nil, err
	}

	s.states.Update(userID, func(snap state.Snapshot) state.Snapshot { return snap.WithUser(*updated) })
	return updated, nil
}
