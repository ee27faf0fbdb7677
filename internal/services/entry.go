package services

//go:generate mockgen -source=entry.go -destination=entry_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/sbilibin2017/mood-recall/internal/state"
)

var (
	ErrInvalidMoodScore  = errors.New("mood score must be between 0 and 10")
	ErrSubmissionPending = errors.New("a mood entry is already being submitted")
)

// EntryWriter stores mood entries.
type EntryWriter interface {
	Save(ctx context.Context, entry models.MoodEntry) (*models.MoodEntry, error)
}

// EntryReader lists mood entries.
type EntryReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MoodEntry, error)
}

// SubmissionGuard tracks the request state of the entry form.
type SubmissionGuard interface {
	Begin(ctx context.Context, userID uuid.UUID) (bool, error)
	Finish(ctx context.Context, userID uuid.UUID, outcome models.RequestState) error
	State(ctx context.Context, userID uuid.UUID) (models.RequestState, error)
}

// EntryPublisher announces stored entries.
type EntryPublisher interface {
	PublishEntryCreated(ctx context.Context, entry models.MoodEntry)
}

// EntryService submits and lists mood entries.
type EntryService struct {
	writer    EntryWriter
	reader    EntryReader
	guard     SubmissionGuard
	publisher EntryPublisher
	states    StateStore
}

// NewEntryService creates a new EntryService.
func NewEntryService(
	writer EntryWriter,
	reader EntryReader,
	guard SubmissionGuard,
	publisher EntryPublisher,
	states StateStore,
) *EntryService {
	return &EntryService{
		writer:    writer,
		reader:    reader,
		guard:     guard,
		publisher: publisher,
		states:    states,
	}
}

// Submit stores a new entry. On success the entry is appended to the cached
// snapshot; on failure the snapshot is left as it was.
func (s *EntryService) Submit(ctx context.Context, userID uuid.UUID, moodScore int, notes string, medicationTaken bool) (*models.MoodEntry, error) {
	if !models.ValidMoodScore(moodScore) {
		logger.Log.Warnw("invalid mood score", "userID", userID, "mood_score", moodScore)
		return nil, ErrInvalidMoodScore
	}

	ok, err := s.guard.Begin(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to begin submission", "userID", userID, "error", err)
		return nil, err
	}
	if !ok {
		logger.Log.Warnw("submission already pending", "userID", userID)
		return nil, ErrSubmissionPending
	}

	saved, err := s.writer.Save(ctx, models.MoodEntry{
		UserID:          userID,
		MoodScore:       moodScore,
		Notes:           notes,
		MedicationTaken: medicationTaken,
	})
	if err != nil {
		logger.Log.Errorw("failed to save mood entry", "userID", userID, "mood_score", moodScore, "error", err)
		s.finish(ctx, userID, models.RequestFailed)
		return nil, err
	}
	s.finish(ctx, userID, models.RequestSucceeded)

	s.states.Update(userID, func(snap state.Snapshot) state.Snapshot { return snap.WithEntry(*saved) })
	s.publisher.PublishEntryCreated(ctx, *saved)

	return saved, nil
}

func (s *EntryService) finish(ctx context.Context, userID uuid.UUID, outcome models.RequestState) {
	if err := s.guard.Finish(ctx, userID, outcome); err != nil {
		logger.Log.Errorw("failed to finish submission", "userID", userID, "state", outcome, "error", err)
	}
}

// SubmissionState returns the request state of the user's entry form.
func (s *EntryService) SubmissionState(ctx context.Context, userID uuid.UUID) (models.RequestState, error) {
	st, err := s.guard.State(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get submission state", "userID", userID, "error", err)
		return "", err
	}
	return st, nil
}

// List fetches the entries of the user from the store and caches them.
func (s *EntryService) List(ctx context.Context, userID uuid.UUID) ([]models.MoodEntry, error) {
	entries, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list mood entries", "userID", userID, "error", err)
		return nil, err
	}

	snap := s.states.Update(userID, func(snap state.Snapshot) state.Snapshot { return snap.WithEntries(entries) })
	return snap.Entries(), nil
}

// Entries returns the cached entries, loading them first when they were never fetched.
func (s *EntryService) Entries(ctx context.Context, userID uuid.UUID) ([]models.MoodEntry, error) {
	if snap := s.states.Get(userID); snap.EntriesLoaded() {
		return snap.Entries(), nil
	}
	return s.List(ctx, userID)
}
