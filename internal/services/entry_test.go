package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/sbilibin2017/mood-recall/internal/state"
)

func TestEntryService_Submit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		score     int
		setup     func(w *MockEntryWriter, g *MockSubmissionGuard, p *MockEntryPublisher)
		wantErr   error
		wantCache int
	}{
		{
			name:    "score below range",
			score:   -1,
			setup:   func(w *MockEntryWriter, g *MockSubmissionGuard, p *MockEntryPublisher) {},
			wantErr: ErrInvalidMoodScore,
		},
		{
			name:    "score above range",
			score:   11,
			setup:   func(w *MockEntryWriter, g *MockSubmissionGuard, p *MockEntryPublisher) {},
			wantErr: ErrInvalidMoodScore,
		},
		{
			name:  "submission pending",
			score: 5,
			setup: func(w *MockEntryWriter, g *MockSubmissionGuard, p *MockEntryPublisher) {
				g.EXPECT().Begin(ctx, userID).Return(false, nil)
			},
			wantErr: ErrSubmissionPending,
		},
		{
			name:  "guard error",
			score: 5,
			setup: func(w *MockEntryWriter, g *MockSubmissionGuard, p *MockEntryPublisher) {
				g.EXPECT().Begin(ctx, userID).Return(false, errors.New("redis down"))
			},
			wantErr: errors.New("redis down"),
		},
		{
			name:  "write failure",
			score: 5,
			setup: func(w *MockEntryWriter, g *MockSubmissionGuard, p *MockEntryPublisher) {
				g.EXPECT().Begin(ctx, userID).Return(true, nil)
				w.EXPECT().Save(ctx, gomock.Any()).Return(nil, errors.New("insert failed"))
				g.EXPECT().Finish(ctx, userID, models.RequestFailed).Return(nil)
			},
			wantErr: errors.New("insert failed"),
		},
		{
			name:  "boundary score zero",
			score: 0,
			setup: func(w *MockEntryWriter, g *MockSubmissionGuard, p *MockEntryPublisher) {
				g.EXPECT().Begin(ctx, userID).Return(true, nil)
				w.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.MoodEntry) (*models.MoodEntry, error) {
					e.ID = uuid.New()
					e.CreatedAt = createdAt
					return &e, nil
				})
				g.EXPECT().Finish(ctx, userID, models.RequestSucceeded).Return(nil)
				p.EXPECT().PublishEntryCreated(ctx, gomock.Any())
			},
			wantCache: 1,
		},
		{
			name:  "finish error does not fail the submission",
			score: 10,
			setup: func(w *MockEntryWriter, g *MockSubmissionGuard, p *MockEntryPublisher) {
				g.EXPECT().Begin(ctx, userID).Return(true, nil)
				w.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.MoodEntry) (*models.MoodEntry, error) {
					e.ID = uuid.New()
					e.CreatedAt = createdAt
					return &e, nil
				})
				g.EXPECT().Finish(ctx, userID, models.RequestSucceeded).Return(errors.New("redis down"))
				p.EXPECT().PublishEntryCreated(ctx, gomock.Any())
			},
			wantCache: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			writer := NewMockEntryWriter(ctrl)
			guard := NewMockSubmissionGuard(ctrl)
			publisher := NewMockEntryPublisher(ctrl)
			states := state.NewContainer()
			tt.setup(writer, guard, publisher)

			svc := NewEntryService(writer, nil, guard, publisher, states)
			saved, err := svc.Submit(ctx, userID, tt.score, "notes", true)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, saved)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.score, saved.MoodScore)
				assert.Equal(t, userID, saved.UserID)
				assert.Equal(t, "notes", saved.Notes)
				assert.True(t, saved.MedicationTaken)
			}
			assert.Len(t, states.Get(userID).Entries(), tt.wantCache)
		})
	}
}

func TestEntryService_SubmitFailureLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	writer := NewMockEntryWriter(ctrl)
	guard := NewMockSubmissionGuard(ctrl)
	publisher := NewMockEntryPublisher(ctrl)
	states := NewMockStateStore(ctrl)

	guard.EXPECT().Begin(ctx, userID).Return(true, nil)
	writer.EXPECT().Save(ctx, gomock.Any()).Return(nil, errors.New("insert failed"))
	guard.EXPECT().Finish(ctx, userID, models.RequestFailed).Return(nil)
	states.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	publisher.EXPECT().PublishEntryCreated(gomock.Any(), gomock.Any()).Times(0)

	svc := NewEntryService(writer, nil, guard, publisher, states)
	_, err := svc.Submit(ctx, userID, 3, "", false)
	assert.Error(t, err)
}

func TestEntryService_ListAndEntries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	stored := []models.MoodEntry{
		{ID: uuid.New(), UserID: userID, MoodScore: 2, CreatedAt: base.Add(48 * time.Hour)},
		{ID: uuid.New(), UserID: userID, MoodScore: 8, CreatedAt: base},
	}

	t.Run("list caches sorted entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockEntryReader(ctrl)
		states := state.NewContainer()
		reader.EXPECT().ListByUser(ctx, userID).Return(stored, nil).Times(1)

		svc := NewEntryService(nil, reader, nil, nil, states)

		entries, err := svc.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 8, entries[0].MoodScore)
		assert.True(t, states.Get(userID).EntriesLoaded())

		cached, err := svc.Entries(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, entries, cached)
	})

	t.Run("list error leaves cache unloaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockEntryReader(ctrl)
		states := state.NewContainer()
		reader.EXPECT().ListByUser(ctx, userID).Return(nil, errors.New("timeout"))

		svc := NewEntryService(nil, reader, nil, nil, states)

		entries, err := svc.Entries(ctx, userID)
		assert.EqualError(t, err, "timeout")
		assert.Nil(t, entries)
		assert.False(t, states.Get(userID).EntriesLoaded())
	})
}

func TestEntryService_SubmissionState(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("state from guard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard := NewMockSubmissionGuard(ctrl)
		guard.EXPECT().State(ctx, userID).Return(models.RequestPending, nil)

		svc := NewEntryService(nil, nil, guard, nil, state.NewContainer())
		got, err := svc.SubmissionState(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, models.RequestPending, got)
		assert.False(t, got.CanSubmit())
	})

	t.Run("guard error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guard := NewMockSubmissionGuard(ctrl)
		guard.EXPECT().State(ctx, userID).Return(models.RequestState(""), errors.New("redis down"))

		svc := NewEntryService(nil, nil, guard, nil, state.NewContainer())
		_, err := svc.SubmissionState(ctx, userID)
		assert.EqualError(t, err, "redis down")
	})
}
