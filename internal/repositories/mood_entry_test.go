package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/mood-recall/internal/models"
)

func TestMoodEntryRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createAccount(t, db, "entries@example.com")
	_, err := NewUserWriteRepository(db, nil).Create(ctx, models.NewDefaultUser(userID, "entries@example.com"))
	require.NoError(t, err)

	writer := NewMoodEntryWriteRepository(db, nil)
	reader := NewMoodEntryReadRepository(db)

	t.Run("empty history", func(t *testing.T) {
		entries, err := reader.ListByUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("save assigns id and timestamp", func(t *testing.T) {
		saved, err := writer.Save(ctx, models.MoodEntry{
			UserID:          userID,
			MoodScore:       7,
			Notes:           "good day",
			MedicationTaken: true,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())
		assert.Equal(t, 7, saved.MoodScore)
		assert.Equal(t, "good day", saved.Notes)
		assert.True(t, saved.MedicationTaken)
	})

	t.Run("score outside range is rejected by the store", func(t *testing.T) {
		_, err := writer.Save(ctx, models.MoodEntry{UserID: userID, MoodScore: 11})
		assert.Error(t, err)
	})

	t.Run("unknown user is rejected by the store", func(t *testing.T) {
		_, err := writer.Save(ctx, models.MoodEntry{UserID: uuid.New(), MoodScore: 5})
		assert.Error(t, err)
	})

	t.Run("list is ordered by creation", func(t *testing.T) {
		for _, score := range []int{1, 2, 3} {
			_, err := writer.Save(ctx, models.MoodEntry{UserID: userID, MoodScore: score})
			require.NoError(t, err)
		}

		entries, err := reader.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, entries, 4)
		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i].CreatedAt.Before(entries[i-1].CreatedAt))
		}
		assert.Equal(t, 3, entries[3].MoodScore)
	})
}

func TestMoodEntryWriteRepository_Concurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createAccount(t, db, "busy@example.com")
	_, err := NewUserWriteRepository(db, nil).Create(ctx, models.NewDefaultUser(userID, "busy@example.com"))
	require.NoError(t, err)

	writer := NewMoodEntryWriteRepository(db, nil)

	const numGoroutines = 50
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(score int) {
			defer wg.Done()
			_, _ = writer.Save(ctx, models.MoodEntry{UserID: userID, MoodScore: score % 11})
		}(i)
	}
	wg.Wait()

	entries, err := NewMoodEntryReadRepository(db).ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, entries, numGoroutines)
}
