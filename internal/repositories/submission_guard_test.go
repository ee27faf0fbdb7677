package repositories

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/mood-recall/internal/models"
)

func TestSubmissionGuardRepository(t *testing.T) {
	rdb, cleanup := setupRedis(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewSubmissionGuardRepository(rdb, 2*time.Second)

	t.Run("idle by default", func(t *testing.T) {
		state, err := repo.State(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, models.RequestIdle, state)
	})

	t.Run("second begin while pending is refused", func(t *testing.T) {
		userID := uuid.New()

		ok, err := repo.Begin(ctx, userID)
		require.NoError(t, err)
		assert.True(t, ok)

		state, err := repo.State(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, models.RequestPending, state)

		ok, err = repo.Begin(ctx, userID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("begin allowed after finish", func(t *testing.T) {
		for _, outcome := range []models.RequestState{models.RequestSucceeded, models.RequestFailed} {
			userID := uuid.New()

			ok, err := repo.Begin(ctx, userID)
			require.NoError(t, err)
			require.True(t, ok)

			require.NoError(t, repo.Finish(ctx, userID, outcome))

			state, err := repo.State(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, outcome, state)

			ok, err = repo.Begin(ctx, userID)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})

	t.Run("abandoned pending state expires", func(t *testing.T) {
		userID := uuid.New()

		ok, err := repo.Begin(ctx, userID)
		require.NoError(t, err)
		require.True(t, ok)

		time.Sleep(3 * time.Second)

		ok, err = repo.Begin(ctx, userID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("only one concurrent begin wins", func(t *testing.T) {
		userID := uuid.New()

		const numGoroutines = 20
		var wins int32
		var wg sync.WaitGroup
		wg.Add(numGoroutines)
		for i := 0; i < numGoroutines; i++ {
			go func() {
				defer wg.Done()
				if ok, err := repo.Begin(ctx, userID); err == nil && ok {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins)
	})
}
