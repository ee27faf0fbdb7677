package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/mood-recall/internal/models"
)

func TestInsightReadRepository_ListByUser(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createAccount(t, db, "insights@example.com")
	_, err := NewUserWriteRepository(db, nil).Create(ctx, models.NewDefaultUser(userID, "insights@example.com"))
	require.NoError(t, err)

	now := time.Now().UTC()
	for i, content := range []string{"oldest", "middle", "newest"} {
		_, err := db.Exec(
			`INSERT INTO ai_insights (user_id, content, created_at) VALUES ($1, $2, $3)`,
			userID, content, now.Add(time.Duration(i)*time.Hour),
		)
		require.NoError(t, err)
	}

	repo := NewInsightReadRepository(db)

	insights, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, insights, 3)
	assert.Equal(t, "newest", insights[0].Content)
	assert.Equal(t, "oldest", insights[2].Content)

	none, err := repo.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
