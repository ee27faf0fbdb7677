package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() models.User {
	u := models.NewDefaultUser(uuid.New(), "alice@example.com")
	u.NotificationPreferences.Times = []string{"09:00"}
	return u
}

func TestSnapshot_AuthFlow(t *testing.T) {
	s := Empty()
	assert.Equal(t, Unauthenticated, s.Status())
	assert.Nil(t, s.User())

	pending := s.Authenticating()
	assert.Equal(t, Authenticating, pending.Status())
	assert.Equal(t, Unauthenticated, s.Status(), "receiver must not change")

	failed := pending.AuthFailed(errors.New("invalid email or password"))
	assert.Equal(t, Unauthenticated, failed.Status())
	assert.Equal(t, "invalid email or password", failed.AuthError())

	user := testUser()
	signedIn := failed.Authenticating().SignedIn(user)
	assert.Equal(t, Authenticated, signedIn.Status())
	assert.Empty(t, signedIn.AuthError())
	require.NotNil(t, signedIn.User())
	assert.Equal(t, user.ID, signedIn.User().ID)
}

func TestSnapshot_SignedOutClearsEverything(t *testing.T) {
	user := testUser()
	user.DarkMode = true
	s := Empty().SignedIn(user).WithEntries([]models.MoodEntry{{ID: uuid.New(), MoodScore: 4}})

	out := s.SignedOut()
	assert.Equal(t, Unauthenticated, out.Status())
	assert.Nil(t, out.User())
	assert.Empty(t, out.Entries())
	assert.False(t, out.EntriesLoaded())
	assert.False(t, out.DarkMode())

	assert.Len(t, s.Entries(), 1, "previous snapshot still readable")
}

func TestSnapshot_EntriesAreCopiedAndOrdered(t *testing.T) {
	now := time.Now()
	first := models.MoodEntry{ID: uuid.New(), MoodScore: 3, CreatedAt: now.Add(-2 * time.Hour)}
	second := models.MoodEntry{ID: uuid.New(), MoodScore: 6, CreatedAt: now.Add(-time.Hour)}
	third := models.MoodEntry{ID: uuid.New(), MoodScore: 9, CreatedAt: now}

	input := []models.MoodEntry{second, first}
	s := Empty().WithEntries(input)
	assert.True(t, s.EntriesLoaded())

	input[0].MoodScore = 0
	got := s.Entries()
	assert.Equal(t, []int{3, 6}, []int{got[0].MoodScore, got[1].MoodScore})

	got[0].MoodScore = 10
	assert.Equal(t, 3, s.Entries()[0].MoodScore)

	withThird := s.WithEntry(third)
	assert.Len(t, withThird.Entries(), 3)
	assert.Len(t, s.Entries(), 2)
	assert.Equal(t, third.ID, withThird.Entries()[2].ID)
}

func TestSnapshot_UserIsCopied(t *testing.T) {
	user := testUser()
	s := Empty().SignedIn(user)

	user.NotificationPreferences.Times[0] = "23:00"
	assert.Equal(t, "09:00", s.User().NotificationPreferences.Times[0])

	u := s.User()
	u.Email = "changed@example.com"
	assert.Equal(t, "alice@example.com", s.User().Email)
}

func TestSnapshot_DarkModeFollowsUser(t *testing.T) {
	user := testUser()
	user.DarkMode = true
	s := Empty().SignedIn(user)
	assert.True(t, s.DarkMode())

	user.DarkMode = false
	s = s.WithUser(user)
	assert.False(t, s.DarkMode())
}

func TestAuthStatus_String(t *testing.T) {
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
	assert.Equal(t, "authenticating", Authenticating.String())
	assert.Equal(t, "authenticated", Authenticated.String())
}

func TestContainer(t *testing.T) {
	c := NewContainer()
	id := uuid.New()

	assert.Equal(t, Unauthenticated, c.Get(id).Status())

	user := testUser()
	got := c.Update(id, func(s Snapshot) Snapshot { return s.SignedIn(user) })
	assert.Equal(t, Authenticated, got.Status())
	assert.Equal(t, Authenticated, c.Get(id).Status())

	assert.Equal(t, Unauthenticated, c.Get(uuid.New()).Status(), "users are isolated")

	c.Update(id, Snapshot.SignedOut)
	assert.Equal(t, Unauthenticated, c.Get(id).Status())
	assert.Nil(t, c.Get(id).User())
	assert.Zero(t, c.Len(), "signed-out session is not kept")
}

func TestContainer_IdleSnapshotsAreEvicted(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	c := NewContainer(WithIdleTTL(time.Hour), WithClock(func() time.Time { return now }))

	idle, active := uuid.New(), uuid.New()
	c.Update(idle, func(s Snapshot) Snapshot {
		return s.SignedIn(testUser()).WithEntries([]models.MoodEntry{{ID: uuid.New(), MoodScore: 5}})
	})
	c.Update(active, func(s Snapshot) Snapshot { return s.SignedIn(testUser()) })
	assert.Equal(t, 2, c.Len())

	now = now.Add(40 * time.Minute)
	assert.Equal(t, Authenticated, c.Get(active).Status(), "a read keeps the snapshot alive")

	now = now.Add(30 * time.Minute)
	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, Authenticated, c.Get(active).Status())

	assert.Equal(t, Empty(), c.Get(idle))
	assert.Empty(t, c.Get(idle).Entries())
}

func TestContainer_ExpiredSnapshotIsNotReused(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	c := NewContainer(WithIdleTTL(time.Minute), WithClock(func() time.Time { return now }))
	id := uuid.New()

	c.Update(id, func(s Snapshot) Snapshot { return s.SignedIn(testUser()) })
	now = now.Add(2 * time.Minute)

	got := c.Update(id, func(s Snapshot) Snapshot {
		assert.Equal(t, Unauthenticated, s.Status())
		return s.Authenticating()
	})
	assert.Equal(t, Authenticating, got.Status())
}

func TestContainer_Run(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	c := NewContainer(WithIdleTTL(time.Minute), WithClock(clock))
	c.Update(uuid.New(), func(s Snapshot) Snapshot { return s.SignedIn(testUser()) })

	mu.Lock()
	now = now.Add(time.Hour)
	mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan int, 1)
	go c.Run(ctx, 5*time.Millisecond, func(removed int) {
		if removed > 0 {
			select {
			case swept <- removed:
			default:
			}
		}
	})
	defer cancel()

	select {
	case removed := <-swept:
		assert.Equal(t, 1, removed)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not run")
	}
	assert.Zero(t, c.Len())
}

func TestContainer_ConcurrentUpdates(t *testing.T) {
	c := NewContainer()
	id := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			c.Update(id, func(s Snapshot) Snapshot {
				return s.WithEntry(models.MoodEntry{ID: uuid.New(), MoodScore: score % 11, CreatedAt: time.Now()})
			})
			_ = c.Get(id).Entries()
		}(i)
	}
	wg.Wait()

	assert.Len(t, c.Get(id).Entries(), 50)
}
