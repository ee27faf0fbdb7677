package state

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTTL is how long an untouched snapshot is kept when no TTL is configured.
const DefaultIdleTTL = time.Hour

type entry struct {
	snapshot Snapshot
	lastSeen time.Time
}

// Container is the process-wide holder of every user's current Snapshot.
// It is created once in main and passed to the services that need it.
//
// A snapshot nobody read or wrote for the idle TTL is evicted. The next access
// starts from Empty, so an evicted session is restored from the store.
type Container struct {
	mu        sync.Mutex
	snapshots map[uuid.UUID]entry
	ttl       time.Duration
	now       func() time.Time
}

// Option configures a Container.
type Option func(*Container)

// WithIdleTTL sets how long an untouched snapshot is kept.
func WithIdleTTL(ttl time.Duration) Option {
	return func(c *Container) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Container) { c.now = now }
}

// NewContainer creates an empty container.
func NewContainer(opts ...Option) *Container {
	c := &Container{
		snapshots: make(map[uuid.UUID]entry),
		ttl:       DefaultIdleTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the snapshot for userID, or Empty when none is stored.
func (c *Container) Get(userID uuid.UUID) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e, ok := c.snapshots[userID]
	if !ok {
		return Empty()
	}
	if c.expired(e, now) {
		delete(c.snapshots, userID)
		return Empty()
	}
	e.lastSeen = now
	c.snapshots[userID] = e
	return e.snapshot
}

// Update replaces the snapshot for userID with fn applied to the current one and
// returns the result. fn runs under the lock and must not call the container.
// A result equal to a fresh session is not stored.
func (c *Container) Update(userID uuid.UUID, fn func(Snapshot) Snapshot) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	current := Empty()
	if e, ok := c.snapshots[userID]; ok && !c.expired(e, now) {
		current = e.snapshot
	}

	next := fn(current)
	if next.fresh() {
		delete(c.snapshots, userID)
		return next
	}
	c.snapshots[userID] = entry{snapshot: next, lastSeen: now}
	return next
}

// Sweep evicts every snapshot idle for longer than the TTL and returns how many
// were removed.
func (c *Container) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for id, e := range c.snapshots {
		if c.expired(e, now) {
			delete(c.snapshots, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored snapshots.
func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.snapshots)
}

// Run sweeps the container every interval until ctx is done.
func (c *Container) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := c.Sweep()
			if onSweep != nil {
				onSweep(removed)
			}
		}
	}
}

func (c *Container) expired(e entry, now time.Time) bool {
	return now.Sub(e.lastSeen) > c.ttl
}
