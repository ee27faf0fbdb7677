package services

//go:generate mockgen -source=state.go -destination=state_mock.go -package=services

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/state"
)

// StateStore holds the per-user snapshot every service writes after a remote call.
type StateStore interface {
	Get(userID uuid.UUID) state.Snapshot
	Update(userID uuid.UUID, fn func(state.Snapshot) state.Snapshot) state.Snapshot
}
