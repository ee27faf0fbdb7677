package services

//go:generate mockgen -source=account.go -destination=account_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/logger"
)

// Deleter removes a row by id.
type Deleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionTerminator ends the session of a signed-in user.
type SessionTerminator interface {
	SignOut(ctx context.Context, claims *jwt.Claims) error
}

// CommitHook defers fn until the transaction bound to ctx has been committed.
type CommitHook func(ctx context.Context, fn func(ctx context.Context))

// AccountService deletes accounts.
type AccountService struct {
	profiles    Deleter
	accounts    Deleter
	sessions    SessionTerminator
	afterCommit CommitHook
}

// NewAccountService creates a new AccountService.
func NewAccountService(profiles, accounts Deleter, sessions SessionTerminator, afterCommit CommitHook) *AccountService {
	return &AccountService{profiles: profiles, accounts: accounts, sessions: sessions, afterCommit: afterCommit}
}

// Delete removes the profile, then the credentials. Both deletes run in the
// request transaction when one is bound to ctx, and the session is terminated
// only once that transaction has been committed.
func (s *AccountService) Delete(ctx context.Context, claims *jwt.Claims) error {
	if err := s.profiles.Delete(ctx, claims.UserID); err != nil {
		logger.Log.Errorw("failed to delete user profile", "userID", claims.UserID, "error", err)
		return err
	}

	if err := s.accounts.Delete(ctx, claims.UserID); err != nil {
		logger.Log.Errorw("failed to delete account", "userID", claims.UserID, "error", err)
		return err
	}

	s.afterCommit(ctx, func(ctx context.Context) {
		if err := s.sessions.SignOut(ctx, claims); err != nil {
			logger.Log.Errorw("failed to terminate session after account deletion", "userID", claims.UserID, "error", err)
			return
		}
		logger.Log.Infow("account deleted", "userID", claims.UserID)
	})
	return nil
}
