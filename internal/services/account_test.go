package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/mood-recall/internal/jwt"
)

func runNow(ctx context.Context, fn func(ctx context.Context)) { fn(ctx) }

func TestAccountService_Delete(t *testing.T) {
	ctx := context.Background()
	claims := &jwt.Claims{UserID: uuid.New()}

	tests := []struct {
		name    string
		setup   func(profiles, accounts *MockDeleter, sessions *MockSessionTerminator)
		wantErr string
	}{
		{
			name: "profile, account, session in order",
			setup: func(profiles, accounts *MockDeleter, sessions *MockSessionTerminator) {
				gomock.InOrder(
					profiles.EXPECT().Delete(ctx, claims.UserID).Return(nil),
					accounts.EXPECT().Delete(ctx, claims.UserID).Return(nil),
					sessions.EXPECT().SignOut(ctx, claims).Return(nil),
				)
			},
		},
		{
			name: "profile delete fails",
			setup: func(profiles, accounts *MockDeleter, sessions *MockSessionTerminator) {
				profiles.EXPECT().Delete(ctx, claims.UserID).Return(errors.New("fk violation"))
			},
			wantErr: "fk violation",
		},
		{
			name: "account delete fails",
			setup: func(profiles, accounts *MockDeleter, sessions *MockSessionTerminator) {
				profiles.EXPECT().Delete(ctx, claims.UserID).Return(nil)
				accounts.EXPECT().Delete(ctx, claims.UserID).Return(errors.New("db error"))
			},
			wantErr: "db error",
		},
		{
			name: "sign out failure after commit is only logged",
			setup: func(profiles, accounts *MockDeleter, sessions *MockSessionTerminator) {
				profiles.EXPECT().Delete(ctx, claims.UserID).Return(nil)
				accounts.EXPECT().Delete(ctx, claims.UserID).Return(nil)
				sessions.EXPECT().SignOut(ctx, claims).Return(errors.New("redis down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			profiles := NewMockDeleter(ctrl)
			accounts := NewMockDeleter(ctrl)
			sessions := NewMockSessionTerminator(ctrl)
			tt.setup(profiles, accounts, sessions)

			err := NewAccountService(profiles, accounts, sessions, runNow).Delete(ctx, claims)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountService_DeleteSignsOutAfterCommit(t *testing.T) {
	ctx := context.Background()
	claims := &jwt.Claims{UserID: uuid.New()}

	ctrl := gomock.NewController(t)
	profiles := NewMockDeleter(ctrl)
	accounts := NewMockDeleter(ctrl)
	sessions := NewMockSessionTerminator(ctrl)

	var pending []func(ctx context.Context)
	deferred := func(_ context.Context, fn func(ctx context.Context)) { pending = append(pending, fn) }

	profiles.EXPECT().Delete(ctx, claims.UserID).Return(nil)
	accounts.EXPECT().Delete(ctx, claims.UserID).Return(nil)

	require.NoError(t, NewAccountService(profiles, accounts, sessions, deferred).Delete(ctx, claims))
	require.Len(t, pending, 1)

	// the token is revoked only when the commit runs the hook
	sessions.EXPECT().SignOut(ctx, claims).Return(nil)
	pending[0](ctx)
}
