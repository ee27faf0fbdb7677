package handlers

//go:generate mockgen -source=session.go -destination=session_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/state"
)

// SessionTokener defines only the methods needed by this handler.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionRestorer restores a session on page load.
type SessionRestorer interface {
	Restore(ctx context.Context, claims *jwt.Claims) (state.Snapshot, error)
}

// NewSessionHandler returns an HTTP handler restoring the session of the browser shell.
// @Summary Restore session
// @Description Validate the session token and return the cached state, fetching or creating the profile on first use
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SessionResponse "Session state"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /session [get]
// @Security BearerAuth
func NewSessionHandler(svc SessionRestorer, tokener SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r, tokener)
		if !ok {
			return
		}

		snap, err := svc.Restore(r.Context(), claims)
		if err != nil {
			logger.Log.Errorw("failed to restore session", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, newSessionResponse(snap))
	}
}
