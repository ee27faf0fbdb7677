package handlers

//go:generate mockgen -source=sign_out.go -destination=sign_out_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/logger"
)

// SignOutTokener defines only the methods needed by this handler.
type SignOutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SignOuter ends a session.
type SignOuter interface {
	SignOut(ctx context.Context, claims *jwt.Claims) error
}

// SessionClearer expires the browser session cookie.
type SessionClearer interface {
	Clear(w http.ResponseWriter, r *http.Request) error
}

// MessageResponse represents a plain success message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// NewSignOutHandler returns an HTTP handler for signing out.
// @Summary Sign out
// @Description Revoke the session token and clear the session cookie and cached state
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Signed out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/sign-out [post]
// @Security BearerAuth
func NewSignOutHandler(svc SignOuter, tokener SignOutTokener, sessions SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r, tokener)
		if !ok {
			return
		}

		if err := svc.SignOut(r.Context(), claims); err != nil {
			logger.Log.Errorw("failed to sign out", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := sessions.Clear(w, r); err != nil {
			logger.Log.Errorw("failed to clear session cookie", "userID", claims.UserID, "error", err)
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Signed out"})
	}
}
