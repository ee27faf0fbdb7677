package handlers

//go:generate mockgen -source=account.go -destination=account_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/logger"
)

// AccountTokener defines only the methods needed by this handler.
type AccountTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AccountDeleter removes an account with all of its data.
type AccountDeleter interface {
	Delete(ctx context.Context, claims *jwt.Claims) error
}

// NewDeleteAccountHandler returns an HTTP handler for deleting the signed-in account.
// @Summary Delete account
// @Description Delete the profile, its entries and insights, and the credentials, then sign out
// @Tags settings
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Account deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /account [delete]
// @Security BearerAuth
func NewDeleteAccountHandler(svc AccountDeleter, tokener AccountTokener, sessions SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r, tokener)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims); err != nil {
			// 5xx makes the tx middleware roll back
			writeError(w, http.StatusInternalServerError, "Failed to delete account")
			return
		}

		if err := sessions.Clear(w, r); err != nil {
			logger.Log.Errorw("failed to clear session cookie", "userID", claims.UserID, "error", err)
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Account deleted"})
	}
}
