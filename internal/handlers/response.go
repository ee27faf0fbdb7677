package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/sbilibin2017/mood-recall/internal/state"
)

var validate = validator.New()

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// SessionResponse describes the signed-in state of the browser shell
// swagger:model SessionResponse
type SessionResponse struct {
	// One of unauthenticated, authenticating, authenticated
	Status string `json:"status"`

	// Cached user profile, absent when signed out
	User *models.User `json:"user,omitempty"`

	// Display theme flag
	DarkMode bool `json:"dark_mode"`

	// Inline sign-in error
	AuthError string `json:"auth_error,omitempty"`
}

func newSessionResponse(snap state.Snapshot) SessionResponse {
	return SessionResponse{
		Status:    snap.Status().String(),
		User:      snap.User(),
		DarkMode:  snap.DarkMode(),
		AuthError: snap.AuthError(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

type claimsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// requestClaims writes 401 and returns false when the request carries no valid token.
func requestClaims(w http.ResponseWriter, r *http.Request, tokener claimsTokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	return claims, true
}
