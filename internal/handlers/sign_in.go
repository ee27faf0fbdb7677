package handlers

//go:generate mockgen -source=sign_in.go -destination=sign_in_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/services"
	"github.com/sbilibin2017/mood-recall/internal/state"
)

// SignIner defines the interface that the auth service must implement.
type SignIner interface {
	SignIn(ctx context.Context, email, password string) (string, state.Snapshot, error)
}

// SessionSaver stores the token in the browser session cookie.
type SessionSaver interface {
	Save(w http.ResponseWriter, r *http.Request, token string) error
}

// CredentialsRequest represents the JSON body for sign-in and sign-up
// swagger:model CredentialsRequest
type CredentialsRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// AuthResponse represents a successful sign-in or sign-up
// swagger:model AuthResponse
type AuthResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Session state after sign-in
	Session SessionResponse `json:"session"`
}

// NewSignInHandler returns an HTTP handler for signing in.
// @Summary Sign in
// @Description Authenticate with email and password. The profile is created on first sign-in. The token is returned and stored in the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.CredentialsRequest true "Credentials"
// @Success 200 {object} handlers.AuthResponse "Signed in"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/sign-in [post]
func NewSignInHandler(svc SignIner, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Log.Warnw("invalid sign-in request", "error", err)
			writeError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		token, snap, err := svc.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			logger.Log.Errorw("failed to sign in", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := sessions.Save(w, r, token); err != nil {
			logger.Log.Errorw("failed to save session cookie", "error", err)
		}

		writeJSON(w, http.StatusOK, AuthResponse{Token: token, Session: newSessionResponse(snap)})
	}
}
