package handlers

//go:generate mockgen -source=sign_up.go -destination=sign_up_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/services"
	"github.com/sbilibin2017/mood-recall/internal/state"
)

// SignUpper defines the interface that the auth service must implement.
type SignUpper interface {
	SignUp(ctx context.Context, email, password string) (string, state.Snapshot, error)
}

// NewSignUpHandler returns an HTTP handler for creating an account.
// @Summary Sign up
// @Description Create an account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.CredentialsRequest true "Credentials"
// @Success 201 {object} handlers.AuthResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/sign-up [post]
func NewSignUpHandler(svc SignUpper, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Log.Warnw("invalid sign-up request", "error", err)
			writeError(w, http.StatusBadRequest, "A valid email and a password of at least 6 characters are required")
			return
		}

		token, snap, err := svc.SignUp(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrAccountAlreadyExists) {
				writeError(w, http.StatusConflict, "Email already registered")
				return
			}
			logger.Log.Errorw("failed to sign up", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := sessions.Save(w, r, token); err != nil {
			logger.Log.Errorw("failed to save session cookie", "error", err)
		}

		writeJSON(w, http.StatusCreated, AuthResponse{Token: token, Session: newSessionResponse(snap)})
	}
}
