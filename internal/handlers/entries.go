package handlers

//go:generate mockgen -source=entries.go -destination=entries_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/sbilibin2017/mood-recall/internal/services"
	"github.com/sbilibin2017/mood-recall/internal/stats"
)

// EntryTokener defines only the methods needed by the entry handlers.
type EntryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// EntrySubmitter stores new mood entries.
type EntrySubmitter interface {
	Submit(ctx context.Context, userID uuid.UUID, moodScore int, notes string, medicationTaken bool) (*models.MoodEntry, error)
}

// HistoryReader returns the entry history with its chart series.
type HistoryReader interface {
	History(ctx context.Context, userID uuid.UUID) ([]models.MoodEntry, []stats.Point, error)
}

// SubmissionStateReader reports the request state of the entry form.
type SubmissionStateReader interface {
	SubmissionState(ctx context.Context, userID uuid.UUID) (models.RequestState, error)
}

// CreateEntryRequest represents the JSON body for a new mood entry
// swagger:model CreateEntryRequest
type CreateEntryRequest struct {
	// Mood score from 0 to 10
	// required: true
	// default: 5
	MoodScore *int `json:"mood_score" validate:"required,min=0,max=10"`

	// Free text notes
	Notes string `json:"notes"`

	// Medication taken today
	// default: false
	MedicationTaken bool `json:"medication_taken"`
}

// CreateEntryResponse represents a stored entry
// swagger:model CreateEntryResponse
type CreateEntryResponse struct {
	// Stored entry
	Entry models.MoodEntry `json:"entry"`

	// Page to navigate to after saving
	// default: /
	Redirect string `json:"redirect"`
}

// HistoryResponse represents the entry history
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Entries in ascending creation order
	Entries []models.MoodEntry `json:"entries"`

	// Chart samples, one per entry
	Series []stats.Point `json:"series"`

	// Set when the history could not be loaded
	Message string `json:"message,omitempty"`
}

// SubmissionStateResponse represents the request state of the entry form
// swagger:model SubmissionStateResponse
type SubmissionStateResponse struct {
	// idle, pending, succeeded or failed
	// default: idle
	State models.RequestState `json:"state"`

	// Whether the form may be submitted now
	// default: true
	CanSubmit bool `json:"can_submit"`
}

// NewCreateEntryHandler returns an HTTP handler for recording a mood entry.
// @Summary Record mood entry
// @Description Store a mood entry for the signed-in user. Only one submission per user may be in flight.
// @Tags entries
// @Accept json
// @Produce json
// @Param request body handlers.CreateEntryRequest true "Mood entry"
// @Success 201 {object} handlers.CreateEntryResponse "Entry stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or missing mood score"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Submission already in progress"
// @Failure 422 {object} handlers.ErrorResponse "Mood score out of range"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries [post]
// @Security BearerAuth
func NewCreateEntryHandler(svc EntrySubmitter, tokener EntryTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r, tokener)
		if !ok {
			return
		}

		var req CreateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Log.Warnw("invalid mood entry", "userID", claims.UserID, "error", err)
			status, msg := entryValidationError(err)
			writeError(w, status, msg)
			return
		}

		entry, err := svc.Submit(r.Context(), claims.UserID, *req.MoodScore, req.Notes, req.MedicationTaken)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidMoodScore):
				writeError(w, http.StatusUnprocessableEntity, "Mood score must be between 0 and 10")
			case errors.Is(err, services.ErrSubmissionPending):
				writeError(w, http.StatusConflict, "Submission already in progress")
			default:
				writeError(w, http.StatusInternalServerError, "Failed to save entry. Please try again.")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateEntryResponse{Entry: *entry, Redirect: "/"})
	}
}

// entryValidationError maps a validation failure of CreateEntryRequest to a
// status and message. Only an out-of-range score is a 422.
func entryValidationError(err error) (int, string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() != "MoodScore" {
				continue
			}
			if fe.Tag() == "required" {
				return http.StatusBadRequest, "Mood score is required"
			}
			return http.StatusUnprocessableEntity, "Mood score must be between 0 and 10"
		}
	}
	return http.StatusBadRequest, "Invalid request body"
}

// NewListEntriesHandler returns an HTTP handler for the entry history.
// @Summary Entry history
// @Description Return all entries of the signed-in user in ascending order with the chart series
// @Tags entries
// @Produce json
// @Success 200 {object} handlers.HistoryResponse "Entry history"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /entries [get]
// @Security BearerAuth
func NewListEntriesHandler(svc HistoryReader, tokener EntryTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r, tokener)
		if !ok {
			return
		}

		entries, series, err := svc.History(r.Context(), claims.UserID)
		if err != nil {
			// the view renders its empty state
			writeJSON(w, http.StatusOK, HistoryResponse{
				Entries: []models.MoodEntry{},
				Series:  []stats.Point{},
				Message: "Could not load mood history",
			})
			return
		}

		writeJSON(w, http.StatusOK, HistoryResponse{Entries: entries, Series: series})
	}
}

// NewSubmissionStateHandler returns an HTTP handler reporting whether the entry
// form may be submitted.
// @Summary Entry form state
// @Description Return the request state of the last mood entry submission. The form stays disabled while a submission is pending.
// @Tags entries
// @Produce json
// @Success 200 {object} handlers.SubmissionStateResponse "Submission state"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /entries/submission [get]
// @Security BearerAuth
func NewSubmissionStateHandler(svc SubmissionStateReader, tokener EntryTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r, tokener)
		if !ok {
			return
		}

		st, err := svc.SubmissionState(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load submission state")
			return
		}

		writeJSON(w, http.StatusOK, SubmissionStateResponse{State: st, CanSubmit: st.CanSubmit()})
	}
}
