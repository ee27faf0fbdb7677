package handlers

//go:generate mockgen -source=settings.go -destination=settings_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/sbilibin2017/mood-recall/internal/services"
)

// SettingsTokener defines only the methods needed by the settings handlers.
type SettingsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SettingsReader loads the profile of a user.
type SettingsReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// SettingsUpdater changes a single preference.
type SettingsUpdater interface {
	UpdatePreference(ctx context.Context, userID uuid.UUID, path string, value json.RawMessage) (*models.User, error)
}

// SettingsResponse represents the user preferences
// swagger:model SettingsResponse
type SettingsResponse struct {
	// Mood reminder settings
	NotificationPreferences models.NotificationPreferences `json:"notification_preferences"`

	// Medication reminder settings
	MedicationReminder models.MedicationReminder `json:"medication_reminder"`

	// Display theme
	DarkMode bool `json:"dark_mode"`

	// free, premium or pro
	SubscriptionTier models.SubscriptionTier `json:"subscription_tier"`
}

// UpdateSettingRequest represents a single preference change
// swagger:model UpdateSettingRequest
type UpdateSettingRequest struct {
	// Preference path, e.g. notification_preferences.enabled
	// required: true
	// default: dark_mode
	Path string `json:"path" validate:"required"`

	// New value for the preference
	// required: true
	Value json.RawMessage `json:"value" validate:"required" swaggertype:"object"`
}

func newSettingsResponse(u *models.User) SettingsResponse {
	return SettingsResponse{
		NotificationPreferences: u.NotificationPreferences,
		MedicationReminder:      u.MedicationReminder,
		DarkMode:                u.DarkMode,
		SubscriptionTier:        u.SubscriptionTier,
	}
}

// NewGetSettingsHandler returns an HTTP handler for reading preferences.
// @Summary Get settings
// @Description Return the notification, medication reminder and theme preferences of the signed-in user
// @Tags settings
// @Produce json
// @Success 200 {object} handlers.SettingsResponse "Preferences"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /settings [get]
// @Security BearerAuth
func NewGetSettingsHandler(svc SettingsReader, tokener SettingsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r, tokener)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, newSettingsResponse(user))
	}
}

// NewUpdateSettingHandler returns an HTTP handler for changing one preference.
// @Summary Update setting
// @Description Merge a single value into the nested preference record without touching its siblings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body handlers.UpdateSettingRequest true "Preference change"
// @Success 200 {object} handlers.SettingsResponse "Updated preferences"
// @Failure 400 {object} handlers.ErrorResponse "Unknown preference or invalid value"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /settings [patch]
// @Security BearerAuth
func NewUpdateSettingHandler(svc SettingsUpdater, tokener SettingsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r, tokener)
		if !ok {
			return
		}

		var req UpdateSettingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Log.Warnw("invalid settings update", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusBadRequest, "Path and value are required")
			return
		}

		user, err := svc.UpdatePreference(r.Context(), claims.UserID, req.Path, req.Value)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUnknownPreference):
				writeError(w, http.StatusBadRequest, "Unknown preference. Supported: "+strings.Join(models.PreferencePaths(), ", "))
			case errors.Is(err, models.ErrInvalidPreferenceValue):
				writeError(w, http.StatusBadRequest, "Invalid preference value")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeError(w, http.StatusInternalServerError, "Failed to update settings")
			}
			return
		}

		writeJSON(w, http.StatusOK, newSettingsResponse(user))
	}
}
