package handlers

//go:generate mockgen -source=insights.go -destination=insights_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/models"
)

// InsightTokener defines only the methods needed by this handler.
type InsightTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// InsightLister reads stored insights.
type InsightLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Insight, error)
}

// InsightsResponse represents the stored insights
// swagger:model InsightsResponse
type InsightsResponse struct {
	// Insights, newest first
	Insights []models.Insight `json:"insights"`

	// Set when the insights could not be loaded
	Message string `json:"message,omitempty"`
}

// NewListInsightsHandler returns an HTTP handler for the stored insights.
// @Summary List insights
// @Description Return the generated insights of the signed-in user, newest first
// @Tags insights
// @Produce json
// @Success 200 {object} handlers.InsightsResponse "Insights"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /insights [get]
// @Security BearerAuth
func NewListInsightsHandler(svc InsightLister, tokener InsightTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r, tokener)
		if !ok {
			return
		}

		insights, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			writeJSON(w, http.StatusOK, InsightsResponse{Insights: []models.Insight{}, Message: "Could not load insights"})
			return
		}

		writeJSON(w, http.StatusOK, InsightsResponse{Insights: insights})
	}
}
