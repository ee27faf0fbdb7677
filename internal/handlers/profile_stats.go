package handlers

//go:generate mockgen -source=profile_stats.go -destination=profile_stats_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/stats"
)

// StatsTokener defines only the methods needed by this handler.
type StatsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// StatsReader computes profile statistics.
type StatsReader interface {
	Summary(ctx context.Context, userID uuid.UUID) (stats.Summary, error)
}

// StatsResponse represents the profile statistics
// swagger:model StatsResponse
type StatsResponse struct {
	// Streak, totals, average and adherence
	Summary stats.Summary `json:"summary"`

	// Set when the statistics could not be computed
	Message string `json:"message,omitempty"`
}

// NewProfileStatsHandler returns an HTTP handler for the profile statistics.
// @Summary Profile statistics
// @Description Current streak, total entries, average mood and 30-day medication adherence
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.StatsResponse "Statistics"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /profile/stats [get]
// @Security BearerAuth
func NewProfileStatsHandler(svc StatsReader, tokener StatsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r, tokener)
		if !ok {
			return
		}

		summary, err := svc.Summary(r.Context(), claims.UserID)
		if err != nil {
			writeJSON(w, http.StatusOK, StatsResponse{Message: "Could not load statistics"})
			return
		}

		writeJSON(w, http.StatusOK, StatsResponse{Summary: summary})
	}
}
