package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewListInsightsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockInsightLister(ctrl)
	tokener := NewMockInsightTokener(ctrl)
	claims := testClaims()

	insight := models.Insight{
		ID:        uuid.New(),
		UserID:    claims.UserID,
		Content:   "Your mood improves on days you take medication.",
		CreatedAt: time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC),
	}

	authorized := func() {
		tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
	}

	tests := []struct {
		name      string
		mockSetup func()
		contains  []string
	}{
		{
			name: "Insights",
			mockSetup: func() {
				authorized()
				svc.EXPECT().List(gomock.Any(), claims.UserID).Return([]models.Insight{insight}, nil)
			},
			contains: []string{insight.Content},
		},
		{
			name: "Empty",
			mockSetup: func() {
				authorized()
				svc.EXPECT().List(gomock.Any(), claims.UserID).Return([]models.Insight{}, nil)
			},
			contains: []string{`"insights":[]`},
		},
		{
			name: "LoadFailure",
			mockSetup: func() {
				authorized()
				svc.EXPECT().List(gomock.Any(), claims.UserID).Return(nil, errBoom)
			},
			contains: []string{`"insights":[]`, "Could not load insights"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
			rr := httptest.NewRecorder()

			NewListInsightsHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rr.Body.String(), s)
			}
		})
	}
}
