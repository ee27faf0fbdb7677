package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/sbilibin2017/mood-recall/internal/state"
	"github.com/stretchr/testify/assert"
)

func TestNewSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSessionRestorer(ctrl)
	tokener := NewMockSessionTokener(ctrl)
	claims := testClaims()

	user := models.NewDefaultUser(claims.UserID, claims.Email)
	user.DarkMode = true

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		contains     []string
	}{
		{
			name: "Restored",
			mockSetup: func() {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				svc.EXPECT().Restore(gomock.Any(), claims).Return(state.Empty().SignedIn(user), nil)
			},
			expectedCode: http.StatusOK,
			contains:     []string{`"status":"authenticated"`, `"dark_mode":true`, claims.UserID.String()},
		},
		{
			name: "NoToken",
			mockSetup: func() {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errBoom)
			},
			expectedCode: http.StatusUnauthorized,
			contains:     []string{"Unauthorized"},
		},
		{
			name: "ProfileFailure",
			mockSetup: func() {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				svc.EXPECT().Restore(gomock.Any(), claims).Return(state.Empty(), errBoom)
			},
			expectedCode: http.StatusInternalServerError,
			contains:     []string{"Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
			rr := httptest.NewRecorder()

			NewSessionHandler(svc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rr.Body.String(), s)
			}
		})
	}
}
