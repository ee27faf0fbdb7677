package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/sbilibin2017/mood-recall/internal/services"
	"github.com/sbilibin2017/mood-recall/internal/state"
	"github.com/stretchr/testify/assert"
)

func TestNewSignInHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSignIner(ctrl)
	sessions := NewMockSessionSaver(ctrl)

	claims := testClaims()
	signedIn := state.Empty().SignedIn(models.NewDefaultUser(claims.UserID, claims.Email))

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			mockSetup: func() {
				svc.EXPECT().SignIn(gomock.Any(), "jane@example.com", "secret123").Return("jwt-token", signedIn, nil)
				sessions.EXPECT().Save(gomock.Any(), gomock.Any(), "jwt-token").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "CookieFailureStillReturnsToken",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			mockSetup: func() {
				svc.EXPECT().SignIn(gomock.Any(), "jane@example.com", "secret123").Return("jwt-token", signedIn, nil)
				sessions.EXPECT().Save(gomock.Any(), gomock.Any(), "jwt-token").Return(errBoom)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "InvalidJSON",
			body:         `{"email":`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
		{
			name:         "MissingPassword",
			body:         `{"email":"jane@example.com"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Email and password are required"}`,
		},
		{
			name: "InvalidCredentials",
			body: `{"email":"jane@example.com","password":"wrongpass"}`,
			mockSetup: func() {
				svc.EXPECT().SignIn(gomock.Any(), "jane@example.com", "wrongpass").
					Return("", state.Empty(), services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Invalid email or password"}`,
		},
		{
			name: "InternalError",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			mockSetup: func() {
				svc.EXPECT().SignIn(gomock.Any(), "jane@example.com", "secret123").Return("", state.Empty(), errBoom)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewSignInHandler(svc, sessions).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, rr.Body.String(), `"token":"jwt-token"`)
				assert.Contains(t, rr.Body.String(), `"status":"authenticated"`)
			}
		})
	}
}
