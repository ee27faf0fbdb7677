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

func TestNewSignUpHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSignUpper(ctrl)
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
			name: "Created",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			mockSetup: func() {
				svc.EXPECT().SignUp(gomock.Any(), "jane@example.com", "secret123").Return("jwt-token", signedIn, nil)
				sessions.EXPECT().Save(gomock.Any(), gomock.Any(), "jwt-token").Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "InvalidEmail",
			body:         `{"email":"not-an-email","password":"secret123"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "ShortPassword",
			body:         `{"email":"jane@example.com","password":"123"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "AlreadyExists",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			mockSetup: func() {
				svc.EXPECT().SignUp(gomock.Any(), "jane@example.com", "secret123").
					Return("", state.Empty(), services.ErrAccountAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Email already registered"}`,
		},
		{
			name: "InternalError",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			mockSetup: func() {
				svc.EXPECT().SignUp(gomock.Any(), "jane@example.com", "secret123").Return("", state.Empty(), errBoom)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-up", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewSignUpHandler(svc, sessions).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
			if tt.expectedCode == http.StatusCreated {
				assert.Contains(t, rr.Body.String(), `"token":"jwt-token"`)
			}
		})
	}
}
