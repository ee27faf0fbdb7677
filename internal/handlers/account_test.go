package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestNewDeleteAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAccountDeleter(ctrl)
	tokener := NewMockAccountTokener(ctrl)
	sessions := NewMockSessionClearer(ctrl)
	claims := testClaims()

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Deleted",
			mockSetup: func() {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				svc.EXPECT().Delete(gomock.Any(), claims).Return(nil)
				sessions.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Account deleted"}`,
		},
		{
			name: "DeleteFailsKeepsSession",
			mockSetup: func() {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				svc.EXPECT().Delete(gomock.Any(), claims).Return(errBoom)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Failed to delete account"}`,
		},
		{
			name: "Unauthorized",
			mockSetup: func() {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errBoom)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/account", nil)
			rr := httptest.NewRecorder()

			NewDeleteAccountHandler(svc, tokener, sessions).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
