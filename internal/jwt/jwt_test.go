package jwt

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWT_TokensHaveUniqueIDs(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()
	userID := uuid.New()

	first, err := j.Generate(ctx, userID, "a@example.com")
	require.NoError(t, err)
	second, err := j.Generate(ctx, userID, "a@example.com")
	require.NoError(t, err)

	c1, err := j.GetClaims(ctx, first)
	require.NoError(t, err)
	c2, err := j.GetClaims(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "a@example.com")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()
	token, err := New(WithSecretKey("one")).Generate(ctx, uuid.New(), "a@example.com")
	require.NoError(t, err)

	claims, err := New(WithSecretKey("two")).GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	ctx := context.Background()
	errNoCookie := errors.New("no cookie")

	tests := []struct {
		name          string
		header        string
		fallback      func(r *http.Request) (string, error)
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", nil, "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", nil, "mytoken123", false},
		{"NoHeader", "", nil, "", true},
		{"InvalidFormat", "Token mytoken123", nil, "", true},
		{"TooManyParts", "Bearer a b", nil, "", true},
		{
			"FallbackUsedWithoutHeader", "",
			func(r *http.Request) (string, error) { return "cookie-token", nil },
			"cookie-token", false,
		},
		{
			"FallbackError", "",
			func(r *http.Request) (string, error) { return "", errNoCookie },
			"", true,
		},
		{
			"HeaderWinsOverFallback", "Bearer header-token",
			func(r *http.Request) (string, error) { return "cookie-token", nil },
			"header-token", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := New(WithTokenFallback(tt.fallback))
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedToken, token)
		})
	}
}
