package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *Manager {
	return New(NewCookieStore("0123456789abcdef0123456789abcdef", time.Hour, false), "")
}

func TestManager_SaveAndToken(t *testing.T) {
	m := newManager()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", nil)
	require.NoError(t, m.Save(rr, req, "jwt-token"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, DefaultName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	next := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	next.AddCookie(cookies[0])

	token, err := m.Token(next)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestManager_TokenWithoutCookie(t *testing.T) {
	m := newManager()

	token, err := m.Token(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, token)
}

func TestManager_TokenWithForeignCookie(t *testing.T) {
	m := newManager()
	other := New(NewCookieStore("ffffffffffffffffffffffffffffffff", time.Hour, false), "")

	rr := httptest.NewRecorder()
	require.NoError(t, other.Save(rr, httptest.NewRequest(http.MethodPost, "/", nil), "forged"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rr.Result().Cookies()[0])

	_, err := m.Token(req)
	assert.Error(t, err)
}

func TestManager_Clear(t *testing.T) {
	m := newManager()

	rr := httptest.NewRecorder()
	require.NoError(t, m.Clear(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-out", nil)))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestNewCookieStore_EncryptsToken(t *testing.T) {
	const secret = "0123456789abcdef0123456789abcdef"
	m := New(NewCookieStore(secret, time.Hour, false), "")

	rr := httptest.NewRecorder()
	require.NoError(t, m.Save(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", nil), "jwt-token"))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	// the signing key alone does not reveal the token
	var values map[interface{}]interface{}
	err := securecookie.New([]byte(secret), nil).Decode(DefaultName, cookies[0].Value, &values)
	assert.Error(t, err)
	assert.NotEqual(t, "jwt-token", values[tokenKey])

	values = nil
	require.NoError(t, securecookie.New([]byte(secret), encryptionKey(secret)).Decode(DefaultName, cookies[0].Value, &values))
	assert.Equal(t, "jwt-token", values[tokenKey])
}
