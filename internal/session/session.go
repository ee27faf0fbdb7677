// Package session keeps the signed-in token in an encrypted browser cookie so the
// single-page shell can restore the session on boot without storing it in JS.
package session

import (
	"crypto/sha256"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const tokenKey = "token"

// DefaultName is the cookie name used when none is configured.
const DefaultName = "mood_recall_session"

var ErrNoSession = errors.New("no session token")

// Manager reads and writes the session cookie.
type Manager struct {
	store sessions.Store
	name  string
}

// NewCookieStore creates the cookie store used in production. The cookie is signed
// with secret and encrypted with AES-256 under a key derived from it.
func NewCookieStore(secret string, maxAge time.Duration, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret), encryptionKey(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func encryptionKey(secret string) []byte {
	sum := sha256.Sum256([]byte("session-encryption:" + secret))
	return sum[:]
}

// New creates a Manager over store.
func New(store sessions.Store, name string) *Manager {
	if name == "" {
		name = DefaultName
	}
	return &Manager{store: store, name: name}
}

// Save stores token in the session cookie.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, token string) error {
	s, err := m.store.Get(r, m.name)
	if err != nil && s == nil {
		return err
	}
	s.Values[tokenKey] = token
	return s.Save(r, w)
}

// Token returns the token stored in the session cookie.
func (m *Manager) Token(r *http.Request) (string, error) {
	s, err := m.store.Get(r, m.name)
	if err != nil {
		return "", err
	}
	token, ok := s.Values[tokenKey].(string)
	if !ok || token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, err := m.store.Get(r, m.name)
	if err != nil && s == nil {
		return err
	}
	delete(s.Values, tokenKey)
	s.Options.MaxAge = -1
	return s.Save(r, w)
}
