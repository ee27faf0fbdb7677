// Package state holds the per-user application state shared by every page: auth status,
// the user profile, the loaded mood entries and the display preference.
//
// A Snapshot is immutable. Every update returns a new Snapshot and never touches the
// receiver, so a handler can keep reading a snapshot while another request replaces it.
package state

import (
	"sort"

	"github.com/sbilibin2017/mood-recall/internal/models"
)

// AuthStatus is the position of a session in the sign-in flow.
type AuthStatus int

const (
	Unauthenticated AuthStatus = iota
	Authenticating
	Authenticated
)

func (s AuthStatus) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Snapshot is one immutable view of a user's application state.
type Snapshot struct {
	status        AuthStatus
	user          *models.User
	entries       []models.MoodEntry
	entriesLoaded bool
	darkMode      bool
	authError     string
}

// Empty returns the state of a fresh, signed-out session.
func Empty() Snapshot {
	return Snapshot{status: Unauthenticated}
}

// Status returns the auth status.
func (s Snapshot) Status() AuthStatus { return s.status }

// AuthError returns the message of the last failed sign-in, if any.
func (s Snapshot) AuthError() string { return s.authError }

// DarkMode returns the display preference flag.
func (s Snapshot) DarkMode() bool { return s.darkMode }

// EntriesLoaded reports whether the entry list was fetched from the store.
func (s Snapshot) EntriesLoaded() bool { return s.entriesLoaded }

// User returns a copy of the cached profile, or nil when signed out.
func (s Snapshot) User() *models.User {
	if s.user == nil {
		return nil
	}
	u := s.user.Clone()
	return &u
}

// Entries returns a copy of the cached entries ordered by creation time.
func (s Snapshot) Entries() []models.MoodEntry {
	out := make([]models.MoodEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Authenticating marks a sign-in attempt as started.
func (s Snapshot) Authenticating() Snapshot {
	next := s
	next.status = Authenticating
	next.authError = ""
	return next
}

// AuthFailed returns to Unauthenticated and records the error for the sign-in form.
func (s Snapshot) AuthFailed(err error) Snapshot {
	next := Empty()
	if err != nil {
		next.authError = err.Error()
	}
	return next
}

// SignedIn enters Authenticated with the given profile.
func (s Snapshot) SignedIn(user models.User) Snapshot {
	next := s.WithUser(user)
	next.status = Authenticated
	next.authError = ""
	return next
}

// SignedOut drops the profile and the entries.
func (s Snapshot) SignedOut() Snapshot {
	return Empty()
}

// fresh reports whether s carries nothing beyond a new signed-out session.
func (s Snapshot) fresh() bool {
	return s.status == Unauthenticated &&
		s.user == nil &&
		len(s.entries) == 0 &&
		!s.entriesLoaded &&
		!s.darkMode &&
		s.authError == ""
}

// WithUser replaces the profile; the display flag follows the profile.
func (s Snapshot) WithUser(user models.User) Snapshot {
	next := s
	u := user.Clone()
	next.user = &u
	next.darkMode = u.DarkMode
	return next
}

// WithEntries replaces the entry list and marks it loaded.
func (s Snapshot) WithEntries(entries []models.MoodEntry) Snapshot {
	next := s
	next.entries = sortedCopy(entries)
	next.entriesLoaded = true
	return next
}

// WithEntry adds one freshly stored entry.
func (s Snapshot) WithEntry(entry models.MoodEntry) Snapshot {
	next := s
	merged := make([]models.MoodEntry, 0, len(s.entries)+1)
	merged = append(merged, s.entries...)
	merged = append(merged, entry)
	next.entries = sortedCopy(merged)
	return next
}

func sortedCopy(entries []models.MoodEntry) []models.MoodEntry {
	out := make([]models.MoodEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
