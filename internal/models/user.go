package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SubscriptionTier is the billing plan of a user profile.
type SubscriptionTier string

// Supported subscription tiers
const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
	TierPro     SubscriptionTier = "pro"
)

// NotificationPreferences is the nested notification record of a user profile.
type NotificationPreferences struct {
	Enabled bool     `json:"enabled"` // Whether mood reminders are sent
	Times   []string `json:"times"`   // Times of day in HH:MM
	Days    []string `json:"days"`    // Lowercase weekday names
}

// Value implements driver.Valuer so the record is stored as JSONB.
func (p NotificationPreferences) Value() (driver.Value, error) {
	return marshalJSONB(p)
}

// Scan implements sql.Scanner for JSONB columns.
func (p *NotificationPreferences) Scan(src any) error {
	return unmarshalJSONB(src, p)
}

// MedicationReminder is the nested medication reminder record of a user profile.
type MedicationReminder struct {
	Enabled bool     `json:"enabled"` // Whether medication reminders are sent
	Times   []string `json:"times"`   // Times of day in HH:MM
}

// Value implements driver.Valuer so the record is stored as JSONB.
func (m MedicationReminder) Value() (driver.Value, error) {
	return marshalJSONB(m)
}

// Scan implements sql.Scanner for JSONB columns.
func (m *MedicationReminder) Scan(src any) error {
	return unmarshalJSONB(src, m)
}

// User represents a user profile row in the database
type User struct {
	ID                      uuid.UUID               `json:"id" db:"id"`                                             // Same id as the owning account
	Email                   string                  `json:"email" db:"email"`                                       // User email
	NotificationPreferences NotificationPreferences `json:"notification_preferences" db:"notification_preferences"` // JSONB
	MedicationReminder      MedicationReminder      `json:"medication_reminder" db:"medication_reminder"`           // JSONB
	DarkMode                bool                    `json:"dark_mode" db:"dark_mode"`                               // Display theme
	SubscriptionTier        SubscriptionTier        `json:"subscription_tier" db:"subscription_tier"`               // free, premium or pro
	CreatedAt               time.Time               `json:"created_at" db:"created_at"`                             // Creation timestamp
	UpdatedAt               time.Time               `json:"updated_at" db:"updated_at"`                             // Last update timestamp
}

// NewDefaultUser returns the profile created on first sign-in: every toggle off, free tier.
func NewDefaultUser(id uuid.UUID, email string) User {
	return User{
		ID:    id,
		Email: email,
		NotificationPreferences: NotificationPreferences{
			Enabled: false,
			Times:   []string{},
			Days:    []string{},
		},
		MedicationReminder: MedicationReminder{
			Enabled: false,
			Times:   []string{},
		},
		DarkMode:         false,
		SubscriptionTier: TierFree,
	}
}

// Clone returns a deep copy so snapshots never share slices.
func (u User) Clone() User {
	c := u
	c.NotificationPreferences.Times = cloneStrings(u.NotificationPreferences.Times)
	c.NotificationPreferences.Days = cloneStrings(u.NotificationPreferences.Days)
	c.MedicationReminder.Times = cloneStrings(u.MedicationReminder.Times)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func marshalJSONB(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func unmarshalJSONB(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported JSONB source type %T", src)
	}
}
