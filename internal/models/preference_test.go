package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPreference(t *testing.T) {
	base := NewDefaultUser(uuid.New(), "jane@example.com")
	base.NotificationPreferences.Times = []string{"08:00"}
	base.NotificationPreferences.Days = []string{"monday"}
	base.MedicationReminder.Times = []string{"21:00"}

	tests := []struct {
		name        string
		path        string
		value       string
		expectedErr error
		check       func(t *testing.T, u User)
	}{
		{
			name:  "NotificationsEnabledKeepsSiblings",
			path:  PrefNotificationsEnabled,
			value: `true`,
			check: func(t *testing.T, u User) {
				assert.True(t, u.NotificationPreferences.Enabled)
				assert.Equal(t, []string{"08:00"}, u.NotificationPreferences.Times)
				assert.Equal(t, []string{"monday"}, u.NotificationPreferences.Days)
			},
		},
		{
			name:  "NotificationTimes",
			path:  PrefNotificationsTimes,
			value: `["07:30","20:15"]`,
			check: func(t *testing.T, u User) {
				assert.Equal(t, []string{"07:30", "20:15"}, u.NotificationPreferences.Times)
				assert.False(t, u.NotificationPreferences.Enabled)
			},
		},
		{
			name:  "NotificationDaysDeduplicated",
			path:  PrefNotificationsDays,
			value: `["friday","monday","friday"]`,
			check: func(t *testing.T, u User) {
				assert.Equal(t, []string{"friday", "monday"}, u.NotificationPreferences.Days)
			},
		},
		{
			name:  "EmptyTimesList",
			path:  PrefMedicationTimes,
			value: `[]`,
			check: func(t *testing.T, u User) {
				assert.NotNil(t, u.MedicationReminder.Times)
				assert.Empty(t, u.MedicationReminder.Times)
			},
		},
		{
			name:  "MedicationEnabledKeepsTimes",
			path:  PrefMedicationEnabled,
			value: `true`,
			check: func(t *testing.T, u User) {
				assert.True(t, u.MedicationReminder.Enabled)
				assert.Equal(t, []string{"21:00"}, u.MedicationReminder.Times)
			},
		},
		{
			name:  "DarkMode",
			path:  PrefDarkMode,
			value: `true`,
			check: func(t *testing.T, u User) {
				assert.True(t, u.DarkMode)
			},
		},
		{name: "UnknownPath", path: "subscription_tier", value: `"pro"`, expectedErr: ErrUnknownPreference},
		{name: "BoolExpected", path: PrefDarkMode, value: `"yes"`, expectedErr: ErrInvalidPreferenceValue},
		{name: "BadTime", path: PrefNotificationsTimes, value: `["25:00"]`, expectedErr: ErrInvalidPreferenceValue},
		{name: "BadWeekday", path: PrefNotificationsDays, value: `["someday"]`, expectedErr: ErrInvalidPreferenceValue},
		{name: "ListExpected", path: PrefMedicationTimes, value: `"08:00"`, expectedErr: ErrInvalidPreferenceValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyPreference(base, tt.path, json.RawMessage(tt.value))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, base, got)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}

	// input is never mutated
	assert.Equal(t, []string{"08:00"}, base.NotificationPreferences.Times)
	assert.False(t, base.DarkMode)
}

func TestPreferencePaths(t *testing.T) {
	user := NewDefaultUser(uuid.New(), "jane@example.com")
	for _, path := range PreferencePaths() {
		value := `true`
		switch path {
		case PrefNotificationsTimes, PrefMedicationTimes:
			value = `["08:00"]`
		case PrefNotificationsDays:
			value = `["sunday"]`
		}
		_, err := ApplyPreference(user, path, json.RawMessage(value))
		assert.NoError(t, err, path)
	}
}
