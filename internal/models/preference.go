package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Preference paths accepted by ApplyPreference
const (
	PrefNotificationsEnabled = "notification_preferences.enabled"
	PrefNotificationsTimes   = "notification_preferences.times"
	PrefNotificationsDays    = "notification_preferences.days"
	PrefMedicationEnabled    = "medication_reminder.enabled"
	PrefMedicationTimes      = "medication_reminder.times"
	PrefDarkMode             = "dark_mode"
)

const preferenceTimeOfDayLayout = "15:04"

var (
	ErrUnknownPreference      = errors.New("unknown preference path")
	ErrInvalidPreferenceValue = errors.New("invalid preference value")
)

var weekdays = map[string]struct{}{
	"monday":    {},
	"tuesday":   {},
	"wednesday": {},
	"thursday":  {},
	"friday":    {},
	"saturday":  {},
	"sunday":    {},
}

// PreferencePaths lists every path ApplyPreference understands.
func PreferencePaths() []string {
	return []string{
		PrefNotificationsEnabled,
		PrefNotificationsTimes,
		PrefNotificationsDays,
		PrefMedicationEnabled,
		PrefMedicationTimes,
		PrefDarkMode,
	}
}

// ApplyPreference returns a copy of user with the value at path merged into its
// nested record. Sibling fields of the record are left as they were.
func ApplyPreference(user User, path string, value json.RawMessage) (User, error) {
	out := user.Clone()

	switch path {
	case PrefNotificationsEnabled:
		b, err := decodeBool(value)
		if err != nil {
			return user, err
		}
		out.NotificationPreferences.Enabled = b
	case PrefNotificationsTimes:
		times, err := decodeTimes(value)
		if err != nil {
			return user, err
		}
		out.NotificationPreferences.Times = times
	case PrefNotificationsDays:
		days, err := decodeDays(value)
		if err != nil {
			return user, err
		}
		out.NotificationPreferences.Days = days
	case PrefMedicationEnabled:
		b, err := decodeBool(value)
		if err != nil {
			return user, err
		}
		out.MedicationReminder.Enabled = b
	case PrefMedicationTimes:
		times, err := decodeTimes(value)
		if err != nil {
			return user, err
		}
		out.MedicationReminder.Times = times
	case PrefDarkMode:
		b, err := decodeBool(value)
		if err != nil {
			return user, err
		}
		out.DarkMode = b
	default:
		return user, fmt.Errorf("%w: %q", ErrUnknownPreference, path)
	}

	return out, nil
}

func decodeBool(value json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(value, &b); err != nil {
		return false, fmt.Errorf("%w: expected boolean", ErrInvalidPreferenceValue)
	}
	return b, nil
}

func decodeStrings(value json.RawMessage) ([]string, error) {
	var s []string
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, fmt.Errorf("%w: expected list of strings", ErrInvalidPreferenceValue)
	}
	if s == nil {
		s = []string{}
	}
	return s, nil
}

// decodeTimes keeps the submitted order; times are HH:MM.
func decodeTimes(value json.RawMessage) ([]string, error) {
	times, err := decodeStrings(value)
	if err != nil {
		return nil, err
	}
	for _, t := range times {
		if _, err := time.Parse(preferenceTimeOfDayLayout, t); err != nil {
			return nil, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidPreferenceValue, t)
		}
	}
	return times, nil
}

// decodeDays treats the list as a set: duplicates are dropped, first occurrence wins.
func decodeDays(value json.RawMessage) ([]string, error) {
	days, err := decodeStrings(value)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(days))
	out := make([]string, 0, len(days))
	for _, d := range days {
		if _, ok := weekdays[d]; !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidPreferenceValue, d)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}
