// Package stats computes mood statistics over a snapshot of entries.
// All functions are pure and re-derive ordering from CreatedAt.
package stats

import (
	"sort"
	"time"

	"github.com/sbilibin2017/mood-recall/internal/models"
)

// WindowDays bounds both the streak walk and the adherence window.
const WindowDays = 30

// Summary is what the profile view shows.
type Summary struct {
	HasData             bool    `json:"has_data"`
	CurrentStreak       int     `json:"current_streak"`
	TotalEntries        int     `json:"total_entries"`
	AverageMood         float64 `json:"average_mood"`
	MedicationAdherence float64 `json:"medication_adherence"`
	HasAdherenceData    bool    `json:"has_adherence_data"`
}

// Point is one sample of the history chart.
type Point struct {
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	Score     int       `json:"score"`
	Label     string    `json:"label"`
}

// day truncates t to its calendar day in loc.
func day(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// CurrentStreak counts consecutive calendar days, walking back from today, that hold
// at least one entry. The walk stops at the first empty day and never exceeds WindowDays.
func CurrentStreak(entries []models.MoodEntry, today time.Time) int {
	loc := today.Location()
	days := make(map[time.Time]struct{}, len(entries))
	for _, e := range entries {
		days[day(e.CreatedAt, loc)] = struct{}{}
	}

	start := day(today, loc)
	streak := 0
	for i := 0; i < WindowDays; i++ {
		if _, ok := days[start.AddDate(0, 0, -i)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// AverageMood returns the mean score. ok is false when there are no entries.
func AverageMood(entries []models.MoodEntry) (avg float64, ok bool) {
	if len(entries) == 0 {
		return 0, false
	}
	sum := 0
	for _, e := range entries {
		sum += e.MoodScore
	}
	return float64(sum) / float64(len(entries)), true
}

// MedicationAdherence returns the percentage of entries with medication taken among
// those dated within the WindowDays calendar days ending at today, inclusive.
// An empty window yields 0 with ok false.
func MedicationAdherence(entries []models.MoodEntry, today time.Time) (pct float64, ok bool) {
	loc := today.Location()
	last := day(today, loc)
	first := last.AddDate(0, 0, -(WindowDays - 1))

	total, taken := 0, 0
	for _, e := range entries {
		d := day(e.CreatedAt, loc)
		if d.Before(first) || d.After(last) {
			continue
		}
		total++
		if e.MedicationTaken {
			taken++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(taken) / float64(total) * 100, true
}

// TotalEntries returns the number of entries.
func TotalEntries(entries []models.MoodEntry) int {
	return len(entries)
}

// Compute bundles every statistic for the profile view.
func Compute(entries []models.MoodEntry, today time.Time) Summary {
	avg, ok := AverageMood(entries)
	if !ok {
		return Summary{}
	}
	adherence, hasAdherence := MedicationAdherence(entries, today)
	return Summary{
		HasData:             true,
		CurrentStreak:       CurrentStreak(entries, today),
		TotalEntries:        TotalEntries(entries),
		AverageMood:         avg,
		MedicationAdherence: adherence,
		HasAdherenceData:    hasAdherence,
	}
}

// Series returns the chart points ordered by creation time, dates rendered in loc.
func Series(entries []models.MoodEntry, loc *time.Location) []Point {
	sorted := make([]models.MoodEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	points := make([]Point, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, Point{
			Date:      e.CreatedAt.In(loc).Format(time.DateOnly),
			CreatedAt: e.CreatedAt,
			Score:     e.MoodScore,
			Label:     models.MoodLabel(e.MoodScore),
		})
	}
	return points
}
