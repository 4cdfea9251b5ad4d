// services/activity_service.go - Activity Logging & Statistics
package services

import (
	"sort"
	"time"
	"walk30/models"

	"gorm.io/gorm"
)

const (
	MinActivityMinutes = 1
	MaxActivityMinutes = 1440

	DefaultActivityLimit = 10
)

// ActivityInput is a candidate walking session as submitted by the client.
type ActivityInput struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
	Notes   string `json:"notes"`
}

// UserStats are the derived per-user numbers shown on the dashboard.
type UserStats struct {
	TotalMinutes  int `json:"totalMinutes"`
	CurrentStreak int `json:"currentStreak"`
	DaysActive    int `json:"daysActive"`
	DailyAverage  int `json:"dailyAverage"`
}

type ActivityService struct {
	db *gorm.DB

	// now is the reference clock for streak computation. Tests supply a
	// fixed date instead of wall-clock time.
	now func() time.Time
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db, now: time.Now}
}

// LogActivity validates and persists one immutable walking session and
// returns the stored record including its generated id.
func (s *ActivityService) LogActivity(userID uint, input ActivityInput) (*models.Activity, error) {
	date, err := validateActivity(input)
	if err != nil {
		return nil, err
	}

	activity := &models.Activity{
		UserID:  userID,
		Date:    date,
		Minutes: input.Minutes,
		Notes:   input.Notes,
	}

	if err := s.db.Create(activity).Error; err != nil {
		return nil, err
	}

	return activity, nil
}

// GetUserActivities returns the user's sessions, newest first.
func (s *ActivityService) GetUserActivities(userID uint, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	var activities []models.Activity
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&activities).Error

	return activities, err
}

// GetUserStats derives total minutes, current streak, distinct active days
// and the per-day average from the user's full activity history.
func (s *ActivityService) GetUserStats(userID uint) (*UserStats, error) {
	var activities []models.Activity
	err := s.db.Select("date", "minutes").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}

	totalMinutes := 0
	dates := make([]time.Time, 0, len(activities))
	for _, a := range activities {
		totalMinutes += a.Minutes
		dates = append(dates, a.Date)
	}

	days := distinctDays(dates)

	return &UserStats{
		TotalMinutes:  totalMinutes,
		CurrentStreak: computeStreak(days, truncateToDay(s.now())),
		DaysActive:    len(days),
		DailyAverage:  dailyAverage(totalMinutes, len(days)),
	}, nil
}

func validateActivity(input ActivityInput) (time.Time, error) {
	if input.Minutes < MinActivityMinutes || input.Minutes > MaxActivityMinutes {
		return time.Time{}, validationErrorf("minutes",
			"minutes must be between %d and %d", MinActivityMinutes, MaxActivityMinutes)
	}

	date, err := parseActivityDate(input.Date)
	if err != nil {
		return time.Time{}, validationErrorf("date", "date must be a valid date")
	}

	return date, nil
}

func parseActivityDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// truncateToDay reduces a timestamp to its UTC calendar day.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// distinctDays reduces timestamps to their UTC calendar day, de-duplicates
// and sorts them most-recent first.
func distinctDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := truncateToDay(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// computeStreak counts the unbroken run of consecutive days ending at today
// or yesterday. days must be distinct calendar days sorted most-recent first.
func computeStreak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	// Anchored at today or yesterday: older most-recent days mean the streak
	// is broken, and a future-dated log does not start one.
	yesterday := today.AddDate(0, 0, -1)
	if days[0].Before(yesterday) || days[0].After(today) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

// dailyAverage rounds half-up to the nearest whole minute, 0 when no days.
func dailyAverage(totalMinutes, daysActive int) int {
	if daysActive == 0 {
		return 0
	}
	return (totalMinutes + daysActive/2) / daysActive
}
