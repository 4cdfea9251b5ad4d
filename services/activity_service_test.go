package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestValidateActivityMinutesBounds(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		wantErr bool
	}{
		{"zero rejected", 0, true},
		{"lower bound accepted", 1, false},
		{"upper bound accepted", 1440, false},
		{"above upper bound rejected", 1441, true},
		{"negative rejected", -30, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validateActivity(ActivityInput{Date: "2026-08-30", Minutes: tc.minutes})
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateActivityDate(t *testing.T) {
	parsed, err := validateActivity(ActivityInput{Date: "2026-08-30", Minutes: 30})
	require.NoError(t, err)
	assert.Equal(t, day("2026-08-30"), parsed)

	parsed, err = validateActivity(ActivityInput{Date: "2026-08-30T07:15:00Z", Minutes: 30})
	require.NoError(t, err)
	assert.Equal(t, day("2026-08-30"), truncateToDay(parsed))

	_, err = validateActivity(ActivityInput{Date: "not-a-date", Minutes: 30})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = validateActivity(ActivityInput{Date: "", Minutes: 30})
	require.Error(t, err)
}

func TestDistinctDaysDeduplicatesAndSortsDescending(t *testing.T) {
	days := distinctDays([]time.Time{
		day("2026-08-28").Add(7 * time.Hour),
		day("2026-08-30").Add(19 * time.Hour),
		day("2026-08-30").Add(6 * time.Hour), // second walk the same day
		day("2026-08-29"),
	})

	require.Len(t, days, 3)
	assert.Equal(t, day("2026-08-30"), days[0])
	assert.Equal(t, day("2026-08-29"), days[1])
	assert.Equal(t, day("2026-08-28"), days[2])
}

func TestComputeStreak(t *testing.T) {
	today := day("2026-08-30")

	t.Run("no activity", func(t *testing.T) {
		assert.Equal(t, 0, computeStreak(nil, today))
	})

	t.Run("run of three with an older gap", func(t *testing.T) {
		days := distinctDays([]time.Time{
			day("2026-08-30"), // today
			day("2026-08-29"),
			day("2026-08-28"),
			day("2026-08-26"), // gap at D-4
		})
		assert.Equal(t, 3, computeStreak(days, today))
	})

	t.Run("streak ending yesterday still counts", func(t *testing.T) {
		days := distinctDays([]time.Time{
			day("2026-08-29"),
			day("2026-08-28"),
		})
		assert.Equal(t, 2, computeStreak(days, today))
	})

	t.Run("broken when most recent is older than yesterday", func(t *testing.T) {
		days := distinctDays([]time.Time{
			day("2026-08-27"),
			day("2026-08-26"),
		})
		assert.Equal(t, 0, computeStreak(days, today))
	})

	t.Run("single day today", func(t *testing.T) {
		assert.Equal(t, 1, computeStreak(distinctDays([]time.Time{day("2026-08-30")}), today))
	})

	t.Run("future-dated log does not start a streak", func(t *testing.T) {
		days := distinctDays([]time.Time{
			day("2026-08-31"), // tomorrow
			day("2026-08-30"),
		})
		assert.Equal(t, 0, computeStreak(days, today))
	})
}

func TestDailyAverage(t *testing.T) {
	assert.Equal(t, 0, dailyAverage(0, 0))
	assert.Equal(t, 30, dailyAverage(90, 3))
	// round half-up
	assert.Equal(t, 13, dailyAverage(25, 2))
	assert.Equal(t, 33, dailyAverage(100, 3))
}

func TestGetUserStatsWithHistory(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"date", "minutes"}).
		AddRow(day("2026-08-30").Add(18*time.Hour), 20). // two walks today
		AddRow(day("2026-08-30").Add(8*time.Hour), 40).
		AddRow(day("2026-08-29"), 15).
		AddRow(day("2026-08-28"), 15).
		AddRow(day("2026-08-26"), 60) // gap at D-3
	mock.ExpectQuery(`SELECT .* FROM "activities"`).WillReturnRows(rows)

	svc := NewActivityService(db)
	svc.now = func() time.Time { return day("2026-08-30").Add(12 * time.Hour) }

	stats, err := svc.GetUserStats(1)
	require.NoError(t, err)
	assert.Equal(t, 150, stats.TotalMinutes)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 4, stats.DaysActive)
	assert.Equal(t, 38, stats.DailyAverage) // 150/4 rounds half-up
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserStatsNoActivities(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "minutes"}))

	svc := NewActivityService(db)
	svc.now = func() time.Time { return day("2026-08-30") }

	stats, err := svc.GetUserStats(1)
	require.NoError(t, err)
	assert.Equal(t, &UserStats{}, stats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogActivityThenList(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectCommit()

	svc := NewActivityService(db)
	logged, err := svc.LogActivity(1, ActivityInput{Date: "2026-08-30", Minutes: 45, Notes: "river loop"})
	require.NoError(t, err)
	assert.Equal(t, uint(21), logged.ID)
	assert.Equal(t, uint(1), logged.UserID)
	assert.Equal(t, 45, logged.Minutes)
	assert.Equal(t, day("2026-08-30"), logged.Date)

	mock.ExpectQuery(`SELECT .* FROM "activities"`).
		WithArgs(1, DefaultActivityLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "minutes", "notes"}).
			AddRow(21, 1, day("2026-08-30"), 45, "river loop").
			AddRow(20, 1, day("2026-08-29"), 30, ""))

	// Non-positive limit falls back to the default page size.
	listed, err := svc.GetUserActivities(1, 0)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, logged.ID, listed[0].ID)
	assert.Equal(t, "river loop", listed[0].Notes)
	assert.True(t, listed[0].Date.After(listed[1].Date))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogActivityRejectsInvalidInput(t *testing.T) {
	svc := &ActivityService{}

	_, err := svc.LogActivity(1, ActivityInput{Date: "2026-08-30", Minutes: 0})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.LogActivity(1, ActivityInput{Date: "not-a-date", Minutes: 30})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
