package calendar

import (
	"testing"
	"time"

	"github.com/CaptainSharky/Tracker/internal/models"
)

func TestDayOfDiscardsTimeOfDay(t *testing.T) {
	cal := New(time.UTC)

	morning := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	night := time.Date(2025, 6, 2, 23, 59, 59, 0, time.UTC)

	if cal.DayOf(morning) != cal.DayOf(night) {
		t.Errorf("DayOf differs within one day: %s vs %s", cal.DayOf(morning), cal.DayOf(night))
	}
	if got := cal.DayOf(morning); got != "2025-06-02" {
		t.Errorf("DayOf = %q, want %q", got, "2025-06-02")
	}
}

func TestWeekdayOf(t *testing.T) {
	cal := New(time.UTC)

	tests := []struct {
		day  string
		want models.Weekday
	}{
		{"2025-06-02", models.Monday},    // known Monday
		{"2025-06-04", models.Wednesday},
		{"2025-06-07", models.Saturday},
		{"2025-06-08", models.Sunday},
	}

	for _, tt := range tests {
		got, err := cal.WeekdayOf(tt.day)
		if err != nil {
			t.Fatalf("WeekdayOf(%s) failed: %v", tt.day, err)
		}
		if got != tt.want {
			t.Errorf("WeekdayOf(%s) = %v, want %v", tt.day, got, tt.want)
		}
	}

	if _, err := cal.WeekdayOf("06/02/2025"); err == nil {
		t.Error("WeekdayOf with malformed day expected error")
	}
}

func TestNextScheduledDay(t *testing.T) {
	cal := New(time.UTC)
	mwf := models.NewSchedule(models.Monday, models.Wednesday, models.Friday)

	tests := []struct {
		name  string
		day   string
		sched models.Schedule
		want  string
	}{
		{"monday to wednesday", "2025-06-02", mwf, "2025-06-04"},
		{"friday wraps to monday", "2025-06-06", mwf, "2025-06-09"},
		{"same weekday next week", "2025-06-02", models.NewSchedule(models.Monday), "2025-06-09"},
		{"empty schedule is next day", "2025-06-02", models.NewSchedule(), "2025-06-03"},
		{"crosses month boundary", "2025-06-30", mwf, "2025-07-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.NextScheduledDay(tt.day, tt.sched)
			if err != nil {
				t.Fatalf("NextScheduledDay failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextScheduledDay(%s, %v) = %s, want %s", tt.day, tt.sched, got, tt.want)
			}
		})
	}
}

func TestFixedNow(t *testing.T) {
	fixed := time.Date(2025, 6, 2, 15, 4, 5, 0, time.UTC)
	cal := NewFixed(time.UTC, fixed)

	if got := cal.Today(); got != "2025-06-02" {
		t.Errorf("Today() = %q, want %q", got, "2025-06-02")
	}
}
