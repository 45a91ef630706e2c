package calendar

import (
	"fmt"
	"time"

	"github.com/CaptainSharky/Tracker/internal/models"
)

// DayLayout is the storage format for calendar days. Normalizing a
// timestamp to a day string is the only place time-of-day is discarded,
// so every (tracker, day) key in the store is already day-granular.
const DayLayout = "2006-01-02"

// Calendar resolves timestamps to calendar days and weekdays in a fixed
// location. The current-time source is injectable so streak and
// statistics math stays testable with fixed dates.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func New(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{loc: loc, now: time.Now}
}

// NewFixed returns a calendar whose "now" is pinned, for tests.
func NewFixed(loc *time.Location, now time.Time) *Calendar {
	c := New(loc)
	c.now = func() time.Time { return now }
	return c
}

// DayOf truncates a timestamp to its calendar day.
func (c *Calendar) DayOf(t time.Time) string {
	return t.In(c.loc).Format(DayLayout)
}

// Today returns the current calendar day.
func (c *Calendar) Today() string {
	return c.DayOf(c.now())
}

// ParseDay validates a YYYY-MM-DD string.
func (c *Calendar) ParseDay(day string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, day, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q (expected YYYY-MM-DD): %w", day, err)
	}
	return t, nil
}

// WeekdayOf returns the weekday of a calendar day.
func (c *Calendar) WeekdayOf(day string) (models.Weekday, error) {
	t, err := c.ParseDay(day)
	if err != nil {
		return 0, err
	}
	return models.FromTime(t.Weekday()), nil
}

// AddDays shifts a calendar day by n days.
func (c *Calendar) AddDays(day string, n int) (string, error) {
	t, err := c.ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DayLayout), nil
}

// NextScheduledDay returns the first day strictly after the given day on
// which the schedule fires. An empty schedule degenerates to the next
// calendar day.
func (c *Calendar) NextScheduledDay(day string, sched models.Schedule) (string, error) {
	t, err := c.ParseDay(day)
	if err != nil {
		return "", err
	}
	if sched.IsEmpty() {
		return t.AddDate(0, 0, 1).Format(DayLayout), nil
	}
	for {
		t = t.AddDate(0, 0, 1)
		if sched.Contains(models.FromTime(t.Weekday())) {
			return t.Format(DayLayout), nil
		}
	}
}
