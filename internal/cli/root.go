package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/CaptainSharky/Tracker/internal/backup"
	"github.com/CaptainSharky/Tracker/internal/calendar"
	"github.com/CaptainSharky/Tracker/internal/ledger"
	"github.com/CaptainSharky/Tracker/internal/logger"
	"github.com/CaptainSharky/Tracker/internal/models"
	"github.com/CaptainSharky/Tracker/internal/query"
	"github.com/CaptainSharky/Tracker/internal/storage"
)

type Context struct {
	Store storage.Provider
	Cal   *calendar.Calendar
}

// Ledger returns a completion ledger bound to the context's store.
func (c *Context) Ledger() *ledger.Ledger {
	return ledger.New(c.Store, c.Cal)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateColor checks a "#RRGGBB" hex color string.
func ValidateColor(s string) error {
	if !colorPattern.MatchString(s) {
		return fmt.Errorf("invalid color %q (expected #RRGGBB)", s)
	}
	return nil
}

// ParseScheduleFlag turns the --schedule flag value into a Schedule.
// An empty value means an unscheduled (irregular) tracker; "daily"
// selects every weekday.
func ParseScheduleFlag(s string) (models.Schedule, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "":
		return models.NewSchedule(), nil
	case "daily", "every day":
		return models.NewSchedule(
			models.Monday, models.Tuesday, models.Wednesday, models.Thursday,
			models.Friday, models.Saturday, models.Sunday,
		), nil
	}
	return models.ParseSchedule(s)
}

// resolveTracker finds a tracker by id first, then by exact title.
func resolveTracker(ctx *Context, ref string) (models.Tracker, error) {
	t, err := ctx.Store.GetTracker(ref)
	if err == nil {
		return t, nil
	}
	t, err = ctx.Store.GetTrackerByTitle(ref)
	if err != nil {
		return models.Tracker{}, fmt.Errorf("tracker %q not found", ref)
	}
	return t, nil
}

// resolveDay returns the given day validated, or today when empty.
func resolveDay(ctx *Context, day string) (string, error) {
	if day == "" {
		return ctx.Cal.Today(), nil
	}
	if _, err := ctx.Cal.ParseDay(day); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}
	return day, nil
}

// printGroups renders a grouped result set with completion markers for
// the given day.
func printGroups(ctx *Context, groups []query.Group, day string) error {
	for _, g := range groups {
		fmt.Printf("%s\n", g.Title)
		for _, t := range g.Trackers {
			done, err := ctx.Store.HasRecord(t.ID, day)
			if err != nil {
				return err
			}
			status := "[ ]"
			if done {
				status = "[x]"
			}
			sched := t.Schedule.String()
			fmt.Printf("  %s %s %s (%s)\n", status, t.Emoji, t.Title, sched)
		}
	}
	return nil
}
