package cli

import (
	"fmt"

	"github.com/CaptainSharky/Tracker/internal/models"
	"github.com/CaptainSharky/Tracker/internal/query"
)

type ListCmd struct {
	Weekday      string `help:"Only trackers scheduled on this weekday, e.g. 'mon'."`
	Search       string `help:"Case-insensitive title substring."`
	Completed    bool   `help:"Only trackers completed on the date."`
	NotCompleted bool   `help:"Only trackers not completed on the date."`
	Date         string `help:"Reference date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ListCmd) Run(ctx *Context) error {
	if c.Completed && c.NotCompleted {
		return fmt.Errorf("--completed and --not-completed are mutually exclusive")
	}

	day, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}

	f := query.Filter{Search: c.Search}
	if c.Weekday != "" {
		wd, err := models.ParseWeekday(c.Weekday)
		if err != nil {
			return err
		}
		f.Weekday = &wd
	}
	if c.Completed || c.NotCompleted {
		f.Completion = &query.Completion{Day: day, Completed: c.Completed}
	}

	eng := query.New(ctx.Store, ctx.Cal)
	if err := eng.PerformFetch(f); err != nil {
		return err
	}

	groups := eng.Groups()
	if len(groups) == 0 {
		fmt.Println("No trackers found.")
		return nil
	}
	return printGroups(ctx, groups, day)
}
