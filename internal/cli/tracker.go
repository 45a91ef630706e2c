package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/CaptainSharky/Tracker/internal/models"
)

type AddCmd struct {
	Title       string `arg:"" optional:"" help:"Tracker title."`
	Category    string `help:"Category title (default from settings)."`
	Emoji       string `help:"Emoji shown next to the title." default:"🙂"`
	Color       string `help:"Card color as #RRGGBB." default:"#FD4C49"`
	Schedule    string `help:"Scheduled weekdays, e.g. 'mon,wed,fri' or 'daily'. Empty for an irregular event."`
	Interactive bool   `short:"i" help:"Fill in the tracker with an interactive form."`
}

func (c *AddCmd) Run(ctx *Context) error {
	if c.Interactive {
		if err := c.prompt(ctx); err != nil {
			return err
		}
	}

	title := strings.TrimSpace(c.Title)
	if title == "" {
		return fmt.Errorf("tracker title cannot be empty")
	}
	if err := ValidateColor(c.Color); err != nil {
		return err
	}
	sched, err := ParseScheduleFlag(c.Schedule)
	if err != nil {
		return err
	}

	if _, err := ctx.Store.GetTrackerByTitle(title); err == nil {
		return fmt.Errorf("tracker with title %q already exists", title)
	}

	category := c.Category
	if category == "" {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		category = settings.DefaultCategory
	}

	tracker := models.Tracker{
		ID:        uuid.New().String(),
		Title:     title,
		Color:     c.Color,
		Emoji:     c.Emoji,
		Schedule:  sched,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddTracker(tracker, category); err != nil {
		return err
	}

	fmt.Printf("Added tracker: %s\n", title)
	return nil
}

func (c *AddCmd) prompt(ctx *Context) error {
	categories, err := ctx.Store.GetCategoryTitles()
	if err != nil {
		return err
	}
	options := make([]huh.Option[string], 0, len(categories))
	for _, cat := range categories {
		options = append(options, huh.NewOption(cat, cat))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&c.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("tracker title cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&c.Category),
			huh.NewInput().
				Title("Emoji").
				Value(&c.Emoji),
			huh.NewInput().
				Title("Color").
				Value(&c.Color).
				Validate(ValidateColor),
			huh.NewInput().
				Title("Schedule (e.g. mon,wed,fri; empty for irregular)").
				Value(&c.Schedule).
				Validate(func(s string) error {
					_, err := ParseScheduleFlag(s)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())

	return form.Run()
}

type EditCmd struct {
	Tracker  string  `arg:"" help:"Tracker title or id."`
	Title    string  `help:"New title."`
	Category string  `help:"Move to category."`
	Emoji    string  `help:"New emoji."`
	Color    string  `help:"New card color as #RRGGBB."`
	Schedule *string `help:"New schedule, e.g. 'mon,wed,fri'. Empty string clears the schedule."`
}

func (c *EditCmd) Run(ctx *Context) error {
	tracker, err := resolveTracker(ctx, c.Tracker)
	if err != nil {
		return err
	}

	if c.Title != "" {
		tracker.Title = strings.TrimSpace(c.Title)
		if tracker.Title == "" {
			return fmt.Errorf("tracker title cannot be empty")
		}
	}
	if c.Emoji != "" {
		tracker.Emoji = c.Emoji
	}
	if c.Color != "" {
		if err := ValidateColor(c.Color); err != nil {
			return err
		}
		tracker.Color = c.Color
	}
	if c.Schedule != nil {
		sched, err := ParseScheduleFlag(*c.Schedule)
		if err != nil {
			return err
		}
		tracker.Schedule = sched
	}

	if err := ctx.Store.UpdateTracker(tracker, c.Category); err != nil {
		return err
	}

	fmt.Printf("Updated tracker: %s\n", tracker.Title)
	return nil
}

type DeleteCmd struct {
	Tracker string `arg:"" help:"Tracker title or id."`
	Yes     bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	tracker, err := resolveTracker(ctx, c.Tracker)
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete tracker %q and all its records?", tracker.Title)).
					Value(&confirmed),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteTracker(tracker.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted tracker: %s\n", tracker.Title)
	return nil
}

type DoneCmd struct {
	Tracker string `arg:"" help:"Tracker title or id."`
	Date    string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DoneCmd) Run(ctx *Context) error {
	tracker, err := resolveTracker(ctx, c.Tracker)
	if err != nil {
		return err
	}

	day, err := resolveDay(ctx, c.Date)
	if err != nil {
		return err
	}
	at, err := ctx.Cal.ParseDay(day)
	if err != nil {
		return err
	}

	completed, err := ctx.Ledger().Toggle(tracker.ID, at)
	if err != nil {
		return err
	}

	if completed {
		fmt.Printf("Marked tracker %q for %s\n", tracker.Title, day)
	} else {
		fmt.Printf("Unmarked tracker %q for %s\n", tracker.Title, day)
	}
	return nil
}
