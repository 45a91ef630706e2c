package cli

import (
	"fmt"
	"strings"

	"github.com/CaptainSharky/Tracker/internal/models"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Change a setting."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	fmt.Printf("first-day-of-week: %s\n", settings.FirstDayOfWeek)
	fmt.Printf("default-category:  %s\n", settings.DefaultCategory)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name: first-day-of-week or default-category."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case "first-day-of-week":
		wd, err := models.ParseWeekday(c.Value)
		if err != nil {
			return err
		}
		settings.FirstDayOfWeek = strings.ToLower(wd.String())
	case "default-category":
		if c.Value == "" {
			return fmt.Errorf("default-category cannot be empty")
		}
		settings.DefaultCategory = c.Value
	default:
		return fmt.Errorf("unknown setting %q (expected first-day-of-week or default-category)", c.Key)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Set %s to %s\n", c.Key, c.Value)
	return nil
}
