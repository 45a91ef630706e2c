package cli

import (
	"fmt"

	"github.com/CaptainSharky/Tracker/internal/logger"
	"github.com/CaptainSharky/Tracker/internal/stats"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	engine := stats.New(ctx.Store, ctx.Cal)
	s, err := engine.Compute()
	if err != nil {
		// Statistics degrade to zeros rather than failing the command.
		logger.Warn("statistics computation failed", "error", err)
	}

	if s.IsZero() {
		fmt.Println("Nothing to analyze yet. Complete a tracker to see statistics.")
		return nil
	}

	fmt.Printf("Best streak:       %d\n", s.BestStreak)
	fmt.Printf("Perfect days:      %d\n", s.PerfectDays)
	fmt.Printf("Total completions: %d\n", s.TotalCompletions)
	fmt.Printf("Average per day:   %d\n", s.AveragePerDay)
	return nil
}
