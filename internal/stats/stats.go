// Package stats computes the aggregate numbers for the statistics
// screen: best streak, perfect days, total completions and daily
// average.
package stats

import (
	"math"

	"github.com/CaptainSharky/Tracker/internal/calendar"
	"github.com/CaptainSharky/Tracker/internal/models"
	"github.com/CaptainSharky/Tracker/internal/storage"
)

type Engine struct {
	store storage.Provider
	cal   *calendar.Calendar
}

func New(store storage.Provider, cal *calendar.Calendar) *Engine {
	return &Engine{store: store, cal: cal}
}

// Compute derives the statistics from the current trackers and
// completion records. On any store failure it returns zero-valued
// Statistics along with the error; there is no partial result.
func (e *Engine) Compute() (models.Statistics, error) {
	total, err := e.store.CountAllRecords()
	if err != nil {
		return models.Statistics{}, storage.Wrap("compute statistics", err)
	}

	dayCounts, err := e.store.RecordCountsByDay()
	if err != nil {
		return models.Statistics{}, storage.Wrap("compute statistics", err)
	}

	average := 0
	if len(dayCounts) > 0 {
		average = int(math.Round(float64(total) / float64(len(dayCounts))))
	}

	trackers, err := e.store.GetAllTrackers()
	if err != nil {
		return models.Statistics{}, storage.Wrap("compute statistics", err)
	}

	perfect, err := e.perfectDays(dayCounts, trackers)
	if err != nil {
		return models.Statistics{}, err
	}

	best, err := e.bestStreak(trackers)
	if err != nil {
		return models.Statistics{}, err
	}

	return models.Statistics{
		BestStreak:       best,
		PerfectDays:      perfect,
		TotalCompletions: total,
		AveragePerDay:    average,
	}, nil
}

// perfectDays counts the days where every tracker scheduled on that
// weekday was completed and nothing else was: the record count must
// equal the scheduled count exactly. Schedules are read once per pass,
// so the per-weekday scheduled counts are computed up front.
func (e *Engine) perfectDays(dayCounts map[string]int, trackers []models.Tracker) (int, error) {
	var scheduled [7]int
	for _, t := range trackers {
		for d := models.Monday; d <= models.Sunday; d++ {
			if t.Schedule.Contains(d) {
				scheduled[d]++
			}
		}
	}

	perfect := 0
	for day, count := range dayCounts {
		wd, err := e.cal.WeekdayOf(day)
		if err != nil {
			return 0, storage.Wrap("compute statistics", err)
		}
		if scheduled[wd] > 0 && count == scheduled[wd] {
			perfect++
		}
	}
	return perfect, nil
}

// bestStreak is the maximum over all trackers of the tracker's own
// longest streak.
func (e *Engine) bestStreak(trackers []models.Tracker) (int, error) {
	best := 0
	for _, t := range trackers {
		streak, err := e.trackerStreak(t)
		if err != nil {
			return 0, err
		}
		if streak > best {
			best = streak
		}
	}
	return best, nil
}

// trackerStreak walks the tracker's completion days in ascending order.
// A completion extends the streak only when it lands exactly on the next
// day the schedule fires after the previous completion; any miss resets
// the run to 1. A single completion counts as a streak of 1, an empty
// history as 0.
func (e *Engine) trackerStreak(t models.Tracker) (int, error) {
	days, err := e.store.RecordDaysForTracker(t.ID)
	if err != nil {
		return 0, storage.Wrap("compute statistics", err)
	}
	if len(days) == 0 {
		return 0, nil
	}

	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		expected, err := e.cal.NextScheduledDay(days[i-1], t.Schedule)
		if err != nil {
			return 0, storage.Wrap("compute statistics", err)
		}
		if days[i] == expected {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest, nil
}
