// Package ledger owns the set of (tracker, day) completion facts.
package ledger

import (
	"errors"
	"sync"
	"time"

	"github.com/CaptainSharky/Tracker/internal/calendar"
	"github.com/CaptainSharky/Tracker/internal/models"
	"github.com/CaptainSharky/Tracker/internal/storage"
)

// Ledger exposes toggle/query/count operations over completion records.
// All timestamps are normalized to calendar days before they touch the
// store, so completion is a boolean fact per tracker per day.
type Ledger struct {
	mu    sync.Mutex
	store storage.Provider
	cal   *calendar.Calendar
}

func New(store storage.Provider, cal *calendar.Calendar) *Ledger {
	return &Ledger{store: store, cal: cal}
}

func (l *Ledger) IsCompleted(trackerID string, at time.Time) (bool, error) {
	done, err := l.store.HasRecord(trackerID, l.cal.DayOf(at))
	if err != nil {
		return false, storage.Wrap("check completion", err)
	}
	return done, nil
}

// Toggle flips the completion state for the tracker on the given day and
// reports the new state. Toggle is a read-then-write, so the ledger mutex
// serializes it against concurrent callers. A tracker that does not exist
// yields ErrNotFound and no mutation.
func (l *Ledger) Toggle(trackerID string, at time.Time) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.store.GetTracker(trackerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, err
		}
		return false, storage.Wrap("toggle completion", err)
	}

	day := l.cal.DayOf(at)

	done, err := l.store.HasRecord(trackerID, day)
	if err != nil {
		return false, storage.Wrap("toggle completion", err)
	}

	if done {
		if err := l.store.DeleteRecord(trackerID, day); err != nil {
			return false, storage.Wrap("toggle completion", err)
		}
		return false, nil
	}

	if err := l.store.AddRecord(models.CompletionRecord{TrackerID: trackerID, Day: day}); err != nil {
		return false, storage.Wrap("toggle completion", err)
	}
	return true, nil
}

// CompletionCount returns the lifetime number of completions for the
// tracker.
func (l *Ledger) CompletionCount(trackerID string) (int, error) {
	count, err := l.store.CountRecords(trackerID)
	if err != nil {
		return 0, storage.Wrap("count completions", err)
	}
	return count, nil
}

// RecordsOn returns all completion records on the day containing at.
func (l *Ledger) RecordsOn(at time.Time) ([]models.CompletionRecord, error) {
	records, err := l.store.RecordsForDay(l.cal.DayOf(at))
	if err != nil {
		return nil, storage.Wrap("list completions", err)
	}
	return records, nil
}

// CompletionDays returns the tracker's completion days in ascending
// order.
func (l *Ledger) CompletionDays(trackerID string) ([]string, error) {
	days, err := l.store.RecordDaysForTracker(trackerID)
	if err != nil {
		return nil, storage.Wrap("list completion days", err)
	}
	return days, nil
}
