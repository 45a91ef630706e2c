// Package query evaluates compound filter predicates over the tracker
// collection and maintains a grouped, sorted, live-updating result set.
package query

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/CaptainSharky/Tracker/internal/calendar"
	"github.com/CaptainSharky/Tracker/internal/logger"
	"github.com/CaptainSharky/Tracker/internal/models"
	"github.com/CaptainSharky/Tracker/internal/storage"
)

// Completion restricts results to trackers that were (or were not)
// completed on the given day.
type Completion struct {
	Day       string
	Completed bool
}

// Filter is a set of independently optional predicates. Active
// predicates combine with logical AND. A whitespace-only Search is
// treated as no filter.
type Filter struct {
	Weekday    *models.Weekday
	Search     string
	Completion *Completion
}

// Group is one category's slice of the result set, trackers sorted by
// title.
type Group struct {
	Title    string
	Trackers []models.Tracker
}

// Engine evaluates a Filter against the store and exposes the result as
// groups ordered by category title. It subscribes to store change
// notifications and re-evaluates on every mutation, notifying its
// observer once per change batch.
type Engine struct {
	store storage.Provider
	cal   *calendar.Calendar

	mu       sync.Mutex
	filter   Filter
	fetched  bool
	groups   []Group
	lastHash uint64
	onChange func()
}

func New(store storage.Provider, cal *calendar.Calendar) *Engine {
	e := &Engine{store: store, cal: cal}
	store.OnChange(e.storeChanged)
	return e
}

// SetOnChange registers the single observer callback. It fires after
// every PerformFetch and after any store mutation that actually changed
// the result set.
func (e *Engine) SetOnChange(fn func()) {
	e.mu.Lock()
	e.onChange = fn
	e.mu.Unlock()
}

// PerformFetch replaces the active filter and recomputes the grouped
// results. A malformed filter yields ErrInvalidModel; on a store failure
// the previous result set is kept.
func (e *Engine) PerformFetch(f Filter) error {
	if f.Weekday != nil && !f.Weekday.Valid() {
		return fmt.Errorf("filter weekday %d out of range: %w", int(*f.Weekday), storage.ErrInvalidModel)
	}
	if f.Completion != nil {
		if _, err := e.cal.ParseDay(f.Completion.Day); err != nil {
			return fmt.Errorf("filter completion day: %w", storage.ErrInvalidModel)
		}
	}
	f.Search = strings.TrimSpace(f.Search)

	e.mu.Lock()
	e.filter = f
	e.fetched = true
	_, err := e.reloadLocked()
	fn := e.onChange
	e.mu.Unlock()

	if err != nil {
		return err
	}
	if fn != nil {
		fn()
	}
	return nil
}

// storeChanged re-evaluates the active filter after a store mutation.
// Errors degrade to the unchanged previous result set.
func (e *Engine) storeChanged() {
	e.mu.Lock()
	if !e.fetched {
		e.mu.Unlock()
		return
	}
	changed, err := e.reloadLocked()
	fn := e.onChange
	e.mu.Unlock()

	if err != nil {
		logger.Warn("query refresh failed, keeping previous results", "error", err)
		return
	}
	if changed && fn != nil {
		fn()
	}
}

func (e *Engine) reloadLocked() (bool, error) {
	q := storage.TrackerQuery{}
	if e.filter.Weekday != nil {
		q.ScheduleMask = models.NewSchedule(*e.filter.Weekday).Mask()
	}
	q.TitleContains = e.filter.Search
	if c := e.filter.Completion; c != nil {
		if c.Completed {
			q.CompletedOn = c.Day
		} else {
			q.NotCompletedOn = c.Day
		}
	}

	rows, err := e.store.FindTrackers(q)
	if err != nil {
		return false, storage.Wrap("fetch trackers", err)
	}

	// Rows arrive ordered by category title, then tracker title; fold
	// consecutive categories into groups.
	var groups []Group
	for _, row := range rows {
		if len(groups) == 0 || groups[len(groups)-1].Title != row.Category {
			groups = append(groups, Group{Title: row.Category})
		}
		g := &groups[len(groups)-1]
		g.Trackers = append(g.Trackers, row.Tracker)
	}

	hash, err := hashstructure.Hash(groups, hashstructure.FormatV2, nil)
	if err != nil {
		return false, storage.Wrap("hash result set", err)
	}

	changed := hash != e.lastHash
	e.groups = groups
	e.lastHash = hash
	return changed, nil
}

func (e *Engine) NumberOfGroups() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.groups)
}

func (e *Engine) ItemsInGroup(i int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.groups[i].Trackers)
}

func (e *Engine) GroupTitle(i int) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.groups[i].Title
}

// TrackerAt returns the tracker at the given position. Out-of-range
// indices are a programming error and panic, mirroring read-only UI
// binding access.
func (e *Engine) TrackerAt(group, item int) models.Tracker {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.groups[group].Trackers[item]
}

// Groups returns a copy of the current result set.
func (e *Engine) Groups() []Group {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Group, len(e.groups))
	for i, g := range e.groups {
		trackers := make([]models.Tracker, len(g.Trackers))
		copy(trackers, g.Trackers)
		out[i] = Group{Title: g.Title, Trackers: trackers}
	}
	return out
}
