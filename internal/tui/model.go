package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CaptainSharky/Tracker/internal/calendar"
	"github.com/CaptainSharky/Tracker/internal/ledger"
	"github.com/CaptainSharky/Tracker/internal/models"
	"github.com/CaptainSharky/Tracker/internal/query"
	"github.com/CaptainSharky/Tracker/internal/stats"
	"github.com/CaptainSharky/Tracker/internal/storage"
)

type SessionState int

const (
	StateTrackers SessionState = iota
	StateStats
)

const stateCount = 2

// completion filter cycle: none, completed today, not completed today
type completionFilter int

const (
	filterNone completionFilter = iota
	filterCompleted
	filterNotCompleted
)

// item is one selectable line of the grouped tracker list.
type item struct {
	tracker models.Tracker
	done    bool
}

// section is a category with its visible trackers.
type section struct {
	title string
	items []item
}

type Model struct {
	store  storage.Provider
	cal    *calendar.Calendar
	engine *query.Engine
	ledger *ledger.Ledger
	stats  *stats.Engine

	state     SessionState
	keys      KeyMap
	help      help.Model
	search    textinput.Model
	searching bool

	weekday    *models.Weekday
	completion completionFilter

	sections   []section
	cursor     int
	statistics models.Statistics
	statsErr   error

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, cal *calendar.Calendar) Model {
	search := textinput.New()
	search.Placeholder = "title contains..."
	search.CharLimit = 64

	m := Model{
		store:  store,
		cal:    cal,
		engine: query.New(store, cal),
		ledger: ledger.New(store, cal),
		stats:  stats.New(store, cal),
		state:  StateTrackers,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		search: search,
	}
	m.refresh()
	return m
}

// refresh re-runs the active filter and rebuilds the visible sections.
func (m *Model) refresh() {
	f := query.Filter{
		Weekday: m.weekday,
		Search:  m.search.Value(),
	}
	switch m.completion {
	case filterCompleted:
		f.Completion = &query.Completion{Day: m.cal.Today(), Completed: true}
	case filterNotCompleted:
		f.Completion = &query.Completion{Day: m.cal.Today(), Completed: false}
	}

	if err := m.engine.PerformFetch(f); err != nil {
		return
	}

	today := m.cal.Today()
	var sections []section
	total := 0
	for _, g := range m.engine.Groups() {
		sec := section{title: g.Title}
		for _, t := range g.Trackers {
			done, err := m.store.HasRecord(t.ID, today)
			if err != nil {
				done = false
			}
			sec.items = append(sec.items, item{tracker: t, done: done})
			total++
		}
		sections = append(sections, sec)
	}
	m.sections = sections
	if m.cursor >= total {
		m.cursor = total - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.statistics, m.statsErr = m.stats.Compute()
}

// itemCount returns the number of selectable trackers.
func (m Model) itemCount() int {
	n := 0
	for _, s := range m.sections {
		n += len(s.items)
	}
	return n
}

// selected returns the tracker under the cursor.
func (m Model) selected() (models.Tracker, bool) {
	i := 0
	for _, s := range m.sections {
		for _, it := range s.items {
			if i == m.cursor {
				return it.tracker, true
			}
			i++
		}
	}
	return models.Tracker{}, false
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateTrackers {
		keys = append(keys, m.keys.Enter, m.keys.Search, m.keys.Weekday, m.keys.Filter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	var actions []key.Binding
	if m.state == StateTrackers {
		actions = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Search, m.keys.Weekday, m.keys.Filter, m.keys.Clear}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
