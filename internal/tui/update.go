package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CaptainSharky/Tracker/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.refresh()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % stateCount

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + stateCount) % stateCount

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.state == StateTrackers && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.state == StateTrackers && m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if m.state == StateTrackers {
			if t, ok := m.selected(); ok {
				if _, err := m.ledger.Toggle(t.ID, time.Now()); err == nil {
					m.refresh()
				}
			}
		}

	case key.Matches(msg, m.keys.Search):
		if m.state == StateTrackers {
			m.searching = true
			return m, m.search.Focus()
		}

	case key.Matches(msg, m.keys.Weekday):
		if m.state == StateTrackers {
			m.cycleWeekday()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Filter):
		if m.state == StateTrackers {
			m.completion = (m.completion + 1) % 3
			m.refresh()
		}

	case key.Matches(msg, m.keys.Clear):
		if m.state == StateTrackers {
			m.weekday = nil
			m.completion = filterNone
			m.search.SetValue("")
			m.refresh()
		}
	}

	return m, nil
}

// cycleWeekday steps the weekday filter through none, Monday..Sunday.
func (m *Model) cycleWeekday() {
	if m.weekday == nil {
		wd := models.Monday
		m.weekday = &wd
		return
	}
	next := *m.weekday + 1
	if !next.Valid() {
		m.weekday = nil
		return
	}
	m.weekday = &next
}
