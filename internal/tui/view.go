package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTrackers:
		content = m.viewTrackers()
	case StateStats:
		content = m.viewStats()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Trackers", "Statistics"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTrackers() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}
	if bar := m.filterBar(); bar != "" {
		b.WriteString(dimStyle.Render(bar))
		b.WriteString("\n\n")
	}

	if len(m.sections) == 0 {
		b.WriteString(dimStyle.Render("No trackers match. Add one with 'tracker add'."))
		return docStyle.Render(b.String())
	}

	i := 0
	for _, sec := range m.sections {
		b.WriteString(categoryStyle.Render(sec.title))
		b.WriteString("\n")
		for _, it := range sec.items {
			marker := "[ ]"
			if it.done {
				marker = doneStyle.Render("[x]")
			}
			line := fmt.Sprintf("%s %s %s", marker, it.tracker.Emoji, it.tracker.Title)
			if !it.tracker.Schedule.IsEmpty() {
				line += dimStyle.Render("  " + it.tracker.Schedule.String())
			}
			if i == m.cursor {
				line = selectedStyle.Render("> ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
			i++
		}
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) filterBar() string {
	var parts []string
	if m.weekday != nil {
		parts = append(parts, "weekday: "+m.weekday.String())
	}
	switch m.completion {
	case filterCompleted:
		parts = append(parts, "completed today")
	case filterNotCompleted:
		parts = append(parts, "not completed today")
	}
	return strings.Join(parts, " · ")
}

func (m Model) viewStats() string {
	if m.statsErr != nil {
		return docStyle.Render(dimStyle.Render("Statistics unavailable."))
	}
	if m.statistics.IsZero() {
		return docStyle.Render(dimStyle.Render("Nothing to analyze yet. Complete a tracker to see statistics."))
	}

	rows := []string{
		fmt.Sprintf("Best streak        %d", m.statistics.BestStreak),
		fmt.Sprintf("Perfect days       %d", m.statistics.PerfectDays),
		fmt.Sprintf("Total completions  %d", m.statistics.TotalCompletions),
		fmt.Sprintf("Average per day    %d", m.statistics.AveragePerDay),
	}
	return docStyle.Render(strings.Join(rows, "\n"))
}
