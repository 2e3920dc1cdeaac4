package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smirnovmx/subtrack/internal/view"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("239")).
			Padding(0, 1)
)

// View отрисовывает интерфейс.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SubTrack"))
	b.WriteString("\n\n")

	if m.mode == modeForm {
		b.WriteString(m.renderForm())
		return b.String()
	}

	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	visible := m.visible()
	b.WriteString(m.renderTable(visible))
	b.WriteString("\n")

	stats := view.Count(visible)
	b.WriteString(statusBarStyle.Render(
		fmt.Sprintf("total: %d, active: %d | filter: %s | sort: %s",
			stats.Total, stats.Active, m.status, sortLabel(m.sortBy))))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(statusBarStyle.Render(m.spinner.View() + " loading..."))
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("error: " + m.errMsg))
	case m.mode == modeConfirmDelete:
		b.WriteString(errorStyle.Render(
			fmt.Sprintf("delete subscription %s? (y/n)", m.pendingDelete)))
	case m.statusMsg != "":
		b.WriteString(statusBarStyle.Render(m.statusMsg))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("a: add  e: edit  d: delete  /: search  f: filter  s: sort  r: refresh  q: quit"))
	return b.String()
}

func (m Model) renderTable(entries []view.Entry) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-20s %-15s %-10s %-12s %-12s %-8s",
		"ID", "NAME", "USERNAME", "STATUS", "START", "EXPIRY", "USER")))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(statusBarStyle.Render("no subscriptions"))
		b.WriteString("\n")
		return b.String()
	}

	for i, e := range entries {
		status := inactiveStyle.Render("inactive")
		if e.Active {
			status = activeStyle.Render("active")
		}
		row := fmt.Sprintf("%-4s %-20s %-15s %-10s %-12s %-12s %-8v",
			e.ID, truncate(orNA(e.Name), 20), truncate(orNA(e.Username), 15),
			status, orNA(e.StartDate), orNA(e.ExpiryDate), e.UserID)
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderForm() string {
	var b strings.Builder

	title := "New subscription"
	if id, ok := m.formMode.EditID(); ok {
		title = "Edit subscription " + id
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	for i := range m.form {
		b.WriteString(m.form[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.loading {
		b.WriteString(statusBarStyle.Render(m.spinner.View() + " saving..."))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("error: " + m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: next/submit  tab: next field  esc: cancel"))
	return b.String()
}

func sortLabel(s view.SortBy) string {
	if s == "" {
		return "none"
	}
	return string(s)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
