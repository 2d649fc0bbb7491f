package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Phonebook"))
	b.WriteString("\n")

	if msg := m.state.Notification; msg != nil {
		b.WriteString(notificationStyle.Render(msg.Text))
		b.WriteString("\n")
	}
	if msg := m.state.Error; msg != nil {
		b.WriteString(errorStyle.Render(msg.Text))
		b.WriteString("\n")
	}

	b.WriteString(m.field("filter", m.search, focusSearch))
	b.WriteString("\n\n")
	b.WriteString(m.field("name", m.name, focusName))
	b.WriteString("\n")
	b.WriteString(m.field("number", m.number, focusNumber))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Numbers"))
	b.WriteString("\n")
	b.WriteString(m.contactsView())

	if p := m.state.Pending; p != nil {
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(p.Prompt + " (y/n)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) field(label string, input interface{ View() string }, f focus) string {
	marker := "  "
	if m.focus == f && m.state.Pending == nil {
		marker = "> "
	}
	return marker + labelStyle.Render(label+":") + input.View()
}

func (m Model) contactsView() string {
	if !m.state.Loaded {
		return dimStyle.Render("  loading...") + "\n"
	}

	visible := m.state.Visible()
	if len(visible) == 0 {
		if len(m.state.Contacts) == 0 {
			return dimStyle.Render("  no contacts yet") + "\n"
		}
		return dimStyle.Render("  nothing matches the filter") + "\n"
	}

	nameWidth := 0
	for _, c := range visible {
		nameWidth = max(nameWidth, lipgloss.Width(c.Name))
	}

	var b strings.Builder
	for i, c := range visible {
		row := fmt.Sprintf("%-*s  %s", nameWidth, c.Name, numberStyle.Render(c.Number))
		if m.focus == focusList && i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpView() string {
	var keys help.KeyMap
	switch {
	case m.state.Pending != nil:
		keys = confirmHelp(m.keys)
	case m.focus == focusList:
		keys = listHelp(m.keys)
	default:
		keys = formHelp(m.keys)
	}
	return m.help.View(keys)
}
