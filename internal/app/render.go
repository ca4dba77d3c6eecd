package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/chmouel/lazyfilter/internal/app/state"
	"github.com/chmouel/lazyfilter/internal/tree"
)

const (
	markSelected = "[x]"
	markPartial  = "[~]"
	markNone     = "[ ]"
	markExpanded = "▾"
	markFolded   = "▸"
	ellipsis     = "…"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.renderList()
	if m.view.ShowHelp {
		body = m.renderHelp()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
		m.renderCommandLine(),
	)
}

func (m *Model) renderHeader() string {
	style := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true).
		Padding(0, 1)
	content := fmt.Sprintf("lazyfilter  •  %s  •  %s selected", m.root.Path(), m.root.SizeLabel())
	return style.Render(m.fit(content, m.view.WindowWidth-2))
}

// renderList draws exactly listHeight rows so the footer never moves.
func (m *Model) renderList() string {
	rows := make([]string, 0, m.window.Height())
	for i, node := range m.window.Visible() {
		rows = append(rows, m.renderRow(node, m.window.Base()+i == m.window.Cursor()))
	}
	for len(rows) < m.window.Height() {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderRow(n *tree.Node, highlighted bool) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", n.Level()))
	switch {
	case !n.IsDir():
		b.WriteString("  ")
	case n.Collapsed():
		b.WriteString(markFolded + " ")
	default:
		b.WriteString(markExpanded + " ")
	}
	b.WriteString(selectionMark(n))
	b.WriteString(" ")
	if m.config.ShowIcons {
		if icon := iconForNode(n); icon != "" {
			b.WriteString(icon + " ")
		}
	}
	b.WriteString(n.Name())
	if n.IsDir() && n.Parent() != nil {
		b.WriteString("/")
	}
	left := b.String()

	line := left
	if m.config.ShowSizes {
		right := n.SizeLabel()
		width := m.view.WindowWidth
		if width <= 0 {
			line = left + "  " + right
		} else {
			left = m.fit(left, width-lipgloss.Width(right)-1)
			gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
			line = left + strings.Repeat(" ", gap) + right
		}
	} else {
		line = m.fit(line, m.view.WindowWidth)
	}

	style := lipgloss.NewStyle().Foreground(m.rowColor(n))
	if highlighted {
		style = style.Reverse(true)
	}
	return style.Render(line)
}

func selectionMark(n *tree.Node) string {
	switch {
	case n.Selected():
		return markSelected
	case n.SelectedBelow():
		return markPartial
	default:
		return markNone
	}
}

func (m *Model) rowColor(n *tree.Node) lipgloss.Color {
	switch selectionMark(n) {
	case markSelected:
		return m.theme.Selected
	case markPartial:
		return m.theme.Partial
	}
	if n.IsDir() {
		return m.theme.Directory
	}
	return m.theme.TextFg
}

func (m *Model) renderHelp() string {
	content := m.help.FullHelpView(m.registry.FullHelp())
	lines := strings.Split(content, "\n")
	for len(lines) < m.window.Height() {
		lines = append(lines, "")
	}
	return strings.Join(lines[:m.window.Height()], "\n")
}

func (m *Model) renderFooter() string {
	hint := m.help.ShortHelpView(m.registry.ShortHelp())
	position := ""
	if !m.window.IsEmpty() {
		position = fmt.Sprintf("%d/%d", m.window.Cursor()+1, m.window.Len())
	}
	style := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	return hint + "  " + style.Render(position)
}

func (m *Model) renderCommandLine() string {
	if m.view.Mode != state.ModeCommand {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(m.theme.TextFg)
	if m.command.Message() != "" {
		style = style.Foreground(m.theme.ErrorFg).Bold(true)
	}
	return style.Render(m.fit(m.command.Text(), m.view.WindowWidth))
}

// fit truncates s to width cells; a non-positive width leaves s untouched.
func (m *Model) fit(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}
