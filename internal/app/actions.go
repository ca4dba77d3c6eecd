package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazyfilter/internal/app/commands"
	"github.com/chmouel/lazyfilter/internal/filter"
	"github.com/chmouel/lazyfilter/internal/log"
	"github.com/chmouel/lazyfilter/internal/tree"
)

func (m *Model) handlers() commands.Handlers {
	return commands.Handlers{
		Down:        m.cursorDown,
		Up:          m.cursorUp,
		PageDown:    m.pageForward,
		PageUp:      m.pageBackward,
		Top:         m.jumpTop,
		Bottom:      m.jumpBottom,
		Expand:      m.expand,
		Collapse:    m.collapse,
		Toggle:      m.toggle,
		ExpandAll:   m.expandAll,
		CollapseAll: m.collapseAll,
		Help:        m.toggleHelp,
		Dump:        m.dump,
		Quit:        m.quit,
	}
}

func (m *Model) cursorDown() tea.Cmd {
	m.window = m.window.CursorDown()
	return nil
}

func (m *Model) cursorUp() tea.Cmd {
	m.window = m.window.CursorUp()
	return nil
}

func (m *Model) pageForward() tea.Cmd {
	m.window = m.window.PageForward()
	return nil
}

func (m *Model) pageBackward() tea.Cmd {
	m.window = m.window.PageBackward()
	return nil
}

func (m *Model) jumpTop() tea.Cmd {
	m.window = m.window.JumpTop()
	return nil
}

func (m *Model) jumpBottom() tea.Cmd {
	m.window = m.window.JumpBottom()
	return nil
}

// expand shows the children of the current directory, keeping the cursor
// on it.
func (m *Model) expand() tea.Cmd {
	node, ok := m.current()
	if !ok || !node.IsDir() {
		return nil
	}
	node.SetCollapsed(false)
	m.refreshView()
	return nil
}

func (m *Model) collapse() tea.Cmd {
	node, ok := m.current()
	if !ok || !node.IsDir() {
		return nil
	}
	node.SetCollapsed(true)
	m.refreshView()
	return nil
}

// toggle flips the selection of the current entry and advances the cursor.
func (m *Model) toggle() tea.Cmd {
	node, ok := m.current()
	if !ok {
		return nil
	}
	node.ToggleSelected()
	m.refreshView()
	m.window = m.window.CursorDown()
	return nil
}

func (m *Model) expandAll() tea.Cmd {
	tree.SetCollapsedAll(m.root, false)
	m.refreshView()
	return nil
}

func (m *Model) collapseAll() tea.Cmd {
	tree.SetCollapsedAll(m.root, true)
	m.refreshView()
	m.window = m.window.JumpTop()
	return nil
}

func (m *Model) toggleHelp() tea.Cmd {
	m.view.ShowHelp = !m.view.ShowHelp
	return nil
}

// dump records the filter rules for the selection and ends the session.
func (m *Model) dump() tea.Cmd {
	m.rules = filter.Rules(m.root)
	m.exported = true
	m.quitting = true
	log.Printf("session: exported %d rules", len(m.rules))
	return tea.Quit
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	log.Printf("session: quit without export")
	return tea.Quit
}
