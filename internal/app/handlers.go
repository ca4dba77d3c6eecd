package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazyfilter/internal/app/state"
	"github.com/chmouel/lazyfilter/internal/log"
)

const keyEsc = "esc"

// clearCommandMsg ends the pause after a rejected command.
type clearCommandMsg struct{}

// clearCommandAfter keeps the rejection message on screen for d.
func clearCommandAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCommandMsg{}
	})
}

// handleKeyMsg routes a keystroke to the active mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view.Rejecting {
		// input during the rejection pause is dropped
		return m, nil
	}

	switch m.view.Mode {
	case state.ModeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleNavigationKey(msg)
	}
}

func (m *Model) handleNavigationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keyStr == m.config.CommandKey {
		m.setMode(state.ModeCommand)
		m.command = m.command.Clear()
		return m, nil
	}
	if keyStr == keyEsc && m.view.ShowHelp {
		m.view.ShowHelp = false
		return m, nil
	}

	action, ok := m.registry.Match(msg)
	if !ok || action.Handler == nil {
		return m, nil
	}
	return m, action.Handler()
}

func (m *Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.command = m.command.Clear()
		m.setMode(state.ModeNavigation)
		return m, nil

	case tea.KeyEnter:
		return m.submitCommand()

	case tea.KeyBackspace, tea.KeyDelete:
		m.command = m.command.DeleteChar()
		return m, nil

	case tea.KeySpace:
		m.command = m.command.WriteChar(' ')
		return m, nil

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.command = m.command.WriteChar(r)
		}
		return m, nil
	}
	return m, nil
}

// submitCommand runs the action named by the buffer. Unknown names show a
// rejection message for the configured delay and stay in command entry.
func (m *Model) submitCommand() (tea.Model, tea.Cmd) {
	name := m.command.Buffer()
	if _, ok := m.registry.Lookup(name); !ok {
		log.Printf("command: rejected %q", name)
		m.command = m.command.WithMessage(invalidCommandMessage)
		m.view.Rejecting = true
		return m, clearCommandAfter(m.config.RejectDelay)
	}

	m.command = m.command.Clear()
	m.setMode(state.ModeNavigation)
	cmd, _ := m.registry.Execute(name)
	return m, cmd
}

func (m *Model) setMode(mode state.Mode) {
	if m.view.Mode != mode {
		log.Printf("mode: %s -> %s", m.view.Mode, mode)
	}
	m.view.Mode = mode
}
