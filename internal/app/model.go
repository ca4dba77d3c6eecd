// Package app implements the interactive selection browser.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/lazyfilter/internal/app/commands"
	"github.com/chmouel/lazyfilter/internal/app/state"
	"github.com/chmouel/lazyfilter/internal/config"
	"github.com/chmouel/lazyfilter/internal/log"
	"github.com/chmouel/lazyfilter/internal/theme"
	"github.com/chmouel/lazyfilter/internal/tree"
)

const (
	// rows used by the header, the footer and the command line
	chromeHeight      = 3
	defaultListHeight = 20

	invalidCommandMessage = "Not a valid command."
)

// Model is the session: it owns the selection tree and the current window
// and command line, and exposes the actions the key dispatcher invokes.
type Model struct {
	config   *config.AppConfig
	theme    *theme.Theme
	root     *tree.Node
	registry *commands.Registry
	help     help.Model

	view    state.ViewState
	window  state.Window[*tree.Node]
	command state.CommandLine

	rules    []string
	exported bool
	quitting bool
}

// NewModel creates the browser over root.
func NewModel(cfg *config.AppConfig, root *tree.Node) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if !cfg.StartCollapsed {
		tree.SetCollapsedAll(root, false)
	}

	thm := theme.GetTheme(cfg.Theme)
	m := &Model{
		config:   cfg,
		theme:    thm,
		root:     root,
		registry: commands.NewRegistry(),
		help:     newHelp(thm),
		window:   state.EmptyWindow[*tree.Node](defaultListHeight).Append(tree.Flatten(root)...),
		command:  state.NewCommandLine(cfg.CommandKey),
	}
	commands.RegisterSessionActions(m.registry, m.handlers(), cfg.Keys)
	log.Printf("session: %d visible of %d entries under %s", m.window.Len(), tree.Count(root), root.Path())
	return m
}

func newHelp(thm *theme.Theme) help.Model {
	h := help.New()
	h.ShowAll = true
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(thm.Accent).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(thm.MutedFg)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(thm.Border)
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortSeparator
	return h
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWindowSize(msg.Width, msg.Height)
		return m, nil
	case clearCommandMsg:
		m.command = m.command.Clear()
		m.view.Rejecting = false
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) setWindowSize(width, height int) {
	m.view.WindowWidth = width
	m.view.WindowHeight = height
	m.help.Width = width
	m.window = m.window.Resize(m.listHeight())
}

func (m *Model) listHeight() int {
	if m.view.WindowHeight == 0 {
		return defaultListHeight
	}
	return max(m.view.WindowHeight-chromeHeight, 1)
}

// refreshView re-derives the flattened rows after a tree mutation.
func (m *Model) refreshView() {
	m.window = m.window.Refresh(tree.Flatten(m.root))
}

func (m *Model) current() (*tree.Node, bool) {
	return m.window.Current()
}

// Rules returns the exported filter rules; empty unless Exported.
func (m *Model) Rules() []string { return m.rules }

// Exported reports whether the session ended through the export action.
func (m *Model) Exported() bool { return m.exported }

// Mode returns the active input mode.
func (m *Model) Mode() state.Mode { return m.view.Mode }
