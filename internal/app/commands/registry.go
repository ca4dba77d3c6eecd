// Package commands holds the fixed table of session actions reachable from
// key bindings and from command entry.
package commands

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	sectionNavigation = "Navigation"
	sectionTree       = "Tree"
	sectionSession    = "Session"
)

// Action IDs. They double as the names accepted by command entry.
const (
	ActionDown        = "down"
	ActionUp          = "up"
	ActionPageDown    = "page_down"
	ActionPageUp      = "page_up"
	ActionTop         = "top"
	ActionBottom      = "bottom"
	ActionExpand      = "expand"
	ActionCollapse    = "collapse"
	ActionToggle      = "toggle"
	ActionExpandAll   = "expand_all"
	ActionCollapseAll = "collapse_all"
	ActionHelp        = "help"
	ActionDump        = "dump"
	ActionQuit        = "quit"
)

// Action describes one named session action.
type Action struct {
	ID          string
	Label       string
	Description string
	Section     string
	Aliases     []string
	Binding     key.Binding // disabled for actions only reachable by name
	Handler     func() tea.Cmd
}

// Registry stores the actions in registration order.
type Registry struct {
	actions []Action
	byName  map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds actions. IDs and aliases are matched case-insensitively.
func (r *Registry) Register(actions ...Action) {
	for _, action := range actions {
		idx := len(r.actions)
		r.actions = append(r.actions, action)
		for _, name := range append([]string{action.ID}, action.Aliases...) {
			if name = strings.ToLower(name); name != "" {
				r.byName[name] = idx
			}
		}
	}
}

// Actions returns the registered actions in order.
func (r *Registry) Actions() []Action {
	return r.actions
}

// Lookup finds the action named by user-typed text.
func (r *Registry) Lookup(name string) (Action, bool) {
	idx, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Action{}, false
	}
	return r.actions[idx], true
}

// Match returns the action bound to msg.
func (r *Registry) Match(msg tea.KeyMsg) (Action, bool) {
	for _, action := range r.actions {
		if key.Matches(msg, action.Binding) {
			return action, true
		}
	}
	return Action{}, false
}

// Execute runs the handler of the named action. Unknown names report false.
func (r *Registry) Execute(name string) (tea.Cmd, bool) {
	action, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	if action.Handler == nil {
		return nil, true
	}
	return action.Handler(), true
}

// ShortHelp implements help.KeyMap.
func (r *Registry) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, id := range []string{ActionToggle, ActionExpand, ActionCollapse, ActionDump, ActionQuit, ActionHelp} {
		if action, ok := r.Lookup(id); ok && action.Binding.Enabled() {
			out = append(out, action.Binding)
		}
	}
	return out
}

// FullHelp implements help.KeyMap, one column per section.
func (r *Registry) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, section := range []string{sectionNavigation, sectionTree, sectionSession} {
		var column []key.Binding
		for _, action := range r.actions {
			if action.Section == section && action.Binding.Enabled() {
				column = append(column, action.Binding)
			}
		}
		if len(column) > 0 {
			out = append(out, column)
		}
	}
	return out
}

// Handlers holds the session callbacks behind each action.
type Handlers struct {
	Down        func() tea.Cmd
	Up          func() tea.Cmd
	PageDown    func() tea.Cmd
	PageUp      func() tea.Cmd
	Top         func() tea.Cmd
	Bottom      func() tea.Cmd
	Expand      func() tea.Cmd
	Collapse    func() tea.Cmd
	Toggle      func() tea.Cmd
	ExpandAll   func() tea.Cmd
	CollapseAll func() tea.Cmd
	Help        func() tea.Cmd
	Dump        func() tea.Cmd
	Quit        func() tea.Cmd
}

// DefaultKeys returns the built-in key bindings per action.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		ActionDown:     {"j", "down"},
		ActionUp:       {"k", "up"},
		ActionPageDown: {"pgdown", "ctrl+f"},
		ActionPageUp:   {"pgup", "ctrl+b"},
		ActionTop:      {"g", "home"},
		ActionBottom:   {"G", "end"},
		ActionExpand:   {"l", "right"},
		ActionCollapse: {"h", "left"},
		ActionToggle:   {" ", "x"},
		ActionHelp:     {"?"},
		ActionDump:     {"w", "ctrl+s"},
		ActionQuit:     {"q", "ctrl+c"},
	}
}

func binding(keys []string, help string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	label := keys[0]
	if label == " " {
		label = "space"
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, help))
}

// RegisterSessionActions registers every session action. overrides replaces
// the default keys of the actions it names.
func RegisterSessionActions(r *Registry, h Handlers, overrides map[string][]string) {
	keys := DefaultKeys()
	for id, list := range overrides {
		keys[strings.ToLower(id)] = list
	}
	bind := func(id, help string) key.Binding { return binding(keys[id], help) }

	r.Register(
		Action{ID: ActionDown, Label: "Move down", Description: "Move the cursor one row down", Section: sectionNavigation, Aliases: []string{"cursor_down"}, Binding: bind(ActionDown, "down"), Handler: h.Down},
		Action{ID: ActionUp, Label: "Move up", Description: "Move the cursor one row up", Section: sectionNavigation, Aliases: []string{"cursor_up"}, Binding: bind(ActionUp, "up"), Handler: h.Up},
		Action{ID: ActionPageDown, Label: "Page down", Description: "Scroll one page forward", Section: sectionNavigation, Aliases: []string{"pagedown", "page_forward"}, Binding: bind(ActionPageDown, "page down"), Handler: h.PageDown},
		Action{ID: ActionPageUp, Label: "Page up", Description: "Scroll one page backward", Section: sectionNavigation, Aliases: []string{"pageup", "page_backward"}, Binding: bind(ActionPageUp, "page up"), Handler: h.PageUp},
		Action{ID: ActionTop, Label: "Top", Description: "Jump to the first row", Section: sectionNavigation, Aliases: []string{"jump_top"}, Binding: bind(ActionTop, "top"), Handler: h.Top},
		Action{ID: ActionBottom, Label: "Bottom", Description: "Jump to the last row", Section: sectionNavigation, Aliases: []string{"jump_bottom"}, Binding: bind(ActionBottom, "bottom"), Handler: h.Bottom},
	)

	r.Register(
		Action{ID: ActionExpand, Label: "Expand", Description: "Show the children of the current directory", Section: sectionTree, Binding: bind(ActionExpand, "expand"), Handler: h.Expand},
		Action{ID: ActionCollapse, Label: "Collapse", Description: "Hide the children of the current directory", Section: sectionTree, Binding: bind(ActionCollapse, "collapse"), Handler: h.Collapse},
		Action{ID: ActionToggle, Label: "Toggle", Description: "Toggle selection of the current entry", Section: sectionTree, Aliases: []string{"select"}, Binding: bind(ActionToggle, "toggle"), Handler: h.Toggle},
		Action{ID: ActionExpandAll, Label: "Expand all", Description: "Expand every directory", Section: sectionTree, Binding: bind(ActionExpandAll, "expand all"), Handler: h.ExpandAll},
		Action{ID: ActionCollapseAll, Label: "Collapse all", Description: "Collapse every directory", Section: sectionTree, Binding: bind(ActionCollapseAll, "collapse all"), Handler: h.CollapseAll},
	)

	r.Register(
		Action{ID: ActionHelp, Label: "Help", Description: "Toggle the key binding overview", Section: sectionSession, Binding: bind(ActionHelp, "help"), Handler: h.Help},
		Action{ID: ActionDump, Label: "Export", Description: "Print the filter rules and exit", Section: sectionSession, Aliases: []string{"export", "write"}, Binding: bind(ActionDump, "export"), Handler: h.Dump},
		Action{ID: ActionQuit, Label: "Quit", Description: "Exit without exporting", Section: sectionSession, Aliases: []string{"exit"}, Binding: bind(ActionQuit, "quit"), Handler: h.Quit},
	)
}
