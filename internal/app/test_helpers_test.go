package app

import (
	"testing"
	"testing/fstest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazyfilter/internal/config"
	"github.com/chmouel/lazyfilter/internal/theme"
	"github.com/chmouel/lazyfilter/internal/tree"
)

const testRoot = "/r"

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"a":       {Data: make([]byte, 100)},
		"d/b":     {Data: make([]byte, 50)},
		"d/c":     {Data: make([]byte, 10)},
		"d/sub/x": {Data: make([]byte, 1)},
		"e":       {Data: make([]byte, 7)},
	}
}

func testConfig() *config.AppConfig {
	cfg := config.DefaultConfig()
	cfg.Theme = theme.DraculaName
	cfg.ShowIcons = false
	cfg.RejectDelay = 10 * time.Millisecond
	return cfg
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return newTestModelWithConfig(t, testConfig())
}

func newTestModelWithConfig(t *testing.T, cfg *config.AppConfig) *Model {
	t.Helper()
	root, err := tree.Build(testFS(), testRoot)
	require.NoError(t, err)
	return NewModel(cfg, root)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keySpace() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// typeCommand enters command mode, types text and submits it.
func typeCommand(m *Model, text string) tea.Cmd {
	press(m, keyRunes(":"))
	for _, r := range text {
		if r == ' ' {
			press(m, keySpace())
			continue
		}
		press(m, keyRunes(string(r)))
	}
	return press(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func currentRel(t *testing.T, m *Model) string {
	t.Helper()
	node, ok := m.current()
	require.True(t, ok)
	return node.Rel()
}

func visibleRels(m *Model) []string {
	out := []string{}
	for _, n := range m.window.Lines() {
		out = append(out, n.Rel())
	}
	return out
}
