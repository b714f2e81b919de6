package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydehq/gamedesc/internal/report"
	"github.com/mydehq/gamedesc/internal/types"
)

func newFixture(t *testing.T) (Model, string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "psx")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "gamelist.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<gameList>
  <game><name>ridge racer</name><path>./Ridge Racer.chd</path></game>
  <game><name>final fantasy VII</name><path>./ff7.m3u</path></game>
  <game><name>final fantasy VII</name><path>./ff7 (Disc 1).chd</path><hidden>true</hidden></game>
</gameList>`), 0o644))

	out := filepath.Join(root, "report.csv")
	platforms := []types.Platform{{Label: "psx", Path: path}}
	m := NewModel(root, platforms, func(string) string { return "Sony PlayStation" }, out)
	return m, out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModel_ScanBrowseExport(t *testing.T) {
	m, out := newFixture(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, cmd := update(t, m, key("enter"))
	assert.Equal(t, stateScanning, m.state)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, stateBrowsing, m.state)
	require.Len(t, m.visible, 2)
	assert.Equal(t, "Final Fantasy VII", m.visible[0].Title)
	assert.Equal(t, report.MultiM3U, m.visible[0].EntryType)
	assert.Contains(t, m.View(), "2 of 2 rows")

	m, cmd = update(t, m, key("e"))
	assert.Equal(t, stateExporting, m.state)
	m, _ = update(t, m, cmd())
	assert.Equal(t, stateFinished, m.state)
	assert.Positive(t, m.written)
	assert.FileExists(t, out)
	assert.Contains(t, m.View(), "EXPORTED")
}

func TestModel_Filter(t *testing.T) {
	m, _ := newFixture(t)
	m, cmd := update(t, m, key("enter"))
	m, _ = update(t, m, cmd())

	m, _ = update(t, m, key("/"))
	assert.Equal(t, stateFilter, m.state)
	for _, r := range "ridge" {
		m, _ = update(t, m, key(string(r)))
	}
	m, _ = update(t, m, key("enter"))
	assert.Equal(t, stateBrowsing, m.state)
	assert.Equal(t, "ridge", m.filter)
	require.Len(t, m.visible, 1)
	assert.Equal(t, "Ridge Racer", m.visible[0].Title)

	m, _ = update(t, m, key("/"))
	m, _ = update(t, m, key("esc"))
	assert.Equal(t, stateBrowsing, m.state)
	assert.Equal(t, "ridge", m.filter, "esc keeps the applied filter")
}

func TestModel_ExportError(t *testing.T) {
	m, _ := newFixture(t)
	m.output = filepath.Join(t.TempDir(), "missing", "report.csv")
	m, cmd := update(t, m, key("enter"))
	m, _ = update(t, m, cmd())

	m, cmd = update(t, m, key("e"))
	m, _ = update(t, m, cmd())
	assert.Equal(t, stateBrowsing, m.state)
	assert.Error(t, m.err)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newFixture(t)
	m, cmd := update(t, m, key("q"))
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, "Bye!\n", m.View())
}
