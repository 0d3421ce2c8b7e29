package cli

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubegroup"
	"github.com/SeamusWaldron/cubegroup/internal/movelog"
)

func keys(m tea.Model, input string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range input {
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

func newTestPlayModel(t *testing.T, log *movelog.Logger) *playModel {
	t.Helper()
	return newPlayModel(log, rand.New(rand.NewPCG(5, 5)))
}

func TestPlay_Turns(t *testing.T) {
	m := newTestPlayModel(t, nil)

	keys(m, "rU")
	assert.Equal(t, "R U'", cubegroup.FormatMoves(m.cube.History()))

	keys(m, "2f")
	assert.Equal(t, "R U' F2", cubegroup.FormatMoves(m.cube.History()))
	assert.False(t, m.half)

	// unmapped keys do nothing
	keys(m, "kw")
	assert.Len(t, m.cube.History(), 3)
}

func TestPlay_HalfToggle(t *testing.T) {
	m := newTestPlayModel(t, nil)
	keys(m, "2")
	assert.True(t, m.half)
	assert.Contains(t, m.View(), "Half turn")
	keys(m, "2")
	assert.False(t, m.half)
	keys(m, "l")
	assert.Equal(t, "L", cubegroup.FormatMoves(m.cube.History()))
}

func TestPlay_Undo(t *testing.T) {
	m := newTestPlayModel(t, nil)

	keys(m, "z")
	assert.ErrorIs(t, m.err, cubegroup.ErrNothingToUndo)

	keys(m, "rz")
	assert.NoError(t, m.err)
	assert.True(t, m.cube.IsSolved())
	assert.Equal(t, "Undid R", m.message)
	assert.Contains(t, m.View(), "SOLVED")
}

func TestPlay_ValidateAndReset(t *testing.T) {
	m := newTestPlayModel(t, nil)

	keys(m, "xxxv")
	require.NotNil(t, m.report)
	assert.True(t, m.report.Valid)
	assert.Len(t, m.cube.History(), 3)
	assert.Contains(t, m.View(), "VALID")

	keys(m, "0")
	assert.Nil(t, m.report)
	assert.True(t, m.cube.IsSolved())
	assert.Empty(t, m.cube.History())
	assert.Equal(t, "Reset", m.message)
}

func TestPlay_Quit(t *testing.T) {
	m := newTestPlayModel(t, nil)
	cmd := keys(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Bye.\n", m.View())

	m = newTestPlayModel(t, nil)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestPlay_View(t *testing.T) {
	m := newTestPlayModel(t, nil)
	for range 25 {
		keys(m, "r")
	}
	v := m.View()
	assert.Contains(t, v, "cubegroup")
	assert.Contains(t, v, "Moves: 25")
	assert.Contains(t, v, "... ")
	assert.Contains(t, v, "q=quit")
}

func TestPlay_WritesReplayableLog(t *testing.T) {
	dir := t.TempDir()
	log, err := movelog.Start(dir)
	require.NoError(t, err)

	m := newTestPlayModel(t, log)
	keys(m, "rUf2bzv")
	want := m.cube.State()
	require.NoError(t, log.Close())

	loaded, err := movelog.Load(log.FilePath())
	require.NoError(t, err)
	assert.Len(t, loaded.Events, 6)

	c := cubegroup.NewCube()
	require.NoError(t, movelog.Replay(loaded, c))
	assert.Equal(t, want, c.State())
	assert.Equal(t, dir, filepath.Dir(log.FilePath()))
}
