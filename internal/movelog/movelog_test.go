package movelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubegroup"
	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

func mustMove(t *testing.T, tok string) types.Move {
	t.Helper()
	m, err := types.ParseMove(tok)
	require.NoError(t, err)
	return m
}

func TestLogger_WriteAndLoad(t *testing.T) {
	l, err := Start(filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)

	require.NoError(t, l.LogMove(mustMove(t, "R")))
	require.NoError(t, l.LogMove(mustMove(t, "U'")))
	require.NoError(t, l.LogUndo(mustMove(t, "U'")))
	require.NoError(t, l.LogValidate(false, []string{"parity_mismatch"}))
	require.NoError(t, l.LogReset())
	require.NoError(t, l.Close())

	log, err := Load(l.FilePath())
	require.NoError(t, err)
	assert.Equal(t, Version, log.Version)
	assert.Equal(t, l.SessionID(), log.SessionID)
	require.Len(t, log.Events, 5)

	assert.Equal(t, EventMove, log.Events[0].EventType)
	assert.Equal(t, "R", log.Events[0].Move)
	assert.Equal(t, EventUndo, log.Events[2].EventType)
	assert.Equal(t, "U'", log.Events[2].Move)

	v := log.Events[3]
	assert.Equal(t, EventValidate, v.EventType)
	require.NotNil(t, v.Valid)
	assert.False(t, *v.Valid)
	assert.Equal(t, []string{"parity_mismatch"}, v.Violations)

	assert.Equal(t, EventReset, log.Events[4].EventType)
	for i := 1; i < len(log.Events); i++ {
		assert.GreaterOrEqual(t, log.Events[i].ElapsedMs, log.Events[i-1].ElapsedMs)
	}
}

func TestLogger_TailIsBounded(t *testing.T) {
	l, err := Start(t.TempDir())
	require.NoError(t, err)
	defer l.Close()

	moves := types.AllMoves()
	for i := range TailSize + 20 {
		require.NoError(t, l.LogMove(moves[i%len(moves)]))
	}

	tail := l.Tail()
	require.Len(t, tail, TailSize)
	// the first 20 events have been dropped
	assert.Equal(t, moves[20%len(moves)].Notation(), tail[0].Move)
	assert.Equal(t, moves[(TailSize+19)%len(moves)].Notation(), tail[TailSize-1].Move)

	log, err := Load(l.FilePath())
	require.NoError(t, err)
	assert.Len(t, log.Events, TailSize+20, "the file keeps every event")
}

func TestLogger_TailBeforeWrap(t *testing.T) {
	l, err := Start(t.TempDir())
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.LogReset())
	require.NoError(t, l.LogMove(mustMove(t, "F2")))
	tail := l.Tail()
	require.Len(t, tail, 2)
	assert.Equal(t, "F2", tail[1].Move)
}

func TestLogger_NilIsDisabled(t *testing.T) {
	var l *Logger
	assert.NoError(t, l.LogMove(mustMove(t, "R")))
	assert.NoError(t, l.LogReset())
	assert.Nil(t, l.Tail())
	assert.Empty(t, l.FilePath())
	assert.NoError(t, l.Close())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.jsonl"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.jsonl")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrNoHeader)

	noHeader := filepath.Join(dir, "noheader.jsonl")
	require.NoError(t, os.WriteFile(noHeader, []byte(`{"event_type":"move","move":"R"}`+"\n"), 0644))
	_, err = Load(noHeader)
	assert.ErrorIs(t, err, ErrNoHeader)

	garbage := filepath.Join(dir, "garbage.jsonl")
	require.NoError(t, os.WriteFile(garbage, []byte(`{"type":"header","version":"1.0"}`+"\nnot json\n"), 0644))
	_, err = Load(garbage)
	assert.ErrorContains(t, err, "line 2")
}

func TestReplay(t *testing.T) {
	l, err := Start(t.TempDir())
	require.NoError(t, err)

	live := cubegroup.NewCube()
	for _, tok := range []string{"R", "U", "F'", "L2"} {
		require.NoError(t, live.ApplyToken(tok))
		require.NoError(t, l.LogMove(mustMove(t, tok)))
	}
	undone, err := live.Undo()
	require.NoError(t, err)
	require.NoError(t, l.LogUndo(undone))
	require.NoError(t, l.LogValidate(true, nil))
	require.NoError(t, l.Close())

	log, err := Load(l.FilePath())
	require.NoError(t, err)

	replayed := cubegroup.NewCube()
	require.NoError(t, Replay(log, replayed))
	assert.Equal(t, live.State(), replayed.State())
	assert.Equal(t, "R U F'", cubegroup.FormatMoves(replayed.History()))
}

func TestReplay_Reset(t *testing.T) {
	log := &Log{Events: []Event{
		{EventType: EventMove, Move: "R"},
		{EventType: EventReset},
		{EventType: EventMove, Move: "U"},
	}}
	c := cubegroup.NewCube()
	require.NoError(t, Replay(log, c))
	assert.Equal(t, "U", cubegroup.FormatMoves(c.History()))
}

func TestReplay_StopsOnBadEvent(t *testing.T) {
	log := &Log{Events: []Event{
		{EventType: EventMove, Move: "R"},
		{EventType: EventMove, Move: "Q"},
		{EventType: EventMove, Move: "U"},
	}}
	c := cubegroup.NewCube()
	err := Replay(log, c)
	assert.ErrorIs(t, err, cubegroup.ErrInvalidMoveToken)
	assert.ErrorContains(t, err, "event 2")
	assert.Len(t, c.History(), 1)

	c.Reset()
	err = Replay(&Log{Events: []Event{{EventType: EventUndo, Move: "R"}}}, c)
	assert.ErrorIs(t, err, cubegroup.ErrNothingToUndo)
}
