package movelog

import (
	"fmt"

	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

// Target is what a log is replayed into.
type Target interface {
	ApplyToken(token string) error
	Undo() (types.Move, error)
	Reset()
}

// Replay feeds every move, undo and reset event of log to t in order.
// Validate events are skipped. It stops at the first event t rejects.
func Replay(log *Log, t Target) error {
	for i, e := range log.Events {
		var err error
		switch e.EventType {
		case EventMove:
			err = t.ApplyToken(e.Move)
		case EventUndo:
			var undone types.Move
			undone, err = t.Undo()
			if err == nil && e.Move != "" && undone.Notation() != e.Move {
				err = fmt.Errorf("undid %s, log says %s", undone.Notation(), e.Move)
			}
		case EventReset:
			t.Reset()
		}
		if err != nil {
			return fmt.Errorf("event %d (%s): %w", i+1, e.EventType, err)
		}
	}
	return nil
}
