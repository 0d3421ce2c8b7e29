// Package movelog records interaction sessions as JSON lines: a header
// followed by one event per line.
package movelog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

// Version is written to every log header.
const Version = "1.0"

// TailSize is how many recent events a Logger keeps in memory.
const TailSize = 500

// EventType identifies the type of logged event.
type EventType string

const (
	EventMove     EventType = "move"
	EventUndo     EventType = "undo"
	EventReset    EventType = "reset"
	EventValidate EventType = "validate"
)

// Event is a single logged event.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	ElapsedMs  int64     `json:"elapsed_ms"`
	EventType  EventType `json:"event_type"`
	Move       string    `json:"move,omitempty"`
	Valid      *bool     `json:"valid,omitempty"`
	Violations []string  `json:"violations,omitempty"`
}

// Header is the first line of a log file.
type Header struct {
	Type      string    `json:"type"`
	Version   string    `json:"version"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Log is a session read back from disk.
type Log struct {
	Header
	Events []Event
}

// Logger writes events to a JSONL file and keeps the most recent ones in
// memory. A zero Logger is disabled and drops every event.
type Logger struct {
	header    Header
	startTime time.Time
	file      *os.File
	tail      []Event
	next      int
	full      bool
}

// Start creates a new log file in dir and writes its header.
func Start(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	now := time.Now()
	id := uuid.New().String()
	filename := fmt.Sprintf("session_%s_%s.jsonl", now.Format("20060102_150405"), id[:8])

	file, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	l := &Logger{
		header: Header{
			Type:      "header",
			Version:   Version,
			SessionID: id,
			CreatedAt: now,
		},
		startTime: now,
		file:      file,
		tail:      make([]Event, TailSize),
	}
	if err := l.writeJSON(l.header); err != nil {
		file.Close()
		return nil, err
	}

	return l, nil
}

// SessionID returns the session's ID, or "" for a disabled logger.
func (l *Logger) SessionID() string {
	if l == nil {
		return ""
	}
	return l.header.SessionID
}

// LogMove logs an applied move.
func (l *Logger) LogMove(m types.Move) error {
	return l.record(Event{EventType: EventMove, Move: m.Notation()})
}

// LogUndo logs an undone move.
func (l *Logger) LogUndo(m types.Move) error {
	return l.record(Event{EventType: EventUndo, Move: m.Notation()})
}

// LogReset logs a reset to the solved state.
func (l *Logger) LogReset() error {
	return l.record(Event{EventType: EventReset})
}

// LogValidate logs the outcome of a validation.
func (l *Logger) LogValidate(valid bool, violations []string) error {
	return l.record(Event{EventType: EventValidate, Valid: &valid, Violations: violations})
}

func (l *Logger) record(e Event) error {
	if l == nil || l.file == nil {
		return nil
	}

	e.Timestamp = time.Now()
	e.ElapsedMs = e.Timestamp.Sub(l.startTime).Milliseconds()

	l.tail[l.next] = e
	l.next = (l.next + 1) % len(l.tail)
	if l.next == 0 {
		l.full = true
	}

	return l.writeJSON(e)
}

// Tail returns the most recent events, oldest first. At most TailSize
// events are kept.
func (l *Logger) Tail() []Event {
	if l == nil || l.tail == nil {
		return nil
	}
	if !l.full {
		out := make([]Event, l.next)
		copy(out, l.tail[:l.next])
		return out
	}
	out := make([]Event, 0, len(l.tail))
	out = append(out, l.tail[l.next:]...)
	return append(out, l.tail[:l.next]...)
}

func (l *Logger) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = l.file.Write(append(data, '\n'))
	return err
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// FilePath returns the current log file path.
func (l *Logger) FilePath() string {
	if l == nil || l.file == nil {
		return ""
	}
	return l.file.Name()
}

// ErrNoHeader is returned by Load for a file without a header line.
var ErrNoHeader = errors.New("movelog: missing header")

// Load reads a log file written by a Logger.
func Load(path string) (*Log, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	log := &Log{Events: make([]Event, 0)}

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if lineNum == 1 {
			if err := json.Unmarshal(line, &log.Header); err != nil {
				return nil, fmt.Errorf("failed to parse header: %w", err)
			}
			if log.Header.Type != "header" {
				return nil, ErrNoHeader
			}
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("failed to parse event at line %d: %w", lineNum, err)
		}
		log.Events = append(log.Events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	if lineNum == 0 {
		return nil, ErrNoHeader
	}

	return log, nil
}
