package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegroup"
	"github.com/SeamusWaldron/cubegroup/internal/movelog"
)

var replayCmd = &cobra.Command{
	Use:   "replay [log-file]",
	Short: "Replay a recorded play session",
	Long: `Replay an interaction log written by 'cubegroup play' through the engine.

If no log file is specified, lists available log files.

Usage:
  cubegroup replay                    # List available logs
  cubegroup replay <log-file>         # Replay specific log
  cubegroup replay --speed 2.0        # Replay at 2x speed
  cubegroup replay --step             # Step through events manually
  cubegroup replay --check <log-file> # Replay without the TUI and validate`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

var (
	replaySpeed  float64
	replayStep   bool
	replayCheck  bool
	replayLogDir string
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through events manually")
	replayCmd.Flags().BoolVar(&replayCheck, "check", false, "Replay without the TUI and print the final state")
	replayCmd.Flags().StringVar(&replayLogDir, "log-dir", "", "Interaction log directory (default: ~/.cubegroup/logs)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logDir := replayLogDir
	if logDir == "" {
		logDir = defaultLogDir()
	}

	w := cmd.OutOrStdout()
	if len(args) == 0 {
		return listLogs(w, logDir)
	}

	logPath := args[0]
	if _, err := os.Stat(logPath); err != nil && !filepath.IsAbs(logPath) {
		logPath = filepath.Join(logDir, logPath)
	}

	log, err := movelog.Load(logPath)
	if err != nil {
		return fmt.Errorf("failed to load log: %w", err)
	}

	if replayCheck {
		c := cubegroup.NewCube(cubegroup.WithValidation(true), cubegroup.WithLogger(logger))
		if err := movelog.Replay(log, c); err != nil {
			return err
		}
		fmt.Fprintf(w, "Replayed %d events from %s\n\n", len(log.Events), logPath)
		fmt.Fprint(w, renderNet(c.Facelets()))
		fmt.Fprintf(w, "\nMoves:  %s\n", cubegroup.FormatMoves(c.History()))
		fmt.Fprintf(w, "Report: %s\n", renderReport(c.Validate()))
		return nil
	}

	fmt.Fprintf(w, "Loaded log: %s\n", logPath)
	fmt.Fprintf(w, "Created: %s\n", log.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Events: %d\n", len(log.Events))

	model := newReplayModel(log, replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}

func listLogs(w io.Writer, logDir string) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "No log files found. Start a session first with: cubegroup play")
			return nil
		}
		return err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			logs = append(logs, e.Name())
		}
	}

	if len(logs) == 0 {
		fmt.Fprintln(w, "No log files found. Start a session first with: cubegroup play")
		return nil
	}

	// Names start with a timestamp, so newest last
	sort.Strings(logs)

	fmt.Fprintln(w, "Available log files:")
	fmt.Fprintln(w)
	for _, name := range logs {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: cubegroup replay <filename>")

	return nil
}

// Replay model
type replayModel struct {
	log           *movelog.Log
	eventIndex    int
	speed         float64
	stepMode      bool
	paused        bool
	cube          *cubegroup.Cube
	lastReport    *bool
	elapsed       time.Duration
	lastEventTime int64
	err           error
	quitting      bool
	debugMode     bool
}

func newReplayModel(log *movelog.Log, speed float64, stepMode bool) *replayModel {
	if speed <= 0 {
		speed = 1
	}
	return &replayModel{
		log:      log,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode,
		cube:     cubegroup.NewCube(cubegroup.WithValidation(true)),
	}
}

type replayEventMsg struct{ index int }

func (m *replayModel) Init() tea.Cmd {
	if m.stepMode {
		return nil
	}
	return m.scheduleNextEvent()
}

func (m *replayModel) scheduleNextEvent() tea.Cmd {
	if m.eventIndex >= len(m.log.Events) {
		return nil
	}

	index := m.eventIndex
	event := m.log.Events[index]

	var delay time.Duration
	if m.lastEventTime > 0 {
		delayMs := event.ElapsedMs - m.lastEventTime
		delay = time.Duration(float64(delayMs)/m.speed) * time.Millisecond
	}

	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return replayEventMsg{index: index}
	})
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.advance()
			} else {
				m.paused = true
			}

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNextEvent()
			}

		case "r":
			m.eventIndex = 0
			m.cube.Reset()
			m.lastReport = nil
			m.lastEventTime = 0
			m.elapsed = 0
			m.err = nil

		case "d":
			m.debugMode = !m.debugMode

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayEventMsg:
		// a tick scheduled before a pause, step or reset is stale
		if m.paused || m.stepMode || msg.index != m.eventIndex {
			return m, nil
		}
		m.advance()
		return m, m.scheduleNextEvent()
	}

	return m, nil
}

// advance applies the next event to the cube.
func (m *replayModel) advance() {
	if m.eventIndex >= len(m.log.Events) {
		return
	}
	event := m.log.Events[m.eventIndex]
	m.eventIndex++
	m.lastEventTime = event.ElapsedMs
	m.elapsed = time.Duration(event.ElapsedMs) * time.Millisecond

	one := &movelog.Log{Header: m.log.Header, Events: []movelog.Event{event}}
	if err := movelog.Replay(one, m.cube); err != nil {
		m.err = err
	}
	if event.EventType == movelog.EventValidate {
		m.lastReport = event.Valid
	}
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubegroup replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Event %d/%d", m.eventIndex, len(m.log.Events))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.1fx speed)\n", m.speed))
	b.WriteString(fmt.Sprintf("Time: %s\n\n", formatElapsed(m.elapsed)))

	b.WriteString(renderNet(m.cube.Facelets()))
	b.WriteString("\n")

	history := m.cube.History()
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(history)))
	if len(history) > 0 {
		start := 0
		if len(history) > 20 {
			start = len(history) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(cubegroup.FormatMoves(history[start:])))
		b.WriteString("\n")
	}

	// the engine's verdict next to the one recorded in the log
	if m.lastReport != nil {
		b.WriteString(fmt.Sprintf("Logged validation: %v\n", *m.lastReport))
		b.WriteString("Replayed: " + renderReport(m.cube.Validate()) + "\n")
	}

	if m.debugMode {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("DEBUG - State:"))
		b.WriteString("\n")
		b.WriteString(m.cube.State().String())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	if m.eventIndex < len(m.log.Events) {
		event := m.log.Events[m.eventIndex]
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(fmt.Sprintf("Next: %s %s", event.EventType, event.Move)))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	help := "SPACE/n=next  p=pause  r=reset  d=debug  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next event  r=reset  d=debug  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%d:%05.2f", mins, secs)
}
