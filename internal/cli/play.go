package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegroup"
	"github.com/SeamusWaldron/cubegroup/internal/movelog"
)

var (
	playLogDir string
	playNoLog  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively",
	Long: `Start an interactive TUI showing the cube as a colored net.

Keyboard shortcuts:
  u d l r f b  - Turn a face clockwise
  U D L R F B  - Turn a face counter-clockwise
  2            - Make the next turn a half turn
  z            - Undo the last move
  x            - Random move
  v            - Validate the state
  0            - Reset to solved
  q/Esc        - Quit

Every move is written to an interaction log that 'cubegroup replay' can
play back.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playLogDir, "log-dir", "", "Interaction log directory (default: ~/.cubegroup/logs)")
	playCmd.Flags().BoolVar(&playNoLog, "no-log", false, "Do not write an interaction log")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var log *movelog.Logger
	if !playNoLog {
		dir := playLogDir
		if dir == "" {
			dir = defaultLogDir()
		}
		var err error
		log, err = movelog.Start(dir)
		if err != nil {
			return err
		}
		defer log.Close()
	}

	model := newPlayModel(log, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	if path := log.FilePath(); path != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Session log: %s\n", path)
	}
	return nil
}

// faceKeys maps a key to the face it turns. Lowercase keys turn clockwise.
var faceKeys = map[string]cubegroup.Face{
	"u": cubegroup.FaceU,
	"d": cubegroup.FaceD,
	"l": cubegroup.FaceL,
	"r": cubegroup.FaceR,
	"f": cubegroup.FaceF,
	"b": cubegroup.FaceB,
}

// playModel owns the cube. Moves reach it only through Update, one message
// at a time.
type playModel struct {
	cube     *cubegroup.Cube
	log      *movelog.Logger
	rng      *rand.Rand
	half     bool
	report   *cubegroup.Report
	message  string
	err      error
	quitting bool
}

func newPlayModel(log *movelog.Logger, rng *rand.Rand) *playModel {
	return &playModel{
		cube: cubegroup.NewCube(cubegroup.WithValidation(true), cubegroup.WithLogger(logger)),
		log:  log,
		rng:  rng,
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	k := key.String()
	switch k {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "2":
		m.half = !m.half
		return m, nil

	case "z":
		m.half = false
		m.undo()

	case "x":
		m.half = false
		m.turn(cubegroup.RandomMoves(m.rng, 1)[0])

	case "v":
		m.half = false
		m.validate()

	case "0":
		m.half = false
		m.cube.Reset()
		m.report = nil
		m.err = nil
		m.message = "Reset"
		m.logErr(m.log.LogReset())

	default:
		lower := strings.ToLower(k)
		face, ok := faceKeys[lower]
		if !ok {
			return m, nil
		}
		turn := cubegroup.CW
		switch {
		case m.half:
			turn = cubegroup.Double
		case lower != k:
			turn = cubegroup.CCW
		}
		m.half = false
		m.turn(cubegroup.Move{Face: face, Turn: turn})
	}

	return m, nil
}

func (m *playModel) turn(mv cubegroup.Move) {
	m.report = nil
	if err := m.cube.Apply(mv); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.message = ""
	m.logErr(m.log.LogMove(mv))
}

func (m *playModel) undo() {
	m.report = nil
	mv, err := m.cube.Undo()
	if err != nil {
		m.message = ""
		m.err = err
		return
	}
	m.err = nil
	m.message = "Undid " + mv.Notation()
	m.logErr(m.log.LogUndo(mv))
}

func (m *playModel) validate() {
	r := m.cube.Validate()
	m.report = &r

	names := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		names[i] = v.String()
	}
	m.logErr(m.log.LogValidate(r.Valid, names))
}

func (m *playModel) logErr(err error) {
	if err != nil {
		logger.Warn("failed to write interaction log", "err", err)
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubegroup"))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.cube.Facelets()))
	b.WriteString("\n")

	history := m.cube.History()
	b.WriteString(fmt.Sprintf("Moves: %d", len(history)))
	if m.cube.IsSolved() {
		b.WriteString("  " + validStyle.Render("SOLVED"))
	}
	b.WriteString("\n")

	if len(history) > 0 {
		start := 0
		if len(history) > 20 {
			start = len(history) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(cubegroup.FormatMoves(history[start:])))
		b.WriteString("\n")
	}

	if m.half {
		b.WriteString(statusStyle.Render("Half turn: press a face key"))
		b.WriteString("\n")
	}
	if m.report != nil {
		b.WriteString(renderReport(*m.report))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(statusStyle.Render(m.message))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("udlrfb=turn  UDLRFB=reverse  2=half  z=undo  x=random  v=validate  0=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}
