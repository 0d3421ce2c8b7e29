package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubegroup/internal/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	validStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles is indexed by cube.Color.
var stickerStyles = [cube.NumColors]lipgloss.Style{
	cube.White:  stickerStyle("15"),
	cube.Yellow: stickerStyle("11"),
	cube.Green:  stickerStyle("34"),
	cube.Blue:   stickerStyle("27"),
	cube.Red:    stickerStyle("196"),
	cube.Orange: stickerStyle("208"),
}

func stickerStyle(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("0"))
}

func renderSticker(c cube.Color) string {
	label := " " + c.String() + " "
	if int(c) >= len(stickerStyles) {
		return label
	}
	return stickerStyles[c].Render(label)
}

// renderNet draws the facelets as a colored net: U on top, L F R B across
// the middle and D below.
func renderNet(g cube.Facelets) string {
	var b strings.Builder
	pad := strings.Repeat(" ", 9)

	row := func(face cube.Face, r int) {
		for col := 0; col < 3; col++ {
			b.WriteString(renderSticker(g[face][r*3+col]))
		}
	}

	for r := 0; r < 3; r++ {
		b.WriteString(pad)
		row(cube.U, r)
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		for _, face := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			row(face, r)
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad)
		row(cube.D, r)
		b.WriteString("\n")
	}

	return b.String()
}

// renderReport formats a validation report on one line.
func renderReport(r cube.Report) string {
	if r.Valid {
		return validStyle.Render("VALID") + statusStyle.Render(
			fmt.Sprintf(" corner parity %d, edge parity %d", r.CornerParity, r.EdgeParity))
	}
	return errorStyle.Render(r.String())
}
