package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubeviz"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerColors maps sticker colors to terminal colors.
var stickerColors = map[cubeviz.Color]lipgloss.Color{
	cubeviz.White:  lipgloss.Color("255"),
	cubeviz.Yellow: lipgloss.Color("226"),
	cubeviz.Green:  lipgloss.Color("34"),
	cubeviz.Blue:   lipgloss.Color("21"),
	cubeviz.Red:    lipgloss.Color("196"),
	cubeviz.Orange: lipgloss.Color("208"),
}

// renderFacelet draws one sticker as a two-cell block. Stickers on cubies
// that are mid-turn are drawn shaded.
func renderFacelet(f cubeviz.Facelet) string {
	if f.Label == cubeviz.NoLabel {
		return "  "
	}
	style := lipgloss.NewStyle().Foreground(stickerColors[f.Label.Color()])
	if f.Moving {
		return style.Render("▒▒")
	}
	return style.Render("██")
}

// renderFace draws the 3x3 face shown on screen side.
func renderFace(frame cubeviz.Frame, view View, side cubeviz.Dir) string {
	cells := frame.Facelets(view.Basis(side))
	var b strings.Builder
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			b.WriteString(renderFacelet(cells[r*3+c]))
		}
		if r < 2 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderNet draws the six screen faces as an unfolded net:
//
//	  U
//	L F R B
//	  D
func renderNet(frame cubeviz.Frame, view View) string {
	const gap = " "
	blank := strings.Repeat(" ", 6)
	blankFace := strings.Join([]string{blank, blank, blank}, "\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top, blankFace, gap, renderFace(frame, view, cubeviz.DirUp))
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		renderFace(frame, view, cubeviz.DirLeft), gap,
		renderFace(frame, view, cubeviz.DirFront), gap,
		renderFace(frame, view, cubeviz.DirRight), gap,
		renderFace(frame, view, cubeviz.DirBack),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, blankFace, gap, renderFace(frame, view, cubeviz.DirDown))

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

// renderProgress draws the in-flight turn as a bar and a clamped angle.
func renderProgress(frame cubeviz.Frame) string {
	const width = 18
	if frame.Active == nil {
		return statusStyle.Render("idle")
	}
	filled := int(frame.Progress * width)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
	angle := frame.Progress * cubeviz.QuarterTurn
	return fmt.Sprintf("%s [%s] %3.0f°", moveStyle.Render(frame.Active.Notation()), bar, angle)
}
