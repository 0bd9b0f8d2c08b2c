package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// ANSI color numbers for the wall color tokens.
var ansiColors = map[string]string{
	"white":   "7",
	"red":     "1",
	"blue":    "4",
	"yellow":  "3",
	"cyan":    "6",
	"magenta": "5",
}

var tcellColors = map[string]tcell.Color{
	"white":   tcell.ColorWhite,
	"red":     tcell.ColorRed,
	"blue":    tcell.ColorBlue,
	"yellow":  tcell.ColorYellow,
	"cyan":    tcell.ColorAqua,
	"magenta": tcell.ColorFuchsia,
}

const (
	emblemANSI = "8"
	pathANSI   = "2"
	entryANSI  = "10"
	exitANSI   = "9"
)

// WallColor maps a color token to a terminal color. Unknown tokens are white.
func WallColor(token string) tcell.Color {
	if c, ok := tcellColors[token]; ok {
		return c
	}
	return tcell.ColorWhite
}

func wallANSI(token string) string {
	if c, ok := ansiColors[token]; ok {
		return c
	}
	return ansiColors["white"]
}

// cellStyle returns the tcell style for a glyph kind.
func cellStyle(kind Kind, token string) tcell.Style {
	base := tcell.StyleDefault
	switch kind {
	case KindWall:
		return base.Foreground(WallColor(token))
	case KindEmblem:
		return base.Foreground(tcell.ColorGray)
	case KindPath:
		return base.Foreground(tcell.ColorGreen)
	case KindEntry:
		return base.Foreground(tcell.ColorLime).Bold(true)
	case KindExit:
		return base.Foreground(tcell.ColorRed).Bold(true)
	}
	return base
}

// textStyle returns the lipgloss style for a glyph kind.
func textStyle(r *lipgloss.Renderer, kind Kind, token string) lipgloss.Style {
	s := r.NewStyle()
	switch kind {
	case KindWall:
		return s.Foreground(lipgloss.Color(wallANSI(token)))
	case KindEmblem:
		return s.Foreground(lipgloss.Color(emblemANSI))
	case KindPath:
		return s.Foreground(lipgloss.Color(pathANSI))
	case KindEntry:
		return s.Foreground(lipgloss.Color(entryANSI)).Bold(true)
	case KindExit:
		return s.Foreground(lipgloss.Color(exitANSI)).Bold(true)
	}
	return s
}
