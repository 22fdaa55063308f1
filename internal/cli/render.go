package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// faceletStyles colors each face letter like the standard color scheme:
// white up, red right, green front, yellow down, orange left, blue back.
var faceletStyles = map[byte]lipgloss.Style{
	'U': lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	'R': lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
	'F': lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("255")),
	'D': lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
	'L': lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	'B': lipgloss.NewStyle().Background(lipgloss.Color("20")).Foreground(lipgloss.Color("255")),
}

func cell(letter byte) string {
	if style, ok := faceletStyles[letter]; ok {
		return style.Render(" " + string(letter) + " ")
	}
	return " " + string(letter) + " "
}

// renderNet draws a facelet string as an unfolded cube net with the U
// face on top, L F R B in a row, and D below.
func renderNet(facelets string) string {
	if len(facelets) != 54 {
		return facelets
	}
	face := func(f int) []string {
		rows := make([]string, 3)
		for r := 0; r < 3; r++ {
			var b strings.Builder
			for c := 0; c < 3; c++ {
				b.WriteString(cell(facelets[f*9+r*3+c]))
			}
			rows[r] = b.String()
		}
		return rows
	}

	u, r, f, d, l, b := face(0), face(1), face(2), face(3), face(4), face(5)
	indent := strings.Repeat(" ", 9)

	var out strings.Builder
	for i := 0; i < 3; i++ {
		out.WriteString(indent + u[i] + "\n")
	}
	for i := 0; i < 3; i++ {
		out.WriteString(l[i] + f[i] + r[i] + b[i] + "\n")
	}
	for i := 0; i < 3; i++ {
		out.WriteString(indent + d[i] + "\n")
	}
	return out.String()
}
