// Package notation translates between move-index sequences and standard
// cube notation.
package notation

import (
	"errors"
	"strings"
)

// MoveNames[m] is the notation for move index m (axis*3 + power, axes
// U R F D L B).
var MoveNames = [18]string{
	"U", "U2", "U'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"B", "B2", "B'",
}

// ErrInvalidNotation reports a token the parser does not understand.
var ErrInvalidNotation = errors.New("notation: invalid move notation")

var faceAxis = map[byte]int{'U': 0, 'R': 1, 'F': 2, 'D': 3, 'L': 4, 'B': 5}

// Parse scans a move sequence. A face letter opens a move; an optional
// suffix adjusts it: none/1/+ quarter clockwise, 2 half, '/-/3 quarter
// counter-clockwise. Whitespace separates or is ignored; any other
// character is an error.
func Parse(s string) ([]int, error) {
	var moves []int
	last := -1
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			last = -1
		case ch == 'U' || ch == 'R' || ch == 'F' || ch == 'D' || ch == 'L' || ch == 'B':
			moves = append(moves, faceAxis[ch]*3)
			last = len(moves) - 1
		case last >= 0 && (ch == '1' || ch == '+'):
			last = -1
		case last >= 0 && ch == '2':
			moves[last] += 1
			last = -1
		case last >= 0 && (ch == '\'' || ch == '-' || ch == '3'):
			moves[last] += 2
			last = -1
		default:
			return nil, ErrInvalidNotation
		}
	}
	return moves, nil
}

// Format joins move indices into a space-separated notation string.
func Format(moves []int) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = MoveNames[m]
	}
	return strings.Join(parts, " ")
}
