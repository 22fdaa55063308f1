package search

import (
	"fmt"
	"strings"

	"github.com/seamusw/cubesolver/internal/cubie"
	"github.com/seamusw/cubesolver/internal/notation"
)

// solutionBuf accumulates move indices, merging each appended move with
// the tail: same-axis neighbors combine mod 4, and a move parallel to its
// neighbor folds into the slot two back.
type solutionBuf struct {
	moves  [31]int
	length int
	depth1 int
}

func (b *solutionBuf) append(m int) {
	if b.length == 0 {
		b.moves[0] = m
		b.length = 1
		return
	}
	axis, last := m/3, b.moves[b.length-1]/3
	if axis == last {
		pow := (m%3 + b.moves[b.length-1]%3 + 1) % 4
		if pow == 3 {
			b.length--
		} else {
			b.moves[b.length-1] = axis*3 + pow
		}
		return
	}
	if b.length > 1 && axis%3 == last%3 && axis == b.moves[b.length-2]/3 {
		pow := (m%3 + b.moves[b.length-2]%3 + 1) % 4
		if pow == 3 {
			b.moves[b.length-2] = b.moves[b.length-1]
			b.length--
		} else {
			b.moves[b.length-2] = axis*3 + pow
		}
		return
	}
	b.moves[b.length] = m
	b.length++
}

// emitSolution formats the current move stack plus reversed pre-moves in
// the active URF frame and records it as the best solution so far.
func (s *Search) emitSolution(depth2 int) {
	var b solutionBuf
	b.depth1 = s.depth1
	for i := 0; i < s.depth1+depth2; i++ {
		b.append(s.mv[i])
	}
	for i := s.premvLen - 1; i >= 0; i-- {
		b.append(s.premv[i])
	}
	s.sol = b.length
	s.result = b.format(s.urfIdx, s.opts)
	s.found = true
}

func (b *solutionBuf) format(urfIdx int, opts Options) string {
	urf := urfIdx
	if opts.InverseSolution {
		urf = (urfIdx + 3) % 6
	}
	parts := make([]string, 0, b.length+2)
	if urf < 3 {
		for i := 0; i < b.length; i++ {
			if opts.UseSeparator && i == b.depth1 {
				parts = append(parts, ".")
			}
			parts = append(parts, notation.MoveNames[cubie.URFMove[urf][b.moves[i]]])
		}
	} else {
		for i := b.length - 1; i >= 0; i-- {
			parts = append(parts, notation.MoveNames[cubie.URFMove[urf][b.moves[i]]])
			if opts.UseSeparator && i == b.depth1 {
				parts = append(parts, ".")
			}
		}
	}
	out := strings.Join(parts, " ")
	if opts.AppendLength {
		out += fmt.Sprintf(" (%df)", b.length)
	}
	return out
}
