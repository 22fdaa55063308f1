// Package search implements the two-phase IDA* solver. A Search value is
// one solve's private working state; the shared coordinate tables live in
// internal/coord and are never written after Init.
package search

import (
	"github.com/seamusw/cubesolver/internal/coord"
	"github.com/seamusw/cubesolver/internal/cubie"
)

const (
	// MaxLength is the hard cap on the requested solution length.
	MaxLength = 25
	// maxPremoveLen bounds the pre-move prefix tried before phase 1.
	maxPremoveLen = 20
	// minP1LengthPre is the phase-1 depth at which a pre-moved search may
	// enter phase 2 before its phase-1 depth is used up.
	minP1LengthPre = 7
	// maxDepth2 bounds the phase-2 depth at any phase-1 leaf.
	maxDepth2 = 13
)

// Options controls solution formatting.
type Options struct {
	// UseSeparator inserts "." between the phase-1 and phase-2 moves.
	UseSeparator bool
	// AppendLength appends "(Nf)" to the solution.
	AppendLength bool
	// InverseSolution emits the move sequence that generates the state
	// instead of solving it.
	InverseSolution bool
}

// Search carries the per-solve mutable state. The zero value is not
// usable; create one per call through Solve.
type Search struct {
	mv     [31]int
	premv  [maxPremoveLen]int
	nodeUD [MaxLength + 1]coord.Node

	p1Cubies  [MaxLength + 1]cubie.Cube
	premvCube [maxPremoveLen + 1]cubie.Cube
	urfCubies [6]cubie.Cube

	length1  int
	depth1   int
	valid1   int
	premvLen int
	maxDep2  int
	urfIdx   int

	allowShorter bool
	sol          int
	found        bool
	result       string
	opts         Options
}

// Solve searches for a move sequence of at most maxLength face turns
// bringing cc to the solved state. It returns the formatted sequence and
// true, or "" and false when no solution exists within the bound.
func Solve(cc *cubie.Cube, maxLength int, opts Options) (string, bool) {
	coord.Init()

	s := &Search{opts: opts}
	if maxLength < 0 {
		maxLength = 0
	}
	// The searched bound is min(25, maxLength+1) exclusive, so a
	// maxLength of 25 bounds solutions at 24 turns.
	s.sol = maxLength + 1
	if s.sol > MaxLength {
		s.sol = MaxLength
	}

	c := *cc
	for i := 0; i < 6; i++ {
		s.urfCubies[i] = c
		c.URFConjugate()
		if i%3 == 2 {
			var inv cubie.Cube
			c.Invert(&inv)
			c = inv
		}
	}

	for s.length1 = 0; s.length1 < s.sol; s.length1++ {
		s.maxDep2 = min(maxDepth2, s.sol-s.length1-1)
		for s.urfIdx = 0; s.urfIdx < 6; s.urfIdx++ {
			if s.phase1Premoves(maxPremoveLen, -30, &s.urfCubies[s.urfIdx]) == 0 {
				return s.result, true
			}
		}
	}
	if s.found {
		return s.result, true
	}
	return "", false
}

// premoveSkip marks moves after which starting phase 1 directly is
// redundant: the prefix could be folded into the solution.
const premoveSkip = 0x36FB7

// phase1Premoves enumerates pre-move prefixes (newest premultiplied) and
// runs phase 1 on each prefixed cube at the reduced depth.
func (s *Search) phase1Premoves(maxl, lm int, cc *cubie.Cube) int {
	s.premvLen = maxPremoveLen - maxl
	if s.premvLen == 0 || premoveSkip>>uint(lm)&1 == 0 {
		s.depth1 = s.length1 - s.premvLen
		s.allowShorter = s.depth1 == minP1LengthPre && s.premvLen != 0
		s.p1Cubies[0] = *cc
		s.valid1 = 0
		node := &s.nodeUD[s.depth1+1]
		if node.SetWithPrun(cc, s.depth1) && s.phase1(node, s.depth1, -1) == 0 {
			return 0
		}
	}

	if maxl == 0 || s.premvLen+minP1LengthPre >= s.length1 {
		return 1
	}

	skipMoves := 0
	if maxl == 1 || s.premvLen+1+minP1LengthPre >= s.length1 {
		// Only one premove slot left: prefixes the skip mask rejects
		// at the top can never be extended, so do not generate them.
		skipMoves = premoveSkip
	}

	lm = lm / 3 * 3
	for m := 0; m < cubie.NMoves; m++ {
		if m == lm || m == lm-9 || m == lm+9 {
			m += 2
			continue
		}
		if skipMoves>>uint(m)&1 != 0 {
			continue
		}
		cubie.CornMult(&cubie.MoveCube[m], cc, &s.premvCube[maxl])
		cubie.EdgeMult(&cubie.MoveCube[m], cc, &s.premvCube[maxl])
		s.premv[maxPremoveLen-maxl] = m
		if s.phase1Premoves(maxl-1, m, &s.premvCube[maxl]) == 0 {
			return 0
		}
	}
	return 1
}

// phase1 runs the depth-limited phase-1 search. Axes iterate in fixed
// U R F D L B order; a move is canonical unless it repeats the previous
// axis or follows the higher axis of its parallel pair.
func (s *Search) phase1(node *coord.Node, maxl, lm int) int {
	if node.Prun == 0 && maxl < 5 {
		if s.allowShorter || maxl == 0 {
			s.depth1 -= maxl
			ret := s.initPhase2Pre()
			s.depth1 += maxl
			return ret
		}
		return 1
	}

	for axis := 0; axis < cubie.NMoves; axis += 3 {
		if axis == lm || axis == lm-9 {
			continue
		}
		for power := 0; power < 3; power++ {
			m := axis + power

			nodex := &s.nodeUD[maxl]
			prun := nodex.MovePrun(node, m)
			if prun > maxl {
				// No power of this axis can lower the bound enough.
				break
			}
			if prun == maxl {
				continue
			}

			s.mv[s.depth1-maxl] = m
			s.valid1 = min(s.valid1, s.depth1-maxl)
			ret := s.phase1(nodex, maxl-1, axis)
			if ret == 0 {
				return 0
			}
			if ret >= 2 {
				break
			}
		}
	}
	return 1
}
