package search

import (
	"github.com/seamusw/cubesolver/internal/coord"
	"github.com/seamusw/cubesolver/internal/cubie"
)

// ckmv2bit[lm] masks the phase-2 moves forbidden after last move lm
// (index 10 = no previous move): the same axis, and for D/L/B also the
// paired U/R/F axis.
var ckmv2bit = [11]int{
	0x007, 0x007, 0x007, // after U*
	0x008,               // after R2
	0x010,               // after F2
	0x0e7, 0x0e7, 0x0e7, // after D*: D* and U*
	0x108, // after L2: L2 and R2
	0x210, // after B2: B2 and F2
	0x000,
}

// initPhase2Pre materializes the cubie state at the phase-1 leaf by
// replaying the still-valid move suffix, extracts the phase-2 sym
// coordinates and enters phase 2.
func (s *Search) initPhase2Pre() int {
	for i := s.valid1; i < s.depth1; i++ {
		cubie.CornMult(&s.p1Cubies[i], &cubie.MoveCube[s.mv[i]], &s.p1Cubies[i+1])
		cubie.EdgeMult(&s.p1Cubies[i], &cubie.MoveCube[s.mv[i]], &s.p1Cubies[i+1])
	}
	s.valid1 = s.depth1

	cc := &s.p1Cubies[s.depth1]
	corn := int(coord.CPermR2S[cc.GetCPerm()])
	csym := corn & 0xf
	corn >>= 4
	edge := int(coord.EPermR2S[cc.GetEPerm()])
	esym := edge & 0xf
	edge >>= 4
	mid := cc.GetMPerm()
	return s.initPhase2(edge, esym, corn, csym, mid)
}

// prunePhase2 is the phase-2 heuristic: the two direct table lookups plus
// the same pair table indexed at the inverse state, which bounds the
// distance asymmetrically.
func prunePhase2(edge, esym, corn, csym, mid int) int {
	edgei := coord.PermSymInvE(edge, esym)
	corni := coord.PermSymInvC(corn, csym)
	prun := coord.GetPruning(coord.EPermCCombPrun[:],
		(edgei>>4)*coord.NComb+
			int(coord.CCombConj[coord.Perm2Comb[corni>>4]][coord.SymMultInv[corni&0xf][edgei&0xf]]))
	prun = max(prun, coord.GetPruning(coord.EPermCCombPrun[:],
		edge*coord.NComb+
			int(coord.CCombConj[coord.Perm2Comb[corn]][coord.SymMultInv[csym][esym]])))
	return max(prun, coord.GetPruning(coord.MCPermPrun[:],
		corn*coord.NMPerm+int(coord.MPermConj[mid][coord.SymMultInv[0][csym]])))
}

// initPhase2 runs phase-2 iterative deepening at the current phase-1
// leaf. Returns 0 when a solution within the global bound was emitted,
// 1 when none exists here, and prun-maxDep2 (>= 2 signals the caller to
// abandon the axis) when the heuristic already exceeds the budget.
func (s *Search) initPhase2(edge, esym, corn, csym, mid int) int {
	prun := prunePhase2(edge, esym, corn, csym, mid)
	if prun > s.maxDep2 {
		return prun - s.maxDep2
	}

	depth2 := s.maxDep2
	for ; depth2 >= prun; depth2-- {
		ret := s.phase2(edge, esym, corn, csym, mid, depth2, s.depth1, 10)
		if ret < 0 {
			break
		}
		depth2 -= ret
		s.emitSolution(depth2)
	}
	if depth2 != s.maxDep2 {
		s.maxDep2 = min(maxDepth2, s.sol-s.length1)
		return 0
	}
	return 1
}

// phase2 is the depth-limited phase-2 search over the 10-move alphabet.
// A non-negative return is the unused depth of a found solution; -1 is a
// plain fail; returns below -1 report how far the heuristic overshot so
// ancestors can cut entire axes.
func (s *Search) phase2(edge, esym, corn, csym, mid, maxl, depth, lm int) int {
	if edge == 0 && corn == 0 && mid == 0 {
		return maxl
	}
	moveMask := ckmv2bit[lm]
	for m := 0; m < cubie.NMoves2; m++ {
		if moveMask>>uint(m)&1 != 0 {
			m += 0x42 >> uint(m) & 3
			continue
		}
		midx := int(coord.MPermMove[mid][m])
		cornx := int(coord.CPermMove[corn][cubie.SymMoveUD[csym][m]])
		csymx := coord.SymMult[cornx&0xf][csym]
		cornx >>= 4
		edgex := int(coord.EPermMove[edge][cubie.SymMoveUD[esym][m]])
		esymx := coord.SymMult[edgex&0xf][esym]
		edgex >>= 4

		edgei := coord.PermSymInvE(edgex, esymx)
		corni := coord.PermSymInvC(cornx, csymx)
		prun := coord.GetPruning(coord.EPermCCombPrun[:],
			(edgei>>4)*coord.NComb+
				int(coord.CCombConj[coord.Perm2Comb[corni>>4]][coord.SymMultInv[corni&0xf][edgei&0xf]]))
		if prun > maxl+1 {
			// Proven unreachable at this depth: unwind hard.
			return maxl - prun + 1
		}
		if prun >= maxl {
			m += 0x42 >> uint(m) & 3 & (maxl - prun)
			continue
		}
		prun = max(
			coord.GetPruning(coord.MCPermPrun[:],
				cornx*coord.NMPerm+int(coord.MPermConj[midx][coord.SymMultInv[0][csymx]])),
			coord.GetPruning(coord.EPermCCombPrun[:],
				edgex*coord.NComb+
					int(coord.CCombConj[coord.Perm2Comb[cornx]][coord.SymMultInv[csymx][esymx]])))
		if prun >= maxl {
			m += 0x42 >> uint(m) & 3 & (maxl - prun)
			continue
		}

		ret := s.phase2(edgex, esymx, cornx, csymx, midx, maxl-1, depth+1, m)
		if ret >= 0 {
			s.mv[depth] = cubie.UD2Std[m]
			return ret
		}
		if ret < -2 {
			break
		}
		if ret < -1 {
			m += 0x42 >> uint(m) & 3
		}
	}
	return -1
}
