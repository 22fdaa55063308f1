package coord

import "github.com/seamusw/cubesolver/internal/cubie"

// The four pruning tables, 4 bits per entry packed into 32-bit words.
// An entry of 0xF survives construction only past the build depth and is
// read as a (large) lower bound.
var (
	SliceTwistPrun [NSlice*NTwistSym/8 + 1]uint32
	SliceFlipPrun  [NSlice*NFlipSym/8 + 1]uint32
	MCPermPrun     [NMPerm*NPermSym/8 + 1]uint32
	EPermCCombPrun [NComb*NPermSym/8 + 1]uint32
)

// GetPruning reads the 4-bit entry at idx.
func GetPruning(tab []uint32, idx int) int {
	return int(tab[idx>>3] >> (uint(idx&7) * 4) & 0xf)
}

// setPruning writes a 4-bit entry. The entry must currently hold 0xF.
func setPruning(tab []uint32, idx int, v uint32) {
	tab[idx>>3] ^= (0xf ^ v) << (uint(idx&7) * 4)
}

// prunSpec describes one table for the breadth-first builder. An entry is
// a (symmetry class, raw coordinate) pair indexed cls*nRaw+raw; symMove
// yields class<<shift|sym successors, rawConj re-expresses the raw
// coordinate in the successor representative's frame.
type prunSpec struct {
	nRaw, nSym int
	shift      uint
	maxDepth   int
	invDepth   int
	nMoves     int
	symMove    func(cls, m int) int
	rawMove    func(raw, m int) int
	rawConj    func(raw, s int) int
	selfSym    func(cls int) int
}

// buildPrun runs the fixed-point expansion: forward passes fill entries
// at the frontier depth, and once depth exceeds invDepth the scan flips
// to unfilled entries probing backwards for any in-shell neighbor. Every
// newly set entry also stamps its images under the self-symmetries of
// its class.
func buildPrun(tab []uint32, spec prunSpec) {
	for i := range tab {
		tab[i] = 0xffffffff
	}
	setPruning(tab, 0, 0)
	symMask := 1<<spec.shift - 1
	size := spec.nRaw * spec.nSym

	for depth := 0; depth < spec.maxDepth; depth++ {
		inv := depth > spec.invDepth
		sel, chk := depth, 0xf
		if inv {
			sel, chk = 0xf, depth
		}
		for i := 0; i < size; i++ {
			if GetPruning(tab, i) != sel {
				continue
			}
			raw, cls := i%spec.nRaw, i/spec.nRaw
			for m := 0; m < spec.nMoves; m++ {
				symx := spec.symMove(cls, m)
				rawx := spec.rawConj(spec.rawMove(raw, m), symx&symMask)
				clsx := symx >> spec.shift
				idx := clsx*spec.nRaw + rawx
				if GetPruning(tab, idx) != chk {
					continue
				}
				if inv {
					setPruning(tab, i, uint32(depth+1))
					break
				}
				setPruning(tab, idx, uint32(depth+1))
				for s, ss := 1, spec.selfSym(clsx)>>1; ss != 0; s, ss = s+1, ss>>1 {
					if ss&1 == 0 {
						continue
					}
					idxx := clsx*spec.nRaw + spec.rawConj(rawx, s)
					if GetPruning(tab, idxx) == 0xf {
						setPruning(tab, idxx, uint32(depth+1))
					}
				}
			}
		}
	}
}

func initPrunTables() {
	buildPrun(SliceTwistPrun[:], prunSpec{
		nRaw: NSlice, nSym: NTwistSym, shift: 3,
		maxDepth: 12, invDepth: 9, nMoves: cubie.NMoves,
		symMove: func(cls, m int) int { return int(TwistMove[cls][m]) },
		rawMove: func(raw, m int) int { return int(SliceMove[raw][m]) },
		rawConj: func(raw, s int) int { return int(SliceConj[raw][s]) },
		selfSym: func(cls int) int { return int(TwistSelf[cls]) },
	})
	buildPrun(SliceFlipPrun[:], prunSpec{
		nRaw: NSlice, nSym: NFlipSym, shift: 3,
		maxDepth: 12, invDepth: 9, nMoves: cubie.NMoves,
		symMove: func(cls, m int) int { return int(FlipMove[cls][m]) },
		rawMove: func(raw, m int) int { return int(SliceMove[raw][m]) },
		rawConj: func(raw, s int) int { return int(SliceConj[raw][s]) },
		selfSym: func(cls int) int { return int(FlipSelf[cls]) },
	})
	// The 16-element group has order-4 elements, so re-expressing the raw
	// coordinate in the successor representative's frame conjugates by
	// the inverse of the residual symmetry. (The 8-element orientation
	// subgroup is all involutions, so the phase-1 tables skip this.)
	buildPrun(MCPermPrun[:], prunSpec{
		nRaw: NMPerm, nSym: NPermSym, shift: 4,
		maxDepth: 10, invDepth: 9, nMoves: cubie.NMoves2,
		symMove: func(cls, m int) int { return int(CPermMove[cls][m]) },
		rawMove: func(raw, m int) int { return int(MPermMove[raw][m]) },
		rawConj: func(raw, s int) int { return int(MPermConj[raw][SymMultInv[0][s]]) },
		selfSym: func(cls int) int { return int(CPermSelf[cls]) },
	})
	buildPrun(EPermCCombPrun[:], prunSpec{
		nRaw: NComb, nSym: NPermSym, shift: 4,
		maxDepth: 10, invDepth: 9, nMoves: cubie.NMoves2,
		symMove: func(cls, m int) int { return int(EPermMove[cls][m]) },
		rawMove: func(raw, m int) int { return int(CCombMove[raw][m]) },
		rawConj: func(raw, s int) int { return int(CCombConj[raw][SymMultInv[0][s]]) },
		selfSym: func(cls int) int { return int(EPermSelf[cls]) },
	})
}
