// Package coord holds the precomputed coordinate tables of the two-phase
// solver: symmetry-class maps, per-move successor tables, conjugation
// tables and the packed pruning tables. Everything here is built once by
// Init and read-only afterwards, so concurrent solves share the tables
// without synchronization.
package coord

import (
	"sync"

	"github.com/seamusw/cubesolver/internal/cubie"
)

// Symmetry-reduced sizes.
const (
	NFlipSym  = 336
	NTwistSym = 324
	NPermSym  = 2768

	NSlice = cubie.NSlice
	NMPerm = cubie.NMPerm
	NComb  = cubie.NComb
)

var (
	// sym2raw / raw2sym / self-symmetry masks per coordinate. raw2sym
	// packs class<<shift | sym, shift 3 for the orientation coordinates
	// (8 symmetries) and 4 for the permutation coordinates (16).
	FlipS2R    [NFlipSym]uint16
	FlipR2S    [cubie.NFlip]uint16
	FlipSelf   [NFlipSym]uint16
	TwistS2R   [NTwistSym]uint16
	TwistR2S   [cubie.NTwist]uint16
	TwistSelf  [NTwistSym]uint16
	EPermS2R   [NPermSym]uint16
	EPermR2S   [cubie.NPerm]uint16
	EPermSelf  [NPermSym]uint16
	CPermS2R   [NPermSym]uint16
	CPermR2S   [cubie.NPerm]uint16
	CPermSelf  [NPermSym]uint16

	// Move tables. Sym-coordinate tables store class<<shift | sym.
	SliceMove [NSlice][cubie.NMoves]uint16
	FlipMove  [NFlipSym][cubie.NMoves]uint16
	TwistMove [NTwistSym][cubie.NMoves]uint16
	EPermMove [NPermSym][cubie.NMoves2]uint16
	CPermMove [NPermSym][cubie.NMoves2]uint16
	MPermMove [NMPerm][cubie.NMoves2]uint8
	CCombMove [NComb][cubie.NMoves2]uint8

	// Conjugation tables.
	SliceConj [NSlice][8]uint16
	MPermConj [NMPerm][16]uint8
	CCombConj [NComb][16]uint8

	// Perm2Comb maps a corner-permutation class to the raw corner
	// combination of its representative.
	Perm2Comb [NPermSym]uint8

	// PermInvESym / PermInvCSym map a permutation class to the
	// sym-coordinate (class<<4|sym) of the inverse of its representative.
	PermInvESym [NPermSym]uint16
	PermInvCSym [NPermSym]uint16
)

var initOnce sync.Once

// Init builds every table. Safe to call from multiple goroutines; only
// the first call pays the construction cost (a few seconds).
func Init() {
	initOnce.Do(func() {
		initSymClasses()
		initMoveTables()
		initPrunTables()
	})
}

// buildSymClasses partitions a raw coordinate space into equivalence
// classes under conjugation. symCount is 8 or 16; for 8 the conjugating
// symmetry index is doubled into the 16-element group.
func buildSymClasses(nRaw, symCount int, shift uint,
	set func(*cubie.Cube, int), get func(*cubie.Cube) int,
	conj func(*cubie.Cube, int, *cubie.Cube),
	s2r, r2s, self []uint16) {

	for i := range r2s {
		r2s[i] = 0xffff
	}
	cls := 0
	c := cubie.NewSolved()
	var d cubie.Cube
	for raw := 0; raw < nRaw; raw++ {
		if r2s[raw] != 0xffff {
			continue
		}
		set(c, raw)
		for s := 0; s < symCount; s++ {
			conj(c, s, &d)
			idx := get(&d)
			if idx == raw {
				self[cls] |= 1 << uint(s)
			}
			r2s[idx] = uint16(cls<<shift | s)
		}
		s2r[cls] = uint16(raw)
		cls++
	}
}

func initSymClasses() {
	buildSymClasses(cubie.NFlip, 8, 3,
		(*cubie.Cube).SetFlip, (*cubie.Cube).GetFlip,
		func(a *cubie.Cube, s int, out *cubie.Cube) { cubie.EdgeConjugate(a, s*2, out) },
		FlipS2R[:], FlipR2S[:], FlipSelf[:])
	buildSymClasses(cubie.NTwist, 8, 3,
		(*cubie.Cube).SetTwist, (*cubie.Cube).GetTwist,
		func(a *cubie.Cube, s int, out *cubie.Cube) { cubie.CornConjugate(a, s*2, out) },
		TwistS2R[:], TwistR2S[:], TwistSelf[:])
	buildSymClasses(cubie.NPerm, 16, 4,
		(*cubie.Cube).SetEPerm, (*cubie.Cube).GetEPerm,
		cubie.EdgeConjugate,
		EPermS2R[:], EPermR2S[:], EPermSelf[:])
	buildSymClasses(cubie.NPerm, 16, 4,
		(*cubie.Cube).SetCPerm, (*cubie.Cube).GetCPerm,
		cubie.CornConjugate,
		CPermS2R[:], CPermR2S[:], CPermSelf[:])
}

func initMoveTables() {
	c := cubie.NewSolved()
	var d cubie.Cube

	for i := 0; i < NSlice; i++ {
		c.SetSlice(i)
		for m := 0; m < cubie.NMoves; m++ {
			cubie.EdgeMult(c, &cubie.MoveCube[m], &d)
			SliceMove[i][m] = uint16(d.GetSlice())
		}
		for s := 0; s < 8; s++ {
			cubie.EdgeConjugate(c, s*2, &d)
			SliceConj[i][s] = uint16(d.GetSlice())
		}
	}

	for i := 0; i < NFlipSym; i++ {
		c.SetFlip(int(FlipS2R[i]))
		for m := 0; m < cubie.NMoves; m++ {
			cubie.EdgeMult(c, &cubie.MoveCube[m], &d)
			FlipMove[i][m] = FlipR2S[d.GetFlip()]
		}
	}
	for i := 0; i < NTwistSym; i++ {
		c.SetTwist(int(TwistS2R[i]))
		for m := 0; m < cubie.NMoves; m++ {
			cubie.CornMult(c, &cubie.MoveCube[m], &d)
			TwistMove[i][m] = TwistR2S[d.GetTwist()]
		}
	}

	c = cubie.NewSolved()
	for i := 0; i < NPermSym; i++ {
		c.SetEPerm(int(EPermS2R[i]))
		for m := 0; m < cubie.NMoves2; m++ {
			cubie.EdgeMult(c, &cubie.MoveCube[cubie.UD2Std[m]], &d)
			EPermMove[i][m] = EPermR2S[d.GetEPerm()]
		}
		c.Invert(&d)
		PermInvESym[i] = EPermR2S[d.GetEPerm()]
	}
	c = cubie.NewSolved()
	for i := 0; i < NPermSym; i++ {
		c.SetCPerm(int(CPermS2R[i]))
		for m := 0; m < cubie.NMoves2; m++ {
			cubie.CornMult(c, &cubie.MoveCube[cubie.UD2Std[m]], &d)
			CPermMove[i][m] = CPermR2S[d.GetCPerm()]
		}
		Perm2Comb[i] = uint8(c.GetCComb())
		c.Invert(&d)
		PermInvCSym[i] = CPermR2S[d.GetCPerm()]
	}

	c = cubie.NewSolved()
	for i := 0; i < NMPerm; i++ {
		c.SetMPerm(i)
		for m := 0; m < cubie.NMoves2; m++ {
			cubie.EdgeMult(c, &cubie.MoveCube[cubie.UD2Std[m]], &d)
			MPermMove[i][m] = uint8(d.GetMPerm())
		}
		for s := 0; s < 16; s++ {
			cubie.EdgeConjugate(c, s, &d)
			MPermConj[i][s] = uint8(d.GetMPerm())
		}
	}
	c = cubie.NewSolved()
	for i := 0; i < NComb; i++ {
		c.SetCComb(i)
		for m := 0; m < cubie.NMoves2; m++ {
			cubie.CornMult(c, &cubie.MoveCube[cubie.UD2Std[m]], &d)
			CCombMove[i][m] = uint8(d.GetCComb())
		}
		for s := 0; s < 16; s++ {
			cubie.CornConjugate(c, s, &d)
			CCombConj[i][s] = uint8(d.GetCComb())
		}
	}
}

// PermSymInvE returns the sym-coordinate of the inverse of the edge
// permutation given as class and symmetry.
func PermSymInvE(cls, sym int) int {
	inv := int(PermInvESym[cls])
	return inv&^0xf | SymMult[inv&0xf][sym]
}

// PermSymInvC is PermSymInvE for the corner permutation.
func PermSymInvC(cls, sym int) int {
	inv := int(PermInvCSym[cls])
	return inv&^0xf | SymMult[inv&0xf][sym]
}

// SymMult and SymMultInv re-export the cubie symmetry product tables so
// the search package indexes one package for all table lookups.
var (
	SymMult    = &cubie.SymMult
	SymMultInv = &cubie.SymMultInv
)
