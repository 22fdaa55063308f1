package cubie

// The 16 cube symmetries that preserve the UD axis, generated by a
// quarter rotation about UD (u4), the left-right mirror (lr2) and a half
// rotation about FB (f2). CubeSym is enumerated exactly as s, s*u4,
// s*u4^2, ... folding in lr2 every 4 steps and f2 every 8, which makes
// the even-indexed half (the 8 flip/twist symmetries) compose by XOR of
// index/2.
var (
	CubeSym    [16]Cube
	SymMult    [16][16]int
	SymMultInv [16][16]int

	// SymMove[s][m] is the move equivalent to conjugating m by symmetry s.
	SymMove [16][NMoves]int
	// Sym8Move is SymMove restricted to the 8 flip/twist symmetries,
	// indexed m<<3|s.
	Sym8Move [8 * NMoves]int
	// SymMoveUD is SymMove in the phase-2 move alphabet.
	SymMoveUD [16][NMoves2]int
)

// URF1 and URF2 are the clockwise and counter-clockwise rotations about
// the URF-DBL diagonal, cycling the U, R and F axes.
var URF1, URF2 Cube

// URFMove remaps a move index between the six URF search frames: the
// first three rows are successive URF rotations, the last three their
// inverses (used when the solution was found on the inverted cube).
var URFMove = [6][NMoves]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	{6, 7, 8, 0, 1, 2, 3, 4, 5, 15, 16, 17, 9, 10, 11, 12, 13, 14},
	{3, 4, 5, 6, 7, 8, 0, 1, 2, 12, 13, 14, 15, 16, 17, 9, 10, 11},
	{2, 1, 0, 5, 4, 3, 8, 7, 6, 11, 10, 9, 14, 13, 12, 17, 16, 15},
	{8, 7, 6, 2, 1, 0, 5, 4, 3, 17, 16, 15, 11, 10, 9, 14, 13, 12},
	{5, 4, 3, 8, 7, 6, 2, 1, 0, 14, 13, 12, 17, 16, 15, 11, 10, 9},
}

var symGen = struct {
	u4, lr2, f2 Cube
}{
	u4: cubeOf(
		[8]uint8{UBR, URF, UFL, ULB, DRB, DFR, DLF, DBL},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{UB, UR, UF, UL, DB, DR, DF, DL, BR, FR, FL, BL},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1}),
	lr2: cubeOf(
		[8]uint8{UFL, URF, UBR, ULB, DLF, DFR, DRB, DBL},
		[8]uint8{3, 3, 3, 3, 3, 3, 3, 3},
		[12]uint8{UL, UF, UR, UB, DL, DF, DR, DB, FL, FR, BR, BL},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
	f2: cubeOf(
		[8]uint8{DLF, DFR, DRB, DBL, UFL, URF, UBR, ULB},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{DL, DF, DR, DB, UL, UF, UR, UB, FL, FR, BR, BL},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
}

func initSym() {
	c := *NewSolved()
	var d Cube
	for i := 0; i < 16; i++ {
		CubeSym[i] = c
		CornMultFull(&c, &symGen.u4, &d)
		EdgeMult(&c, &symGen.u4, &d)
		c = d
		if i%4 == 3 {
			CornMultFull(&c, &symGen.lr2, &d)
			EdgeMult(&c, &symGen.lr2, &d)
			c = d
		}
		if i%8 == 7 {
			CornMultFull(&c, &symGen.f2, &d)
			EdgeMult(&c, &symGen.f2, &d)
			c = d
		}
	}
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			CornMultFull(&CubeSym[i], &CubeSym[j], &c)
			for k := 0; k < 16; k++ {
				if CubeSym[k].CA == c.CA {
					SymMult[i][j] = k
					SymMultInv[k][j] = i
					break
				}
			}
		}
	}

	for m := 0; m < NMoves; m++ {
		for s := 0; s < 16; s++ {
			CornConjugate(&MoveCube[m], SymMultInv[0][s], &c)
			for mx := 0; mx < NMoves; mx++ {
				if MoveCube[mx].CA == c.CA {
					SymMove[s][m] = mx
					break
				}
			}
			if s%2 == 0 {
				Sym8Move[m<<3|s>>1] = SymMove[s][m]
			}
		}
	}
	for s := 0; s < 16; s++ {
		for m := 0; m < NMoves2; m++ {
			SymMoveUD[s][m] = Std2UD[SymMove[s][UD2Std[m]]]
		}
	}

	URF1 = cubeOf(
		[8]uint8{URF, DFR, DLF, UFL, UBR, DRB, DBL, ULB},
		[8]uint8{1, 2, 1, 2, 2, 1, 2, 1},
		[12]uint8{UF, FR, DF, FL, UB, BR, DB, BL, UR, DR, DL, UL},
		[12]uint8{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1})
	URF1.Invert(&URF2)
}

// CornConjugate writes s^-1 * a * s into out for symmetry index idx,
// handling mirrored corner orientations.
func CornConjugate(a *Cube, idx int, out *Cube) {
	sinv := &CubeSym[SymMultInv[0][idx]]
	s := &CubeSym[idx]
	for c := 0; c < 8; c++ {
		oriA := sinv.CA[a.CA[s.CA[c]&7]&7] >> 3
		oriB := a.CA[s.CA[c]&7] >> 3
		ori := oriB
		if oriA >= 3 {
			ori = (3 - oriB) % 3
		}
		out.CA[c] = sinv.CA[a.CA[s.CA[c]&7]&7]&7 | ori<<3
	}
}

// EdgeConjugate writes s^-1 * a * s into out for symmetry index idx.
func EdgeConjugate(a *Cube, idx int, out *Cube) {
	sinv := &CubeSym[SymMultInv[0][idx]]
	s := &CubeSym[idx]
	for e := 0; e < 12; e++ {
		out.EA[e] = sinv.EA[a.EA[s.EA[e]>>1]>>1] ^ a.EA[s.EA[e]>>1]&1 ^ s.EA[e]&1
	}
}

// URFConjugate rotates the cube state into the next URF frame in place.
func (c *Cube) URFConjugate() {
	var t Cube
	CornMultFull(&URF2, c, &t)
	CornMultFull(&t, &URF1, c)
	EdgeMult(&URF2, c, &t)
	EdgeMult(&t, &URF1, c)
}
