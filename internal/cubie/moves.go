package cubie

// Move indices: axis*3 + power, axes ordered U R F D L B, powers
// 0 = quarter clockwise, 1 = half, 2 = quarter counter-clockwise.
const (
	Ux1 = iota
	Ux2
	Ux3
	Rx1
	Rx2
	Rx3
	Fx1
	Fx2
	Fx3
	Dx1
	Dx2
	Dx3
	Lx1
	Lx2
	Lx3
	Bx1
	Bx2
	Bx3
	NMoves = 18
)

// Phase-2 move alphabet (the G1 generators) and its mapping into the
// 18-move index space.
const NMoves2 = 10

var UD2Std = [NMoves2]int{Ux1, Ux2, Ux3, Rx2, Fx2, Dx1, Dx2, Dx3, Lx2, Bx2}

var Std2UD [NMoves]int

// MoveCube[m] is the cube obtained by applying move m to the identity.
var MoveCube [NMoves]Cube

func cubeOf(cp [8]uint8, co [8]uint8, ep [12]uint8, eo [12]uint8) Cube {
	var c Cube
	for i := 0; i < 8; i++ {
		c.CA[i] = co[i]<<3 | cp[i]
	}
	for i := 0; i < 12; i++ {
		c.EA[i] = ep[i]<<1 | eo[i]
	}
	return c
}

// Quarter-turn generators. cp[i] is the piece moved into slot i.
var baseMoves = [6]Cube{
	// U
	cubeOf(
		[8]uint8{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
	// R
	cubeOf(
		[8]uint8{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		[8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		[12]uint8{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
	// F
	cubeOf(
		[8]uint8{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		[8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		[12]uint8{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		[12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0}),
	// D
	cubeOf(
		[8]uint8{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		[12]uint8{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
	// L
	cubeOf(
		[8]uint8{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		[8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		[12]uint8{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
	// B
	cubeOf(
		[8]uint8{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		[8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		[12]uint8{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		[12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1}),
}

func init() {
	for axis := 0; axis < 6; axis++ {
		MoveCube[axis*3] = baseMoves[axis]
		for p := 0; p < 2; p++ {
			CornMult(&MoveCube[axis*3+p], &MoveCube[axis*3], &MoveCube[axis*3+p+1])
			EdgeMult(&MoveCube[axis*3+p], &MoveCube[axis*3], &MoveCube[axis*3+p+1])
		}
	}
	for i := range Std2UD {
		Std2UD[i] = -1
	}
	for i, m := range UD2Std {
		Std2UD[m] = i
	}
	initSym()
}

// ApplyMove multiplies move m onto c in place.
func (c *Cube) ApplyMove(m int) {
	var d Cube
	Mult(c, &MoveCube[m], &d)
	*c = d
}
