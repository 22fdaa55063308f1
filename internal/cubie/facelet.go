package cubie

// Facelet indices run U1..U9, R1..R9, F1..F9, D1..D9, L1..L9, B1..B9,
// row-major within each face, so sticker i belongs to face i/9.

// SolvedFacelets is the facelet string of the identity cube.
const SolvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// cornerFacelet[c] lists the three stickers of corner slot c, the U/D
// sticker first, then clockwise around the corner.
var cornerFacelet = [8][3]int{
	{8, 9, 20},   // URF
	{6, 18, 38},  // UFL
	{0, 36, 47},  // ULB
	{2, 45, 11},  // UBR
	{29, 26, 15}, // DFR
	{27, 44, 24}, // DLF
	{33, 53, 42}, // DBL
	{35, 17, 51}, // DRB
}

// edgeFacelet[e] lists the two stickers of edge slot e, the U/D (or F/B
// for slice edges) sticker first.
var edgeFacelet = [12][2]int{
	{5, 10},  // UR
	{7, 19},  // UF
	{3, 37},  // UL
	{1, 46},  // UB
	{32, 16}, // DR
	{28, 25}, // DF
	{30, 43}, // DL
	{34, 52}, // DB
	{23, 12}, // FR
	{21, 41}, // FL
	{50, 39}, // BL
	{48, 14}, // BR
}

const faceLetters = "URFDLB"

// FromFacelets decodes a 54-character facelet string. Colors are defined
// by the six center stickers, so any six distinct characters work. A
// malformed string yields StateError(ErrCodeFacelets); a well-formed but
// unsolvable one decodes into a cube that fails Verify.
func FromFacelets(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, StateError(ErrCodeFacelets)
	}
	// Map each character to the face whose center carries it.
	var f [54]int8
	count := [6]int{}
	for i := 0; i < 54; i++ {
		f[i] = -1
		for face := 0; face < 6; face++ {
			if s[i] == s[face*9+4] {
				f[i] = int8(face)
				count[face]++
				break
			}
		}
		if f[i] < 0 {
			return nil, StateError(ErrCodeFacelets)
		}
	}
	for face := 0; face < 6; face++ {
		if count[face] != 9 {
			return nil, StateError(ErrCodeFacelets)
		}
	}

	c := &Cube{}
	for i := 0; i < 8; i++ {
		// The sticker showing U or D color fixes the twist.
		var ori int
		for ori = 0; ori < 3; ori++ {
			if f[cornerFacelet[i][ori]] == 0 || f[cornerFacelet[i][ori]] == 3 {
				break
			}
		}
		col1 := f[cornerFacelet[i][(ori+1)%3]]
		col2 := f[cornerFacelet[i][(ori+2)%3]]
		for j := 0; j < 8; j++ {
			if int(col1) == cornerFacelet[j][1]/9 && int(col2) == cornerFacelet[j][2]/9 {
				c.CA[i] = uint8(ori%3<<3 | j)
				break
			}
		}
	}
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			if int(f[edgeFacelet[i][0]]) == edgeFacelet[j][0]/9 &&
				int(f[edgeFacelet[i][1]]) == edgeFacelet[j][1]/9 {
				c.EA[i] = uint8(j << 1)
				break
			}
			if int(f[edgeFacelet[i][0]]) == edgeFacelet[j][1]/9 &&
				int(f[edgeFacelet[i][1]]) == edgeFacelet[j][0]/9 {
				c.EA[i] = uint8(j<<1 | 1)
				break
			}
		}
	}
	return c, nil
}

// ToFacelets encodes the cube as a 54-character facelet string using the
// canonical URFDLB letters.
func (c *Cube) ToFacelets() string {
	var f [54]byte
	for i := 0; i < 54; i++ {
		f[i] = faceLetters[i/9]
	}
	for k := 0; k < 8; k++ {
		piece := int(c.CA[k] & 7)
		ori := int(c.CA[k] >> 3)
		for n := 0; n < 3; n++ {
			f[cornerFacelet[k][(n+ori)%3]] = faceLetters[cornerFacelet[piece][n]/9]
		}
	}
	for e := 0; e < 12; e++ {
		piece := int(c.EA[e] >> 1)
		ori := int(c.EA[e] & 1)
		for n := 0; n < 2; n++ {
			f[edgeFacelet[e][(n+ori)%2]] = faceLetters[edgeFacelet[piece][n]/9]
		}
	}
	return string(f[:])
}
