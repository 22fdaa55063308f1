package cubie

import (
	"math/rand"
	"testing"
)

func TestNewSolvedIsSolved(t *testing.T) {
	c := NewSolved()
	if !c.IsSolved() {
		t.Error("new cube should be solved")
	}
	if c.ToFacelets() != SolvedFacelets {
		t.Errorf("solved facelets = %q", c.ToFacelets())
	}
}

func TestMoveFourTimesIsIdentity(t *testing.T) {
	for axis := 0; axis < 6; axis++ {
		c := NewSolved()
		for i := 0; i < 4; i++ {
			c.ApplyMove(axis * 3)
		}
		if !c.IsSolved() {
			t.Errorf("axis %d: four quarter turns should be the identity", axis)
		}
	}
}

func TestHalfTurnTwiceIsIdentity(t *testing.T) {
	c := NewSolved()
	c.ApplyMove(Rx2)
	c.ApplyMove(Rx2)
	if !c.IsSolved() {
		t.Error("R2 R2 should be the identity")
	}
}

func TestSexyMoveSixTimesIsIdentity(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewSolved()
	for i := 0; i < 6; i++ {
		c.ApplyMove(Rx1)
		c.ApplyMove(Ux1)
		c.ApplyMove(Rx3)
		c.ApplyMove(Ux3)
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should be the identity")
	}
}

func TestInvertUndoesMoves(t *testing.T) {
	c := NewSolved()
	moves := []int{Rx1, Ux2, Fx3, Dx1, Lx2, Bx1}
	for _, m := range moves {
		c.ApplyMove(m)
	}
	var inv, prod Cube
	c.Invert(&inv)
	Mult(c, &inv, &prod)
	if !prod.IsSolved() {
		t.Error("cube times its inverse should be the identity")
	}
}

func TestMoveCubesAreValid(t *testing.T) {
	for m := 0; m < NMoves; m++ {
		if err := MoveCube[m].Verify(); err != nil {
			t.Errorf("move cube %d invalid: %v", m, err)
		}
	}
}

func TestCoordinateRoundTrips(t *testing.T) {
	c := NewSolved()
	for _, v := range []int{0, 1, 2, 1000, 2047} {
		c.SetFlip(v)
		if got := c.GetFlip(); got != v {
			t.Errorf("flip round trip %d -> %d", v, got)
		}
	}
	for _, v := range []int{0, 1, 2, 1093, 2186} {
		c.SetTwist(v)
		if got := c.GetTwist(); got != v {
			t.Errorf("twist round trip %d -> %d", v, got)
		}
	}
	for _, v := range []int{0, 1, 247, 494} {
		c.SetSlice(v)
		if got := c.GetSlice(); got != v {
			t.Errorf("slice round trip %d -> %d", v, got)
		}
	}
	c = NewSolved()
	for _, v := range []int{0, 1, 5040, 40319} {
		c.SetCPerm(v)
		if got := c.GetCPerm(); got != v {
			t.Errorf("cperm round trip %d -> %d", v, got)
		}
	}
	c = NewSolved()
	for _, v := range []int{0, 1, 5040, 40319} {
		c.SetEPerm(v)
		if got := c.GetEPerm(); got != v {
			t.Errorf("eperm round trip %d -> %d", v, got)
		}
	}
	c = NewSolved()
	for _, v := range []int{0, 7, 23} {
		c.SetMPerm(v)
		if got := c.GetMPerm(); got != v {
			t.Errorf("mperm round trip %d -> %d", v, got)
		}
	}
	c = NewSolved()
	for _, v := range []int{0, 34, 69} {
		c.SetCComb(v)
		if got := c.GetCComb(); got != v {
			t.Errorf("ccomb round trip %d -> %d", v, got)
		}
	}
}

func TestSolvedCoordinatesAreZero(t *testing.T) {
	c := NewSolved()
	if c.GetFlip() != 0 || c.GetTwist() != 0 || c.GetSlice() != 0 ||
		c.GetCPerm() != 0 || c.GetEPerm() != 0 || c.GetMPerm() != 0 ||
		c.GetCComb() != 0 {
		t.Error("all coordinates of the solved cube should be zero")
	}
}

func TestFaceletRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		c := Random(r)
		f := c.ToFacelets()
		d, err := FromFacelets(f)
		if err != nil {
			t.Fatalf("FromFacelets(%q): %v", f, err)
		}
		if *d != *c {
			t.Fatalf("facelet round trip changed the cube: %q", f)
		}
	}
}

func TestFromFaceletsRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"INVALID",
		SolvedFacelets[:53],
		SolvedFacelets[:53] + "X",
		// wrong color counts: 10 U stickers, 8 R
		"UUUUUUUUUURRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"[:54],
	}
	for _, f := range cases {
		if _, err := FromFacelets(f); err == nil {
			t.Errorf("FromFacelets(%q) should fail", f)
		}
	}
}

func TestVerifyCodes(t *testing.T) {
	// flipped edge
	c := NewSolved()
	c.EA[0] ^= 1
	if err, ok := c.Verify().(StateError); !ok || err.Code() != ErrCodeEdgeFlip {
		t.Errorf("flipped edge: got %v", c.Verify())
	}
	// twisted corner
	c = NewSolved()
	c.CA[0] |= 1 << 3
	if err, ok := c.Verify().(StateError); !ok || err.Code() != ErrCodeCornerTwist {
		t.Errorf("twisted corner: got %v", c.Verify())
	}
	// duplicated edge
	c = NewSolved()
	c.EA[0] = c.EA[1]
	if err, ok := c.Verify().(StateError); !ok || err.Code() != ErrCodeEdgePerm {
		t.Errorf("duplicated edge: got %v", c.Verify())
	}
	// duplicated corner
	c = NewSolved()
	c.CA[0] = c.CA[1]
	if err, ok := c.Verify().(StateError); !ok || err.Code() != ErrCodeCornerPerm {
		t.Errorf("duplicated corner: got %v", c.Verify())
	}
	// swapped edge pair: parity mismatch
	c = NewSolved()
	c.EA[0], c.EA[1] = c.EA[1], c.EA[0]
	if err, ok := c.Verify().(StateError); !ok || err.Code() != ErrCodeParity {
		t.Errorf("swapped edges: got %v", c.Verify())
	}
}

func TestRandomCubesAreValid(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		if err := Random(r).Verify(); err != nil {
			t.Fatalf("random cube %d invalid: %v", i, err)
		}
	}
}

func TestSymmetriesAreClosed(t *testing.T) {
	// Every product of symmetry cubes is again a symmetry cube, and the
	// multiplication tables agree with inverse lookup.
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			k := SymMult[i][j]
			if SymMultInv[k][j] != i {
				t.Fatalf("SymMultInv[%d][%d] = %d, want %d", k, j, SymMultInv[k][j], i)
			}
		}
	}
	if SymMult[0][0] != 0 {
		t.Error("identity symmetry should be index 0")
	}
}

func TestURFConjugateOrderThree(t *testing.T) {
	c := NewSolved()
	c.ApplyMove(Rx1)
	c.ApplyMove(Ux1)
	orig := *c
	for i := 0; i < 3; i++ {
		c.URFConjugate()
	}
	if *c != orig {
		t.Error("three URF conjugations should be the identity")
	}
}
