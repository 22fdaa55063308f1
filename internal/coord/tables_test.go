package coord

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubesolver/internal/cubie"
)

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

func TestRaw2SymConsistency(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	c := cubie.NewSolved()
	var d cubie.Cube

	for i := 0; i < 200; i++ {
		raw := r.Intn(cubie.NFlip)
		cls, sym := int(FlipR2S[raw])>>3, int(FlipR2S[raw])&7
		c.SetFlip(int(FlipS2R[cls]))
		cubie.EdgeConjugate(c, sym*2, &d)
		require.Equal(t, raw, d.GetFlip(), "flip class %d sym %d", cls, sym)
	}
	for i := 0; i < 200; i++ {
		raw := r.Intn(cubie.NTwist)
		cls, sym := int(TwistR2S[raw])>>3, int(TwistR2S[raw])&7
		c.SetTwist(int(TwistS2R[cls]))
		cubie.CornConjugate(c, sym*2, &d)
		require.Equal(t, raw, d.GetTwist(), "twist class %d sym %d", cls, sym)
	}
	c = cubie.NewSolved()
	for i := 0; i < 200; i++ {
		raw := r.Intn(cubie.NPerm)
		cls, sym := int(EPermR2S[raw])>>4, int(EPermR2S[raw])&0xf
		c.SetEPerm(int(EPermS2R[cls]))
		cubie.EdgeConjugate(c, sym, &d)
		require.Equal(t, raw, d.GetEPerm(), "eperm class %d sym %d", cls, sym)
	}
	c = cubie.NewSolved()
	for i := 0; i < 200; i++ {
		raw := r.Intn(cubie.NPerm)
		cls, sym := int(CPermR2S[raw])>>4, int(CPermR2S[raw])&0xf
		c.SetCPerm(int(CPermS2R[cls]))
		cubie.CornConjugate(c, sym, &d)
		require.Equal(t, raw, d.GetCPerm(), "cperm class %d sym %d", cls, sym)
	}
}

func TestSymClassZeroIsSolved(t *testing.T) {
	// Class 0 of every symmetry coordinate has the solved coordinate as
	// its representative.
	require.EqualValues(t, 0, FlipS2R[0])
	require.EqualValues(t, 0, TwistS2R[0])
	require.EqualValues(t, 0, EPermS2R[0])
	require.EqualValues(t, 0, CPermS2R[0])
}

func TestSliceMoveInverts(t *testing.T) {
	// Applying a move and then its inverse restores the raw coordinate.
	invOf := func(m int) int {
		return m/3*3 + (2 - m%3)
	}
	for raw := 0; raw < NSlice; raw += 7 {
		for m := 0; m < cubie.NMoves; m++ {
			next := int(SliceMove[raw][m])
			require.Equal(t, raw, int(SliceMove[next][invOf(m)]), "slice %d move %d", raw, m)
		}
	}
}

func TestPruningSolvedEntriesAreZero(t *testing.T) {
	require.Equal(t, 0, GetPruning(SliceTwistPrun[:], 0))
	require.Equal(t, 0, GetPruning(SliceFlipPrun[:], 0))
	require.Equal(t, 0, GetPruning(MCPermPrun[:], 0))
	require.Equal(t, 0, GetPruning(EPermCCombPrun[:], 0))
}

func TestPhase1PruningIsAdmissible(t *testing.T) {
	// Walk random move sequences from solved; the phase-1 bound can
	// never exceed the number of moves applied.
	r := rand.New(rand.NewSource(4))
	for trial := 0; trial < 20; trial++ {
		c := cubie.NewSolved()
		var n Node
		for k := 1; k <= 10; k++ {
			c.ApplyMove(r.Intn(cubie.NMoves))
			n.Set(c)
			require.LessOrEqual(t, n.Prun, k, "trial %d after %d moves", trial, k)
		}
	}
}

func TestNodeMovePrunMatchesSet(t *testing.T) {
	// Advancing a node by table lookups must agree with recomputing the
	// node from the multiplied cubie state.
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		c := cubie.NewSolved()
		for i := 0; i < r.Intn(12); i++ {
			c.ApplyMove(r.Intn(cubie.NMoves))
		}
		var cur Node
		cur.Set(c)
		m := r.Intn(cubie.NMoves)
		var next Node
		next.MovePrun(&cur, m)

		c.ApplyMove(m)
		var want Node
		want.Set(c)
		require.Equal(t, want.Slice, next.Slice)
		require.Equal(t, want.Flip, next.Flip)
		require.Equal(t, want.Twist, next.Twist)
		require.Equal(t, want.Prun, next.Prun)
	}
}

func TestPhase2PruningIsAdmissible(t *testing.T) {
	// Walk random phase-2 sequences from solved and compare both table
	// bounds against the move count.
	r := rand.New(rand.NewSource(6))
	for trial := 0; trial < 20; trial++ {
		c := cubie.NewSolved()
		for k := 1; k <= 10; k++ {
			c.ApplyMove(cubie.UD2Std[r.Intn(cubie.NMoves2)])

			corn := int(CPermR2S[c.GetCPerm()])
			cls, sym := corn>>4, corn&0xf
			bound := GetPruning(MCPermPrun[:],
				cls*NMPerm+int(MPermConj[c.GetMPerm()][SymMultInv[0][sym]]))
			require.LessOrEqual(t, bound, k, "mcperm trial %d after %d moves", trial, k)

			edge := int(EPermR2S[c.GetEPerm()])
			ecls, esym := edge>>4, edge&0xf
			bound = GetPruning(EPermCCombPrun[:],
				ecls*NComb+int(CCombConj[c.GetCComb()][SymMultInv[0][esym]]))
			require.LessOrEqual(t, bound, k, "epermccomb trial %d after %d moves", trial, k)
		}
	}
}
