package coord

import "github.com/seamusw/cubesolver/internal/cubie"

// Node is the phase-1 coordinate view of a cube: flip and twist as
// symmetry coordinates plus the raw UD-slice coordinate, with the cached
// pruning bound.
type Node struct {
	Twist, TSym int
	Flip, FSym  int
	Slice       int
	Prun        int
}

// Set initializes the node from a cubie state.
func (n *Node) Set(cc *cubie.Cube) {
	flip := int(FlipR2S[cc.GetFlip()])
	n.Flip, n.FSym = flip>>3, flip&7
	twist := int(TwistR2S[cc.GetTwist()])
	n.Twist, n.TSym = twist>>3, twist&7
	n.Slice = cc.GetSlice()
	n.Prun = max(
		GetPruning(SliceTwistPrun[:], n.Twist*NSlice+int(SliceConj[n.Slice][n.TSym])),
		GetPruning(SliceFlipPrun[:], n.Flip*NSlice+int(SliceConj[n.Slice][n.FSym])))
}

// SetWithPrun initializes the node and reports whether its pruning bound
// permits a solution within depth moves.
func (n *Node) SetWithPrun(cc *cubie.Cube, depth int) bool {
	n.Set(cc)
	return n.Prun <= depth
}

// MovePrun advances src by move m into n, recomputing the pruning bound,
// and returns it. The symmetry indices ride along by composing with the
// transported move's residual symmetry (an XOR in the 8-element group).
func (n *Node) MovePrun(src *Node, m int) int {
	n.Slice = int(SliceMove[src.Slice][m])

	flip := int(FlipMove[src.Flip][cubie.Sym8Move[m<<3|src.FSym]])
	n.FSym = flip&7 ^ src.FSym
	n.Flip = flip >> 3

	twist := int(TwistMove[src.Twist][cubie.Sym8Move[m<<3|src.TSym]])
	n.TSym = twist&7 ^ src.TSym
	n.Twist = twist >> 3

	n.Prun = max(
		GetPruning(SliceTwistPrun[:], n.Twist*NSlice+int(SliceConj[n.Slice][n.TSym])),
		GetPruning(SliceFlipPrun[:], n.Flip*NSlice+int(SliceConj[n.Slice][n.FSym])))
	return n.Prun
}
