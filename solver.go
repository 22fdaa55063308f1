package cubesolver

import (
	"github.com/seamusw/cubesolver/internal/cubie"
	"github.com/seamusw/cubesolver/internal/notation"
	"github.com/seamusw/cubesolver/internal/search"
)

// SolvedFacelets is the facelet string of the solved cube.
const SolvedFacelets = cubie.SolvedFacelets

// Options controls the formatting of solutions returned by SolveWith.
type Options struct {
	// UseSeparator inserts a "." between the phase-1 and phase-2 parts.
	UseSeparator bool
	// AppendLength appends a "(Nf)" move count.
	AppendLength bool
	// InverseSolution returns the generator of the state instead of the
	// solving sequence.
	InverseSolution bool
}

// Solve returns a move sequence of at most maxLength face turns that
// solves the given facelet state, or "Error N" with N in {1,...,6,8}.
// maxLength is clamped to [0, 25]; the top of the range is exclusive
// after the internal +1, so 25 bounds the solution at 24 turns.
func Solve(facelets string, maxLength int) string {
	return SolveWith(facelets, maxLength, Options{})
}

// SolveWith is Solve with explicit formatting options.
func SolveWith(facelets string, maxLength int, opts Options) string {
	cc, err := parse(facelets)
	if err != nil {
		return errorString(err)
	}
	sol, ok := search.Solve(cc, maxLength, search.Options{
		UseSeparator:    opts.UseSeparator,
		AppendLength:    opts.AppendLength,
		InverseSolution: opts.InverseSolution,
	})
	if !ok {
		return errorString(ErrNoSolution)
	}
	return sol
}

// Verify checks a facelet string without solving it. It returns nil for
// a solvable state, or a cubie.StateError carrying the validation code.
func Verify(facelets string) error {
	_, err := parse(facelets)
	return err
}

func parse(facelets string) (*cubie.Cube, error) {
	cc, err := cubie.FromFacelets(facelets)
	if err != nil {
		return nil, err
	}
	if err := cc.Verify(); err != nil {
		return nil, err
	}
	return cc, nil
}

// FromMoves applies a move sequence to the solved cube and returns the
// resulting facelet string, or "" if the sequence does not parse.
func FromMoves(moves string) string {
	return ApplyMoves(SolvedFacelets, moves)
}

// ApplyMoves applies a move sequence to a facelet state and returns the
// result, or "" on any validation or parse error.
func ApplyMoves(facelets, moves string) string {
	cc, err := parse(facelets)
	if err != nil {
		return ""
	}
	ms, err := notation.Parse(moves)
	if err != nil {
		return ""
	}
	for _, m := range ms {
		cc.ApplyMove(m)
	}
	return cc.ToFacelets()
}
