package cubesolver

import (
	"math/rand"
	"sync"
	"time"

	"github.com/seamusw/cubesolver/internal/cubie"
	"github.com/seamusw/cubesolver/internal/notation"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomCube returns the facelet string of a uniformly distributed
// solvable cube state.
func RandomCube() string {
	rngMu.Lock()
	defer rngMu.Unlock()
	return RandomCubeFrom(rng)
}

// RandomCubeFrom is RandomCube drawing from the given source, for
// reproducible sequences.
func RandomCubeFrom(r *rand.Rand) string {
	return cubie.Random(r).ToFacelets()
}

// RandomMoves returns a scramble of n face turns. A turn never repeats
// the previous axis, and the two faces of a parallel pair only ever
// appear in ascending axis order back to back.
func RandomMoves(n int) string {
	rngMu.Lock()
	defer rngMu.Unlock()
	return RandomMovesFrom(rng, n)
}

// RandomMovesFrom is RandomMoves drawing from the given source.
func RandomMovesFrom(r *rand.Rand, n int) string {
	moves := make([]int, 0, n)
	lastAxis := -1
	for len(moves) < n {
		axis := r.Intn(6)
		if axis == lastAxis || (lastAxis >= 3 && axis == lastAxis-3) {
			continue
		}
		moves = append(moves, axis*3+r.Intn(3))
		lastAxis = axis
	}
	return notation.Format(moves)
}
