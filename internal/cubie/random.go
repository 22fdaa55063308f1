package cubie

import "math/rand"

// Random returns a uniformly distributed solvable cube: corner
// permutation, twist and flip are sampled independently and the edge
// permutation is drawn by a Fisher-Yates shuffle whose parity is
// corrected to match the corners.
func Random(r *rand.Rand) *Cube {
	c := NewSolved()
	cperm := r.Intn(NPerm)
	c.SetCPerm(cperm)
	c.SetTwist(r.Intn(NTwist))

	var p [12]int
	for i := range p {
		p[i] = i
	}
	parity := 0
	for i := 11; i > 0; i-- {
		j := r.Intn(i + 1)
		if i != j {
			p[i], p[j] = p[j], p[i]
			parity ^= 1
		}
	}
	if parity != permParity(cperm, 8) {
		p[0], p[1] = p[1], p[0]
	}
	for i := 0; i < 12; i++ {
		c.EA[i] = uint8(p[i] << 1)
	}
	c.SetFlip(r.Intn(NFlip))
	return c
}
