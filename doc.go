// Package cubesolver solves the 3x3x3 Rubik's cube with Kociemba's
// two-phase algorithm.
//
// # Quick Start
//
// Solve a scrambled cube given as a 54-character facelet string:
//
//	solution := cubesolver.Solve(facelets, 21)
//	if strings.HasPrefix(solution, "Error") {
//	    // invalid input or no solution within the bound
//	}
//
// Generate and solve a random state:
//
//	f := cubesolver.RandomCube()
//	fmt.Println(cubesolver.Solve(f, 21))
//
// # Facelet format
//
// 54 characters, faces in U R F D L B order, nine stickers per face
// row-major. Colors are defined by the six center stickers, so any six
// distinct characters are accepted:
//
//	             |************|
//	             |*U1**U2**U3*|
//	             |*U4**U5**U6*|
//	             |*U7**U8**U9*|
//	|************|************|************|************|
//	|*L1**L2**L3*|*F1**F2**F3*|*R1**R2**R3*|*B1**B2**B3*|
//	|*L4**L5**L6*|*F4**F5**F6*|*R4**R5**R6*|*B4**B5**B6*|
//	|*L7**L8**L9*|*F7**F8**F9*|*R7**R8**R9*|*B7**B8**B9*|
//	|************|************|************|************|
//	             |*D1**D2**D3*|
//	             |*D4**D5**D6*|
//	             |*D7**D8**D9*|
//
// # Move notation
//
// Face letters U R F D L B with suffixes: none, 1 or + for a quarter
// clockwise turn, 2 for a half turn, ', - or 3 for a quarter
// counter-clockwise turn.
//
// The first solve builds the coordinate and pruning tables (a few
// seconds). The tables are immutable afterwards, so solves may run
// concurrently from any number of goroutines.
package cubesolver
