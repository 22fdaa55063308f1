package cubesolver

import (
	"errors"
	"fmt"

	"github.com/seamusw/cubesolver/internal/cubie"
)

// ErrNoSolution reports that the search exhausted every length up to
// the bound. Its protocol code is 8.
var ErrNoSolution = errors.New("cubesolver: no solution within the length bound")

// errorCode maps a validation or search error to the numeric code used
// in the "Error N" result strings: 1-6 for validation, 8 for exhaustion.
func errorCode(err error) int {
	var state cubie.StateError
	if errors.As(err, &state) {
		return state.Code()
	}
	if errors.Is(err, ErrNoSolution) {
		return 8
	}
	return 0
}

func errorString(err error) string {
	return fmt.Sprintf("Error %d", errorCode(err))
}
