// cubesolver - two-phase Rubik's cube solver CLI.
package main

import (
	"github.com/seamusw/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
