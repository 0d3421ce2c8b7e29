// cubegroup - CLI for the virtual cube: apply sequences, play interactively
// and run invariant-checking random walks.
package main

import (
	"github.com/SeamusWaldron/cubegroup/internal/cli"
)

func main() {
	cli.Execute()
}
