// Package cubegroup is a virtual 3x3x3 cube built on the cube group: corner
// and edge permutation/orientation vectors, the six face generators, move
// composition, invariant validation and projection to stickers.
//
// # Stateless API
//
// States are plain values. Every operation returns a new state:
//
//	s := cubegroup.Reset()
//	s, err := cubegroup.Apply(s, "R")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cubegroup.Validate(s).Valid)
//	snap := cubegroup.Project(s)
//
// # Cube
//
// The Cube type owns a state, a move history and an optional move callback:
//
//	c := cubegroup.NewCube(cubegroup.WithValidation(true))
//
//	// Apply moves using predefined constants
//	c.Apply(cubegroup.R, cubegroup.U, cubegroup.RPrime, cubegroup.UPrime)
//
//	// Or from notation
//	c.ApplyNotation("F B2 L' D")
//
//	fmt.Println("Solved:", c.IsSolved())
//	fmt.Print(c.Facelets())
//
// A Cube is not safe for concurrent use. Give it a single owner that feeds
// it moves one at a time.
//
// # Notation
//
// A move token is one of U D L R F B, optionally followed by ' (counter
// clockwise) or 2 (half turn). Sequences are separated by whitespace and are
// parsed completely before any move is applied.
//
// # Logging
//
// The package is silent by default. Call SetLogger to route its diagnostics
// to a slog.Logger.
package cubegroup
