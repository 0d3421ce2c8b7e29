package cubegroup

import (
	"errors"

	"github.com/SeamusWaldron/cubegroup/internal/cube"
	"github.com/SeamusWaldron/cubegroup/pkg/types"
)

// Sentinel errors for the cubegroup package.
var (
	// Parsing errors
	ErrInvalidMoveToken = types.ErrInvalidMoveToken

	// State errors
	ErrCorruptedState = cube.ErrCorruptedState
	ErrNothingToUndo  = errors.New("cubegroup: nothing to undo")
	ErrNoHistory      = errors.New("cubegroup: move history is disabled")
)
