package planner

import "errors"

// Sentinel errors returned by New.
var (
	// ErrNilGrid indicates a nil *core.Grid was passed to New.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrStartOutOfBounds indicates the start cell is nil (outside
	// the grid it should have been obtained from).
	ErrStartOutOfBounds = errors.New("planner: start cell out of bounds")

	// ErrGoalOutOfBounds indicates the goal cell is nil (outside the
	// grid it should have been obtained from).
	ErrGoalOutOfBounds = errors.New("planner: goal cell out of bounds")

	// ErrGoalUnwalkable indicates the goal cell's cost is
	// core.UNWALKABLE at construction time.
	ErrGoalUnwalkable = errors.New("planner: goal cell is unwalkable")
)
