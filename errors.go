package girgs

import "errors"

// Precondition-violation sentinels from §7: the core is a pure
// computation and fails fast on malformed input before any sampling
// begins.
var (
	ErrTooFewPoints           = errors.New("girgs: n must be at least 1")
	ErrNonPositiveTemperature = errors.New("girgs: temperature must be >= 0")
	ErrNonPositiveAlpha       = errors.New("girgs: alpha must be > 0")
	ErrNonPositiveRadius      = errors.New("girgs: radius must be > 0")
	ErrDimensionMismatch      = errors.New("girgs: dimension must be >= 1 and match the position data")
	ErrInvalidWeightBounds    = errors.New("girgs: weights must all be > 0")
)
