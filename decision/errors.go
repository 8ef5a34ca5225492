package decision

import "errors"

var (
	// ErrUnknownArchetype means the actor's archetype id has no registered
	// profile. Evaluation never substitutes a default.
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrInvalidProfile   = errors.New("invalid profile")
)
