package neural

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and are usually wrapped with context
// about where they occurred; errors.Cause() recovers them.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	// ErrCycle is returned by Connect when the new edge would make a layer (indirectly) feed
	// itself, and by Backward if a Graph's ordering cannot be resolved.
	ErrCycle = Error{"Layers would form a cycle"}
	// ErrUnknownLayer is returned when given a LayerID that does not belong to the Network.
	ErrUnknownLayer = Error{"Layer does not belong to this Network"}
)

// ConfigurationError documents a Network that was set up (or called) in a way that cannot work.
// It identifies the offending layer, which will be printed in the same way as *Layer.String().
type ConfigurationError struct {
	Layer  string
	Reason string
}

func (err ConfigurationError) Error() string {
	if err.Layer == "" {
		return err.Reason
	}

	return fmt.Sprintf("Layer %s: %s", err.Layer, err.Reason)
}

// SizeMismatchError documents a slice whose length did not match what was expected.
type SizeMismatchError struct {
	Expected, Got int
	Name          string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch for %s: expected %d, got %d", err.Name, err.Expected, err.Got)
}
