package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is reported when more component types are used than a Mask can hold.
	ErrCapacityExceeded = errors.New("component type capacity exceeded")

	// ErrUnknownStage is returned when a system names a stage the scheduler does not run.
	ErrUnknownStage = errors.New("unknown stage")

	// ErrInvalidSystem is returned when a system is missing its query or update function.
	ErrInvalidSystem = errors.New("invalid system")

	// ErrUnknownIndexPolicy is returned by ParseIndexPolicy for an unrecognised name.
	ErrUnknownIndexPolicy = errors.New("unknown index policy")
)

// CapacityError describes a bit index request beyond MaskWidth.
type CapacityError struct {
	Index int
	Type  ComponentType
}

func (e *CapacityError) Error() string {
	if e.Type != 0 {
		return fmt.Sprintf("%s: component type %s would need bit %d (max %d types)",
			ErrCapacityExceeded, e.Type, e.Index, MaskWidth)
	}
	return fmt.Sprintf("%s: bit index %d outside [0, %d)", ErrCapacityExceeded, e.Index, MaskWidth)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }
