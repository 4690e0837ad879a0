package entities

import (
	"fmt"
	"strings"
)

// UnsupportedMotionTypeError indicates an unknown movement type discriminator.
type UnsupportedMotionTypeError struct {
	Type string
}

func (e *UnsupportedMotionTypeError) Error() string {
	return fmt.Sprintf(
		"unsupported motion type %q (supported types: %s)",
		e.Type, strings.Join(supportedMotionTypeNames(), ", "),
	)
}

// MissingPayloadError indicates a point declared one motion type but did not
// carry the matching payload.
type MissingPayloadError struct {
	Type    MotionType
	Payload string
}

func (e *MissingPayloadError) Error() string {
	return fmt.Sprintf("%s move requires a %s payload", e.Type, e.Payload)
}

// EmptyTrajectoryError indicates whole-trajectory validation ran on a
// trajectory with no points.
type EmptyTrajectoryError struct{}

func (e *EmptyTrajectoryError) Error() string {
	return "trajectory must contain at least one point"
}

// ValidationError aggregates every per-point failure found by a
// whole-trajectory validation pass.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Failures, "\n")
}
