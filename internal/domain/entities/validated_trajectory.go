package entities

// ValidatedTrajectory is the read-only view of a trajectory that has passed
// whole-trajectory validation. It is the only input the code generator
// accepts, so an unvalidated aggregate cannot reach code generation by
// construction.
type ValidatedTrajectory struct {
	*Trajectory
}

// newValidatedTrajectory wraps a trajectory that just passed Validate.
func newValidatedTrajectory(t *Trajectory) *ValidatedTrajectory {
	return &ValidatedTrajectory{Trajectory: t}
}

// IsValidated always returns true for ValidatedTrajectory.
func (v *ValidatedTrajectory) IsValidated() bool {
	return true
}
