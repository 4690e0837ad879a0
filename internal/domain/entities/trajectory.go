package entities

import (
	"fmt"

	"github.com/armlink-dev/armlink/internal/domain/services"
	"github.com/armlink-dev/armlink/internal/domain/values"
)

// Trajectory is the aggregate root for one motion document.
//
// Aggregate boundary:
// - Trajectory is the root
// - MotionPoints are value objects owned exclusively by the trajectory
//
// Invariants enforced:
// - Robot, firmware, base frame and tool frame are valid before the
//   aggregate exists
// - Every appended point is individually valid and compatible with the
//   robot's joint policy; a failed append leaves the sequence untouched
// - The point sequence is append-only; insertion order is emission order
type Trajectory struct {
	robot       values.RobotIdentity
	firmware    values.FirmwareVersion
	base        values.CoordinateFrame
	tool        values.CoordinateFrame
	jointPolicy services.JointPolicy
	points      []MotionPoint
}

// NewTrajectory validates the document header fields and creates an empty
// trajectory. It cannot be built into a partially-invalid state: any invalid
// header field fails construction.
func NewTrajectory(robot, firmware string, baseFrame, toolFrame []float64) (*Trajectory, error) {
	identity, err := values.NewRobotIdentity(robot)
	if err != nil {
		return nil, err
	}
	fw, err := values.NewFirmwareVersion(firmware)
	if err != nil {
		return nil, err
	}
	base, err := values.NewCoordinateFrame(baseFrame)
	if err != nil {
		return nil, fmt.Errorf("base frame: %w", err)
	}
	tool, err := values.NewCoordinateFrame(toolFrame)
	if err != nil {
		return nil, fmt.Errorf("tool frame: %w", err)
	}
	policy, err := services.JointPolicyFor(identity)
	if err != nil {
		return nil, err
	}
	return &Trajectory{
		robot:       identity,
		firmware:    fw,
		base:        base,
		tool:        tool,
		jointPolicy: policy,
	}, nil
}

// AddPoint builds a MotionPoint from raw input and appends it. Joint points
// additionally pass the robot's joint policy. On any failure nothing is
// appended and the trajectory is exactly as it was before the call.
func (t *Trajectory) AddPoint(spec PointSpec) error {
	point, err := NewMotionPoint(spec)
	if err != nil {
		return err
	}
	if joints, ok := point.Joints(); ok {
		if err := t.jointPolicy.CheckJ6(joints); err != nil {
			return err
		}
	}
	t.points = append(t.points, point)
	return nil
}

// Robot returns the robot identity.
func (t *Trajectory) Robot() values.RobotIdentity {
	return t.robot
}

// Firmware returns the firmware version.
func (t *Trajectory) Firmware() values.FirmwareVersion {
	return t.firmware
}

// BaseFrame returns the base coordinate frame.
func (t *Trajectory) BaseFrame() values.CoordinateFrame {
	return t.base
}

// ToolFrame returns the tool coordinate frame.
func (t *Trajectory) ToolFrame() values.CoordinateFrame {
	return t.tool
}

// Len returns the number of points.
func (t *Trajectory) Len() int {
	return len(t.points)
}

// Points returns the points in insertion order. The slice is a copy; the
// trajectory's own sequence cannot be mutated through it.
func (t *Trajectory) Points() []MotionPoint {
	out := make([]MotionPoint, len(t.points))
	copy(out, t.points)
	return out
}

// Validate runs the whole-trajectory pass: the sequence must be non-empty,
// and every point must pass its per-point check. Unlike insertion, which
// fails fast, this pass collects every failure and reports them together.
// It is read-only and idempotent; on success it returns the validated view
// the code generator consumes.
func (t *Trajectory) Validate() (*ValidatedTrajectory, error) {
	if len(t.points) == 0 {
		return nil, &EmptyTrajectoryError{}
	}

	var failures []string
	for i, p := range t.points {
		if err := p.check(); err != nil {
			failures = append(failures, fmt.Sprintf("point %d: %s", i+1, err.Error()))
		}
	}
	if len(failures) > 0 {
		return nil, &ValidationError{Failures: failures}
	}
	return newValidatedTrajectory(t), nil
}
