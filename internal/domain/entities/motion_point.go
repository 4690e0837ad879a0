// Package entities contains the domain model for robot trajectories: the
// MotionPoint sum type and the Trajectory aggregate root. These are pure
// domain types with no infrastructure dependencies.
package entities

import (
	"strings"

	"github.com/armlink-dev/armlink/internal/domain/services"
	"github.com/armlink-dev/armlink/internal/domain/values"
)

// MotionType discriminates the two kinds of motion command.
type MotionType int

const (
	motionUnset MotionType = iota
	// MotionLinear is a straight-line Cartesian move to a pose.
	MotionLinear
	// MotionJoint is a move specified in joint space; the tool path is not
	// guaranteed to be straight.
	MotionJoint
)

// ParseMotionType parses a movement-type discriminator, case-insensitively.
func ParseMotionType(s string) (MotionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return MotionLinear, nil
	case "joint":
		return MotionJoint, nil
	default:
		return motionUnset, &UnsupportedMotionTypeError{Type: s}
	}
}

func supportedMotionTypeNames() []string {
	return []string{"linear", "joint"}
}

// String returns the lowercase discriminator.
func (t MotionType) String() string {
	switch t {
	case MotionLinear:
		return "linear"
	case MotionJoint:
		return "joint"
	default:
		return ""
	}
}

// PointSpec is the raw input for one trajectory point, as decoded from a
// motion document. A nil Acceleration means the document omitted it.
type PointSpec struct {
	Type         string
	Position     []float64
	Joints       []float64
	Speed        int
	Acceleration *int
}

// MotionPoint is one validated motion command: a tagged union of a linear
// move (carrying a CoordinateFrame) or a joint move (carrying a
// JointAngleSet), plus speed and acceleration. Exactly one payload matches
// the tag; points are immutable and owned by the Trajectory that holds them.
type MotionPoint struct {
	motionType MotionType
	frame      values.CoordinateFrame
	joints     values.JointAngleSet
	speed      values.Speed
	accel      values.Acceleration
}

// NewMotionPoint builds a MotionPoint from raw input. The first failing
// sub-step short-circuits; nothing is corrected silently.
func NewMotionPoint(spec PointSpec) (MotionPoint, error) {
	motionType, err := ParseMotionType(spec.Type)
	if err != nil {
		return MotionPoint{}, err
	}

	speed, err := values.NewSpeed(spec.Speed)
	if err != nil {
		return MotionPoint{}, err
	}

	accel := values.DefaultAcceleration()
	if spec.Acceleration != nil {
		if accel, err = values.NewAcceleration(*spec.Acceleration); err != nil {
			return MotionPoint{}, err
		}
	}

	point := MotionPoint{motionType: motionType, speed: speed, accel: accel}
	switch motionType {
	case MotionLinear:
		if spec.Position == nil {
			return MotionPoint{}, &MissingPayloadError{Type: motionType, Payload: "position"}
		}
		if point.frame, err = values.NewCoordinateFrame(spec.Position); err != nil {
			return MotionPoint{}, err
		}
	case MotionJoint:
		if spec.Joints == nil {
			return MotionPoint{}, &MissingPayloadError{Type: motionType, Payload: "joints"}
		}
		if point.joints, err = values.NewJointAngleSet(spec.Joints); err != nil {
			return MotionPoint{}, err
		}
	}
	return point, nil
}

// Type returns the motion type tag.
func (p MotionPoint) Type() MotionType {
	return p.motionType
}

// Speed returns the point's speed.
func (p MotionPoint) Speed() values.Speed {
	return p.speed
}

// Acceleration returns the point's acceleration.
func (p MotionPoint) Acceleration() values.Acceleration {
	return p.accel
}

// Frame returns the target pose and true for linear points.
func (p MotionPoint) Frame() (values.CoordinateFrame, bool) {
	return p.frame, p.motionType == MotionLinear
}

// Joints returns the joint angles and true for joint points.
func (p MotionPoint) Joints() (values.JointAngleSet, bool) {
	return p.joints, p.motionType == MotionJoint
}

// Command renders the point as one controller command line (without the
// trailing newline) under the given firmware's dialect. It is a pure
// function of the point's fields and the firmware's syntax variant.
// Rendering a zero-value point is a programming error and panics.
func (p MotionPoint) Command(fw values.FirmwareVersion) string {
	syntax := services.SpeedSyntaxFor(fw)
	switch p.motionType {
	case MotionLinear:
		return "MOVL " + p.frame.Format() + " " + syntax.RenderSpeed(p.speed, false) + " ACC=" + p.accel.String()
	case MotionJoint:
		return "MOVJ " + p.joints.Format() + " " + syntax.RenderSpeed(p.speed, true) + " ACC=" + p.accel.String()
	default:
		panic("entities: Command called on a motion point without a variant")
	}
}

// check is the per-point pass run by whole-trajectory validation. It
// restates invariants the constructor already enforced so that validation
// stays meaningful even if point construction changes.
func (p MotionPoint) check() error {
	if p.motionType != MotionLinear && p.motionType != MotionJoint {
		return &UnsupportedMotionTypeError{Type: p.motionType.String()}
	}
	if p.speed.Int() <= 0 {
		return &MissingSpeedError{}
	}
	return nil
}

// MissingSpeedError indicates a point whose speed is not positive. Reachable
// only through a zero-value point, which the constructors never produce.
type MissingSpeedError struct{}

func (e *MissingSpeedError) Error() string {
	return "speed must be positive"
}
