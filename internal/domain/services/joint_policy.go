package services

import (
	"fmt"

	"github.com/armlink-dev/armlink/internal/domain/values"
)

// JointPolicy is the robot-specific limit applied to joint-move points at
// insertion time. The J6 limit intentionally restates the value-level bound
// for the current model: a future robot variant gets a different policy row
// without the value type changing.
type JointPolicy struct {
	robot values.RobotIdentity
	minJ6 float64
	maxJ6 float64
}

// jointPolicies maps each supported robot model to its J6 envelope.
var jointPolicies = map[string]JointPolicy{
	values.RobotNovaTechRT500.Model(): {
		robot: values.RobotNovaTechRT500,
		minJ6: values.MinJ6Degrees,
		maxJ6: values.MaxJ6Degrees,
	},
}

// JointPolicyFor returns the joint policy for a robot model.
func JointPolicyFor(robot values.RobotIdentity) (JointPolicy, error) {
	p, ok := jointPolicies[robot.Model()]
	if !ok {
		return JointPolicy{}, fmt.Errorf("no joint policy defined for robot model %q", robot.Model())
	}
	return p, nil
}

// CheckJ6 validates the sixth joint angle against the robot's envelope.
func (p JointPolicy) CheckJ6(angles values.JointAngleSet) error {
	if j6 := angles.J6(); j6 < p.minJ6 || j6 > p.maxJ6 {
		return &JointRangeError{
			Robot: p.robot,
			Joint: 6,
			Angle: j6,
			Min:   p.minJ6,
			Max:   p.maxJ6,
		}
	}
	return nil
}

// JointRangeError indicates a joint angle outside the robot's envelope.
type JointRangeError struct {
	Robot values.RobotIdentity
	Joint int
	Angle float64
	Min   float64
	Max   float64
}

func (e *JointRangeError) Error() string {
	return fmt.Sprintf(
		"joint angle J%d of %.1f exceeds the %s range [%.0f, %.0f]",
		e.Joint, e.Angle, e.Robot.Model(), e.Min, e.Max,
	)
}
