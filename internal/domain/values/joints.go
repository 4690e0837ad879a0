package values

import (
	"fmt"
	"math"
)

// J6 rotation limit in degrees. The wrist joint on supported arms allows two
// full turns either way, unlike the implied single-turn limit of J1-J5 which
// is enforced mechanically and not modelled here.
const (
	MinJ6Degrees = -720.0
	MaxJ6Degrees = 720.0
)

// JointAngleSet is a validated set of six joint angles [J1..J6] in degrees.
// J1-J5 accept any finite value; J6 must lie within [MinJ6Degrees, MaxJ6Degrees].
type JointAngleSet struct {
	angles [6]float64
}

// NewJointAngleSet creates a JointAngleSet with validation.
func NewJointAngleSet(angles []float64) (JointAngleSet, error) {
	if len(angles) != 6 {
		return JointAngleSet{}, fmt.Errorf(
			"joint angle set requires exactly 6 angles [J1..J6], got %d", len(angles),
		)
	}
	var j JointAngleSet
	for i, v := range angles {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return JointAngleSet{}, fmt.Errorf("joint angle J%d is not a finite number", i+1)
		}
		j.angles[i] = v
	}
	if j6 := j.angles[5]; j6 < MinJ6Degrees || j6 > MaxJ6Degrees {
		return JointAngleSet{}, fmt.Errorf(
			"joint angle J6 of %.1f exceeds the allowed range [%.0f, %.0f]",
			j6, MinJ6Degrees, MaxJ6Degrees,
		)
	}
	return j, nil
}

// MustNewJointAngleSet creates a JointAngleSet or panics (for tests/constants)
func MustNewJointAngleSet(angles []float64) JointAngleSet {
	j, err := NewJointAngleSet(angles)
	if err != nil {
		panic(err)
	}
	return j
}

// Angles returns a copy of the six joint angles.
func (j JointAngleSet) Angles() [6]float64 {
	return j.angles
}

// J6 returns the sixth joint angle in degrees.
func (j JointAngleSet) J6() float64 {
	return j.angles[5]
}

// Format renders the angles in command syntax: J[j1,j2,j3,j4,j5,j6] with
// fixed one-decimal components and no spaces.
func (j JointAngleSet) Format() string {
	return "J" + formatAxes(j.angles)
}

// String returns the command-syntax representation.
func (j JointAngleSet) String() string {
	return j.Format()
}

// Equals checks if two JointAngleSets are equal
func (j JointAngleSet) Equals(other JointAngleSet) bool {
	return j.angles == other.angles
}
