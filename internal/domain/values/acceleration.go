package values

import "fmt"

// Acceleration bounds, expressed as a percentage of the controller's
// maximum acceleration.
const (
	MinAcceleration     = 10
	MaxAcceleration     = 100
	defaultAcceleration = 50
)

// Acceleration is a validated acceleration percentage in [MinAcceleration, MaxAcceleration].
type Acceleration struct {
	value int
}

// NewAcceleration creates an Acceleration with validation.
func NewAcceleration(v int) (Acceleration, error) {
	if v < MinAcceleration || v > MaxAcceleration {
		return Acceleration{}, fmt.Errorf(
			"acceleration must be between %d and %d percent, got %d",
			MinAcceleration, MaxAcceleration, v,
		)
	}
	return Acceleration{value: v}, nil
}

// DefaultAcceleration returns the value used when the source document omits
// acceleration. It cannot fail.
func DefaultAcceleration() Acceleration {
	return Acceleration{value: defaultAcceleration}
}

// MustNewAcceleration creates an Acceleration or panics (for tests/constants)
func MustNewAcceleration(v int) Acceleration {
	a, err := NewAcceleration(v)
	if err != nil {
		panic(err)
	}
	return a
}

// Int returns the raw percentage.
func (a Acceleration) Int() int {
	return a.value
}

// String returns the decimal representation.
func (a Acceleration) String() string {
	return fmt.Sprintf("%d", a.value)
}

// Equals checks if two Accelerations are equal
func (a Acceleration) Equals(other Acceleration) bool {
	return a.value == other.value
}
