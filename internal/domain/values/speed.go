// Package values contains domain value objects that wrap raw numeric and
// string input with validation. No value in this package can be observed in
// an invalid state: validation happens exactly once, in the constructor.
package values

import "fmt"

// MaxSpeed is the controller safety ceiling in mm/s. Commands above it are
// rejected at construction, never clamped.
const MaxSpeed = 10000

// Speed is a validated motion speed. The valid range is (0, MaxSpeed].
type Speed struct {
	value int
}

// NewSpeed creates a Speed with validation.
func NewSpeed(v int) (Speed, error) {
	if v <= 0 {
		return Speed{}, fmt.Errorf("speed must be positive, got %d", v)
	}
	if v > MaxSpeed {
		return Speed{}, fmt.Errorf("speed %d exceeds safety ceiling of %d", v, MaxSpeed)
	}
	return Speed{value: v}, nil
}

// MustNewSpeed creates a Speed or panics (for tests/constants)
func MustNewSpeed(v int) Speed {
	s, err := NewSpeed(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Int returns the raw speed value.
func (s Speed) Int() int {
	return s.value
}

// String returns the decimal representation.
func (s Speed) String() string {
	return fmt.Sprintf("%d", s.value)
}

// Equals checks if two Speeds are equal
func (s Speed) Equals(other Speed) bool {
	return s.value == other.value
}
