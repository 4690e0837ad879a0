package values

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// frameAxisNames gives the human-readable axis for each index of a
// coordinate frame, used in validation errors.
var frameAxisNames = [6]string{"X", "Y", "Z", "Rx", "Ry", "Rz"}

// CoordinateFrame is a validated Cartesian pose: [X, Y, Z, Rx, Ry, Rz] in
// millimetres and degrees. All six components are finite. The backing array
// is copied on construction, so the caller's slice can be mutated freely
// afterwards.
type CoordinateFrame struct {
	components [6]float64
}

// NewCoordinateFrame creates a CoordinateFrame with validation.
func NewCoordinateFrame(components []float64) (CoordinateFrame, error) {
	if len(components) != 6 {
		return CoordinateFrame{}, fmt.Errorf(
			"coordinate frame requires exactly 6 components [X,Y,Z,Rx,Ry,Rz], got %d",
			len(components),
		)
	}
	var f CoordinateFrame
	for i, v := range components {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return CoordinateFrame{}, fmt.Errorf(
				"coordinate frame component %s is not a finite number", frameAxisNames[i],
			)
		}
		f.components[i] = v
	}
	return f, nil
}

// MustNewCoordinateFrame creates a CoordinateFrame or panics (for tests/constants)
func MustNewCoordinateFrame(components []float64) CoordinateFrame {
	f, err := NewCoordinateFrame(components)
	if err != nil {
		panic(err)
	}
	return f
}

// Components returns a copy of the six components.
func (f CoordinateFrame) Components() [6]float64 {
	return f.components
}

// Reach returns the Euclidean distance of the frame's translation (X,Y,Z)
// from the origin, in millimetres. Whether an out-of-reach frame is an error
// is a policy question answered elsewhere; the frame only measures.
func (f CoordinateFrame) Reach() float64 {
	x, y, z := f.components[0], f.components[1], f.components[2]
	return math.Sqrt(x*x + y*y + z*z)
}

// Format renders the frame in command syntax: P[x,y,z,rx,ry,rz] with fixed
// one-decimal components and no spaces.
func (f CoordinateFrame) Format() string {
	return "P" + formatAxes(f.components)
}

// String returns the command-syntax representation.
func (f CoordinateFrame) String() string {
	return f.Format()
}

// Equals checks if two CoordinateFrames are equal
func (f CoordinateFrame) Equals(other CoordinateFrame) bool {
	return f.components == other.components
}

// formatAxes renders six values as [a,b,c,d,e,f] with exactly one decimal
// place per component.
func formatAxes(components [6]float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range components {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'f', 1, 64))
	}
	b.WriteByte(']')
	return b.String()
}
