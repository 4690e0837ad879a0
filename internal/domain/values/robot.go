package values

import (
	"fmt"
	"strings"
)

// RobotIdentity identifies a supported robot model. The set of supported
// models is closed; unknown names fail construction with the supported set
// in the message.
type RobotIdentity struct {
	model string
}

// Supported robot models.
var (
	RobotNovaTechRT500 = RobotIdentity{model: "NovaTech RT-500"}
)

// supportedRobots is the closed set of models this generator targets, in
// the order they are listed in error messages.
var supportedRobots = []RobotIdentity{
	RobotNovaTechRT500,
}

// NewRobotIdentity creates a RobotIdentity from a model name string.
func NewRobotIdentity(model string) (RobotIdentity, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return RobotIdentity{}, fmt.Errorf(
			"robot model cannot be empty (supported models: %s)", supportedRobotNames(),
		)
	}
	for _, r := range supportedRobots {
		if r.model == model {
			return r, nil
		}
	}
	return RobotIdentity{}, fmt.Errorf(
		"unsupported robot model %q (supported models: %s)", model, supportedRobotNames(),
	)
}

// MustNewRobotIdentity creates a RobotIdentity or panics (for tests/constants)
func MustNewRobotIdentity(model string) RobotIdentity {
	r, err := NewRobotIdentity(model)
	if err != nil {
		panic(err)
	}
	return r
}

// SupportedRobots returns the closed set of supported models.
func SupportedRobots() []RobotIdentity {
	out := make([]RobotIdentity, len(supportedRobots))
	copy(out, supportedRobots)
	return out
}

func supportedRobotNames() string {
	names := make([]string, len(supportedRobots))
	for i, r := range supportedRobots {
		names[i] = r.model
	}
	return strings.Join(names, ", ")
}

// Model returns the model name.
func (r RobotIdentity) Model() string {
	return r.model
}

// String returns the model name.
func (r RobotIdentity) String() string {
	return r.model
}

// IsZero returns true if this is the zero value
func (r RobotIdentity) IsZero() bool {
	return r.model == ""
}

// Equals checks if two RobotIdentities are equal
func (r RobotIdentity) Equals(other RobotIdentity) bool {
	return r.model == other.model
}
