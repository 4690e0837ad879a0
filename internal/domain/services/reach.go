package services

import (
	"fmt"

	"github.com/armlink-dev/armlink/internal/domain/values"
)

// reachLimits maps each supported robot model to its advisory workspace
// radius in millimetres.
var reachLimits = map[string]float64{
	values.RobotNovaTechRT500.Model(): 2000,
}

// ReachAdvisory reports a frame whose translation lies outside the robot's
// advisory workspace radius. It is informational: whether an advisory blocks
// generation is decided by the caller's reach policy, never here.
type ReachAdvisory struct {
	Subject  string  `json:"subject" yaml:"subject"`
	Distance float64 `json:"distance_mm" yaml:"distance_mm"`
	Limit    float64 `json:"limit_mm" yaml:"limit_mm"`
}

func (a ReachAdvisory) String() string {
	return fmt.Sprintf(
		"%s: target is %.1fmm from origin, outside the advisory workspace radius of %.0fmm",
		a.Subject, a.Distance, a.Limit,
	)
}

// CheckReach measures a frame against the robot's advisory workspace radius.
// Returns nil when the frame is within reach or the robot has no limit row.
func CheckReach(robot values.RobotIdentity, frame values.CoordinateFrame, subject string) *ReachAdvisory {
	limit, ok := reachLimits[robot.Model()]
	if !ok {
		return nil
	}
	if d := frame.Reach(); d > limit {
		return &ReachAdvisory{Subject: subject, Distance: d, Limit: limit}
	}
	return nil
}
