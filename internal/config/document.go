// Package config loads motion documents from YAML or JSON and builds domain
// trajectories from them. Shape errors (missing fields, wrong basic types)
// are caught by an embedded JSON Schema before any domain construction runs;
// semantic ranges remain the domain's responsibility.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/armlink-dev/armlink/internal/domain/entities"
	"github.com/armlink-dev/armlink/internal/domain/services"
	"github.com/armlink-dev/armlink/internal/domain/values"
)

// Document is the decoded shape of one motion document.
type Document struct {
	Robot           string          `json:"robot" yaml:"robot"`
	FirmwareVersion string          `json:"firmware_version" yaml:"firmware_version"`
	BaseFrame       []float64       `json:"base_frame" yaml:"base_frame"`
	ToolFrame       []float64       `json:"tool_frame" yaml:"tool_frame"`
	Trajectory      []PointDocument `json:"trajectory" yaml:"trajectory"`

	// Name labels the document in reports; set from the file name by the
	// loader, empty for documents decoded from raw bytes.
	Name string `json:"-" yaml:"-"`
}

// PointDocument is one entry of a document's trajectory list. A nil
// Acceleration means the field was omitted and the default applies.
type PointDocument struct {
	Type         string    `json:"type" yaml:"type"`
	Position     []float64 `json:"position,omitempty" yaml:"position,omitempty"`
	Joints       []float64 `json:"joints,omitempty" yaml:"joints,omitempty"`
	Speed        int       `json:"speed" yaml:"speed"`
	Acceleration *int      `json:"acceleration,omitempty" yaml:"acceleration,omitempty"`
}

// BuildOptions control how BuildTrajectory treats workspace-reach advisories.
type BuildOptions struct {
	// RejectOutOfReach promotes reach advisories on linear targets to hard
	// insertion errors. Default is advisory-only.
	RejectOutOfReach bool
}

// BuildTrajectory maps a decoded document through the domain: header fields
// construct the aggregate, then each trajectory entry is appended in order.
// The first domain failure aborts the build. Reach advisories for linear
// targets are returned alongside the trajectory; with RejectOutOfReach they
// become errors instead.
func BuildTrajectory(doc *Document, opts BuildOptions) (*entities.Trajectory, []services.ReachAdvisory, error) {
	traj, err := entities.NewTrajectory(doc.Robot, doc.FirmwareVersion, doc.BaseFrame, doc.ToolFrame)
	if err != nil {
		return nil, nil, err
	}

	var advisories []services.ReachAdvisory
	for i, p := range doc.Trajectory {
		subject := fmt.Sprintf("point %d", i+1)

		advisory := linearReachAdvisory(traj.Robot(), p, subject)
		if advisory != nil && opts.RejectOutOfReach {
			return nil, advisories, fmt.Errorf("%s", advisory.String())
		}

		if err := traj.AddPoint(entities.PointSpec{
			Type:         p.Type,
			Position:     p.Position,
			Joints:       p.Joints,
			Speed:        p.Speed,
			Acceleration: p.Acceleration,
		}); err != nil {
			return nil, advisories, fmt.Errorf("%s: %w", subject, err)
		}

		if advisory != nil {
			advisories = append(advisories, *advisory)
		}
	}
	return traj, advisories, nil
}

// linearReachAdvisory measures a linear target against the robot's advisory
// workspace radius. Malformed positions return nil here; AddPoint reports
// them with the proper domain error.
func linearReachAdvisory(robot values.RobotIdentity, p PointDocument, subject string) *services.ReachAdvisory {
	if !strings.EqualFold(strings.TrimSpace(p.Type), "linear") {
		return nil
	}
	frame, err := values.NewCoordinateFrame(p.Position)
	if err != nil {
		return nil
	}
	return services.CheckReach(robot, frame, subject)
}

// DocumentName derives the report label for a document file: the base name
// without its extension.
func DocumentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
