package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validDocument() *Document {
	return &Document{
		Robot:           "NovaTech RT-500",
		FirmwareVersion: "3.2",
		BaseFrame:       []float64{0, 0, 0, 0, 0, 0},
		ToolFrame:       []float64{0, 0, 150, 0, 0, 0},
		Trajectory: []PointDocument{
			{Type: "linear", Position: []float64{500, 200, 300, 0, 90, 0}, Speed: 100, Acceleration: intPtr(75)},
		},
		Name: "weld-pass",
	}
}

func Test_BuildTrajectory(t *testing.T) {
	traj, advisories, err := BuildTrajectory(validDocument(), BuildOptions{})

	require.NoError(t, err)
	assert.Empty(t, advisories)
	assert.Equal(t, 1, traj.Len())
	assert.Equal(t, "NovaTech RT-500", traj.Robot().Model())
}

func Test_BuildTrajectory_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Document)
		wantErr string
	}{
		{
			"unknown robot",
			func(d *Document) { d.Robot = "AcmeBot 9000" },
			"unsupported robot model",
		},
		{
			"bad firmware",
			func(d *Document) { d.FirmwareVersion = "3.2-beta" },
			"dotted numeric",
		},
		{
			"bad point speed",
			func(d *Document) { d.Trajectory[0].Speed = 0 },
			"point 1: speed must be positive",
		},
		{
			"bad second point",
			func(d *Document) {
				d.Trajectory = append(d.Trajectory, PointDocument{
					Type: "joint", Joints: []float64{0, 0, 0, 0, 0, 800}, Speed: 50,
				})
			},
			"point 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)

			_, _, err := BuildTrajectory(doc, BuildOptions{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func Test_BuildTrajectory_ReachAdvisory(t *testing.T) {
	doc := validDocument()
	doc.Trajectory = append(doc.Trajectory, PointDocument{
		Type:     "linear",
		Position: []float64{2500, 0, 0, 0, 0, 0},
		Speed:    100,
	})

	t.Run("warn policy collects advisory", func(t *testing.T) {
		traj, advisories, err := BuildTrajectory(doc, BuildOptions{})

		require.NoError(t, err)
		assert.Equal(t, 2, traj.Len(), "advisory must not block the point")
		require.Len(t, advisories, 1)
		assert.Equal(t, "point 2", advisories[0].Subject)
	})

	t.Run("reject policy fails the build", func(t *testing.T) {
		_, _, err := BuildTrajectory(doc, BuildOptions{RejectOutOfReach: true})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "point 2")
		assert.Contains(t, err.Error(), "workspace radius")
	})
}

func Test_DocumentName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"weld-pass.yaml", "weld-pass"},
		{"/data/docs/pick-place.json", "pick-place"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DocumentName(tt.path))
		})
	}
}
