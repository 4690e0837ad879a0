package values

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewJointAngleSet(t *testing.T) {
	tests := []struct {
		name    string
		input   []float64
		wantErr string
	}{
		{"all zero", []float64{0, 0, 0, 0, 0, 0}, ""},
		{"typical", []float64{45, -30, 60, 0, 45, 180}, ""},
		{"J6 at positive limit", []float64{0, 0, 0, 0, 0, 720}, ""},
		{"J6 at negative limit", []float64{0, 0, 0, 0, 0, -720}, ""},
		{"J1-J5 beyond single turn allowed", []float64{400, -400, 500, 900, -900, 0}, ""},
		{"J6 beyond positive limit", []float64{0, 0, 0, 0, 0, 720.1}, "J6"},
		{"J6 beyond negative limit", []float64{0, 0, 0, 0, 0, -800}, "J6"},
		{"too few angles", []float64{1, 2, 3, 4, 5}, "exactly 6 angles"},
		{"nil", nil, "exactly 6 angles"},
		{"NaN in J1", []float64{math.NaN(), 0, 0, 0, 0, 0}, "J1"},
		{"infinity in J4", []float64{0, 0, 0, math.Inf(1), 0, 0}, "J4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := NewJointAngleSet(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				angles := j.Angles()
				assert.Equal(t, tt.input, angles[:])
			}
		})
	}
}

func Test_JointAngleSet_J6ErrorMentionsRange(t *testing.T) {
	_, err := NewJointAngleSet([]float64{0, 0, 0, 0, 0, 800})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func Test_JointAngleSet_Format(t *testing.T) {
	j := MustNewJointAngleSet([]float64{45, -30, 60, 0, 45, 180})

	assert.Equal(t, "J[45.0,-30.0,60.0,0.0,45.0,180.0]", j.Format())
}
