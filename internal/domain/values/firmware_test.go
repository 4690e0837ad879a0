package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewFirmwareVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"major.minor", "3.2", ""},
		{"major.minor.patch", "3.2.1", ""},
		{"legacy version", "2.9", ""},
		{"multi-digit", "10.24.356", ""},
		{"surrounding whitespace", " 3.2 ", ""},
		{"empty", "", "cannot be empty"},
		{"whitespace only", "   ", "cannot be empty"},
		{"single component", "3", "dotted numeric"},
		{"pre-release suffix", "3.2-beta", "dotted numeric"},
		{"build metadata", "3.2+build5", "dotted numeric"},
		{"text", "latest", "dotted numeric"},
		{"trailing dot", "3.2.", "dotted numeric"},
		{"four components", "1.2.3.4", "dotted numeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fw, err := NewFirmwareVersion(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.False(t, fw.IsZero())
			}
		})
	}
}

func Test_FirmwareVersion_Ordering(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		lessThan bool
	}{
		{"3.0 before 3.1", "3.0", "3.1", true},
		{"2.9 before 3.1", "2.9", "3.1", true},
		{"3.1 not before 3.1", "3.1", "3.1", false},
		{"3.2 not before 3.1", "3.2", "3.1", false},
		{"3.1.5 not before 3.1", "3.1.5", "3.1", false},
		{"3.0.9 before 3.1", "3.0.9", "3.1", true},
		{"10.0 not before 9.9", "10.0", "9.9", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustNewFirmwareVersion(tt.a)
			b := MustNewFirmwareVersion(tt.b)

			assert.Equal(t, tt.lessThan, a.LessThan(b))
			assert.Equal(t, !tt.lessThan, a.AtLeast(b))
		})
	}
}

func Test_FirmwareVersion_String_KeepsOriginal(t *testing.T) {
	assert.Equal(t, "3.2", MustNewFirmwareVersion("3.2").String())
	assert.Equal(t, "3.2.0", MustNewFirmwareVersion("3.2.0").String())
}

func Test_FirmwareVersion_Equals(t *testing.T) {
	// Numeric comparison: 3.2 and 3.2.0 are the same version.
	assert.True(t, MustNewFirmwareVersion("3.2").Equals(MustNewFirmwareVersion("3.2.0")))
	assert.False(t, MustNewFirmwareVersion("3.2").Equals(MustNewFirmwareVersion("3.2.1")))
}
