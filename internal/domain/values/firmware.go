package values

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// firmwareVersionPattern accepts plain dotted numeric versions only:
// major.minor with an optional patch. Pre-release or build suffixes such as
// "3.2-beta" are not meaningful controller firmware identifiers and fail
// construction rather than being coerced by the semver parser.
var firmwareVersionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

// FirmwareVersion is a parsed controller firmware version. It keeps the
// original string for display and a parsed semantic version for ordering.
type FirmwareVersion struct {
	raw     string
	version *semver.Version
}

// NewFirmwareVersion parses and validates a firmware version string.
func NewFirmwareVersion(s string) (FirmwareVersion, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return FirmwareVersion{}, fmt.Errorf("firmware version cannot be empty")
	}
	if !firmwareVersionPattern.MatchString(trimmed) {
		return FirmwareVersion{}, fmt.Errorf(
			"firmware version %q is not a dotted numeric version (expected major.minor or major.minor.patch)",
			s,
		)
	}
	v, err := semver.NewVersion(trimmed)
	if err != nil {
		return FirmwareVersion{}, fmt.Errorf("firmware version %q: %w", s, err)
	}
	return FirmwareVersion{raw: trimmed, version: v}, nil
}

// MustNewFirmwareVersion parses a firmware version or panics (for tests/constants)
func MustNewFirmwareVersion(s string) FirmwareVersion {
	fw, err := NewFirmwareVersion(s)
	if err != nil {
		panic(err)
	}
	return fw
}

// String returns the original version string.
func (f FirmwareVersion) String() string {
	return f.raw
}

// IsZero returns true if this is the zero value
func (f FirmwareVersion) IsZero() bool {
	return f.version == nil
}

// Compare orders two firmware versions numerically: -1 if f < other,
// 0 if equal, +1 if f > other.
func (f FirmwareVersion) Compare(other FirmwareVersion) int {
	return f.version.Compare(other.version)
}

// LessThan reports whether f orders strictly before other.
func (f FirmwareVersion) LessThan(other FirmwareVersion) bool {
	return f.version.LessThan(other.version)
}

// AtLeast reports whether f orders at or after other.
func (f FirmwareVersion) AtLeast(other FirmwareVersion) bool {
	return !f.LessThan(other)
}

// Equals checks if two FirmwareVersions compare numerically equal
func (f FirmwareVersion) Equals(other FirmwareVersion) bool {
	if f.version == nil || other.version == nil {
		return f.version == other.version
	}
	return f.version.Equal(other.version)
}
