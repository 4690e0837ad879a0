// Package services contains domain policies that cut across value types:
// the firmware dialect table, per-robot joint policies, and the workspace
// reach advisor. Policies are data, so supporting a new firmware threshold
// or robot variant is a table entry, not a new branch in the formatter.
package services

import "github.com/armlink-dev/armlink/internal/domain/values"

// SpeedSyntax selects the textual form of the speed term.
type SpeedSyntax int

const (
	// SpeedSyntaxLegacy renders SPD(<n>), used by controllers below 3.1.
	SpeedSyntaxLegacy SpeedSyntax = iota
	// SpeedSyntaxModern renders SPD=<n>, introduced with firmware 3.1.
	SpeedSyntaxModern
)

// speedSyntaxRule maps a minimum firmware version to a syntax variant.
type speedSyntaxRule struct {
	minVersion values.FirmwareVersion
	syntax     SpeedSyntax
}

// speedSyntaxRules is ordered newest-first; the first rule whose minimum the
// firmware satisfies wins. Firmware older than every rule uses legacy syntax.
var speedSyntaxRules = []speedSyntaxRule{
	{values.MustNewFirmwareVersion("3.1"), SpeedSyntaxModern},
}

// SpeedSyntaxFor returns the speed syntax variant for a firmware version.
func SpeedSyntaxFor(fw values.FirmwareVersion) SpeedSyntax {
	for _, rule := range speedSyntaxRules {
		if fw.AtLeast(rule.minVersion) {
			return rule.syntax
		}
	}
	return SpeedSyntaxLegacy
}

// UsesLegacySpeedSyntax reports whether the firmware predates the modern
// SPD= form.
func UsesLegacySpeedSyntax(fw values.FirmwareVersion) bool {
	return SpeedSyntaxFor(fw) == SpeedSyntaxLegacy
}

// RenderSpeed formats a speed term. Joint moves pass percentage=true: joint
// speed is a percentage of maximum velocity, so the term always carries a
// trailing '%' whatever the syntax variant.
func (s SpeedSyntax) RenderSpeed(speed values.Speed, percentage bool) string {
	var term string
	switch s {
	case SpeedSyntaxModern:
		term = "SPD=" + speed.String()
	default:
		term = "SPD(" + speed.String() + ")"
	}
	if percentage {
		term += "%"
	}
	return term
}
