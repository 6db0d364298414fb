// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// RiskLevel represents the fire risk classification of a scanned house.
type RiskLevel string

const (
	// RiskUnset marks a record whose classification has not completed.
	// It may never appear on a persisted record.
	RiskUnset RiskLevel = ""
	// RiskLow indicates a low fire risk ("green" in the classifier rubric).
	RiskLow RiskLevel = "LOW"
	// RiskModerate indicates a moderate fire risk ("yellow" in the classifier rubric).
	RiskModerate RiskLevel = "MODERATE"
	// RiskHigh indicates a high fire risk ("red" in the classifier rubric).
	RiskHigh RiskLevel = "HIGH"
)

// riskKeywords maps the rubric color keywords emitted by the vision model
// to their risk levels.
var riskKeywords = map[string]RiskLevel{
	"green":  RiskLow,
	"yellow": RiskModerate,
	"red":    RiskHigh,
}

// String returns the string representation of the RiskLevel.
func (r RiskLevel) String() string {
	return string(r)
}

// IsValid reports whether the level is one of the three persisted values.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	default:
		return false
	}
}

// ParseRiskLevel scans free-form classifier output for the first
// case-insensitive occurrence of a rubric color keyword and returns the
// mapped risk level. The earliest keyword in the text wins regardless of
// severity. ok is false when no keyword appears.
func ParseRiskLevel(text string) (level RiskLevel, ok bool) {
	lowered := strings.ToLower(text)
	first := -1
	for keyword, mapped := range riskKeywords {
		idx := strings.Index(lowered, keyword)
		if idx < 0 {
			continue
		}
		if first < 0 || idx < first {
			first = idx
			level = mapped
		}
	}

	return level, first >= 0
}

// RiskLevelFromString converts a stored string to a RiskLevel,
// returning RiskUnset for unknown values.
func RiskLevelFromString(s string) RiskLevel {
	level := RiskLevel(strings.ToUpper(strings.TrimSpace(s)))
	if !level.IsValid() {
		return RiskUnset
	}

	return level
}
