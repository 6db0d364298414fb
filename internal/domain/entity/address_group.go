// Package entity contains the core business objects of the project.
package entity

import "strings"

// NormalizeAddress canonicalizes a free-text address into a stable grouping
// key: leading/trailing whitespace is trimmed, internal whitespace runs are
// collapsed to a single space, and the result is case-folded. Two scans whose
// addresses normalize equal belong to the same physical location.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}

// RiskCounts tallies the classified members of an address group by level.
type RiskCounts struct {
	High     int `json:"high"`
	Moderate int `json:"moderate"`
	Low      int `json:"low"`
}

// Add counts one member. Unset levels are excluded from the tally.
func (c *RiskCounts) Add(level RiskLevel) {
	switch level {
	case RiskHigh:
		c.High++
	case RiskModerate:
		c.Moderate++
	case RiskLow:
		c.Low++
	}
}

// Majority resolves the single representative risk level for the counts.
// Ties are broken by the fixed precedence HIGH > MODERATE > LOW, so a
// three-way tie yields HIGH and a moderate/low tie yields MODERATE. Empty
// counts default to LOW.
func (c RiskCounts) Majority() RiskLevel {
	switch {
	case c.High >= c.Moderate && c.High >= c.Low && c.High > 0:
		return RiskHigh
	case c.Moderate >= c.High && c.Moderate >= c.Low && c.Moderate > 0:
		return RiskModerate
	default:
		return RiskLow
	}
}

// AddressGroup is the aggregation unit: every scan whose normalized address
// matches, treated as one physical location. Groups are recomputed on every
// read and never persisted.
type AddressGroup struct {
	NormalizedAddress       string        `json:"normalizedAddress"` // Grouping key.
	Address                 string        `json:"address"`           // Display address, taken from the most recent member.
	Members                 []*ScanRecord `json:"members"`           // Ordered by recency, newest first.
	Counts                  RiskCounts    `json:"counts"`            // Tally of classified members.
	RepresentativeRiskLevel RiskLevel     `json:"representativeRiskLevel"`
	RepresentativeImage     string        `json:"representativeImage,omitempty"` // Image URL of the newest member with one.
	Coordinates             Coordinates   `json:"coordinates"`
	Mappable                bool          `json:"mappable"` // False when no member carries coordinates; such groups stay in stats but are excluded from map rendering.
}

// LatestActivity returns the creation time of the newest member. Members are
// kept newest-first, so this is the first element.
func (g *AddressGroup) LatestActivity() (latest int64) {
	if len(g.Members) == 0 {
		return 0
	}

	return g.Members[0].CreatedAt.UnixNano()
}
