package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{name: "already canonical", address: "12 main st", expected: "12 main st"},
		{name: "case folded", address: "12 Main St", expected: "12 main st"},
		{name: "whitespace collapsed", address: "  12   Main   St  ", expected: "12 main st"},
		{name: "tabs and newlines", address: "12\tMain\nSt", expected: "12 main st"},
		{name: "empty", address: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, NormalizeAddress(tt.address))
		})
	}
}

func TestRiskCounts_Majority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		counts   RiskCounts
		expected RiskLevel
	}{
		{name: "clear high majority", counts: RiskCounts{High: 3, Moderate: 1, Low: 1}, expected: RiskHigh},
		{name: "clear moderate majority", counts: RiskCounts{High: 1, Moderate: 4, Low: 2}, expected: RiskModerate},
		{name: "clear low majority", counts: RiskCounts{Low: 3}, expected: RiskLow},
		{name: "high moderate tie prefers high", counts: RiskCounts{High: 2, Moderate: 2}, expected: RiskHigh},
		{name: "moderate low tie prefers moderate", counts: RiskCounts{Moderate: 1, Low: 1}, expected: RiskModerate},
		{name: "three way tie prefers high", counts: RiskCounts{High: 1, Moderate: 1, Low: 1}, expected: RiskHigh},
		{name: "empty counts default to low", counts: RiskCounts{}, expected: RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.counts.Majority())
		})
	}
}

func TestRiskCounts_AddIgnoresUnset(t *testing.T) {
	t.Parallel()

	var counts RiskCounts
	counts.Add(RiskHigh)
	counts.Add(RiskModerate)
	counts.Add(RiskLow)
	counts.Add(RiskUnset)

	assert.Equal(t, RiskCounts{High: 1, Moderate: 1, Low: 1}, counts)
}

func TestAddressGroup_LatestActivity(t *testing.T) {
	t.Parallel()

	now := time.Now()
	group := &AddressGroup{
		Members: []*ScanRecord{
			{CreatedAt: now},
			{CreatedAt: now.Add(-time.Hour)},
		},
	}

	assert.Equal(t, now.UnixNano(), group.LatestActivity())

	empty := &AddressGroup{}
	assert.Zero(t, empty.LatestActivity())
}
