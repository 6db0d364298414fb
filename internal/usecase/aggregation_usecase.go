package usecase

import (
	"context"

	"firetrace/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardStats are counted over address groups, not raw records: a house
// scanned five times counts once toward the total.
type DashboardStats struct {
	Total    int `json:"total"`
	High     int `json:"high"`
	Moderate int `json:"moderate"`
	Low      int `json:"low"`
}

// Dashboard is the polling-friendly map/stat view. Each call is computed
// independently from current repository contents; no server-side session
// state is kept between refreshes.
type Dashboard struct {
	Stats  DashboardStats         `json:"stats"`
	Groups []*entity.AddressGroup `json:"addressGroups"`
}

// HistorySort orders the history view.
type HistorySort string

const (
	// HistorySortLatest orders by most recent activity first.
	HistorySortLatest HistorySort = "latest"
	// HistorySortOldest orders by oldest activity first.
	HistorySortOldest HistorySort = "oldest"
)

// HistoryQuery narrows and pages the history view.
type HistoryQuery struct {
	Page   int              // 1-based; values below 1 are treated as 1.
	Level  entity.RiskLevel // Optional risk level filter; RiskUnset means all.
	Search string           // Optional case-insensitive address substring.
	Sort   HistorySort      // Defaults to HistorySortLatest.
}

// HistoryPage is one page of the browsable scan history. Administrators get
// address groups with full member lists; ordinary users get their own
// records flat. Exactly one of Groups/Records is populated.
type HistoryPage struct {
	Groups     []*entity.AddressGroup `json:"groups,omitempty"`
	Records    []*entity.ScanRecord   `json:"records,omitempty"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"totalPages"`
}

// AggregationUsecase derives per-address risk views from the flat scan
// repository. Reads take a snapshot of currently visible records and hold no
// lock; concurrent inserts are simply not reflected in an in-flight read.
type AggregationUsecase interface {
	// GetDashboard returns group stats and mappable address groups, scoped
	// to the caller's role.
	GetDashboard(ctx context.Context, callerID uuid.UUID, role entity.Role) (*Dashboard, error)

	// GetHistory returns one page of the scan history, scoped to the
	// caller's role. An out-of-range page yields an empty page, not an error.
	GetHistory(ctx context.Context, callerID uuid.UUID, role entity.Role, query HistoryQuery) (*HistoryPage, error)
}
