package impl

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"firetrace/config"
	"firetrace/internal/domain/entity"
	"firetrace/internal/domain/repository"
	"firetrace/internal/usecase"

	"github.com/google/uuid"
)

const defaultHistoryPageSize = 20

type aggregationService struct {
	scanRepo repository.ScanRepository
	config   *config.Config
}

// NewAggregationService creates a new aggregation service instance
func NewAggregationService(scanRepo repository.ScanRepository, cfg *config.Config) usecase.AggregationUsecase {
	if cfg.Scan == nil {
		cfg.Scan = &config.ScanConfig{}
	}
	if cfg.Scan.HistoryPageSize == 0 {
		cfg.Scan.HistoryPageSize = defaultHistoryPageSize
	}

	return &aggregationService{
		scanRepo: scanRepo,
		config:   cfg,
	}
}

// GetDashboard recomputes the per-address view from a snapshot of currently
// visible records. Stats are counted over groups; groups without coordinates
// stay in the stats but are flagged unmappable so the map skips them.
func (s *aggregationService) GetDashboard(ctx context.Context, callerID uuid.UUID, role entity.Role) (*usecase.Dashboard, error) {
	records, err := s.visibleRecords(ctx, callerID, role)
	if err != nil {
		return nil, err
	}

	groups := groupByAddress(records)

	stats := usecase.DashboardStats{Total: len(groups)}
	for _, group := range groups {
		switch group.RepresentativeRiskLevel {
		case entity.RiskHigh:
			stats.High++
		case entity.RiskModerate:
			stats.Moderate++
		case entity.RiskLow:
			stats.Low++
		}
	}

	return &usecase.Dashboard{
		Stats:  stats,
		Groups: groups,
	}, nil
}

// GetHistory returns one page of the role-scoped history. Administrators
// browse address groups with full member lists; ordinary users browse their
// own records flat.
func (s *aggregationService) GetHistory(ctx context.Context, callerID uuid.UUID, role entity.Role, query usecase.HistoryQuery) (*usecase.HistoryPage, error) {
	records, err := s.visibleRecords(ctx, callerID, role)
	if err != nil {
		return nil, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := s.config.Scan.HistoryPageSize

	if role.IsAdmin() {
		groups := filterGroups(groupByAddress(records), query)
		if query.Sort == usecase.HistorySortOldest {
			slices.Reverse(groups)
		}

		total := totalPages(len(groups), pageSize)
		return &usecase.HistoryPage{
			Groups:     pageOf(groups, page, pageSize),
			Page:       page,
			TotalPages: total,
		}, nil
	}

	filtered := filterRecords(records, query)
	if query.Sort == usecase.HistorySortOldest {
		slices.Reverse(filtered)
	}

	total := totalPages(len(filtered), pageSize)
	return &usecase.HistoryPage{
		Records:    pageOf(filtered, page, pageSize),
		Page:       page,
		TotalPages: total,
	}, nil
}

// visibleRecords takes the snapshot the aggregation is computed from.
// Ordinary-user queries are filtered to the caller before grouping, so a
// non-admin never sees another user's records even transiently.
func (s *aggregationService) visibleRecords(ctx context.Context, callerID uuid.UUID, role entity.Role) ([]*entity.ScanRecord, error) {
	filter := repository.ScanFilter{}
	if !role.IsAdmin() {
		filter.UploadedBy = &callerID
	}

	records, err := s.scanRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan records: %w", err)
	}

	return records, nil
}

// groupByAddress folds the flat record list into address groups. Records
// arrive newest-first from the repository, so the first record of a group is
// its most recent member and groups come out ordered by latest activity.
func groupByAddress(records []*entity.ScanRecord) []*entity.AddressGroup {
	index := make(map[string]*entity.AddressGroup)
	groups := make([]*entity.AddressGroup, 0)

	for _, record := range records {
		key := entity.NormalizeAddress(record.Address)
		group, ok := index[key]
		if !ok {
			group = &entity.AddressGroup{
				NormalizedAddress: key,
				Address:           record.Address,
			}
			index[key] = group
			groups = append(groups, group)
		}

		group.Members = append(group.Members, record)
		group.Counts.Add(record.RiskLevel)
	}

	for _, group := range groups {
		finalizeGroup(group)
	}

	// Input order already gives latest-activity-descending; the explicit
	// sort keeps the page stable if the repository ordering ever changes.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].LatestActivity() > groups[j].LatestActivity()
	})

	return groups
}

// finalizeGroup derives the representative risk level, representative image
// and coordinates from the group's members.
func finalizeGroup(group *entity.AddressGroup) {
	group.RepresentativeRiskLevel = group.Counts.Majority()

	var latest int64 = -1
	for _, member := range group.Members {
		if member.ImageURL == "" {
			continue
		}
		if ts := member.CreatedAt.UnixNano(); ts > latest {
			latest = ts
			group.RepresentativeImage = member.ImageURL
		}
	}

	for _, member := range group.Members {
		if !member.Coordinates.IsZero() {
			// All members of a group share a physical location, so any
			// member's coordinates stand for the group.
			group.Coordinates = member.Coordinates
			group.Mappable = true

			break
		}
	}
}

// filterGroups applies the history view's level and search filters to
// address groups. The level filter matches the representative level.
func filterGroups(groups []*entity.AddressGroup, query usecase.HistoryQuery) []*entity.AddressGroup {
	filtered := make([]*entity.AddressGroup, 0, len(groups))
	search := entity.NormalizeAddress(query.Search)
	for _, group := range groups {
		if query.Level != entity.RiskUnset && group.RepresentativeRiskLevel != query.Level {
			continue
		}
		if search != "" && !strings.Contains(group.NormalizedAddress, search) {
			continue
		}
		filtered = append(filtered, group)
	}

	return filtered
}

// filterRecords applies the history view's level and search filters to flat
// records.
func filterRecords(records []*entity.ScanRecord, query usecase.HistoryQuery) []*entity.ScanRecord {
	filtered := make([]*entity.ScanRecord, 0, len(records))
	search := entity.NormalizeAddress(query.Search)
	for _, record := range records {
		if query.Level != entity.RiskUnset && record.RiskLevel != query.Level {
			continue
		}
		if search != "" && !strings.Contains(entity.NormalizeAddress(record.Address), search) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

// pageOf slices one page out of items. Out-of-range pages return an empty
// slice rather than an error.
func pageOf[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))

	return items[start:end]
}

func totalPages(count, pageSize int) int {
	return (count + pageSize - 1) / pageSize
}
