package impl

import (
	"context"
	"testing"
	"time"

	"firetrace/internal/domain/entity"
	"firetrace/internal/domain/repository"
	mockRepo "firetrace/internal/mocks/repository"
	"firetrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// aggregationServiceFixtures holds all test dependencies for aggregation tests.
type aggregationServiceFixtures struct {
	service  usecase.AggregationUsecase
	scanRepo *mockRepo.MockScanRepository
}

func createTestAggregationService(t *testing.T) aggregationServiceFixtures {
	scanRepo := mockRepo.NewMockScanRepository(t)
	service := NewAggregationService(scanRepo, newTestConfig())

	return aggregationServiceFixtures{
		service:  service,
		scanRepo: scanRepo,
	}
}

// scanAt builds a record with a creation time offset so newest-first ordering
// is explicit in each test.
func scanAt(address string, level entity.RiskLevel, uploadedBy uuid.UUID, age time.Duration) *entity.ScanRecord {
	return &entity.ScanRecord{
		ID:          uuid.New(),
		ImageURL:    "https://cdn.example.com/firetrace_uploads/" + uuid.NewString() + ".jpg",
		Address:     address,
		Coordinates: entity.Coordinates{Lat: 14.53, Lng: 121.0},
		RiskLevel:   level,
		UploadedBy:  uploadedBy,
		CreatedAt:   time.Now().Add(-age),
	}
}

// newestFirst mirrors the repository contract: records ordered by creation
// time descending.
func newestFirst(records ...*entity.ScanRecord) []*entity.ScanRecord {
	return records
}

func TestAggregationService_GetDashboard_GroupsByNormalizedAddress(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	uploader := uuid.New()

	// Same house submitted with sloppy whitespace and casing plus one other
	// house. Two groups, not three.
	r1 := scanAt("12 Main St, Pasay City", entity.RiskHigh, uploader, 1*time.Hour)
	r2 := scanAt(" 12   main st, pasay   city ", entity.RiskLow, uploader, 2*time.Hour)
	r3 := scanAt("7 Side St, Pasay City", entity.RiskLow, uploader, 3*time.Hour)

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(newestFirst(r1, r2, r3), nil)

	dashboard, err := fx.service.GetDashboard(ctx, adminID, entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, dashboard.Groups, 2)

	mainSt := dashboard.Groups[0]
	assert.Equal(t, "12 main st, pasay city", mainSt.NormalizedAddress)
	assert.Len(t, mainSt.Members, 2)
	// Display address comes from the first member seen, original spelling kept.
	assert.Equal(t, "12 Main St, Pasay City", mainSt.Address)
	assert.True(t, mainSt.Mappable)
}

func TestAggregationService_GetDashboard_StatsCountGroupsNotRecords(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	uploader := uuid.New()

	// Five records, two houses. Total must be 2.
	records := newestFirst(
		scanAt("12 Main St", entity.RiskHigh, uploader, 1*time.Hour),
		scanAt("12 Main St", entity.RiskHigh, uploader, 2*time.Hour),
		scanAt("12 Main St", entity.RiskLow, uploader, 3*time.Hour),
		scanAt("7 Side St", entity.RiskLow, uploader, 4*time.Hour),
		scanAt("7 Side St", entity.RiskLow, uploader, 5*time.Hour),
	)

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(records, nil)

	dashboard, err := fx.service.GetDashboard(ctx, uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, 2, dashboard.Stats.Total)
	assert.Equal(t, 1, dashboard.Stats.High)
	assert.Equal(t, 0, dashboard.Stats.Moderate)
	assert.Equal(t, 1, dashboard.Stats.Low)
}

func TestAggregationService_GetDashboard_RepresentativeImageIsLatest(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	uploader := uuid.New()

	newest := scanAt("12 Main St", entity.RiskLow, uploader, 1*time.Hour)
	older := scanAt("12 Main St", entity.RiskHigh, uploader, 2*time.Hour)

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(newestFirst(newest, older), nil)

	dashboard, err := fx.service.GetDashboard(ctx, uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, dashboard.Groups, 1)
	assert.Equal(t, newest.ImageURL, dashboard.Groups[0].RepresentativeImage)
}

func TestAggregationService_GetDashboard_ImagelessNewestMemberIsSkipped(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	uploader := uuid.New()

	// Three scans of the same house; the newest carries no image, so the
	// representative falls back to the newest member that has one.
	newest := scanAt("12 Main St", entity.RiskLow, uploader, 1*time.Hour)
	newest.ImageURL = ""
	middle := scanAt("12 Main St", entity.RiskLow, uploader, 2*time.Hour)
	oldest := scanAt("12 Main St", entity.RiskHigh, uploader, 3*time.Hour)

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(newestFirst(newest, middle, oldest), nil)

	dashboard, err := fx.service.GetDashboard(ctx, uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, dashboard.Groups, 1)
	assert.Equal(t, middle.ImageURL, dashboard.Groups[0].RepresentativeImage)
}

func TestAggregationService_GetDashboard_GroupWithoutImagesHasNoRepresentative(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	uploader := uuid.New()

	r1 := scanAt("12 Main St", entity.RiskLow, uploader, 1*time.Hour)
	r1.ImageURL = ""
	r2 := scanAt("12 Main St", entity.RiskHigh, uploader, 2*time.Hour)
	r2.ImageURL = ""

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(newestFirst(r1, r2), nil)

	dashboard, err := fx.service.GetDashboard(ctx, uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, dashboard.Groups, 1)
	assert.Empty(t, dashboard.Groups[0].RepresentativeImage)
}

func TestAggregationService_GetDashboard_UnmappableGroupStaysInStats(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	uploader := uuid.New()

	// One house never geocoded, one with coordinates. The unmappable house
	// still counts toward the totals; it just gets no map pin.
	unmapped := scanAt("12 Main St", entity.RiskHigh, uploader, 1*time.Hour)
	unmapped.Coordinates = entity.Coordinates{}
	mapped := scanAt("7 Side St", entity.RiskLow, uploader, 2*time.Hour)

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(newestFirst(unmapped, mapped), nil)

	dashboard, err := fx.service.GetDashboard(ctx, uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, dashboard.Groups, 2)

	assert.Equal(t, 2, dashboard.Stats.Total)
	assert.Equal(t, 1, dashboard.Stats.High)
	assert.False(t, dashboard.Groups[0].Mappable)
	assert.True(t, dashboard.Groups[1].Mappable)
}

func TestAggregationService_GetDashboard_UserScopedToOwnRecords(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	callerID := uuid.New()

	// The repository filter must carry the caller: scoping happens before
	// grouping, not after.
	fx.scanRepo.EXPECT().
		FindAll(ctx, repository.ScanFilter{UploadedBy: &callerID}).
		Return(newestFirst(), nil)

	dashboard, err := fx.service.GetDashboard(ctx, callerID, entity.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, 0, dashboard.Stats.Total)
	assert.Empty(t, dashboard.Groups)
}

func TestAggregationService_GetHistory_AdminGetsGroups(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	uploader := uuid.New()

	records := newestFirst(
		scanAt("12 Main St", entity.RiskHigh, uploader, 1*time.Hour),
		scanAt("7 Side St", entity.RiskLow, uploader, 2*time.Hour),
		scanAt("3 Back St", entity.RiskModerate, uploader, 3*time.Hour),
	)

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(records, nil)

	// Page size is 2 in the test config: three groups make two pages.
	page, err := fx.service.GetHistory(ctx, uuid.New(), entity.RoleAdmin, usecase.HistoryQuery{Page: 1})
	require.NoError(t, err)
	assert.Nil(t, page.Records)
	require.Len(t, page.Groups, 2)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, "12 main st", page.Groups[0].NormalizedAddress)
}

func TestAggregationService_GetHistory_UserGetsFlatRecords(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	callerID := uuid.New()

	records := newestFirst(
		scanAt("12 Main St", entity.RiskHigh, callerID, 1*time.Hour),
		scanAt("12 Main St", entity.RiskLow, callerID, 2*time.Hour),
	)

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(records, nil)

	page, err := fx.service.GetHistory(ctx, callerID, entity.RoleUser, usecase.HistoryQuery{Page: 1})
	require.NoError(t, err)
	assert.Nil(t, page.Groups)
	// Same address twice stays two rows: users see records, not groups.
	require.Len(t, page.Records, 2)
	assert.Equal(t, 1, page.TotalPages)
}

func TestAggregationService_GetHistory_LevelAndSearchFilters(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	uploader := uuid.New()

	records := newestFirst(
		scanAt("12 Main St", entity.RiskHigh, uploader, 1*time.Hour),
		scanAt("7 Side St", entity.RiskHigh, uploader, 2*time.Hour),
		scanAt("3 Main Ave", entity.RiskLow, uploader, 3*time.Hour),
	)

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(records, nil)

	page, err := fx.service.GetHistory(ctx, uuid.New(), entity.RoleAdmin, usecase.HistoryQuery{
		Page:   1,
		Level:  entity.RiskHigh,
		Search: "MAIN",
	})
	require.NoError(t, err)
	require.Len(t, page.Groups, 1)
	assert.Equal(t, "12 main st", page.Groups[0].NormalizedAddress)
}

func TestAggregationService_GetHistory_OldestSortReversesOrder(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	callerID := uuid.New()

	newest := scanAt("12 Main St", entity.RiskLow, callerID, 1*time.Hour)
	oldest := scanAt("7 Side St", entity.RiskLow, callerID, 5*time.Hour)

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(newestFirst(newest, oldest), nil)

	page, err := fx.service.GetHistory(ctx, callerID, entity.RoleUser, usecase.HistoryQuery{
		Page: 1,
		Sort: usecase.HistorySortOldest,
	})
	require.NoError(t, err)
	require.Len(t, page.Records, 2)
	assert.Equal(t, oldest.ID, page.Records[0].ID)
	assert.Equal(t, newest.ID, page.Records[1].ID)
}

func TestAggregationService_GetHistory_OutOfRangePageIsEmpty(t *testing.T) {
	fx := createTestAggregationService(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.scanRepo.EXPECT().
		FindAll(ctx, mock.AnythingOfType("repository.ScanFilter")).
		Return(newestFirst(scanAt("12 Main St", entity.RiskLow, callerID, time.Hour)), nil)

	page, err := fx.service.GetHistory(ctx, callerID, entity.RoleUser, usecase.HistoryQuery{Page: 99})
	require.NoError(t, err)
	assert.Empty(t, page.Records)
	assert.Equal(t, 99, page.Page)
	assert.Equal(t, 1, page.TotalPages)
}
