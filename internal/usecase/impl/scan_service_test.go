package impl

import (
	"context"
	"testing"

	"firetrace/internal/domain/entity"
	domainerrors "firetrace/internal/domain/errors"
	"firetrace/internal/domain/repository"
	"firetrace/internal/domain/service"
	mockRepo "firetrace/internal/mocks/repository"
	mockService "firetrace/internal/mocks/service"
	"firetrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scanServiceFixtures holds all test dependencies for scan pipeline tests.
type scanServiceFixtures struct {
	service    usecase.ScanUsecase
	validator  *mockService.MockImageValidator
	geocoder   *mockService.MockGeoResolver
	assetStore *mockService.MockAssetStore
	classifier *mockService.MockRiskClassifier
	scanRepo   *mockRepo.MockScanRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestScanService(t *testing.T) scanServiceFixtures {
	validator := mockService.NewMockImageValidator(t)
	geocoder := mockService.NewMockGeoResolver(t)
	assetStore := mockService.NewMockAssetStore(t)
	classifier := mockService.NewMockRiskClassifier(t)
	scanRepo := mockRepo.NewMockScanRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewScanService(validator, geocoder, assetStore, classifier, scanRepo, userRepo, newTestConfig(), newDiscardLogger())

	return scanServiceFixtures{
		service:    svc,
		validator:  validator,
		geocoder:   geocoder,
		assetStore: assetStore,
		classifier: classifier,
		scanRepo:   scanRepo,
		userRepo:   userRepo,
	}
}

func submitInput(uploaderID uuid.UUID) *usecase.SubmitScanInput {
	return &usecase.SubmitScanInput{
		Image:       []byte("jpeg-bytes"),
		MediaType:   "image/jpeg",
		Street:      "Main St",
		HouseNumber: "12",
		UploaderID:  uploaderID,
	}
}

func TestScanService_SubmitScan_Success(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	uploaderID := uuid.New()
	uploader := &entity.User{ID: uploaderID, Email: "resident@example.com", Name: "Resident", Role: entity.RoleUser}
	input := submitInput(uploaderID)

	const composedAddress = "12 Main St, Barangay 105 Zone 11, Pasay City, Philippines"
	const imageURL = "https://cdn.example.com/firetrace_uploads/abc.jpg"

	fx.validator.EXPECT().
		Validate(ctx, input.Image, input.MediaType).
		Return(&service.Prediction{Label: "Valid House Exterior", Confidence: 0.95}, nil)

	fx.geocoder.EXPECT().
		Resolve(ctx, composedAddress).
		Return(&entity.Coordinates{Lat: 14.5378, Lng: 121.0014}, nil)

	fx.assetStore.EXPECT().
		Upload(ctx, input.Image, input.MediaType).
		Return(imageURL, nil)

	fx.classifier.EXPECT().
		Classify(ctx, imageURL, mock.AnythingOfType("string")).
		Return("Fire Risk Level: Yellow\n- exposed wiring", nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, uploaderID).
		Return(uploader, nil)

	fx.scanRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ScanRecord")).
		Return(nil)

	record, err := fx.service.SubmitScan(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, imageURL, record.ImageURL)
	assert.Equal(t, composedAddress, record.Address)
	assert.Equal(t, entity.RiskModerate, record.RiskLevel)
	assert.Equal(t, uploaderID, record.UploadedBy)
	assert.Equal(t, uploader, record.Uploader)
	assert.InDelta(t, 14.5378, record.Coordinates.Lat, 1e-9)
}

func TestScanService_SubmitScan_LowConfidenceShortCircuits(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	input := submitInput(uuid.New())

	// Exactly at the threshold fails: the check is strictly greater than.
	fx.validator.EXPECT().
		Validate(ctx, input.Image, input.MediaType).
		Return(&service.Prediction{Label: "Valid House Exterior", Confidence: 0.8}, nil)

	record, err := fx.service.SubmitScan(ctx, input)
	require.Error(t, err)
	assert.Nil(t, record)

	var stageErr *domainerrors.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domainerrors.StageValidate, stageErr.Stage())
	// No other collaborator was touched; the mocks would fail the test on
	// any unexpected call.
}

func TestScanService_SubmitScan_WrongLabelRejected(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	input := submitInput(uuid.New())

	fx.validator.EXPECT().
		Validate(ctx, input.Image, input.MediaType).
		Return(&service.Prediction{Label: "Not A House", Confidence: 0.99}, nil)

	_, err := fx.service.SubmitScan(ctx, input)

	var stageErr *domainerrors.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domainerrors.StageValidate, stageErr.Stage())
}

func TestScanService_SubmitScan_GeocodeZeroResults(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	input := submitInput(uuid.New())

	fx.validator.EXPECT().
		Validate(ctx, input.Image, input.MediaType).
		Return(&service.Prediction{Label: "valid", Confidence: 0.9}, nil)

	fx.geocoder.EXPECT().
		Resolve(ctx, mock.AnythingOfType("string")).
		Return(nil, service.ErrNoCoordinates)

	_, err := fx.service.SubmitScan(ctx, input)

	var stageErr *domainerrors.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domainerrors.StageGeocode, stageErr.Stage())
	assert.ErrorIs(t, err, service.ErrNoCoordinates)
}

func TestScanService_SubmitScan_StoreFailureAborts(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	input := submitInput(uuid.New())

	fx.validator.EXPECT().
		Validate(ctx, input.Image, input.MediaType).
		Return(&service.Prediction{Label: "valid", Confidence: 0.9}, nil)

	fx.geocoder.EXPECT().
		Resolve(ctx, mock.AnythingOfType("string")).
		Return(&entity.Coordinates{Lat: 14.5, Lng: 121.0}, nil)

	fx.assetStore.EXPECT().
		Upload(ctx, input.Image, input.MediaType).
		Return("", errors.New("bucket unavailable"))

	_, err := fx.service.SubmitScan(ctx, input)

	var stageErr *domainerrors.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domainerrors.StageStore, stageErr.Stage())
}

func TestScanService_SubmitScan_NoRiskKeywordFails(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	input := submitInput(uuid.New())

	fx.validator.EXPECT().
		Validate(ctx, input.Image, input.MediaType).
		Return(&service.Prediction{Label: "valid", Confidence: 0.9}, nil)

	fx.geocoder.EXPECT().
		Resolve(ctx, mock.AnythingOfType("string")).
		Return(&entity.Coordinates{Lat: 14.5, Lng: 121.0}, nil)

	fx.assetStore.EXPECT().
		Upload(ctx, input.Image, input.MediaType).
		Return("https://cdn.example.com/firetrace_uploads/x.jpg", nil)

	fx.classifier.EXPECT().
		Classify(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return("I cannot determine the risk from this image.", nil)

	_, err := fx.service.SubmitScan(ctx, input)

	var stageErr *domainerrors.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domainerrors.StageClassify, stageErr.Stage())
}

func TestScanService_SubmitScan_UnknownUploader(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	uploaderID := uuid.New()
	input := submitInput(uploaderID)

	fx.validator.EXPECT().
		Validate(ctx, input.Image, input.MediaType).
		Return(&service.Prediction{Label: "valid", Confidence: 0.9}, nil)

	fx.geocoder.EXPECT().
		Resolve(ctx, mock.AnythingOfType("string")).
		Return(&entity.Coordinates{Lat: 14.5, Lng: 121.0}, nil)

	fx.assetStore.EXPECT().
		Upload(ctx, input.Image, input.MediaType).
		Return("https://cdn.example.com/firetrace_uploads/x.jpg", nil)

	fx.classifier.EXPECT().
		Classify(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return("Red: high risk", nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, uploaderID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.SubmitScan(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUploaderNotFound)
}

func TestScanService_DeleteScan_OwnerSucceeds(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	scanID := uuid.New()

	fx.scanRepo.EXPECT().
		FindByID(ctx, scanID).
		Return(&entity.ScanRecord{ID: scanID, UploadedBy: ownerID}, nil)

	fx.scanRepo.EXPECT().
		Delete(ctx, scanID).
		Return(nil)

	err := fx.service.DeleteScan(ctx, scanID, ownerID, entity.RoleUser)
	require.NoError(t, err)
}

func TestScanService_DeleteScan_AdminDeletesForeignRecord(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	scanID := uuid.New()

	fx.scanRepo.EXPECT().
		FindByID(ctx, scanID).
		Return(&entity.ScanRecord{ID: scanID, UploadedBy: uuid.New()}, nil)

	fx.scanRepo.EXPECT().
		Delete(ctx, scanID).
		Return(nil)

	err := fx.service.DeleteScan(ctx, scanID, uuid.New(), entity.RoleAdmin)
	require.NoError(t, err)
}

func TestScanService_DeleteScan_NonOwnerForbidden(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	scanID := uuid.New()

	fx.scanRepo.EXPECT().
		FindByID(ctx, scanID).
		Return(&entity.ScanRecord{ID: scanID, UploadedBy: uuid.New()}, nil)

	err := fx.service.DeleteScan(ctx, scanID, uuid.New(), entity.RoleUser)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestScanService_DeleteScan_ConcurrentDeleteLoserSeesNotFound(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	scanID := uuid.New()

	fx.scanRepo.EXPECT().
		FindByID(ctx, scanID).
		Return(&entity.ScanRecord{ID: scanID, UploadedBy: ownerID}, nil)

	fx.scanRepo.EXPECT().
		Delete(ctx, scanID).
		Return(repository.ErrScanNotFound)

	err := fx.service.DeleteScan(ctx, scanID, ownerID, entity.RoleUser)
	assert.ErrorIs(t, err, domainerrors.ErrScanNotFound)
}

func TestScanService_DeleteScan_MissingRecord(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	scanID := uuid.New()

	fx.scanRepo.EXPECT().
		FindByID(ctx, scanID).
		Return(nil, repository.ErrScanNotFound)

	err := fx.service.DeleteScan(ctx, scanID, uuid.New(), entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrScanNotFound)
}
