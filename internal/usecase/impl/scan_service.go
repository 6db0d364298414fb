// Package impl contains the concrete implementations of the application
// use cases.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"firetrace/config"
	"firetrace/internal/domain/entity"
	domainerrors "firetrace/internal/domain/errors"
	"firetrace/internal/domain/repository"
	"firetrace/internal/domain/service"
	"firetrace/internal/errors"
	"firetrace/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultConfidenceThreshold = 0.8
	defaultValidLabel          = "valid"
	defaultLocalitySuffix      = "Barangay 105 Zone 11, Pasay City, Philippines"
)

// riskRubricPrompt is the fixed instruction sent to the vision model with
// every stored image. The color keywords in the model's answer are the only
// part the pipeline parses; the rest is stored verbatim for display.
const riskRubricPrompt = `You are a fire risk analyst AI. Analyze the image of this house exterior and classify its fire risk as Green (Low), Yellow (Moderate), or Red (High) based on visual indicators. Focus primarily on the main house structure, not surrounding walls or fences, when evaluating construction materials. Only describe what is visibly observable with confident, direct statements.

Evaluate the structure and surroundings for the following fire hazards:
90% focus on the main building materials (wood, concrete, or a mix of wood and concrete).
10% on the following:
- Exposed or messy electrical wiring
- Open gaps or poor ventilation
- Nearby structures with no firebreak
- Outdoor clutter (trash, tires, debris)
- Damaged or makeshift roofing
- Visible LPG tanks, stoves, or other ignition sources
- Limited or obstructed access for emergency responders

Return:
- The Fire Risk Level (Green, Yellow, or Red)
- A bulleted list of fire hazards observed using clear and factual language
- A bulleted list of three doable recommendations`

type scanService struct {
	validator  service.ImageValidator
	geocoder   service.GeoResolver
	assetStore service.AssetStore
	classifier service.RiskClassifier
	scanRepo   repository.ScanRepository
	userRepo   repository.UserRepository
	config     *config.Config
	logger     *slog.Logger
}

// NewScanService creates a new scan pipeline service instance
func NewScanService(
	validator service.ImageValidator,
	geocoder service.GeoResolver,
	assetStore service.AssetStore,
	classifier service.RiskClassifier,
	scanRepo repository.ScanRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ScanUsecase {
	// If Scan is not configured, provide a default configuration
	if cfg.Scan == nil {
		cfg.Scan = &config.ScanConfig{}
	}
	if cfg.Scan.ConfidenceThreshold == 0 {
		cfg.Scan.ConfidenceThreshold = defaultConfidenceThreshold
	}
	if cfg.Scan.ValidLabel == "" {
		cfg.Scan.ValidLabel = defaultValidLabel
	}
	if cfg.Scan.LocalitySuffix == "" {
		cfg.Scan.LocalitySuffix = defaultLocalitySuffix
	}

	return &scanService{
		validator:  validator,
		geocoder:   geocoder,
		assetStore: assetStore,
		classifier: classifier,
		scanRepo:   scanRepo,
		userRepo:   userRepo,
		config:     cfg,
		logger:     logger,
	}
}

// SubmitScan runs the strict linear pipeline for one submission:
// validate -> geocode -> store -> classify -> persist. No stage begins
// before the previous one succeeded, there are no retries, and a failure at
// any stage aborts the submission before the repository is touched.
func (s *scanService) SubmitScan(ctx context.Context, input *usecase.SubmitScanInput) (*entity.ScanRecord, error) {
	// Stage 1: local image-validity check.
	prediction, err := s.validator.Validate(ctx, input.Image, input.MediaType)
	if err != nil {
		return nil, domainerrors.NewStageError(domainerrors.StageValidate, err, "image validation service unavailable")
	}
	if !s.isUsablePhoto(prediction) {
		return nil, domainerrors.NewStageError(domainerrors.StageValidate, nil, "not a usable exterior photo")
	}

	// Stage 2: resolve coordinates. Aggregation requires them, so the
	// pipeline stops here rather than persisting an unmappable record.
	address := s.composeAddress(input.HouseNumber, input.Street)
	coords, err := s.geocoder.Resolve(ctx, address)
	if err != nil {
		if errors.Is(err, service.ErrNoCoordinates) {
			return nil, domainerrors.NewStageError(domainerrors.StageGeocode, err, "address could not be resolved to coordinates")
		}

		return nil, domainerrors.NewStageError(domainerrors.StageGeocode, err, "geocoding service unavailable")
	}

	// Stage 3: durable upload. The one side effect that cannot be rolled
	// back, so it runs only after the input is known good.
	imageURL, err := s.assetStore.Upload(ctx, input.Image, input.MediaType)
	if err != nil {
		return nil, domainerrors.NewStageError(domainerrors.StageStore, err, "failed to store image")
	}

	// Stage 4: risk classification. A response without a rubric keyword is
	// a hard failure; the risk level is never silently left unset.
	rawOutput, err := s.classifier.Classify(ctx, imageURL, riskRubricPrompt)
	if err != nil {
		return nil, domainerrors.NewStageError(domainerrors.StageClassify, err, "risk classification service unavailable")
	}
	level, ok := entity.ParseRiskLevel(rawOutput)
	if !ok {
		return nil, domainerrors.NewStageError(domainerrors.StageClassify, nil, "classifier response contained no risk keyword")
	}

	// Persist: the only point state becomes durable in the repository. The
	// uploader must exist; records always reference a real identity.
	uploader, err := s.userRepo.FindByID(ctx, input.UploaderID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUploaderNotFound
		}

		return nil, domainerrors.NewStageError(domainerrors.StagePersist, err, "failed to resolve uploader")
	}

	record := &entity.ScanRecord{
		ID:               uuid.New(),
		ImageURL:         imageURL,
		ImageMediaType:   input.MediaType,
		Address:          address,
		Street:           input.Street,
		HouseNumber:      input.HouseNumber,
		Coordinates:      *coords,
		RiskLevel:        level,
		ClassifierOutput: rawOutput,
		UploadedBy:       uploader.ID,
		CreatedAt:        time.Now(),
	}

	if err := s.scanRepo.Create(ctx, record); err != nil {
		return nil, domainerrors.NewStageError(domainerrors.StagePersist, err, "failed to persist scan record")
	}

	record.Uploader = uploader

	s.logger.Info("scan persisted",
		slog.String("scanID", record.ID.String()),
		slog.String("riskLevel", record.RiskLevel.String()),
		slog.String("address", record.Address),
	)

	return record, nil
}

// DeleteScan removes a record after an ownership check. Administrators hold
// delete rights over all records without becoming co-owners.
func (s *scanService) DeleteScan(ctx context.Context, scanID, callerID uuid.UUID, role entity.Role) error {
	record, err := s.scanRepo.FindByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, repository.ErrScanNotFound) {
			return domainerrors.ErrScanNotFound
		}

		return fmt.Errorf("failed to find scan by ID: %w", err)
	}

	if !role.IsAdmin() && !record.OwnedBy(callerID) {
		return domainerrors.ErrNotAuthorized
	}

	if err := s.scanRepo.Delete(ctx, scanID); err != nil {
		if errors.Is(err, repository.ErrScanNotFound) {
			// Lost a race against a concurrent delete.
			return domainerrors.ErrScanNotFound
		}

		return fmt.Errorf("failed to delete scan: %w", err)
	}

	return nil
}

// isUsablePhoto applies the configured confidence threshold to the validity
// prediction. The confidence must be strictly greater than the threshold.
func (s *scanService) isUsablePhoto(prediction *service.Prediction) bool {
	if prediction == nil {
		return false
	}
	if !labelMatches(prediction.Label, s.config.Scan.ValidLabel) {
		return false
	}

	return prediction.Confidence > s.config.Scan.ConfidenceThreshold
}

// composeAddress joins the declared components with the configured locality.
func (s *scanService) composeAddress(houseNumber, street string) string {
	return fmt.Sprintf("%s %s, %s", houseNumber, street, s.config.Scan.LocalitySuffix)
}

// labelMatches reports whether the predicted class label is the usable-photo
// class, matching the way the validity model names its classes (e.g.
// "Valid House Exterior").
func labelMatches(label, validLabel string) bool {
	return strings.Contains(strings.ToLower(label), strings.ToLower(validLabel))
}
