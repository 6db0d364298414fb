// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"firetrace/internal/domain/entity"
	domainerrors "firetrace/internal/domain/errors"
	"firetrace/internal/domain/repository"
	"firetrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// scanRepository implements the repository.ScanRepository interface.
type scanRepository struct {
	db *gorm.DB
}

// NewScanRepository is the constructor for scanRepository.
func NewScanRepository(db *gorm.DB) repository.ScanRepository {
	return &scanRepository{
		db: db,
	}
}

// Create persists a new scan record.
func (repo *scanRepository) Create(ctx context.Context, record *entity.ScanRecord) error {
	scanM := fromScanDomain(record)

	if err := repo.db.WithContext(ctx).Create(scanM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "scan record already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUploaderNotFound.WrapMessage("invalid uploader reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "scan record carried an invalid risk level")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required scan information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create scan record")
	}

	// Update the entity with generated values
	record.ID = scanM.ID
	record.CreatedAt = scanM.CreatedAt

	return nil
}

// FindByID retrieves a scan record by its unique ID, with the uploader
// resolved.
func (repo *scanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ScanRecord, error) {
	var scanM model.ScanModel

	if err := repo.db.WithContext(ctx).
		Preload("Uploader").
		Where("id = ?", id).
		First(&scanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScanNotFound
		}

		return nil, errors.Wrap(err, "failed to find scan by ID")
	}

	return toScanDomain(&scanM), nil
}

// FindAll retrieves every record matching the filter, newest first.
func (repo *scanRepository) FindAll(ctx context.Context, filter repository.ScanFilter) ([]*entity.ScanRecord, error) {
	query := repo.db.WithContext(ctx).
		Preload("Uploader").
		Order("created_at DESC")

	if filter.UploadedBy != nil {
		query = query.Where("uploaded_by = ?", *filter.UploadedBy)
	}

	var scanModels []*model.ScanModel
	if err := query.Find(&scanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find scan records")
	}

	records := make([]*entity.ScanRecord, 0, len(scanModels))
	for _, scanM := range scanModels {
		records = append(records, toScanDomain(scanM))
	}

	return records, nil
}

// Delete removes a scan record by ID. Losing a concurrent-delete race
// surfaces as ErrScanNotFound.
func (repo *scanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ScanModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete scan record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrScanNotFound
	}

	return nil
}

// fromScanDomain converts a domain entity to its persistence model.
func fromScanDomain(record *entity.ScanRecord) *model.ScanModel {
	return &model.ScanModel{
		ID:               record.ID,
		ImageURL:         record.ImageURL,
		ImageMediaType:   record.ImageMediaType,
		Address:          record.Address,
		Street:           record.Street,
		HouseNumber:      record.HouseNumber,
		Latitude:         record.Coordinates.Lat,
		Longitude:        record.Coordinates.Lng,
		RiskLevel:        record.RiskLevel.String(),
		ClassifierOutput: record.ClassifierOutput,
		UploadedBy:       record.UploadedBy,
		CreatedAt:        record.CreatedAt,
	}
}

// toScanDomain converts a persistence model back to the domain entity.
func toScanDomain(scanM *model.ScanModel) *entity.ScanRecord {
	record := &entity.ScanRecord{
		ID:               scanM.ID,
		ImageURL:         scanM.ImageURL,
		ImageMediaType:   scanM.ImageMediaType,
		Address:          scanM.Address,
		Street:           scanM.Street,
		HouseNumber:      scanM.HouseNumber,
		Coordinates:      entity.Coordinates{Lat: scanM.Latitude, Lng: scanM.Longitude},
		RiskLevel:        entity.RiskLevelFromString(scanM.RiskLevel),
		ClassifierOutput: scanM.ClassifierOutput,
		UploadedBy:       scanM.UploadedBy,
		CreatedAt:        scanM.CreatedAt,
	}

	if scanM.Uploader != nil {
		record.Uploader = toUserDomain(scanM.Uploader)
	}

	return record
}
