// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"firetrace/internal/domain/entity"
	"firetrace/internal/errors"

	"github.com/google/uuid"
)

// ErrScanNotFound is a domain-specific error returned when a scan record is not found.
var ErrScanNotFound = errors.New("scan record not found")

// ScanFilter narrows a scan query. A nil UploadedBy returns every record;
// ordinary-user reads always set it before grouping.
type ScanFilter struct {
	UploadedBy *uuid.UUID
}

// ScanRepository defines the standard operations for scan record persistence.
// Records are insert-only: the pipeline creates each record exactly once and
// the only mutation ever applied is deletion.
type ScanRepository interface {
	// Create persists a new scan record. This is the single durable write of
	// a successful pipeline submission.
	Create(ctx context.Context, record *entity.ScanRecord) error

	// FindByID retrieves a single scan record, with its uploader resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ScanRecord, error)

	// FindAll retrieves every record matching the filter, uploader resolved,
	// ordered by creation time descending.
	FindAll(ctx context.Context, filter ScanFilter) ([]*entity.ScanRecord, error)

	// Delete removes a scan record by ID. Returns ErrScanNotFound when the
	// record no longer exists, which makes concurrent deletes resolve as
	// "not found" on the loser.
	Delete(ctx context.Context, id uuid.UUID) error
}
