// Package usecase defines the application-layer interfaces and their
// input/output types.
package usecase

import (
	"context"

	"firetrace/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitScanInput represents one scan submission: the raw photo plus the
// declared address components and the authenticated uploader.
type SubmitScanInput struct {
	Image       []byte
	MediaType   string
	Street      string
	HouseNumber string
	UploaderID  uuid.UUID
}

// ScanUsecase defines the scan pipeline operations.
type ScanUsecase interface {
	// SubmitScan runs the four-stage pipeline (validate, geocode, store,
	// classify) and persists the resulting record. A stage failure aborts
	// the whole submission with a stage-attributed error and leaves no
	// partial record behind.
	SubmitScan(ctx context.Context, input *SubmitScanInput) (*entity.ScanRecord, error)

	// DeleteScan removes a scan record. Only the uploader or an
	// administrator may delete; the operation is idempotent and a
	// concurrent-delete loser sees not-found.
	DeleteScan(ctx context.Context, scanID, callerID uuid.UUID, role entity.Role) error
}
