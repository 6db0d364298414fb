// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coordinates is a geographic point resolved from a street address.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether the coordinates were never resolved. The service
// area is nowhere near (0, 0), so the zero value doubles as "missing".
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// ScanRecord is one classification attempt: a stored exterior photo, the
// address it was taken at, and the fire risk level the vision model assigned.
// A record is created exactly once by the scan pipeline and is never mutated
// afterwards except by deletion.
type ScanRecord struct {
	ID               uuid.UUID   `json:"id"`               // Assigned at creation, immutable.
	ImageURL         string      `json:"imageUrl"`         // Permanent URL in durable storage; set only after a successful upload.
	ImageMediaType   string      `json:"imageMediaType"`   // Informational media type of the uploaded photo.
	Address          string      `json:"address"`          // Full composed address as submitted.
	Street           string      `json:"street"`           // Structured street component.
	HouseNumber      string      `json:"houseNumber"`      // Structured house number component.
	Coordinates      Coordinates `json:"coordinates"`      // Set only after a successful geocoding call.
	RiskLevel        RiskLevel   `json:"riskLevel"`        // Never RiskUnset on a persisted record.
	ClassifierOutput string      `json:"classifierOutput"` // Raw vision model response, stored verbatim for audit.
	UploadedBy       uuid.UUID   `json:"uploadedBy"`       // Reference to the uploader's identity.
	Uploader         *User       `json:"uploader,omitempty"` // Resolved uploader, populated on reads.
	CreatedAt        time.Time   `json:"createdAt"`        // Set at persistence time, immutable.
}

// OwnedBy reports whether the given user uploaded this record. Ownership
// grants delete rights; administrators hold delete rights without ownership.
func (s *ScanRecord) OwnedBy(userID uuid.UUID) bool {
	return s.UploadedBy == userID
}
