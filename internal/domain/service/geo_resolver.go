package service

import (
	"context"

	"firetrace/internal/domain/entity"
	"firetrace/internal/errors"
)

// ErrNoCoordinates is returned when an address is ambiguous or unknown and
// no coordinates can be resolved for it.
var ErrNoCoordinates = errors.New("no coordinates found for address")

// GeoResolver turns a composed street address into geographic coordinates.
type GeoResolver interface {
	// Resolve geocodes the address. Returns ErrNoCoordinates when the
	// geocoder knows the address format but cannot locate it.
	Resolve(ctx context.Context, address string) (*entity.Coordinates, error)
}
