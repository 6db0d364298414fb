// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"firetrace/internal/domain/entity"
	"firetrace/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository resolves uploader identities by reference. Account
// creation and editing belong to the identity service, so this interface is
// read-only.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
