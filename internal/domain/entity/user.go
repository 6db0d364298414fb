// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity behind a scan submission. Accounts are created and
// authenticated by the identity service; this system only resolves them by
// reference when reading or persisting scans.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email.
	Name      string    // The user's display name.
	Role      Role      // The user's role ("user" or "admin").
	CreatedAt time.Time // Timestamp of when this user account was created.
}
