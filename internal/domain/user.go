package domain

import (
	"context"
	"time"
)

// Role is the access role of a profile.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAuditor  Role = "auditor"
	RoleSupplier Role = "supplier"
	RoleConsumer Role = "consumer"
)

// ParseRole returns the role for s and whether it is known.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleAuditor, RoleSupplier, RoleConsumer:
		return r, true
	}
	return "", false
}

// Actor is the verified caller of a service operation.
type Actor struct {
	UserID string
	Role   Role
}

// Is reports whether the actor holds one of the given roles.
func (a Actor) Is(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// Require returns a forbidden error unless the actor holds one of the roles.
func (a Actor) Require(roles ...Role) error {
	if a.UserID == "" {
		return NewUnauthorizedError("authentication required")
	}
	if !a.Is(roles...) {
		return NewForbiddenError("role " + string(a.Role) + " is not allowed to perform this action")
	}
	return nil
}

// Profile represents a user of the application
type Profile struct {
	ID        string
	Email     string
	FullName  string
	Role      Role
	Phone     string
	Location  *Coordinates // auditors only
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Coordinates is a WGS84 latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ProfileRepository defines the interface for profile persistence.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *Profile) error
	GetProfileByID(ctx context.Context, id string) (*Profile, error)
	ListProfilesByRole(ctx context.Context, role Role) ([]*Profile, error)
	CountProfilesByRole(ctx context.Context, role Role) (int, error)
}
