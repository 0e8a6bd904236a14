package domain

import (
	"context"
	"time"
)

// BusinessStatus tracks a business through onboarding and auditing.
type BusinessStatus string

const (
	BusinessPending       BusinessStatus = "pending"
	BusinessKitDispatched BusinessStatus = "kit_dispatched"
	BusinessOnboarded     BusinessStatus = "onboarded"
	BusinessAuditAssigned BusinessStatus = "audit_assigned"
	BusinessAudited       BusinessStatus = "audited"
	BusinessVerified      BusinessStatus = "verified"
	BusinessRejected      BusinessStatus = "rejected"
)

// ParseBusinessStatus returns the status for s and whether it is known.
func ParseBusinessStatus(s string) (BusinessStatus, bool) {
	switch st := BusinessStatus(s); st {
	case BusinessPending, BusinessKitDispatched, BusinessOnboarded, BusinessAuditAssigned,
		BusinessAudited, BusinessVerified, BusinessRejected:
		return st, true
	}
	return "", false
}

// Business is an onboarded business awaiting or having passed an audit.
type Business struct {
	ID         string
	Name       string
	CategoryID string
	OwnerName  string
	Email      string
	Phone      string
	Address    string
	City       string
	Location   *Coordinates
	Status     BusinessStatus
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBusiness creates a pending business
func NewBusiness(name, categoryID, createdBy string) *Business {
	now := time.Now()
	return &Business{
		Name:       name,
		CategoryID: categoryID,
		Status:     BusinessPending,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Validate validates the business
func (b *Business) Validate() error {
	var errs ValidationErrors
	if b.Name == "" {
		errs = append(errs, NewMissingFieldError("name"))
	}
	if b.CategoryID == "" {
		errs = append(errs, NewMissingFieldError("category_id"))
	}
	if b.Location != nil {
		if b.Location.Latitude < -90 || b.Location.Latitude > 90 {
			errs = append(errs, NewOutOfRangeError("latitude", b.Location.Latitude, -90, 90))
		}
		if b.Location.Longitude < -180 || b.Location.Longitude > 180 {
			errs = append(errs, NewOutOfRangeError("longitude", b.Location.Longitude, -180, 180))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BusinessFilter narrows a business listing. Zero values mean no filter.
type BusinessFilter struct {
	Status     BusinessStatus
	CategoryID string
	City       string
	Limit      int
	Offset     int
}

// BusinessRepository defines the interface for business persistence.
type BusinessRepository interface {
	CreateBusiness(ctx context.Context, business *Business) error
	GetBusinessByID(ctx context.Context, id string) (*Business, error)
	ListBusinesses(ctx context.Context, filter BusinessFilter) ([]*Business, int, error)
	UpdateBusinessStatus(ctx context.Context, id string, status BusinessStatus) error
	CountBusinessesByStatus(ctx context.Context, status BusinessStatus) (int, error)
}
