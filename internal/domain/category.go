package domain

import (
	"context"
	"time"
)

// BusinessCategory is an administrator-defined business type carrying a
// payout amount and an audit checklist.
type BusinessCategory struct {
	ID            string
	Name          string
	Description   string
	PayoutAmount  int64 // minor currency units
	Checklist     ChecklistDefinition
	ChecklistText string // human-readable copy of the source text
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBusinessCategory creates a new BusinessCategory instance
func NewBusinessCategory(name, description string, payout int64, checklist ChecklistDefinition, checklistText string) *BusinessCategory {
	now := time.Now()
	return &BusinessCategory{
		Name:          name,
		Description:   description,
		PayoutAmount:  payout,
		Checklist:     checklist,
		ChecklistText: checklistText,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate validates the category
func (c *BusinessCategory) Validate() error {
	var errs ValidationErrors
	if c.Name == "" {
		errs = append(errs, NewMissingFieldError("name"))
	}
	if c.PayoutAmount < 0 {
		errs = append(errs, NewInvalidFormatError("payout_amount", c.PayoutAmount))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *BusinessCategory) error
	UpdateCategory(ctx context.Context, category *BusinessCategory) error
	GetCategoryByID(ctx context.Context, id string) (*BusinessCategory, error)
	GetCategoryByName(ctx context.Context, name string) (*BusinessCategory, error)
	ListCategories(ctx context.Context) ([]*BusinessCategory, error)
	CountCategories(ctx context.Context) (int, error)
}
