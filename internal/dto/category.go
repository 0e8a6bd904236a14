package dto

import (
	"encoding/json"
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/util"
)

// CreateCategoryRequest creates or replaces a business category.
// PayoutAmount is a decimal currency amount, e.g. 12.50 or "12.50".
// @Description Request body for creating a business category
type CreateCategoryRequest struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	PayoutAmount  json.Number `json:"payout_amount" swaggertype:"string" example:"12.50"`
	ChecklistText string      `json:"checklist_text"`
}

// UpdateCategoryRequest has the same shape as CreateCategoryRequest.
type UpdateCategoryRequest = CreateCategoryRequest

// CategoryResponse represents a category in the API response
// @Description Business category with its payout and checklist
type CategoryResponse struct {
	ID            string                     `json:"id"`
	Name          string                     `json:"name"`
	Description   string                     `json:"description,omitempty"`
	PayoutAmount  int64                      `json:"payout_amount"`
	PayoutDisplay string                     `json:"payout_display"`
	Checklist     domain.ChecklistDefinition `json:"checklist"`
	ChecklistText string                     `json:"checklist_text,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

func NewCategoryResponse(c *domain.BusinessCategory) CategoryResponse {
	questions := c.Checklist.Questions
	if questions == nil {
		questions = []domain.ChecklistQuestion{}
	}
	return CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		PayoutAmount:  c.PayoutAmount,
		PayoutDisplay: util.FormatMinorUnits(c.PayoutAmount),
		Checklist:     domain.ChecklistDefinition{CategoryName: c.Checklist.CategoryName, Questions: questions},
		ChecklistText: c.ChecklistText,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ParseChecklistRequest previews how checklist text will be stored.
type ParseChecklistRequest struct {
	Text string `json:"text"`
}

// ParseChecklistResponse carries the normalized checklist and its canonical text form.
type ParseChecklistResponse struct {
	Checklist      domain.ChecklistDefinition `json:"checklist"`
	NormalizedText string                     `json:"normalized_text"`
}
