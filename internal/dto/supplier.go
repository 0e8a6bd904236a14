package dto

import (
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/util"
)

type CreateSupplierTaskRequest struct {
	BusinessID string `json:"business_id"`
	SupplierID string `json:"supplier_id"`
	Notes      string `json:"notes,omitempty"`
}

type SupplierTaskResponse struct {
	ID          string     `json:"id"`
	BusinessID  string     `json:"business_id"`
	SupplierID  string     `json:"supplier_id"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"status_label"`
	Notes       string     `json:"notes,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewSupplierTaskResponse(t *domain.SupplierTask) SupplierTaskResponse {
	return SupplierTaskResponse{
		ID:          t.ID,
		BusinessID:  t.BusinessID,
		SupplierID:  t.SupplierID,
		Status:      string(t.Status),
		StatusLabel: util.StatusLabel(string(t.Status)),
		Notes:       t.Notes,
		DeliveredAt: t.DeliveredAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
