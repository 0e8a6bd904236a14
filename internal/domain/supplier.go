package domain

import (
	"context"
	"time"
)

// SupplierTaskStatus tracks delivery of an onboarding kit.
type SupplierTaskStatus string

const (
	SupplierTaskPending    SupplierTaskStatus = "pending"
	SupplierTaskDispatched SupplierTaskStatus = "dispatched"
	SupplierTaskDelivered  SupplierTaskStatus = "delivered"
)

// SupplierTask asks a supplier to deliver an onboarding kit to a business.
type SupplierTask struct {
	ID          string
	BusinessID  string
	SupplierID  string
	Status      SupplierTaskStatus
	Notes       string
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSupplierTask(businessID, supplierID, notes string) *SupplierTask {
	now := time.Now()
	return &SupplierTask{
		BusinessID: businessID,
		SupplierID: supplierID,
		Status:     SupplierTaskPending,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SupplierTaskRepository defines the interface for supplier task persistence.
type SupplierTaskRepository interface {
	CreateSupplierTask(ctx context.Context, task *SupplierTask) error
	GetSupplierTaskByID(ctx context.Context, id string) (*SupplierTask, error)
	ListSupplierTasksBySupplier(ctx context.Context, supplierID string) ([]*SupplierTask, error)
	UpdateSupplierTask(ctx context.Context, task *SupplierTask) error
	CountSupplierTasksByStatus(ctx context.Context, status SupplierTaskStatus) (int, error)
}
