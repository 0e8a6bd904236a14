package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/repository/models"
	"auditpro/internal/util"

	"github.com/jmoiron/sqlx"
)

const supplierTaskColumns = `id, business_id, supplier_id, status, notes, delivered_at, created_at, updated_at`

type SupplierTaskDatabaseAdapter struct {
	db *sqlx.DB
}

func NewSupplierTaskDatabaseAdapter(db *sqlx.DB) domain.SupplierTaskRepository {
	return &SupplierTaskDatabaseAdapter{db: db}
}

func (r *SupplierTaskDatabaseAdapter) CreateSupplierTask(ctx context.Context, task *domain.SupplierTask) error {
	m := fromDomainSupplierTask(task)
	m.ID = util.NewULID()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	query := `INSERT INTO supplier_tasks (` + supplierTaskColumns + `)
	          VALUES (:ID, :BUSINESS_ID, :SUPPLIER_ID, :STATUS, :NOTES, :DELIVERED_AT, :CREATED_AT, :UPDATED_AT)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create supplier task: %w", err)
	}
	task.ID = m.ID
	task.CreatedAt = m.CreatedAt
	task.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SupplierTaskDatabaseAdapter) GetSupplierTaskByID(ctx context.Context, id string) (*domain.SupplierTask, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.SupplierTask
	query := exec.Rebind(`SELECT ` + supplierTaskColumns + ` FROM supplier_tasks WHERE id = ?`)
	if err := exec.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get supplier task by id: %w", err)
	}
	return toDomainSupplierTask(&m), nil
}

func (r *SupplierTaskDatabaseAdapter) ListSupplierTasksBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierTask, error) {
	exec := GetExecutor(ctx, r.db)
	var rows []models.SupplierTask
	query := exec.Rebind(`SELECT ` + supplierTaskColumns + ` FROM supplier_tasks WHERE supplier_id = ? ORDER BY created_at DESC, id`)
	if err := exec.SelectContext(ctx, &rows, query, supplierID); err != nil {
		return nil, fmt.Errorf("failed to list supplier tasks: %w", err)
	}

	tasks := make([]*domain.SupplierTask, len(rows))
	for i := range rows {
		tasks[i] = toDomainSupplierTask(&rows[i])
	}
	return tasks, nil
}

func (r *SupplierTaskDatabaseAdapter) UpdateSupplierTask(ctx context.Context, task *domain.SupplierTask) error {
	m := fromDomainSupplierTask(task)
	m.UpdatedAt = time.Now()

	query := `UPDATE supplier_tasks SET
	            status = :STATUS,
	            notes = :NOTES,
	            delivered_at = :DELIVERED_AT,
	            updated_at = :UPDATED_AT
	          WHERE id = :ID`
	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to update supplier task: %w", err)
	}
	if err := expectOneRow(result, "supplier task", task.ID); err != nil {
		return err
	}
	task.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SupplierTaskDatabaseAdapter) CountSupplierTasksByStatus(ctx context.Context, status domain.SupplierTaskStatus) (int, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	var err error
	if status == "" {
		err = exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM supplier_tasks`)
	} else {
		err = exec.GetContext(ctx, &count, exec.Rebind(`SELECT COUNT(*) FROM supplier_tasks WHERE status = ?`), string(status))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count supplier tasks: %w", err)
	}
	return count, nil
}
