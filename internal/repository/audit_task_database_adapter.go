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

const auditTaskColumns = `id, business_id, auditor_id, status, payout_amount, distance_km, report, submitted_at, reviewed_at, created_at, updated_at`

type AuditTaskDatabaseAdapter struct {
	db *sqlx.DB
}

func NewAuditTaskDatabaseAdapter(db *sqlx.DB) domain.AuditTaskRepository {
	return &AuditTaskDatabaseAdapter{db: db}
}

func (r *AuditTaskDatabaseAdapter) CreateAuditTask(ctx context.Context, task *domain.AuditTask) error {
	m := fromDomainAuditTask(task)
	m.ID = util.NewULID()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	query := `INSERT INTO audit_tasks (` + auditTaskColumns + `)
	          VALUES (:ID, :BUSINESS_ID, :AUDITOR_ID, :STATUS, :PAYOUT_AMOUNT, :DISTANCE_KM, :REPORT, :SUBMITTED_AT, :REVIEWED_AT, :CREATED_AT, :UPDATED_AT)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create audit task: %w", err)
	}
	task.ID = m.ID
	task.CreatedAt = m.CreatedAt
	task.UpdatedAt = m.UpdatedAt
	return nil
}

// GetAuditTaskByID returns nil, nil when the task does not exist.
func (r *AuditTaskDatabaseAdapter) GetAuditTaskByID(ctx context.Context, id string) (*domain.AuditTask, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.AuditTask
	query := exec.Rebind(`SELECT ` + auditTaskColumns + ` FROM audit_tasks WHERE id = ?`)
	if err := exec.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get audit task by id: %w", err)
	}
	return toDomainAuditTask(&m), nil
}

// ListAuditTasksByAuditor lists an auditor's tasks, newest first. An empty
// status lists every status.
func (r *AuditTaskDatabaseAdapter) ListAuditTasksByAuditor(ctx context.Context, auditorID string, status domain.AuditStatus) ([]*domain.AuditTask, error) {
	exec := GetExecutor(ctx, r.db)
	query := `SELECT ` + auditTaskColumns + ` FROM audit_tasks WHERE auditor_id = ?`
	args := []interface{}{auditorID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id`

	var rows []models.AuditTask
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list audit tasks: %w", err)
	}

	tasks := make([]*domain.AuditTask, len(rows))
	for i := range rows {
		tasks[i] = toDomainAuditTask(&rows[i])
	}
	return tasks, nil
}

// UpdateAuditTask writes the mutable fields of task.
func (r *AuditTaskDatabaseAdapter) UpdateAuditTask(ctx context.Context, task *domain.AuditTask) error {
	m := fromDomainAuditTask(task)
	m.UpdatedAt = time.Now()

	query := `UPDATE audit_tasks SET
	            auditor_id = :AUDITOR_ID,
	            status = :STATUS,
	            report = :REPORT,
	            submitted_at = :SUBMITTED_AT,
	            reviewed_at = :REVIEWED_AT,
	            updated_at = :UPDATED_AT
	          WHERE id = :ID`
	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to update audit task: %w", err)
	}
	if err := expectOneRow(result, "audit task", task.ID); err != nil {
		return err
	}
	task.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *AuditTaskDatabaseAdapter) CountAuditTasksByStatus(ctx context.Context, status domain.AuditStatus) (int, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	var err error
	if status == "" {
		err = exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM audit_tasks`)
	} else {
		err = exec.GetContext(ctx, &count, exec.Rebind(`SELECT COUNT(*) FROM audit_tasks WHERE status = ?`), string(status))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count audit tasks: %w", err)
	}
	return count, nil
}
