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

const fraudAlertColumns = `id, business_id, audit_task_id, raised_by, reason, severity, status, resolution_note, resolved_at, created_at, updated_at`

type FraudAlertDatabaseAdapter struct {
	db *sqlx.DB
}

func NewFraudAlertDatabaseAdapter(db *sqlx.DB) domain.FraudAlertRepository {
	return &FraudAlertDatabaseAdapter{db: db}
}

func (r *FraudAlertDatabaseAdapter) CreateFraudAlert(ctx context.Context, alert *domain.FraudAlert) error {
	m := fromDomainFraudAlert(alert)
	m.ID = util.NewULID()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	query := `INSERT INTO fraud_alerts (` + fraudAlertColumns + `)
	          VALUES (:ID, :BUSINESS_ID, :AUDIT_TASK_ID, :RAISED_BY, :REASON, :SEVERITY, :STATUS, :RESOLUTION_NOTE, :RESOLVED_AT, :CREATED_AT, :UPDATED_AT)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create fraud alert: %w", err)
	}
	alert.ID = m.ID
	alert.CreatedAt = m.CreatedAt
	alert.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *FraudAlertDatabaseAdapter) GetFraudAlertByID(ctx context.Context, id string) (*domain.FraudAlert, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.FraudAlert
	query := exec.Rebind(`SELECT ` + fraudAlertColumns + ` FROM fraud_alerts WHERE id = ?`)
	if err := exec.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fraud alert by id: %w", err)
	}
	return toDomainFraudAlert(&m), nil
}

// ListFraudAlerts lists alerts newest first; an empty status lists all of them.
func (r *FraudAlertDatabaseAdapter) ListFraudAlerts(ctx context.Context, status domain.FraudAlertStatus) ([]*domain.FraudAlert, error) {
	exec := GetExecutor(ctx, r.db)
	query := `SELECT ` + fraudAlertColumns + ` FROM fraud_alerts`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id`

	var rows []models.FraudAlert
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list fraud alerts: %w", err)
	}

	alerts := make([]*domain.FraudAlert, len(rows))
	for i := range rows {
		alerts[i] = toDomainFraudAlert(&rows[i])
	}
	return alerts, nil
}

func (r *FraudAlertDatabaseAdapter) UpdateFraudAlert(ctx context.Context, alert *domain.FraudAlert) error {
	m := fromDomainFraudAlert(alert)
	m.UpdatedAt = time.Now()

	query := `UPDATE fraud_alerts SET
	            status = :STATUS,
	            resolution_note = :RESOLUTION_NOTE,
	            resolved_at = :RESOLVED_AT,
	            updated_at = :UPDATED_AT
	          WHERE id = :ID`
	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to update fraud alert: %w", err)
	}
	if err := expectOneRow(result, "fraud alert", alert.ID); err != nil {
		return err
	}
	alert.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *FraudAlertDatabaseAdapter) CountFraudAlertsByStatus(ctx context.Context, status domain.FraudAlertStatus) (int, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	var err error
	if status == "" {
		err = exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM fraud_alerts`)
	} else {
		err = exec.GetContext(ctx, &count, exec.Rebind(`SELECT COUNT(*) FROM fraud_alerts WHERE status = ?`), string(status))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count fraud alerts: %w", err)
	}
	return count, nil
}
