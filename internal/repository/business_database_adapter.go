package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/repository/models"
	"auditpro/internal/util"

	"github.com/jmoiron/sqlx"
)

const businessColumns = `id, name, category_id, owner_name, email, phone, address, city, latitude, longitude, status, created_by, created_at, updated_at`

const defaultBusinessPageSize = 50

type BusinessDatabaseAdapter struct {
	db *sqlx.DB
}

func NewBusinessDatabaseAdapter(db *sqlx.DB) domain.BusinessRepository {
	return &BusinessDatabaseAdapter{db: db}
}

func (r *BusinessDatabaseAdapter) CreateBusiness(ctx context.Context, business *domain.Business) error {
	m := fromDomainBusiness(business)
	m.ID = util.NewULID()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	query := `INSERT INTO businesses (` + businessColumns + `)
	          VALUES (:ID, :NAME, :CATEGORY_ID, :OWNER_NAME, :EMAIL, :PHONE, :ADDRESS, :CITY, :LATITUDE, :LONGITUDE, :STATUS, :CREATED_BY, :CREATED_AT, :UPDATED_AT)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	business.ID = m.ID
	business.CreatedAt = m.CreatedAt
	business.UpdatedAt = m.UpdatedAt
	return nil
}

// GetBusinessByID returns nil, nil when the business does not exist.
func (r *BusinessDatabaseAdapter) GetBusinessByID(ctx context.Context, id string) (*domain.Business, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.Business
	query := exec.Rebind(`SELECT ` + businessColumns + ` FROM businesses WHERE id = ?`)
	if err := exec.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get business by id: %w", err)
	}
	return toDomainBusiness(&m), nil
}

// ListBusinesses returns one page of businesses matching filter together with
// the total number of matches.
func (r *BusinessDatabaseAdapter) ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, int, error) {
	exec := GetExecutor(ctx, r.db)

	var conds []string
	var args []interface{}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.CategoryID != "" {
		conds = append(conds, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.City != "" {
		conds = append(conds, "LOWER(city) = LOWER(?)")
		args = append(args, filter.City)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := exec.GetContext(ctx, &total, exec.Rebind(`SELECT COUNT(*) FROM businesses`+where), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count businesses: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultBusinessPageSize
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := exec.Rebind(`SELECT ` + businessColumns + ` FROM businesses` + where +
		` ORDER BY created_at DESC, id OFFSET ? ROWS FETCH NEXT ? ROWS ONLY`)
	var rows []models.Business
	if err := exec.SelectContext(ctx, &rows, query, append(args, offset, limit)...); err != nil {
		return nil, 0, fmt.Errorf("failed to list businesses: %w", err)
	}

	businesses := make([]*domain.Business, len(rows))
	for i := range rows {
		businesses[i] = toDomainBusiness(&rows[i])
	}
	return businesses, total, nil
}

func (r *BusinessDatabaseAdapter) UpdateBusinessStatus(ctx context.Context, id string, status domain.BusinessStatus) error {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`UPDATE businesses SET status = ?, updated_at = ? WHERE id = ?`)
	result, err := exec.ExecContext(ctx, query, string(status), time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update business status: %w", err)
	}
	return expectOneRow(result, "business", id)
}

// CountBusinessesByStatus counts businesses in status, or all of them when status is empty.
func (r *BusinessDatabaseAdapter) CountBusinessesByStatus(ctx context.Context, status domain.BusinessStatus) (int, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	var err error
	if status == "" {
		err = exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM businesses`)
	} else {
		err = exec.GetContext(ctx, &count, exec.Rebind(`SELECT COUNT(*) FROM businesses WHERE status = ?`), string(status))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return count, nil
}
