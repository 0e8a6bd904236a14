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

const categoryColumns = `id, name, description, payout_amount, checklist, checklist_text, created_at, updated_at`

type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// CreateCategory persists a new category and fills in its id and timestamps.
func (r *CategoryDatabaseAdapter) CreateCategory(ctx context.Context, category *domain.BusinessCategory) error {
	m := fromDomainCategory(category)
	m.ID = util.NewULID()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	query := `INSERT INTO business_categories (` + categoryColumns + `)
	          VALUES (:ID, :NAME, :DESCRIPTION, :PAYOUT_AMOUNT, :CHECKLIST, :CHECKLIST_TEXT, :CREATED_AT, :UPDATED_AT)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	category.ID = m.ID
	category.CreatedAt = m.CreatedAt
	category.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CategoryDatabaseAdapter) UpdateCategory(ctx context.Context, category *domain.BusinessCategory) error {
	m := fromDomainCategory(category)
	m.UpdatedAt = time.Now()

	query := `UPDATE business_categories SET
	            name = :NAME,
	            description = :DESCRIPTION,
	            payout_amount = :PAYOUT_AMOUNT,
	            checklist = :CHECKLIST,
	            checklist_text = :CHECKLIST_TEXT,
	            updated_at = :UPDATED_AT
	          WHERE id = :ID`
	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if err := expectOneRow(result, "category", category.ID); err != nil {
		return err
	}
	category.UpdatedAt = m.UpdatedAt
	return nil
}

// GetCategoryByID returns nil, nil when the category does not exist.
func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id string) (*domain.BusinessCategory, error) {
	return r.getOne(ctx, `id = ?`, id)
}

// GetCategoryByName returns nil, nil when no category has that name.
func (r *CategoryDatabaseAdapter) GetCategoryByName(ctx context.Context, name string) (*domain.BusinessCategory, error) {
	return r.getOne(ctx, `name = ?`, name)
}

func (r *CategoryDatabaseAdapter) getOne(ctx context.Context, where string, arg interface{}) (*domain.BusinessCategory, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.BusinessCategory
	query := exec.Rebind(`SELECT ` + categoryColumns + ` FROM business_categories WHERE ` + where)
	if err := exec.GetContext(ctx, &m, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return toDomainCategory(&m), nil
}

// ListCategories returns all categories ordered by name.
func (r *CategoryDatabaseAdapter) ListCategories(ctx context.Context) ([]*domain.BusinessCategory, error) {
	var rows []models.BusinessCategory
	query := `SELECT ` + categoryColumns + ` FROM business_categories ORDER BY name`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domain.BusinessCategory, len(rows))
	for i := range rows {
		categories[i] = toDomainCategory(&rows[i])
	}
	return categories, nil
}

func (r *CategoryDatabaseAdapter) CountCategories(ctx context.Context) (int, error) {
	var count int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM business_categories`); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}
