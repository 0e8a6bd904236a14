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

const profileColumns = `id, email, full_name, role, phone, latitude, longitude, created_at, updated_at`

// ProfileDatabaseAdapter reads profiles written by the identity provider.
type ProfileDatabaseAdapter struct {
	db *sqlx.DB
}

func NewProfileDatabaseAdapter(db *sqlx.DB) domain.ProfileRepository {
	return &ProfileDatabaseAdapter{db: db}
}

// CreateProfile inserts a profile, used by seeding and local development.
func (r *ProfileDatabaseAdapter) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == "" {
		profile.ID = util.NewULID()
	}
	now := time.Now()
	profile.CreatedAt, profile.UpdatedAt = now, now

	lat, lng := fromCoordinates(profile.Location)
	m := &models.Profile{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  util.StringToNullString(profile.FullName),
		Role:      string(profile.Role),
		Phone:     util.StringToNullString(profile.Phone),
		Latitude:  lat,
		Longitude: lng,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `INSERT INTO profiles (` + profileColumns + `)
	          VALUES (:ID, :EMAIL, :FULL_NAME, :ROLE, :PHONE, :LATITUDE, :LONGITUDE, :CREATED_AT, :UPDATED_AT)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfileByID returns nil, nil when the profile does not exist.
func (r *ProfileDatabaseAdapter) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.Profile
	query := exec.Rebind(`SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`)
	if err := exec.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return toDomainProfile(&m), nil
}

func (r *ProfileDatabaseAdapter) ListProfilesByRole(ctx context.Context, role domain.Role) ([]*domain.Profile, error) {
	exec := GetExecutor(ctx, r.db)
	var rows []models.Profile
	query := exec.Rebind(`SELECT ` + profileColumns + ` FROM profiles WHERE role = ? ORDER BY created_at, id`)
	if err := exec.SelectContext(ctx, &rows, query, string(role)); err != nil {
		return nil, fmt.Errorf("failed to list profiles by role: %w", err)
	}

	profiles := make([]*domain.Profile, len(rows))
	for i := range rows {
		profiles[i] = toDomainProfile(&rows[i])
	}
	return profiles, nil
}

func (r *ProfileDatabaseAdapter) CountProfilesByRole(ctx context.Context, role domain.Role) (int, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	query := exec.Rebind(`SELECT COUNT(*) FROM profiles WHERE role = ?`)
	if err := exec.GetContext(ctx, &count, query, string(role)); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}
