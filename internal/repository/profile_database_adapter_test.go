package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"auditpro/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileRowColumns = []string{"ID", "EMAIL", "FULL_NAME", "ROLE", "PHONE", "LATITUDE", "LONGITUDE", "CREATED_AT", "UPDATED_AT"}

func TestListProfilesByRole(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewProfileDatabaseAdapter(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM profiles WHERE role = ? ORDER BY created_at, id`)).
		WithArgs("auditor").
		WillReturnRows(sqlmock.NewRows(profileRowColumns).
			AddRow("a1", "a1@example.com", "Ravi", "auditor", nil, 13.08, 80.27, now, now).
			AddRow("a2", "a2@example.com", nil, "auditor", nil, nil, nil, now, now))

	profiles, err := repo.ListProfilesByRole(context.Background(), domain.RoleAuditor)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	require.NotNil(t, profiles[0].Location)
	assert.Equal(t, 80.27, profiles[0].Location.Longitude)
	assert.Equal(t, "Ravi", profiles[0].FullName)
	assert.Nil(t, profiles[1].Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewProfileDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM profiles WHERE id = ?`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(profileRowColumns))

	p, err := repo.GetProfileByID(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProfile(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewProfileDatabaseAdapter(db)

	mock.ExpectExec(`INSERT INTO profiles`).
		WithArgs("admin1", "admin@example.com", "Admin", "admin", nil, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	p := &domain.Profile{ID: "admin1", Email: "admin@example.com", FullName: "Admin", Role: domain.RoleAdmin}
	require.NoError(t, repo.CreateProfile(context.Background(), p))
	assert.False(t, p.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
