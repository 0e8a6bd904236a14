package service

import (
	"context"
	"time"

	"auditpro/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, category *domain.BusinessCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category *domain.BusinessCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetCategoryByID(ctx context.Context, id string) (*domain.BusinessCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessCategory), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoryByName(ctx context.Context, name string) (*domain.BusinessCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]*domain.BusinessCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BusinessCategory), args.Error(1)
}

func (m *MockCategoryRepository) CountCategories(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- MockBusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) CreateBusiness(ctx context.Context, business *domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) GetBusinessByID(ctx context.Context, id string) (*domain.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Business), args.Int(1), args.Error(2)
}

func (m *MockBusinessRepository) UpdateBusinessStatus(ctx context.Context, id string, status domain.BusinessStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBusinessRepository) CountBusinessesByStatus(ctx context.Context, status domain.BusinessStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

// --- MockProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListProfilesByRole(ctx context.Context, role domain.Role) ([]*domain.Profile, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) CountProfilesByRole(ctx context.Context, role domain.Role) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}

// --- MockAuditTaskRepository ---
type MockAuditTaskRepository struct {
	mock.Mock
}

func (m *MockAuditTaskRepository) CreateAuditTask(ctx context.Context, task *domain.AuditTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockAuditTaskRepository) GetAuditTaskByID(ctx context.Context, id string) (*domain.AuditTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditTask), args.Error(1)
}

func (m *MockAuditTaskRepository) ListAuditTasksByAuditor(ctx context.Context, auditorID string, status domain.AuditStatus) ([]*domain.AuditTask, error) {
	args := m.Called(ctx, auditorID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AuditTask), args.Error(1)
}

func (m *MockAuditTaskRepository) UpdateAuditTask(ctx context.Context, task *domain.AuditTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockAuditTaskRepository) CountAuditTasksByStatus(ctx context.Context, status domain.AuditStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

// --- MockSupplierTaskRepository ---
type MockSupplierTaskRepository struct {
	mock.Mock
}

func (m *MockSupplierTaskRepository) CreateSupplierTask(ctx context.Context, task *domain.SupplierTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockSupplierTaskRepository) GetSupplierTaskByID(ctx context.Context, id string) (*domain.SupplierTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplierTask), args.Error(1)
}

func (m *MockSupplierTaskRepository) ListSupplierTasksBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierTask, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SupplierTask), args.Error(1)
}

func (m *MockSupplierTaskRepository) UpdateSupplierTask(ctx context.Context, task *domain.SupplierTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockSupplierTaskRepository) CountSupplierTasksByStatus(ctx context.Context, status domain.SupplierTaskStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

// --- MockFraudAlertRepository ---
type MockFraudAlertRepository struct {
	mock.Mock
}

func (m *MockFraudAlertRepository) CreateFraudAlert(ctx context.Context, alert *domain.FraudAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockFraudAlertRepository) GetFraudAlertByID(ctx context.Context, id string) (*domain.FraudAlert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FraudAlert), args.Error(1)
}

func (m *MockFraudAlertRepository) ListFraudAlerts(ctx context.Context, status domain.FraudAlertStatus) ([]*domain.FraudAlert, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FraudAlert), args.Error(1)
}

func (m *MockFraudAlertRepository) UpdateFraudAlert(ctx context.Context, alert *domain.FraudAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockFraudAlertRepository) CountFraudAlertsByStatus(ctx context.Context, status domain.FraudAlertStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockTransactionManager ---

// MockTransactionManager runs fn directly and records how often it was used.
type MockTransactionManager struct {
	calls int
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

var (
	adminActor    = domain.Actor{UserID: "01HZX3K5V6QJ8M9N0P1R2S3AD1", Role: domain.RoleAdmin}
	auditorActor  = domain.Actor{UserID: "01HZX3K5V6QJ8M9N0P1R2S3AD2", Role: domain.RoleAuditor}
	supplierActor = domain.Actor{UserID: "01HZX3K5V6QJ8M9N0P1R2S3AD3", Role: domain.RoleSupplier}
	consumerActor = domain.Actor{UserID: "01HZX3K5V6QJ8M9N0P1R2S3AD4", Role: domain.RoleConsumer}
)
