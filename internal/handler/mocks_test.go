package handler_test

import (
	"context"
	"errors"

	"auditpro/internal/domain"
	"auditpro/internal/dto"
)

// --- Manual Mocks ---

// MockAuthService maps bearer tokens to actors: the token is the role name.
type MockAuthService struct {
	GetProfileFunc func(ctx context.Context, actor domain.Actor) (*dto.ProfileResponse, error)
}

var actorIDs = map[domain.Role]string{
	domain.RoleAdmin:    "01HZX3K5V6QJ8M9N0P1R2S3AD1",
	domain.RoleAuditor:  "01HZX3K5V6QJ8M9N0P1R2S3AD2",
	domain.RoleSupplier: "01HZX3K5V6QJ8M9N0P1R2S3AD3",
	domain.RoleConsumer: "01HZX3K5V6QJ8M9N0P1R2S3AD4",
}

func (m *MockAuthService) VerifyToken(ctx context.Context, tokenString string) (domain.Actor, error) {
	role, ok := domain.ParseRole(tokenString)
	if !ok {
		return domain.Actor{}, errors.New("invalid token")
	}
	return domain.Actor{UserID: actorIDs[role], Role: role}, nil
}

func (m *MockAuthService) IssueToken(userID string, role domain.Role) (string, error) {
	panic("MockAuthService.IssueToken not implemented")
}

func (m *MockAuthService) GetProfile(ctx context.Context, actor domain.Actor) (*dto.ProfileResponse, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, actor)
	}
	panic("MockAuthService.GetProfileFunc not implemented")
}

// MockCategoryService
type MockCategoryService struct {
	CreateCategoryFunc func(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategoryFunc func(ctx context.Context, actor domain.Actor, id string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategoryFunc    func(ctx context.Context, id string) (*dto.CategoryResponse, error)
	ListCategoriesFunc func(ctx context.Context) ([]dto.CategoryResponse, error)
	ParseChecklistFunc func(ctx context.Context, actor domain.Actor, text string) (*dto.ParseChecklistResponse, error)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, actor, req)
	}
	panic("MockCategoryService.CreateCategoryFunc not implemented")
}
func (m *MockCategoryService) UpdateCategory(ctx context.Context, actor domain.Actor, id string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if m.UpdateCategoryFunc != nil {
		return m.UpdateCategoryFunc(ctx, actor, id, req)
	}
	panic("MockCategoryService.UpdateCategoryFunc not implemented")
}
func (m *MockCategoryService) GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	if m.GetCategoryFunc != nil {
		return m.GetCategoryFunc(ctx, id)
	}
	panic("MockCategoryService.GetCategoryFunc not implemented")
}
func (m *MockCategoryService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	panic("MockCategoryService.ListCategoriesFunc not implemented")
}
func (m *MockCategoryService) ParseChecklist(ctx context.Context, actor domain.Actor, text string) (*dto.ParseChecklistResponse, error) {
	if m.ParseChecklistFunc != nil {
		return m.ParseChecklistFunc(ctx, actor, text)
	}
	panic("MockCategoryService.ParseChecklistFunc not implemented")
}

// MockBusinessService
type MockBusinessService struct {
	OnboardBusinessFunc      func(ctx context.Context, actor domain.Actor, req dto.OnboardBusinessRequest) (*dto.BusinessResponse, error)
	GetBusinessFunc          func(ctx context.Context, actor domain.Actor, id string) (*dto.BusinessResponse, error)
	ListBusinessesFunc       func(ctx context.Context, actor domain.Actor, query dto.BusinessListQuery) (*dto.BusinessListResponse, error)
	UpdateBusinessStatusFunc func(ctx context.Context, actor domain.Actor, id string, status string) (*dto.BusinessResponse, error)
}

func (m *MockBusinessService) OnboardBusiness(ctx context.Context, actor domain.Actor, req dto.OnboardBusinessRequest) (*dto.BusinessResponse, error) {
	if m.OnboardBusinessFunc != nil {
		return m.OnboardBusinessFunc(ctx, actor, req)
	}
	panic("MockBusinessService.OnboardBusinessFunc not implemented")
}
func (m *MockBusinessService) GetBusiness(ctx context.Context, actor domain.Actor, id string) (*dto.BusinessResponse, error) {
	if m.GetBusinessFunc != nil {
		return m.GetBusinessFunc(ctx, actor, id)
	}
	panic("MockBusinessService.GetBusinessFunc not implemented")
}
func (m *MockBusinessService) ListBusinesses(ctx context.Context, actor domain.Actor, query dto.BusinessListQuery) (*dto.BusinessListResponse, error) {
	if m.ListBusinessesFunc != nil {
		return m.ListBusinessesFunc(ctx, actor, query)
	}
	panic("MockBusinessService.ListBusinessesFunc not implemented")
}
func (m *MockBusinessService) UpdateBusinessStatus(ctx context.Context, actor domain.Actor, id string, status string) (*dto.BusinessResponse, error) {
	if m.UpdateBusinessStatusFunc != nil {
		return m.UpdateBusinessStatusFunc(ctx, actor, id, status)
	}
	panic("MockBusinessService.UpdateBusinessStatusFunc not implemented")
}

// MockAuditService
type MockAuditService struct {
	AssignAuditFunc  func(ctx context.Context, actor domain.Actor, req dto.AssignAuditRequest) (*dto.AuditTaskResponse, error)
	ListMyAuditsFunc func(ctx context.Context, actor domain.Actor, status string) ([]dto.AuditTaskResponse, error)
	StartAuditFunc   func(ctx context.Context, actor domain.Actor, id string) (*dto.AuditTaskResponse, error)
	SubmitReportFunc func(ctx context.Context, actor domain.Actor, id string, req dto.SubmitReportRequest) (*dto.AuditTaskResponse, error)
	ReviewAuditFunc  func(ctx context.Context, actor domain.Actor, id string, approved bool) (*dto.AuditTaskResponse, error)
}

func (m *MockAuditService) AssignAudit(ctx context.Context, actor domain.Actor, req dto.AssignAuditRequest) (*dto.AuditTaskResponse, error) {
	if m.AssignAuditFunc != nil {
		return m.AssignAuditFunc(ctx, actor, req)
	}
	panic("MockAuditService.AssignAuditFunc not implemented")
}
func (m *MockAuditService) ListMyAudits(ctx context.Context, actor domain.Actor, status string) ([]dto.AuditTaskResponse, error) {
	if m.ListMyAuditsFunc != nil {
		return m.ListMyAuditsFunc(ctx, actor, status)
	}
	panic("MockAuditService.ListMyAuditsFunc not implemented")
}
func (m *MockAuditService) StartAudit(ctx context.Context, actor domain.Actor, id string) (*dto.AuditTaskResponse, error) {
	if m.StartAuditFunc != nil {
		return m.StartAuditFunc(ctx, actor, id)
	}
	panic("MockAuditService.StartAuditFunc not implemented")
}
func (m *MockAuditService) SubmitReport(ctx context.Context, actor domain.Actor, id string, req dto.SubmitReportRequest) (*dto.AuditTaskResponse, error) {
	if m.SubmitReportFunc != nil {
		return m.SubmitReportFunc(ctx, actor, id, req)
	}
	panic("MockAuditService.SubmitReportFunc not implemented")
}
func (m *MockAuditService) ReviewAudit(ctx context.Context, actor domain.Actor, id string, approved bool) (*dto.AuditTaskResponse, error) {
	if m.ReviewAuditFunc != nil {
		return m.ReviewAuditFunc(ctx, actor, id, approved)
	}
	panic("MockAuditService.ReviewAuditFunc not implemented")
}

// MockSupplierService
type MockSupplierService struct {
	CreateSupplierTaskFunc  func(ctx context.Context, actor domain.Actor, req dto.CreateSupplierTaskRequest) (*dto.SupplierTaskResponse, error)
	ListMySupplierTasksFunc func(ctx context.Context, actor domain.Actor) ([]dto.SupplierTaskResponse, error)
	MarkDispatchedFunc      func(ctx context.Context, actor domain.Actor, id string) (*dto.SupplierTaskResponse, error)
	MarkDeliveredFunc       func(ctx context.Context, actor domain.Actor, id string) (*dto.SupplierTaskResponse, error)
}

func (m *MockSupplierService) CreateSupplierTask(ctx context.Context, actor domain.Actor, req dto.CreateSupplierTaskRequest) (*dto.SupplierTaskResponse, error) {
	if m.CreateSupplierTaskFunc != nil {
		return m.CreateSupplierTaskFunc(ctx, actor, req)
	}
	panic("MockSupplierService.CreateSupplierTaskFunc not implemented")
}
func (m *MockSupplierService) ListMySupplierTasks(ctx context.Context, actor domain.Actor) ([]dto.SupplierTaskResponse, error) {
	if m.ListMySupplierTasksFunc != nil {
		return m.ListMySupplierTasksFunc(ctx, actor)
	}
	panic("MockSupplierService.ListMySupplierTasksFunc not implemented")
}
func (m *MockSupplierService) MarkDispatched(ctx context.Context, actor domain.Actor, id string) (*dto.SupplierTaskResponse, error) {
	if m.MarkDispatchedFunc != nil {
		return m.MarkDispatchedFunc(ctx, actor, id)
	}
	panic("MockSupplierService.MarkDispatchedFunc not implemented")
}
func (m *MockSupplierService) MarkDelivered(ctx context.Context, actor domain.Actor, id string) (*dto.SupplierTaskResponse, error) {
	if m.MarkDeliveredFunc != nil {
		return m.MarkDeliveredFunc(ctx, actor, id)
	}
	panic("MockSupplierService.MarkDeliveredFunc not implemented")
}

// MockFraudService
type MockFraudService struct {
	RaiseAlertFunc   func(ctx context.Context, actor domain.Actor, req dto.RaiseFraudAlertRequest) (*dto.FraudAlertResponse, error)
	ListAlertsFunc   func(ctx context.Context, actor domain.Actor, status string) ([]dto.FraudAlertResponse, error)
	ResolveAlertFunc func(ctx context.Context, actor domain.Actor, id string, note string) (*dto.FraudAlertResponse, error)
}

func (m *MockFraudService) RaiseAlert(ctx context.Context, actor domain.Actor, req dto.RaiseFraudAlertRequest) (*dto.FraudAlertResponse, error) {
	if m.RaiseAlertFunc != nil {
		return m.RaiseAlertFunc(ctx, actor, req)
	}
	panic("MockFraudService.RaiseAlertFunc not implemented")
}
func (m *MockFraudService) ListAlerts(ctx context.Context, actor domain.Actor, status string) ([]dto.FraudAlertResponse, error) {
	if m.ListAlertsFunc != nil {
		return m.ListAlertsFunc(ctx, actor, status)
	}
	panic("MockFraudService.ListAlertsFunc not implemented")
}
func (m *MockFraudService) ResolveAlert(ctx context.Context, actor domain.Actor, id string, note string) (*dto.FraudAlertResponse, error) {
	if m.ResolveAlertFunc != nil {
		return m.ResolveAlertFunc(ctx, actor, id, note)
	}
	panic("MockFraudService.ResolveAlertFunc not implemented")
}

// MockDashboardService
type MockDashboardService struct {
	GetDashboardFunc func(ctx context.Context, actor domain.Actor) (*dto.DashboardResponse, error)
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, actor domain.Actor) (*dto.DashboardResponse, error) {
	if m.GetDashboardFunc != nil {
		return m.GetDashboardFunc(ctx, actor)
	}
	panic("MockDashboardService.GetDashboardFunc not implemented")
}
