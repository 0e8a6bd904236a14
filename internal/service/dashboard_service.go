package service

import (
	"context"

	"auditpro/internal/domain"
	"auditpro/internal/dto"

	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, actor domain.Actor) (*dto.DashboardResponse, error)
}

type dashboardServiceImpl struct {
	categoryRepo domain.CategoryRepository
	businessRepo domain.BusinessRepository
	profileRepo  domain.ProfileRepository
	auditRepo    domain.AuditTaskRepository
	supplierRepo domain.SupplierTaskRepository
	fraudRepo    domain.FraudAlertRepository
}

func NewDashboardService(
	categoryRepo domain.CategoryRepository,
	businessRepo domain.BusinessRepository,
	profileRepo domain.ProfileRepository,
	auditRepo domain.AuditTaskRepository,
	supplierRepo domain.SupplierTaskRepository,
	fraudRepo domain.FraudAlertRepository,
) DashboardService {
	return &dashboardServiceImpl{
		categoryRepo: categoryRepo,
		businessRepo: businessRepo,
		profileRepo:  profileRepo,
		auditRepo:    auditRepo,
		supplierRepo: supplierRepo,
		fraudRepo:    fraudRepo,
	}
}

// GetDashboard runs the counters concurrently; the first failure cancels the rest.
func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, actor domain.Actor) (*dto.DashboardResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	var resp dto.DashboardResponse
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int, fn func(ctx context.Context) (int, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&resp.Categories, s.categoryRepo.CountCategories)
	count(&resp.Businesses, func(ctx context.Context) (int, error) {
		return s.businessRepo.CountBusinessesByStatus(ctx, "")
	})
	count(&resp.PendingBusinesses, func(ctx context.Context) (int, error) {
		return s.businessRepo.CountBusinessesByStatus(ctx, domain.BusinessPending)
	})
	count(&resp.VerifiedBusinesses, func(ctx context.Context) (int, error) {
		return s.businessRepo.CountBusinessesByStatus(ctx, domain.BusinessVerified)
	})
	count(&resp.Auditors, func(ctx context.Context) (int, error) {
		return s.profileRepo.CountProfilesByRole(ctx, domain.RoleAuditor)
	})
	count(&resp.Suppliers, func(ctx context.Context) (int, error) {
		return s.profileRepo.CountProfilesByRole(ctx, domain.RoleSupplier)
	})
	count(&resp.AssignedAudits, func(ctx context.Context) (int, error) {
		return s.auditRepo.CountAuditTasksByStatus(ctx, domain.AuditAssigned)
	})
	count(&resp.SubmittedAudits, func(ctx context.Context) (int, error) {
		return s.auditRepo.CountAuditTasksByStatus(ctx, domain.AuditSubmitted)
	})
	count(&resp.PendingSupplierTasks, func(ctx context.Context) (int, error) {
		return s.supplierRepo.CountSupplierTasksByStatus(ctx, domain.SupplierTaskPending)
	})
	count(&resp.OpenFraudAlerts, func(ctx context.Context) (int, error) {
		return s.fraudRepo.CountFraudAlertsByStatus(ctx, domain.FraudAlertOpen)
	})

	if err := g.Wait(); err != nil {
		return nil, repoError("failed to load dashboard counters", err)
	}
	return &resp, nil
}
