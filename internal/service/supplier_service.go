package service

import (
	"context"
	"strings"
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/dto"
	"auditpro/internal/logger"

	"go.uber.org/zap"
)

// SupplierService tracks delivery of onboarding kits.
type SupplierService interface {
	CreateSupplierTask(ctx context.Context, actor domain.Actor, req dto.CreateSupplierTaskRequest) (*dto.SupplierTaskResponse, error)
	ListMySupplierTasks(ctx context.Context, actor domain.Actor) ([]dto.SupplierTaskResponse, error)
	MarkDispatched(ctx context.Context, actor domain.Actor, id string) (*dto.SupplierTaskResponse, error)
	MarkDelivered(ctx context.Context, actor domain.Actor, id string) (*dto.SupplierTaskResponse, error)
}

type supplierServiceImpl struct {
	taskRepo     domain.SupplierTaskRepository
	businessRepo domain.BusinessRepository
	profileRepo  domain.ProfileRepository
	txManager    domain.TransactionManager
	cache        domain.Cache
}

func NewSupplierService(
	taskRepo domain.SupplierTaskRepository,
	businessRepo domain.BusinessRepository,
	profileRepo domain.ProfileRepository,
	txManager domain.TransactionManager,
	c domain.Cache,
) SupplierService {
	return &supplierServiceImpl{
		taskRepo:     taskRepo,
		businessRepo: businessRepo,
		profileRepo:  profileRepo,
		txManager:    txManager,
		cache:        c,
	}
}

func (s *supplierServiceImpl) CreateSupplierTask(ctx context.Context, actor domain.Actor, req dto.CreateSupplierTaskRequest) (*dto.SupplierTaskResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	business, err := s.businessRepo.GetBusinessByID(ctx, req.BusinessID)
	if err != nil {
		return nil, repoError("failed to load business", err)
	}
	if business == nil {
		return nil, domain.NewNotFoundError("business not found").WithContext("id", req.BusinessID)
	}
	supplier, err := s.profileRepo.GetProfileByID(ctx, req.SupplierID)
	if err != nil {
		return nil, repoError("failed to load supplier", err)
	}
	if supplier == nil || supplier.Role != domain.RoleSupplier {
		return nil, domain.NewInvalidInputError("supplier_id does not refer to a supplier").WithContext("supplier_id", req.SupplierID)
	}

	task := domain.NewSupplierTask(business.ID, supplier.ID, strings.TrimSpace(req.Notes))
	if err := s.taskRepo.CreateSupplierTask(ctx, task); err != nil {
		return nil, repoError("failed to create supplier task", err)
	}

	logger.Get().Info("supplier task created",
		zap.String("task_id", task.ID),
		zap.String("business_id", task.BusinessID),
		zap.String("supplier_id", task.SupplierID))

	resp := dto.NewSupplierTaskResponse(task)
	return &resp, nil
}

func (s *supplierServiceImpl) ListMySupplierTasks(ctx context.Context, actor domain.Actor) ([]dto.SupplierTaskResponse, error) {
	if err := actor.Require(domain.RoleSupplier); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListSupplierTasksBySupplier(ctx, actor.UserID)
	if err != nil {
		return nil, repoError("failed to list supplier tasks", err)
	}
	resp := make([]dto.SupplierTaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = dto.NewSupplierTaskResponse(t)
	}
	return resp, nil
}

func (s *supplierServiceImpl) MarkDispatched(ctx context.Context, actor domain.Actor, id string) (*dto.SupplierTaskResponse, error) {
	return s.transition(ctx, actor, id, domain.SupplierTaskPending, domain.SupplierTaskDispatched, domain.BusinessKitDispatched)
}

// MarkDelivered completes a kit delivery and onboards the business. Delivery
// may be recorded without a prior dispatch.
func (s *supplierServiceImpl) MarkDelivered(ctx context.Context, actor domain.Actor, id string) (*dto.SupplierTaskResponse, error) {
	return s.transition(ctx, actor, id, "", domain.SupplierTaskDelivered, domain.BusinessOnboarded)
}

// transition moves a supplier task to `to`. An empty `from` accepts any
// state before `to`. The business follows only while it is still in
// the onboarding phase.
func (s *supplierServiceImpl) transition(ctx context.Context, actor domain.Actor, id string, from, to domain.SupplierTaskStatus, businessStatus domain.BusinessStatus) (*dto.SupplierTaskResponse, error) {
	if err := actor.Require(domain.RoleSupplier); err != nil {
		return nil, err
	}

	var task *domain.SupplierTask
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		task, err = s.taskRepo.GetSupplierTaskByID(ctx, id)
		if err != nil {
			return repoError("failed to load supplier task", err)
		}
		if task == nil || task.SupplierID != actor.UserID {
			return domain.NewNotFoundError("supplier task not found").WithContext("id", id)
		}
		if (from != "" && task.Status != from) || task.Status == domain.SupplierTaskDelivered || task.Status == to {
			return domain.NewInvalidStateError("supplier task cannot move to "+string(to)).WithContext("status", string(task.Status))
		}

		task.Status = to
		if to == domain.SupplierTaskDelivered {
			now := time.Now()
			task.DeliveredAt = &now
		}
		if err := s.taskRepo.UpdateSupplierTask(ctx, task); err != nil {
			return repoError("failed to update supplier task", err)
		}

		business, err := s.businessRepo.GetBusinessByID(ctx, task.BusinessID)
		if err != nil {
			return repoError("failed to load business", err)
		}
		if business != nil && (business.Status == domain.BusinessPending || business.Status == domain.BusinessKitDispatched) {
			if err := s.businessRepo.UpdateBusinessStatus(ctx, business.ID, businessStatus); err != nil {
				return repoError("failed to update business status", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	invalidateBusinessListings(ctx, s.cache)

	logger.Get().Info("supplier task updated",
		zap.String("task_id", id),
		zap.String("status", string(to)),
		zap.String("supplier_id", actor.UserID))

	resp := dto.NewSupplierTaskResponse(task)
	return &resp, nil
}
