package service

import (
	"context"
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/dto"
	"auditpro/internal/logger"
	"auditpro/internal/util"

	"go.uber.org/zap"
)

// AuditService assigns audits to auditors and moves them through review.
type AuditService interface {
	AssignAudit(ctx context.Context, actor domain.Actor, req dto.AssignAuditRequest) (*dto.AuditTaskResponse, error)
	ListMyAudits(ctx context.Context, actor domain.Actor, status string) ([]dto.AuditTaskResponse, error)
	StartAudit(ctx context.Context, actor domain.Actor, id string) (*dto.AuditTaskResponse, error)
	SubmitReport(ctx context.Context, actor domain.Actor, id string, req dto.SubmitReportRequest) (*dto.AuditTaskResponse, error)
	ReviewAudit(ctx context.Context, actor domain.Actor, id string, approved bool) (*dto.AuditTaskResponse, error)
}

type auditServiceImpl struct {
	auditRepo    domain.AuditTaskRepository
	businessRepo domain.BusinessRepository
	categoryRepo domain.CategoryRepository
	profileRepo  domain.ProfileRepository
	txManager    domain.TransactionManager
	cache        domain.Cache
}

func NewAuditService(
	auditRepo domain.AuditTaskRepository,
	businessRepo domain.BusinessRepository,
	categoryRepo domain.CategoryRepository,
	profileRepo domain.ProfileRepository,
	txManager domain.TransactionManager,
	c domain.Cache,
) AuditService {
	return &auditServiceImpl{
		auditRepo:    auditRepo,
		businessRepo: businessRepo,
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		txManager:    txManager,
		cache:        c,
	}
}

// assignable lists the business states from which an audit may be assigned.
var assignable = map[domain.BusinessStatus]bool{
	domain.BusinessPending:       true,
	domain.BusinessKitDispatched: true,
	domain.BusinessOnboarded:     true,
}

// AssignAudit creates an audit task for a business. Without an explicit
// auditor the nearest auditor with a known base location is chosen.
func (s *auditServiceImpl) AssignAudit(ctx context.Context, actor domain.Actor, req dto.AssignAuditRequest) (*dto.AuditTaskResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	var task *domain.AuditTask
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		business, err := s.businessRepo.GetBusinessByID(ctx, req.BusinessID)
		if err != nil {
			return repoError("failed to load business", err)
		}
		if business == nil {
			return domain.NewNotFoundError("business not found").WithContext("id", req.BusinessID)
		}
		if !assignable[business.Status] {
			return domain.NewInvalidStateError("business cannot be assigned an audit in its current status").
				WithContext("status", string(business.Status))
		}

		category, err := s.categoryRepo.GetCategoryByID(ctx, business.CategoryID)
		if err != nil {
			return repoError("failed to load category", err)
		}
		if category == nil {
			return domain.NewNotFoundError("category not found").WithContext("id", business.CategoryID)
		}

		var auditorID string
		var distance *float64
		if req.AuditorID != "" {
			auditorID, distance, err = s.explicitAuditor(ctx, business, req.AuditorID)
		} else {
			auditorID, distance, err = s.nearestAuditor(ctx, business)
		}
		if err != nil {
			return err
		}

		task = domain.NewAuditTask(business.ID, auditorID, category.PayoutAmount)
		task.DistanceKm = distance
		if err := s.auditRepo.CreateAuditTask(ctx, task); err != nil {
			return repoError("failed to create audit task", err)
		}
		if err := s.businessRepo.UpdateBusinessStatus(ctx, business.ID, domain.BusinessAuditAssigned); err != nil {
			return repoError("failed to update business status", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	invalidateBusinessListings(ctx, s.cache)

	fields := []zap.Field{
		zap.String("audit_id", task.ID),
		zap.String("business_id", task.BusinessID),
		zap.String("auditor_id", task.AuditorID),
	}
	if task.DistanceKm != nil {
		fields = append(fields, zap.Float64("distance_km", *task.DistanceKm))
	}
	logger.Get().Info("audit assigned", fields...)

	resp := dto.NewAuditTaskResponse(task)
	return &resp, nil
}

func (s *auditServiceImpl) explicitAuditor(ctx context.Context, business *domain.Business, auditorID string) (string, *float64, error) {
	auditor, err := s.profileRepo.GetProfileByID(ctx, auditorID)
	if err != nil {
		return "", nil, repoError("failed to load auditor", err)
	}
	if auditor == nil || auditor.Role != domain.RoleAuditor {
		return "", nil, domain.NewInvalidInputError("auditor_id does not refer to an auditor").WithContext("auditor_id", auditorID)
	}
	if auditor.Location == nil || business.Location == nil {
		return auditor.ID, nil, nil
	}
	d := util.RoundTo(util.HaversineKm(*business.Location, *auditor.Location), 2)
	return auditor.ID, &d, nil
}

func (s *auditServiceImpl) nearestAuditor(ctx context.Context, business *domain.Business) (string, *float64, error) {
	if business.Location == nil {
		return "", nil, domain.NewInvalidInputError("business has no location; choose an auditor explicitly").
			WithContext("business_id", business.ID)
	}

	auditors, err := s.profileRepo.ListProfilesByRole(ctx, domain.RoleAuditor)
	if err != nil {
		return "", nil, repoError("failed to list auditors", err)
	}

	candidates := make([]*domain.Coordinates, len(auditors))
	for i, a := range auditors {
		candidates[i] = a.Location
	}
	idx, distance, ok := util.NearestCandidate(*business.Location, candidates)
	if !ok {
		return "", nil, domain.NewNoAuditorAvailableError(business.ID)
	}
	d := util.RoundTo(distance, 2)
	return auditors[idx].ID, &d, nil
}

func (s *auditServiceImpl) ListMyAudits(ctx context.Context, actor domain.Actor, status string) ([]dto.AuditTaskResponse, error) {
	if err := actor.Require(domain.RoleAuditor); err != nil {
		return nil, err
	}
	filter := domain.AuditStatus(status)
	switch filter {
	case "", domain.AuditAssigned, domain.AuditInProgress, domain.AuditSubmitted, domain.AuditApproved, domain.AuditRejected:
	default:
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("status", status)}
	}

	tasks, err := s.auditRepo.ListAuditTasksByAuditor(ctx, actor.UserID, filter)
	if err != nil {
		return nil, repoError("failed to list audits", err)
	}
	resp := make([]dto.AuditTaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = dto.NewAuditTaskResponse(t)
	}
	return resp, nil
}

// ownedTask loads an audit task and checks that actor is its auditor.
// Tasks of other auditors are reported as not found.
func (s *auditServiceImpl) ownedTask(ctx context.Context, actor domain.Actor, id string) (*domain.AuditTask, error) {
	task, err := s.auditRepo.GetAuditTaskByID(ctx, id)
	if err != nil {
		return nil, repoError("failed to load audit", err)
	}
	if task == nil || task.AuditorID != actor.UserID {
		return nil, domain.NewNotFoundError("audit not found").WithContext("id", id)
	}
	return task, nil
}

func (s *auditServiceImpl) StartAudit(ctx context.Context, actor domain.Actor, id string) (*dto.AuditTaskResponse, error) {
	if err := actor.Require(domain.RoleAuditor); err != nil {
		return nil, err
	}
	task, err := s.ownedTask(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if task.Status != domain.AuditAssigned {
		return nil, domain.NewInvalidStateError("only assigned audits can be started").WithContext("status", string(task.Status))
	}

	task.Status = domain.AuditInProgress
	if err := s.auditRepo.UpdateAuditTask(ctx, task); err != nil {
		return nil, repoError("failed to update audit", err)
	}
	logger.Get().Info("audit started", zap.String("audit_id", id), zap.String("auditor_id", actor.UserID))

	resp := dto.NewAuditTaskResponse(task)
	return &resp, nil
}

// SubmitReport validates the report against the business category's
// checklist, stores it and marks the business audited.
func (s *auditServiceImpl) SubmitReport(ctx context.Context, actor domain.Actor, id string, req dto.SubmitReportRequest) (*dto.AuditTaskResponse, error) {
	if err := actor.Require(domain.RoleAuditor); err != nil {
		return nil, err
	}

	var task *domain.AuditTask
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		task, err = s.ownedTask(ctx, actor, id)
		if err != nil {
			return err
		}
		if task.Status != domain.AuditAssigned && task.Status != domain.AuditInProgress {
			return domain.NewInvalidStateError("the report for this audit has already been submitted").
				WithContext("status", string(task.Status))
		}

		business, err := s.businessRepo.GetBusinessByID(ctx, task.BusinessID)
		if err != nil {
			return repoError("failed to load business", err)
		}
		if business == nil {
			return domain.NewNotFoundError("business not found").WithContext("id", task.BusinessID)
		}
		category, err := s.categoryRepo.GetCategoryByID(ctx, business.CategoryID)
		if err != nil {
			return repoError("failed to load category", err)
		}
		if category == nil {
			return domain.NewNotFoundError("category not found").WithContext("id", business.CategoryID)
		}

		report := req.ToReport()
		if errs := report.Validate(category.Checklist); len(errs) > 0 {
			return domain.NewInvalidReportError(errs)
		}
		report.Normalize(category.Checklist)

		now := time.Now()
		task.Report = report
		task.Status = domain.AuditSubmitted
		task.SubmittedAt = &now
		if err := s.auditRepo.UpdateAuditTask(ctx, task); err != nil {
			return repoError("failed to update audit", err)
		}
		if err := s.businessRepo.UpdateBusinessStatus(ctx, business.ID, domain.BusinessAudited); err != nil {
			return repoError("failed to update business status", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	invalidateBusinessListings(ctx, s.cache)

	logger.Get().Info("audit report submitted",
		zap.String("audit_id", id),
		zap.String("auditor_id", actor.UserID),
		zap.Int("answers", len(task.Report.Answers)))

	resp := dto.NewAuditTaskResponse(task)
	return &resp, nil
}

// ReviewAudit approves or rejects a submitted audit. Approval verifies the
// business; rejection marks it rejected.
func (s *auditServiceImpl) ReviewAudit(ctx context.Context, actor domain.Actor, id string, approved bool) (*dto.AuditTaskResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	var task *domain.AuditTask
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		task, err = s.auditRepo.GetAuditTaskByID(ctx, id)
		if err != nil {
			return repoError("failed to load audit", err)
		}
		if task == nil {
			return domain.NewNotFoundError("audit not found").WithContext("id", id)
		}
		if task.Status != domain.AuditSubmitted {
			return domain.NewInvalidStateError("only submitted audits can be reviewed").WithContext("status", string(task.Status))
		}

		now := time.Now()
		task.ReviewedAt = &now
		businessStatus := domain.BusinessVerified
		task.Status = domain.AuditApproved
		if !approved {
			task.Status = domain.AuditRejected
			businessStatus = domain.BusinessRejected
		}

		if err := s.auditRepo.UpdateAuditTask(ctx, task); err != nil {
			return repoError("failed to update audit", err)
		}
		if err := s.businessRepo.UpdateBusinessStatus(ctx, task.BusinessID, businessStatus); err != nil {
			return repoError("failed to update business status", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	invalidateBusinessListings(ctx, s.cache)

	logger.Get().Info("audit reviewed",
		zap.String("audit_id", id),
		zap.Bool("approved", approved),
		zap.String("actor", actor.UserID))

	resp := dto.NewAuditTaskResponse(task)
	return &resp, nil
}
