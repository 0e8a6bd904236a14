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

type FraudService interface {
	RaiseAlert(ctx context.Context, actor domain.Actor, req dto.RaiseFraudAlertRequest) (*dto.FraudAlertResponse, error)
	ListAlerts(ctx context.Context, actor domain.Actor, status string) ([]dto.FraudAlertResponse, error)
	ResolveAlert(ctx context.Context, actor domain.Actor, id string, note string) (*dto.FraudAlertResponse, error)
}

type fraudServiceImpl struct {
	alertRepo    domain.FraudAlertRepository
	businessRepo domain.BusinessRepository
	auditRepo    domain.AuditTaskRepository
}

func NewFraudService(alertRepo domain.FraudAlertRepository, businessRepo domain.BusinessRepository, auditRepo domain.AuditTaskRepository) FraudService {
	return &fraudServiceImpl{alertRepo: alertRepo, businessRepo: businessRepo, auditRepo: auditRepo}
}

// RaiseAlert flags a business. Auditors may only reference their own audits.
func (s *fraudServiceImpl) RaiseAlert(ctx context.Context, actor domain.Actor, req dto.RaiseFraudAlertRequest) (*dto.FraudAlertResponse, error) {
	if err := actor.Require(domain.RoleAdmin, domain.RoleAuditor); err != nil {
		return nil, err
	}
	severity, ok := domain.ParseFraudSeverity(req.Severity)
	if !ok {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("severity", req.Severity)}
	}

	business, err := s.businessRepo.GetBusinessByID(ctx, req.BusinessID)
	if err != nil {
		return nil, repoError("failed to load business", err)
	}
	if business == nil {
		return nil, domain.NewNotFoundError("business not found").WithContext("id", req.BusinessID)
	}

	if req.AuditTaskID != "" {
		task, err := s.auditRepo.GetAuditTaskByID(ctx, req.AuditTaskID)
		if err != nil {
			return nil, repoError("failed to load audit", err)
		}
		if task == nil || task.BusinessID != business.ID ||
			(actor.Role == domain.RoleAuditor && task.AuditorID != actor.UserID) {
			return nil, domain.NewInvalidInputError("audit_task_id does not match the business").WithContext("audit_task_id", req.AuditTaskID)
		}
	}

	alert := domain.NewFraudAlert(business.ID, req.AuditTaskID, actor.UserID, strings.TrimSpace(req.Reason), severity)
	if err := s.alertRepo.CreateFraudAlert(ctx, alert); err != nil {
		return nil, repoError("failed to create fraud alert", err)
	}

	logger.Get().Warn("fraud alert raised",
		zap.String("alert_id", alert.ID),
		zap.String("business_id", alert.BusinessID),
		zap.String("severity", string(severity)),
		zap.String("raised_by", actor.UserID))

	resp := dto.NewFraudAlertResponse(alert)
	return &resp, nil
}

func (s *fraudServiceImpl) ListAlerts(ctx context.Context, actor domain.Actor, status string) ([]dto.FraudAlertResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}
	filter := domain.FraudAlertStatus(status)
	if filter != "" && filter != domain.FraudAlertOpen && filter != domain.FraudAlertResolved {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("status", status)}
	}

	alerts, err := s.alertRepo.ListFraudAlerts(ctx, filter)
	if err != nil {
		return nil, repoError("failed to list fraud alerts", err)
	}
	resp := make([]dto.FraudAlertResponse, len(alerts))
	for i, a := range alerts {
		resp[i] = dto.NewFraudAlertResponse(a)
	}
	return resp, nil
}

func (s *fraudServiceImpl) ResolveAlert(ctx context.Context, actor domain.Actor, id string, note string) (*dto.FraudAlertResponse, error) {
	if err := actor.Require(domain.RoleAdmin); err != nil {
		return nil, err
	}

	alert, err := s.alertRepo.GetFraudAlertByID(ctx, id)
	if err != nil {
		return nil, repoError("failed to load fraud alert", err)
	}
	if alert == nil {
		return nil, domain.NewNotFoundError("fraud alert not found").WithContext("id", id)
	}
	if alert.Status == domain.FraudAlertResolved {
		return nil, domain.NewInvalidStateError("fraud alert is already resolved")
	}

	now := time.Now()
	alert.Status = domain.FraudAlertResolved
	alert.ResolutionNote = strings.TrimSpace(note)
	alert.ResolvedAt = &now
	if err := s.alertRepo.UpdateFraudAlert(ctx, alert); err != nil {
		return nil, repoError("failed to resolve fraud alert", err)
	}

	logger.Get().Info("fraud alert resolved", zap.String("alert_id", id), zap.String("actor", actor.UserID))

	resp := dto.NewFraudAlertResponse(alert)
	return &resp, nil
}
