package dto

import (
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/util"
)

type RaiseFraudAlertRequest struct {
	BusinessID  string `json:"business_id"`
	AuditTaskID string `json:"audit_task_id,omitempty"`
	Reason      string `json:"reason"`
	Severity    string `json:"severity"`
}

type ResolveFraudAlertRequest struct {
	ResolutionNote string `json:"resolution_note"`
}

type FraudAlertResponse struct {
	ID             string     `json:"id"`
	BusinessID     string     `json:"business_id"`
	AuditTaskID    string     `json:"audit_task_id,omitempty"`
	RaisedBy       string     `json:"raised_by"`
	Reason         string     `json:"reason"`
	Severity       string     `json:"severity"`
	Status         string     `json:"status"`
	StatusLabel    string     `json:"status_label"`
	ResolutionNote string     `json:"resolution_note,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewFraudAlertResponse(a *domain.FraudAlert) FraudAlertResponse {
	return FraudAlertResponse{
		ID:             a.ID,
		BusinessID:     a.BusinessID,
		AuditTaskID:    a.AuditTaskID,
		RaisedBy:       a.RaisedBy,
		Reason:         a.Reason,
		Severity:       string(a.Severity),
		Status:         string(a.Status),
		StatusLabel:    util.StatusLabel(string(a.Status)),
		ResolutionNote: a.ResolutionNote,
		ResolvedAt:     a.ResolvedAt,
		CreatedAt:      a.CreatedAt,
	}
}
