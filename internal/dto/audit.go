package dto

import (
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/util"
)

// AssignAuditRequest assigns an auditor to a business. When AuditorID is
// empty the auditor closest to the business is chosen.
// @Description Request body for assigning an audit
type AssignAuditRequest struct {
	BusinessID string `json:"business_id"`
	AuditorID  string `json:"auditor_id,omitempty"`
}

// SubmitReportRequest answers every question of the category checklist.
type SubmitReportRequest struct {
	Answers []AuditAnswerRequest `json:"answers"`
	Notes   string               `json:"notes,omitempty"`
}

type AuditAnswerRequest struct {
	QuestionIndex int         `json:"question_index"`
	Value         interface{} `json:"value" swaggertype:"object"`
}

// ToReport converts the request into a domain report.
func (r SubmitReportRequest) ToReport() *domain.AuditReport {
	answers := make([]domain.AuditAnswer, len(r.Answers))
	for i, a := range r.Answers {
		answers[i] = domain.AuditAnswer{QuestionIndex: a.QuestionIndex, Value: a.Value}
	}
	return &domain.AuditReport{Answers: answers, Notes: r.Notes}
}

type ReviewAuditRequest struct {
	Approved bool `json:"approved"`
}

type AuditTaskResponse struct {
	ID            string              `json:"id"`
	BusinessID    string              `json:"business_id"`
	AuditorID     string              `json:"auditor_id"`
	Status        string              `json:"status"`
	StatusLabel   string              `json:"status_label"`
	PayoutAmount  int64               `json:"payout_amount"`
	PayoutDisplay string              `json:"payout_display"`
	DistanceKm    *float64            `json:"distance_km,omitempty"`
	Report        *domain.AuditReport `json:"report,omitempty"`
	SubmittedAt   *time.Time          `json:"submitted_at,omitempty"`
	ReviewedAt    *time.Time          `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func NewAuditTaskResponse(t *domain.AuditTask) AuditTaskResponse {
	return AuditTaskResponse{
		ID:            t.ID,
		BusinessID:    t.BusinessID,
		AuditorID:     t.AuditorID,
		Status:        string(t.Status),
		StatusLabel:   util.StatusLabel(string(t.Status)),
		PayoutAmount:  t.PayoutAmount,
		PayoutDisplay: util.FormatMinorUnits(t.PayoutAmount),
		DistanceKm:    t.DistanceKm,
		Report:        t.Report,
		SubmittedAt:   t.SubmittedAt,
		ReviewedAt:    t.ReviewedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
