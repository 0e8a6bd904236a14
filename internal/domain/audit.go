package domain

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// AuditStatus is the lifecycle state of an audit task.
type AuditStatus string

const (
	AuditAssigned   AuditStatus = "assigned"
	AuditInProgress AuditStatus = "in_progress"
	AuditSubmitted  AuditStatus = "submitted"
	AuditApproved   AuditStatus = "approved"
	AuditRejected   AuditStatus = "rejected"
)

// AuditTask is an on-site audit of one business by one auditor.
type AuditTask struct {
	ID           string
	BusinessID   string
	AuditorID    string
	Status       AuditStatus
	PayoutAmount int64    // minor units, copied from the category at assignment
	DistanceKm   *float64 // set when assigned by proximity
	Report       *AuditReport
	SubmittedAt  *time.Time
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAuditTask creates an assigned audit task
func NewAuditTask(businessID, auditorID string, payout int64) *AuditTask {
	now := time.Now()
	return &AuditTask{
		BusinessID:   businessID,
		AuditorID:    auditorID,
		Status:       AuditAssigned,
		PayoutAmount: payout,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AuditReport is the structured result an auditor submits.
type AuditReport struct {
	Answers []AuditAnswer `json:"answers"`
	Notes   string        `json:"notes,omitempty"`
}

// AuditAnswer answers the checklist question at QuestionIndex.
type AuditAnswer struct {
	QuestionIndex int         `json:"question_index"`
	Question      string      `json:"question,omitempty"`
	Type          string      `json:"type,omitempty"`
	Value         interface{} `json:"value"`
}

// Validate checks the report against the checklist it answers. Every question
// must be answered once. Rating bounds are enforced only when the checklist
// declares them.
func (r *AuditReport) Validate(def ChecklistDefinition) ValidationErrors {
	var errs ValidationErrors
	seen := make(map[int]bool, len(r.Answers))

	for i, a := range r.Answers {
		field := fmt.Sprintf("answers[%d]", i)
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(def.Questions) {
			errs = append(errs, NewOutOfRangeError(field+".question_index", a.QuestionIndex, 0, len(def.Questions)-1))
			continue
		}
		if seen[a.QuestionIndex] {
			errs = append(errs, ValidationError{Code: CodeValidation, Field: field + ".question_index", Message: "question answered more than once", Value: a.QuestionIndex})
			continue
		}
		seen[a.QuestionIndex] = true

		if err := validateAnswerValue(def.Questions[a.QuestionIndex], a.Value); err != nil {
			err.Field = field + ".value"
			errs = append(errs, *err)
		}
	}

	for i := range def.Questions {
		if !seen[i] {
			errs = append(errs, NewMissingFieldError(fmt.Sprintf("answers[question_index=%d]", i)))
		}
	}
	return errs
}

// Normalize copies question text and type from the checklist onto each answer.
func (r *AuditReport) Normalize(def ChecklistDefinition) {
	for i := range r.Answers {
		idx := r.Answers[i].QuestionIndex
		if idx >= 0 && idx < len(def.Questions) {
			r.Answers[i].Question = def.Questions[idx].Question
			r.Answers[i].Type = def.Questions[idx].Type
		}
	}
}

func validateAnswerValue(q ChecklistQuestion, v interface{}) *ValidationError {
	if v == nil {
		return &ValidationError{Code: CodeMissingField, Message: "answer value is required"}
	}
	switch q.Type {
	case QuestionTypeRating:
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return &ValidationError{Code: CodeInvalidFormat, Message: "rating must be a whole number", Value: v}
		}
		if (q.Min != nil && n < float64(*q.Min)) || (q.Max != nil && n > float64(*q.Max)) {
			lo, hi := math.MinInt32, math.MaxInt32
			if q.Min != nil {
				lo = *q.Min
			}
			if q.Max != nil {
				hi = *q.Max
			}
			e := NewOutOfRangeError("", n, lo, hi)
			return &e
		}
	case QuestionTypeCheckbox:
		if _, ok := v.(bool); !ok {
			return &ValidationError{Code: CodeInvalidFormat, Message: "checkbox answer must be true or false", Value: v}
		}
	case QuestionTypeTextInput, QuestionTypePhotoUpload:
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return &ValidationError{Code: CodeInvalidFormat, Message: "answer must be a non-empty string", Value: v}
		}
	}
	return nil
}

// AuditTaskRepository defines the interface for audit task persistence.
type AuditTaskRepository interface {
	CreateAuditTask(ctx context.Context, task *AuditTask) error
	GetAuditTaskByID(ctx context.Context, id string) (*AuditTask, error)
	ListAuditTasksByAuditor(ctx context.Context, auditorID string, status AuditStatus) ([]*AuditTask, error)
	UpdateAuditTask(ctx context.Context, task *AuditTask) error
	CountAuditTasksByStatus(ctx context.Context, status AuditStatus) (int, error)
}
