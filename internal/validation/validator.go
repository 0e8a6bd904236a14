package validation

import (
	"net/mail"
	"regexp"
	"strings"

	"auditpro/internal/domain"
	"auditpro/internal/dto"
)

const (
	maxNameLength          = 200
	maxChecklistTextLength = 64 * 1024
	maxReasonLength        = 2000
	maxPageSize            = 200
)

var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID checks a path or body identifier.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !isValidULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

// ValidateCategoryRequest checks the fields the service does not derive itself.
// The checklist text and payout amount are parsed by the category service.
func (v *Validator) ValidateCategoryRequest(req dto.CreateCategoryRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.Name) > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(req.Name), 0, maxNameLength))
	}
	if strings.TrimSpace(req.PayoutAmount.String()) == "" {
		errors = append(errors, domain.NewMissingFieldError("payout_amount"))
	}
	if strings.TrimSpace(req.ChecklistText) == "" {
		errors = append(errors, domain.NewMissingFieldError("checklist_text"))
	} else if len(req.ChecklistText) > maxChecklistTextLength {
		errors = append(errors, domain.NewOutOfRangeError("checklist_text", len(req.ChecklistText), 1, maxChecklistTextLength))
	}

	return errors
}

func (v *Validator) ValidateParseChecklistRequest(req dto.ParseChecklistRequest) domain.ValidationErrors {
	if len(req.Text) > maxChecklistTextLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("text", len(req.Text), 0, maxChecklistTextLength)}
	}
	return nil
}

func (v *Validator) ValidateOnboardBusinessRequest(req dto.OnboardBusinessRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if len(req.Name) > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(req.Name), 1, maxNameLength))
	}
	errors = append(errors, v.ValidateID("category_id", req.CategoryID)...)

	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			errors = append(errors, domain.NewInvalidFormatError("email", req.Email))
		}
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		errors = append(errors, domain.NewValidationError("latitude and longitude must be given together"))
	}

	return errors
}

func (v *Validator) ValidateBusinessListQuery(q dto.BusinessListQuery) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if q.Status != "" {
		if _, ok := domain.ParseBusinessStatus(q.Status); !ok {
			errors = append(errors, domain.NewInvalidFormatError("status", q.Status))
		}
	}
	if q.CategoryID != "" && !isValidULID(q.CategoryID) {
		errors = append(errors, domain.NewInvalidFormatError("category_id", q.CategoryID))
	}
	if q.Limit < 0 || q.Limit > maxPageSize {
		errors = append(errors, domain.NewOutOfRangeError("limit", q.Limit, 0, maxPageSize))
	}
	if q.Offset < 0 {
		errors = append(errors, domain.NewInvalidFormatError("offset", q.Offset))
	}

	return errors
}

func (v *Validator) ValidateAssignAuditRequest(req dto.AssignAuditRequest) domain.ValidationErrors {
	errors := v.ValidateID("business_id", req.BusinessID)
	if req.AuditorID != "" && !isValidULID(req.AuditorID) {
		errors = append(errors, domain.NewInvalidFormatError("auditor_id", req.AuditorID))
	}
	return errors
}

func (v *Validator) ValidateSubmitReportRequest(req dto.SubmitReportRequest) domain.ValidationErrors {
	if len(req.Answers) == 0 {
		return domain.ValidationErrors{domain.NewMissingFieldError("answers")}
	}
	return nil
}

func (v *Validator) ValidateCreateSupplierTaskRequest(req dto.CreateSupplierTaskRequest) domain.ValidationErrors {
	errors := v.ValidateID("business_id", req.BusinessID)
	errors = append(errors, v.ValidateID("supplier_id", req.SupplierID)...)
	return errors
}

func (v *Validator) ValidateRaiseFraudAlertRequest(req dto.RaiseFraudAlertRequest) domain.ValidationErrors {
	errors := v.ValidateID("business_id", req.BusinessID)

	if req.AuditTaskID != "" && !isValidULID(req.AuditTaskID) {
		errors = append(errors, domain.NewInvalidFormatError("audit_task_id", req.AuditTaskID))
	}
	if strings.TrimSpace(req.Reason) == "" {
		errors = append(errors, domain.NewMissingFieldError("reason"))
	} else if len(req.Reason) > maxReasonLength {
		errors = append(errors, domain.NewOutOfRangeError("reason", len(req.Reason), 1, maxReasonLength))
	}
	if _, ok := domain.ParseFraudSeverity(req.Severity); !ok {
		errors = append(errors, domain.NewInvalidFormatError("severity", req.Severity))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return validULID.MatchString(s)
}
