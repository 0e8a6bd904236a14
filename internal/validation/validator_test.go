package validation

import (
	"encoding/json"
	"testing"

	"auditpro/internal/domain"
	"auditpro/internal/dto"

	"github.com/stretchr/testify/assert"
)

const testULID = "01HZX3K5V6QJ8M9N0P1R2S3T4V"

func TestValidateID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateID("id", testULID))

	errs := v.ValidateID("id", "")
	assert.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	errs = v.ValidateID("id", "not-a-ulid")
	assert.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}

func TestValidateCategoryRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		req        dto.CreateCategoryRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  dto.CreateCategoryRequest{Name: "Cafe", PayoutAmount: json.Number("12.50"), ChecklistText: "- question: Clean?"},
		},
		{
			name:       "missing payout and checklist",
			req:        dto.CreateCategoryRequest{Name: "Cafe"},
			wantFields: []string{"payout_amount", "checklist_text"},
		},
		{
			name:       "blank checklist",
			req:        dto.CreateCategoryRequest{PayoutAmount: json.Number("1"), ChecklistText: "   \n"},
			wantFields: []string{"checklist_text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateCategoryRequest(tt.req)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidateOnboardBusinessRequest(t *testing.T) {
	v := NewValidator()
	lat := 12.97

	errs := v.ValidateOnboardBusinessRequest(dto.OnboardBusinessRequest{
		Name:       "Spice Garden",
		CategoryID: testULID,
		Email:      "owner@example.com",
	})
	assert.Empty(t, errs)

	errs = v.ValidateOnboardBusinessRequest(dto.OnboardBusinessRequest{
		CategoryID: "bad",
		Email:      "nope",
		Latitude:   &lat,
	})
	assert.Len(t, errs, 4)
}

func TestValidateBusinessListQuery(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateBusinessListQuery(dto.BusinessListQuery{Status: "verified", Limit: 20}))

	errs := v.ValidateBusinessListQuery(dto.BusinessListQuery{Status: "closed", Limit: 1000, Offset: -1})
	assert.Len(t, errs, 3)
}

func TestValidateRaiseFraudAlertRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateRaiseFraudAlertRequest(dto.RaiseFraudAlertRequest{
		BusinessID: testULID,
		Reason:     "Photos appear reused",
		Severity:   "high",
	}))

	errs := v.ValidateRaiseFraudAlertRequest(dto.RaiseFraudAlertRequest{BusinessID: testULID, Severity: "critical"})
	assert.Len(t, errs, 2)
}

func TestValidateSubmitReportRequest(t *testing.T) {
	v := NewValidator()
	assert.Len(t, v.ValidateSubmitReportRequest(dto.SubmitReportRequest{}), 1)
	assert.Empty(t, v.ValidateSubmitReportRequest(dto.SubmitReportRequest{
		Answers: []dto.AuditAnswerRequest{{QuestionIndex: 0, Value: true}},
	}))
}
