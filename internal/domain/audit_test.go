package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestAuditReport_Validate_RatingBounds(t *testing.T) {
	tests := []struct {
		name     string
		question ChecklistQuestion
		value    interface{}
		wantCode ErrorCode
	}{
		{name: "within bounds", question: ChecklistQuestion{Question: "Q", Type: QuestionTypeRating, Min: intPtr(1), Max: intPtr(10)}, value: 7.0},
		{name: "below min", question: ChecklistQuestion{Question: "Q", Type: QuestionTypeRating, Min: intPtr(1), Max: intPtr(10)}, value: 0.0, wantCode: CodeOutOfRange},
		{name: "above max", question: ChecklistQuestion{Question: "Q", Type: QuestionTypeRating, Min: intPtr(1), Max: intPtr(10)}, value: 11.0, wantCode: CodeOutOfRange},
		{name: "huge value with only max", question: ChecklistQuestion{Question: "Q", Type: QuestionTypeRating, Max: intPtr(10)}, value: 1e19, wantCode: CodeOutOfRange},
		{name: "huge negative value with only min", question: ChecklistQuestion{Question: "Q", Type: QuestionTypeRating, Min: intPtr(1)}, value: -1e19, wantCode: CodeOutOfRange},
		{name: "no bounds", question: ChecklistQuestion{Question: "Q", Type: QuestionTypeRating}, value: 1e6},
		{name: "fractional", question: ChecklistQuestion{Question: "Q", Type: QuestionTypeRating, Max: intPtr(10)}, value: 2.5, wantCode: CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := ChecklistDefinition{CategoryName: "C", Questions: []ChecklistQuestion{tt.question}}
			report := &AuditReport{Answers: []AuditAnswer{{QuestionIndex: 0, Value: tt.value}}}

			errs := report.Validate(def)
			if tt.wantCode == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantCode, errs[0].Code)
			assert.Equal(t, "answers[0].value", errs[0].Field)
		})
	}
}
