package models

import (
	"database/sql/driver"
	"testing"

	"auditpro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistJSON_Value(t *testing.T) {
	five := 5
	one := 1
	tests := []struct {
		name    string
		c       ChecklistJSON
		wantVal driver.Value
	}{
		{
			name:    "nil questions",
			c:       ChecklistJSON{CategoryName: "Empty"},
			wantVal: `{"category_name":"Empty","checklist":[]}`,
		},
		{
			name: "bounds only when set",
			c: ChecklistJSON{CategoryName: "Cafe", Questions: []domain.ChecklistQuestion{
				{Question: "Clean?", Type: "checkbox"},
				{Question: "Taste", Type: "rating", Min: &one, Max: &five},
			}},
			wantVal: `{"category_name":"Cafe","checklist":[{"question":"Clean?","type":"checkbox"},{"question":"Taste","type":"rating","min":1,"max":5}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.c.Value()
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantVal.(string), got.(string))
		})
	}
}

func TestChecklistJSON_Scan(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		wantName  string
		wantCount int
		wantErr   bool
	}{
		{name: "nil", value: nil, wantCount: 0},
		{name: "empty string", value: "", wantCount: 0},
		{name: "null literal", value: []byte("null"), wantCount: 0},
		{name: "document", value: `{"category_name":"Cafe","checklist":[{"question":"Clean?","type":"checkbox"}]}`, wantName: "Cafe", wantCount: 1},
		{name: "invalid json", value: "{", wantErr: true},
		{name: "unsupported type", value: 42, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c ChecklistJSON
			err := c.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.CategoryName)
			assert.NotNil(t, c.Questions)
			assert.Len(t, c.Questions, tt.wantCount)
		})
	}
}

func TestReportJSON(t *testing.T) {
	var empty ReportJSON
	v, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	r := ReportJSON{Report: &domain.AuditReport{
		Answers: []domain.AuditAnswer{{QuestionIndex: 0, Value: true}},
		Notes:   "ok",
	}}
	v, err = r.Value()
	require.NoError(t, err)

	var scanned ReportJSON
	require.NoError(t, scanned.Scan(v))
	require.NotNil(t, scanned.Report)
	assert.Equal(t, "ok", scanned.Report.Notes)
	assert.Equal(t, true, scanned.Report.Answers[0].Value)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned.Report)
}
