package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"auditpro/internal/domain"
)

// ChecklistJSON stores a checklist definition as a JSON document in a CLOB column.
type ChecklistJSON domain.ChecklistDefinition

// Value implements the driver.Valuer interface
func (c ChecklistJSON) Value() (driver.Value, error) {
	if c.Questions == nil {
		c.Questions = []domain.ChecklistQuestion{}
	}
	data, err := json.Marshal(domain.ChecklistDefinition(c))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (c *ChecklistJSON) Scan(value interface{}) error {
	data, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("ChecklistJSON Scan: %w", err)
	}
	var def domain.ChecklistDefinition
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &def); err != nil {
			return err
		}
	}
	if def.Questions == nil {
		def.Questions = []domain.ChecklistQuestion{}
	}
	*c = ChecklistJSON(def)
	return nil
}

// ReportJSON is a nullable audit report column. A nil Report maps to NULL.
type ReportJSON struct {
	Report *domain.AuditReport
}

func (r ReportJSON) Value() (driver.Value, error) {
	if r.Report == nil {
		return nil, nil
	}
	data, err := json.Marshal(r.Report)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (r *ReportJSON) Scan(value interface{}) error {
	data, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("ReportJSON Scan: %w", err)
	}
	if len(data) == 0 || string(data) == "null" {
		r.Report = nil
		return nil
	}
	var report domain.AuditReport
	if err := json.Unmarshal(data, &report); err != nil {
		return err
	}
	r.Report = &report
	return nil
}

func columnBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported type " + fmt.Sprintf("%T", value))
	}
}
