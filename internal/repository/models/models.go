package models

import (
	"database/sql"
	"time"
)

// Profile is a row of the profiles table.
type Profile struct {
	ID        string          `db:"ID"`
	Email     string          `db:"EMAIL"`
	FullName  sql.NullString  `db:"FULL_NAME"`
	Role      string          `db:"ROLE"`
	Phone     sql.NullString  `db:"PHONE"`
	Latitude  sql.NullFloat64 `db:"LATITUDE"`
	Longitude sql.NullFloat64 `db:"LONGITUDE"`
	CreatedAt time.Time       `db:"CREATED_AT"`
	UpdatedAt time.Time       `db:"UPDATED_AT"`
}

// BusinessCategory is a row of the business_categories table.
type BusinessCategory struct {
	ID            string         `db:"ID"`
	Name          string         `db:"NAME"`
	Description   sql.NullString `db:"DESCRIPTION"`
	PayoutAmount  int64          `db:"PAYOUT_AMOUNT"` // minor units
	Checklist     ChecklistJSON  `db:"CHECKLIST"`
	ChecklistText sql.NullString `db:"CHECKLIST_TEXT"`
	CreatedAt     time.Time      `db:"CREATED_AT"`
	UpdatedAt     time.Time      `db:"UPDATED_AT"`
}

type Business struct {
	ID         string          `db:"ID"`
	Name       string          `db:"NAME"`
	CategoryID string          `db:"CATEGORY_ID"`
	OwnerName  sql.NullString  `db:"OWNER_NAME"`
	Email      sql.NullString  `db:"EMAIL"`
	Phone      sql.NullString  `db:"PHONE"`
	Address    sql.NullString  `db:"ADDRESS"`
	City       sql.NullString  `db:"CITY"`
	Latitude   sql.NullFloat64 `db:"LATITUDE"`
	Longitude  sql.NullFloat64 `db:"LONGITUDE"`
	Status     string          `db:"STATUS"`
	CreatedBy  string          `db:"CREATED_BY"`
	CreatedAt  time.Time       `db:"CREATED_AT"`
	UpdatedAt  time.Time       `db:"UPDATED_AT"`
}

type AuditTask struct {
	ID           string          `db:"ID"`
	BusinessID   string          `db:"BUSINESS_ID"`
	AuditorID    string          `db:"AUDITOR_ID"`
	Status       string          `db:"STATUS"`
	PayoutAmount int64           `db:"PAYOUT_AMOUNT"`
	DistanceKm   sql.NullFloat64 `db:"DISTANCE_KM"`
	Report       ReportJSON      `db:"REPORT"`
	SubmittedAt  sql.NullTime    `db:"SUBMITTED_AT"`
	ReviewedAt   sql.NullTime    `db:"REVIEWED_AT"`
	CreatedAt    time.Time       `db:"CREATED_AT"`
	UpdatedAt    time.Time       `db:"UPDATED_AT"`
}

type SupplierTask struct {
	ID          string         `db:"ID"`
	BusinessID  string         `db:"BUSINESS_ID"`
	SupplierID  string         `db:"SUPPLIER_ID"`
	Status      string         `db:"STATUS"`
	Notes       sql.NullString `db:"NOTES"`
	DeliveredAt sql.NullTime   `db:"DELIVERED_AT"`
	CreatedAt   time.Time      `db:"CREATED_AT"`
	UpdatedAt   time.Time      `db:"UPDATED_AT"`
}

type FraudAlert struct {
	ID             string         `db:"ID"`
	BusinessID     string         `db:"BUSINESS_ID"`
	AuditTaskID    sql.NullString `db:"AUDIT_TASK_ID"`
	RaisedBy       string         `db:"RAISED_BY"`
	Reason         string         `db:"REASON"`
	Severity       string         `db:"SEVERITY"`
	Status         string         `db:"STATUS"`
	ResolutionNote sql.NullString `db:"RESOLUTION_NOTE"`
	ResolvedAt     sql.NullTime   `db:"RESOLVED_AT"`
	CreatedAt      time.Time      `db:"CREATED_AT"`
	UpdatedAt      time.Time      `db:"UPDATED_AT"`
}

// TableName methods mirror the table each model is read from.
func (Profile) TableName() string          { return "profiles" }
func (BusinessCategory) TableName() string { return "business_categories" }
func (Business) TableName() string         { return "businesses" }
func (AuditTask) TableName() string        { return "audit_tasks" }
func (SupplierTask) TableName() string     { return "supplier_tasks" }
func (FraudAlert) TableName() string       { return "fraud_alerts" }
