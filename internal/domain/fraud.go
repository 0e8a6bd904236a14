package domain

import (
	"context"
	"time"
)

type FraudSeverity string

const (
	SeverityLow    FraudSeverity = "low"
	SeverityMedium FraudSeverity = "medium"
	SeverityHigh   FraudSeverity = "high"
)

func ParseFraudSeverity(s string) (FraudSeverity, bool) {
	switch sev := FraudSeverity(s); sev {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return sev, true
	}
	return "", false
}

type FraudAlertStatus string

const (
	FraudAlertOpen     FraudAlertStatus = "open"
	FraudAlertResolved FraudAlertStatus = "resolved"
)

// FraudAlert flags suspicious activity around a business or an audit.
type FraudAlert struct {
	ID             string
	BusinessID     string
	AuditTaskID    string // optional
	RaisedBy       string
	Reason         string
	Severity       FraudSeverity
	Status         FraudAlertStatus
	ResolutionNote string
	ResolvedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewFraudAlert(businessID, auditTaskID, raisedBy, reason string, severity FraudSeverity) *FraudAlert {
	now := time.Now()
	return &FraudAlert{
		BusinessID:  businessID,
		AuditTaskID: auditTaskID,
		RaisedBy:    raisedBy,
		Reason:      reason,
		Severity:    severity,
		Status:      FraudAlertOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// FraudAlertRepository defines the interface for fraud alert persistence.
type FraudAlertRepository interface {
	CreateFraudAlert(ctx context.Context, alert *FraudAlert) error
	GetFraudAlertByID(ctx context.Context, id string) (*FraudAlert, error)
	ListFraudAlerts(ctx context.Context, status FraudAlertStatus) ([]*FraudAlert, error)
	UpdateFraudAlert(ctx context.Context, alert *FraudAlert) error
	CountFraudAlertsByStatus(ctx context.Context, status FraudAlertStatus) (int, error)
}
