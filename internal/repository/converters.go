package repository

import (
	"database/sql"

	"auditpro/internal/domain"
	"auditpro/internal/repository/models"
	"auditpro/internal/util"
)

func notFound(entity, id string) error {
	return domain.NewNotFoundError(entity+" not found").WithContext("id", id)
}

func toCoordinates(lat, lng sql.NullFloat64) *domain.Coordinates {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &domain.Coordinates{Latitude: lat.Float64, Longitude: lng.Float64}
}

func fromCoordinates(c *domain.Coordinates) (lat, lng sql.NullFloat64) {
	if c == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: c.Latitude, Valid: true}, sql.NullFloat64{Float64: c.Longitude, Valid: true}
}

func toDomainProfile(m *models.Profile) *domain.Profile {
	if m == nil {
		return nil
	}
	return &domain.Profile{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName.String,
		Role:      domain.Role(m.Role),
		Phone:     m.Phone.String,
		Location:  toCoordinates(m.Latitude, m.Longitude),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainCategory(m *models.BusinessCategory) *domain.BusinessCategory {
	if m == nil {
		return nil
	}
	return &domain.BusinessCategory{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description.String,
		PayoutAmount:  m.PayoutAmount,
		Checklist:     domain.ChecklistDefinition(m.Checklist),
		ChecklistText: m.ChecklistText.String,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromDomainCategory(c *domain.BusinessCategory) *models.BusinessCategory {
	if c == nil {
		return nil
	}
	return &models.BusinessCategory{
		ID:            c.ID,
		Name:          c.Name,
		Description:   util.StringToNullString(c.Description),
		PayoutAmount:  c.PayoutAmount,
		Checklist:     models.ChecklistJSON(c.Checklist),
		ChecklistText: util.StringToNullString(c.ChecklistText),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toDomainBusiness(m *models.Business) *domain.Business {
	if m == nil {
		return nil
	}
	return &domain.Business{
		ID:         m.ID,
		Name:       m.Name,
		CategoryID: m.CategoryID,
		OwnerName:  m.OwnerName.String,
		Email:      m.Email.String,
		Phone:      m.Phone.String,
		Address:    m.Address.String,
		City:       m.City.String,
		Location:   toCoordinates(m.Latitude, m.Longitude),
		Status:     domain.BusinessStatus(m.Status),
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromDomainBusiness(b *domain.Business) *models.Business {
	if b == nil {
		return nil
	}
	lat, lng := fromCoordinates(b.Location)
	return &models.Business{
		ID:         b.ID,
		Name:       b.Name,
		CategoryID: b.CategoryID,
		OwnerName:  util.StringToNullString(b.OwnerName),
		Email:      util.StringToNullString(b.Email),
		Phone:      util.StringToNullString(b.Phone),
		Address:    util.StringToNullString(b.Address),
		City:       util.StringToNullString(b.City),
		Latitude:   lat,
		Longitude:  lng,
		Status:     string(b.Status),
		CreatedBy:  b.CreatedBy,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func toDomainAuditTask(m *models.AuditTask) *domain.AuditTask {
	if m == nil {
		return nil
	}
	return &domain.AuditTask{
		ID:           m.ID,
		BusinessID:   m.BusinessID,
		AuditorID:    m.AuditorID,
		Status:       domain.AuditStatus(m.Status),
		PayoutAmount: m.PayoutAmount,
		DistanceKm:   util.NullFloatToPtr(m.DistanceKm),
		Report:       m.Report.Report,
		SubmittedAt:  util.NullTimeToPtr(m.SubmittedAt),
		ReviewedAt:   util.NullTimeToPtr(m.ReviewedAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromDomainAuditTask(t *domain.AuditTask) *models.AuditTask {
	if t == nil {
		return nil
	}
	return &models.AuditTask{
		ID:           t.ID,
		BusinessID:   t.BusinessID,
		AuditorID:    t.AuditorID,
		Status:       string(t.Status),
		PayoutAmount: t.PayoutAmount,
		DistanceKm:   util.FloatPtrToNullFloat(t.DistanceKm),
		Report:       models.ReportJSON{Report: t.Report},
		SubmittedAt:  util.TimePtrToNullTime(t.SubmittedAt),
		ReviewedAt:   util.TimePtrToNullTime(t.ReviewedAt),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toDomainSupplierTask(m *models.SupplierTask) *domain.SupplierTask {
	if m == nil {
		return nil
	}
	return &domain.SupplierTask{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		SupplierID:  m.SupplierID,
		Status:      domain.SupplierTaskStatus(m.Status),
		Notes:       m.Notes.String,
		DeliveredAt: util.NullTimeToPtr(m.DeliveredAt),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDomainSupplierTask(t *domain.SupplierTask) *models.SupplierTask {
	if t == nil {
		return nil
	}
	return &models.SupplierTask{
		ID:          t.ID,
		BusinessID:  t.BusinessID,
		SupplierID:  t.SupplierID,
		Status:      string(t.Status),
		Notes:       util.StringToNullString(t.Notes),
		DeliveredAt: util.TimePtrToNullTime(t.DeliveredAt),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toDomainFraudAlert(m *models.FraudAlert) *domain.FraudAlert {
	if m == nil {
		return nil
	}
	return &domain.FraudAlert{
		ID:             m.ID,
		BusinessID:     m.BusinessID,
		AuditTaskID:    m.AuditTaskID.String,
		RaisedBy:       m.RaisedBy,
		Reason:         m.Reason,
		Severity:       domain.FraudSeverity(m.Severity),
		Status:         domain.FraudAlertStatus(m.Status),
		ResolutionNote: m.ResolutionNote.String,
		ResolvedAt:     util.NullTimeToPtr(m.ResolvedAt),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromDomainFraudAlert(a *domain.FraudAlert) *models.FraudAlert {
	if a == nil {
		return nil
	}
	return &models.FraudAlert{
		ID:             a.ID,
		BusinessID:     a.BusinessID,
		AuditTaskID:    util.StringToNullString(a.AuditTaskID),
		RaisedBy:       a.RaisedBy,
		Reason:         a.Reason,
		Severity:       string(a.Severity),
		Status:         string(a.Status),
		ResolutionNote: util.StringToNullString(a.ResolutionNote),
		ResolvedAt:     util.TimePtrToNullTime(a.ResolvedAt),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
