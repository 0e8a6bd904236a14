package dto

import (
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/util"
)

// OnboardBusinessRequest registers a new business
// @Description Request body for onboarding a business
type OnboardBusinessRequest struct {
	Name       string   `json:"name"`
	CategoryID string   `json:"category_id"`
	OwnerName  string   `json:"owner_name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type UpdateBusinessStatusRequest struct {
	Status string `json:"status"`
}

// BusinessListQuery holds the query string of GET /businesses.
type BusinessListQuery struct {
	Status     string `query:"status"`
	CategoryID string `query:"category_id"`
	City       string `query:"city"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

type BusinessResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CategoryID  string    `json:"category_id"`
	OwnerName   string    `json:"owner_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BusinessListResponse struct {
	Items  []BusinessResponse `json:"items"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

func NewBusinessResponse(b *domain.Business) BusinessResponse {
	resp := BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		CategoryID:  b.CategoryID,
		OwnerName:   b.OwnerName,
		Email:       b.Email,
		Phone:       b.Phone,
		Address:     b.Address,
		City:        b.City,
		Status:      string(b.Status),
		StatusLabel: util.StatusLabel(string(b.Status)),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.Location != nil {
		lat, lng := b.Location.Latitude, b.Location.Longitude
		resp.Latitude, resp.Longitude = &lat, &lng
	}
	return resp
}
