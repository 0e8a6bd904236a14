package dto

import (
	"time"

	"auditpro/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims are the claims carried by bearer tokens from the identity
// provider. The subject is the profile id.
type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ProfileResponse defines the structure for the caller's profile.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProfileResponse(p *domain.Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      string(p.Role),
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
	}
	if p.Location != nil {
		lat, lng := p.Location.Latitude, p.Location.Longitude
		resp.Latitude, resp.Longitude = &lat, &lng
	}
	return resp
}
