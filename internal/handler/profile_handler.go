package handler

import (
	"auditpro/internal/logger"
	"auditpro/internal/middleware"
	"auditpro/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	authService service.AuthService
}

func NewProfileHandler(authService service.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

// GetMyProfile retrieves the profile of the currently authenticated user.
// @Summary Get My Profile
// @Description Retrieves the profile information of the logged-in user.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "Profile not found"
// @Router /me [get]
func (h *ProfileHandler) GetMyProfile(c *fiber.Ctx) error {
	actor := middleware.ActorFrom(c)
	profile, err := h.authService.GetProfile(c.UserContext(), actor)
	if err != nil {
		return err
	}
	logger.Get().Debug("Profile retrieved", zap.String("userID", actor.UserID))
	return c.JSON(profile)
}
