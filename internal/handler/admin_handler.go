package handler

import (
	"auditpro/internal/middleware"
	"auditpro/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	dashboard service.DashboardService
}

func NewAdminHandler(dashboard service.DashboardService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard}
}

// GetDashboard godoc
// @Summary Administrator dashboard counters
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) GetDashboard(c *fiber.Ctx) error {
	resp, err := h.dashboard.GetDashboard(c.UserContext(), middleware.ActorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
