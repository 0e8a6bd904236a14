package handler

import (
	"auditpro/internal/dto"
	"auditpro/internal/middleware"
	"auditpro/internal/service"
	"auditpro/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type FraudHandler struct {
	service   service.FraudService
	validator *validation.Validator
}

func NewFraudHandler(service service.FraudService) *FraudHandler {
	return &FraudHandler{service: service, validator: validation.NewValidator()}
}

// RaiseAlert godoc
// @Summary Raise a fraud alert
// @Tags fraud-alerts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param alert body dto.RaiseFraudAlertRequest true "Alert"
// @Success 201 {object} dto.FraudAlertResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /fraud-alerts [post]
func (h *FraudHandler) RaiseAlert(c *fiber.Ctx) error {
	var req dto.RaiseFraudAlertRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateRaiseFraudAlertRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.RaiseAlert(c.UserContext(), middleware.ActorFrom(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListAlerts godoc
// @Summary List fraud alerts
// @Tags fraud-alerts
// @Security ApiKeyAuth
// @Produce json
// @Param status query string false "open or resolved"
// @Success 200 {array} dto.FraudAlertResponse
// @Router /fraud-alerts [get]
func (h *FraudHandler) ListAlerts(c *fiber.Ctx) error {
	resp, err := h.service.ListAlerts(c.UserContext(), middleware.ActorFrom(c), c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ResolveAlert godoc
// @Summary Resolve a fraud alert
// @Tags fraud-alerts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param resolution body dto.ResolveFraudAlertRequest true "Resolution"
// @Success 200 {object} dto.FraudAlertResponse
// @Failure 409 {object} middleware.ErrorResponse "Already resolved"
// @Router /fraud-alerts/{id}/resolve [post]
func (h *FraudHandler) ResolveAlert(c *fiber.Ctx) error {
	var req dto.ResolveFraudAlertRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.ResolveAlert(c.UserContext(), middleware.ActorFrom(c), c.Params("id"), req.ResolutionNote)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
