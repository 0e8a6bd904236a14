package handler

import (
	"auditpro/internal/dto"
	"auditpro/internal/middleware"
	"auditpro/internal/service"
	"auditpro/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type BusinessHandler struct {
	service   service.BusinessService
	validator *validation.Validator
}

func NewBusinessHandler(service service.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service, validator: validation.NewValidator()}
}

// ListBusinesses godoc
// @Summary List businesses
// @Description Administrators see every business; consumers only verified ones
// @Tags businesses
// @Security ApiKeyAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param category_id query string false "Category ID"
// @Param city query string false "City (case-insensitive)"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.BusinessListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /businesses [get]
func (h *BusinessHandler) ListBusinesses(c *fiber.Ctx) error {
	var query dto.BusinessListQuery
	if err := c.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	if errs := h.validator.ValidateBusinessListQuery(query); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.ListBusinesses(c.UserContext(), middleware.ActorFrom(c), query)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetBusiness godoc
// @Summary Get a business
// @Tags businesses
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /businesses/{id} [get]
func (h *BusinessHandler) GetBusiness(c *fiber.Ctx) error {
	resp, err := h.service.GetBusiness(c.UserContext(), middleware.ActorFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// OnboardBusiness godoc
// @Summary Onboard a business
// @Tags businesses
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param business body dto.OnboardBusinessRequest true "Business"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Unknown category"
// @Router /businesses [post]
func (h *BusinessHandler) OnboardBusiness(c *fiber.Ctx) error {
	var req dto.OnboardBusinessRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateOnboardBusinessRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.OnboardBusiness(c.UserContext(), middleware.ActorFrom(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateBusinessStatus godoc
// @Summary Set a business status
// @Tags businesses
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param status body dto.UpdateBusinessStatusRequest true "New status"
// @Success 200 {object} dto.BusinessResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /businesses/{id}/status [patch]
func (h *BusinessHandler) UpdateBusinessStatus(c *fiber.Ctx) error {
	var req dto.UpdateBusinessStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.UpdateBusinessStatus(c.UserContext(), middleware.ActorFrom(c), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
