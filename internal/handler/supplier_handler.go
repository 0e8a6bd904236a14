package handler

import (
	"auditpro/internal/dto"
	"auditpro/internal/middleware"
	"auditpro/internal/service"
	"auditpro/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service   service.SupplierService
	validator *validation.Validator
}

func NewSupplierHandler(service service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service, validator: validation.NewValidator()}
}

// CreateSupplierTask godoc
// @Summary Create a kit delivery task
// @Tags supplier-tasks
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param task body dto.CreateSupplierTaskRequest true "Task"
// @Success 201 {object} dto.SupplierTaskResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /supplier-tasks [post]
func (h *SupplierHandler) CreateSupplierTask(c *fiber.Ctx) error {
	var req dto.CreateSupplierTaskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCreateSupplierTaskRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateSupplierTask(c.UserContext(), middleware.ActorFrom(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListMySupplierTasks godoc
// @Summary List my kit delivery tasks
// @Tags supplier-tasks
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.SupplierTaskResponse
// @Router /supplier-tasks/mine [get]
func (h *SupplierHandler) ListMySupplierTasks(c *fiber.Ctx) error {
	resp, err := h.service.ListMySupplierTasks(c.UserContext(), middleware.ActorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// MarkDispatched godoc
// @Summary Mark a kit as dispatched
// @Tags supplier-tasks
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.SupplierTaskResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /supplier-tasks/{id}/dispatch [post]
func (h *SupplierHandler) MarkDispatched(c *fiber.Ctx) error {
	resp, err := h.service.MarkDispatched(c.UserContext(), middleware.ActorFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// MarkDelivered godoc
// @Summary Mark a kit as delivered
// @Tags supplier-tasks
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.SupplierTaskResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /supplier-tasks/{id}/deliver [post]
func (h *SupplierHandler) MarkDelivered(c *fiber.Ctx) error {
	resp, err := h.service.MarkDelivered(c.UserContext(), middleware.ActorFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
