package handler

import (
	"auditpro/internal/dto"
	"auditpro/internal/middleware"
	"auditpro/internal/service"
	"auditpro/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuditHandler struct {
	service   service.AuditService
	validator *validation.Validator
}

func NewAuditHandler(service service.AuditService) *AuditHandler {
	return &AuditHandler{service: service, validator: validation.NewValidator()}
}

// AssignAudit godoc
// @Summary Assign an audit
// @Description Assigns the given auditor, or the nearest auditor with a known location when auditor_id is omitted
// @Tags audits
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param audit body dto.AssignAuditRequest true "Assignment"
// @Success 201 {object} dto.AuditTaskResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Business not assignable or no auditor available"
// @Router /audits [post]
func (h *AuditHandler) AssignAudit(c *fiber.Ctx) error {
	var req dto.AssignAuditRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateAssignAuditRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.AssignAudit(c.UserContext(), middleware.ActorFrom(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListMyAudits godoc
// @Summary List my audits
// @Tags audits
// @Security ApiKeyAuth
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} dto.AuditTaskResponse
// @Router /audits/mine [get]
func (h *AuditHandler) ListMyAudits(c *fiber.Ctx) error {
	resp, err := h.service.ListMyAudits(c.UserContext(), middleware.ActorFrom(c), c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// StartAudit godoc
// @Summary Start an assigned audit
// @Tags audits
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Audit ID"
// @Success 200 {object} dto.AuditTaskResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /audits/{id}/start [post]
func (h *AuditHandler) StartAudit(c *fiber.Ctx) error {
	resp, err := h.service.StartAudit(c.UserContext(), middleware.ActorFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitReport godoc
// @Summary Submit an audit report
// @Description Answers are checked against the category checklist
// @Tags audits
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Audit ID"
// @Param report body dto.SubmitReportRequest true "Report"
// @Success 200 {object} dto.AuditTaskResponse
// @Failure 400 {object} middleware.ErrorResponse "INVALID_AUDIT_REPORT"
// @Failure 409 {object} middleware.ErrorResponse
// @Router /audits/{id}/report [post]
func (h *AuditHandler) SubmitReport(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSubmitReportRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitReport(c.UserContext(), middleware.ActorFrom(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ReviewAudit godoc
// @Summary Approve or reject a submitted audit
// @Tags audits
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Audit ID"
// @Param review body dto.ReviewAuditRequest true "Decision"
// @Success 200 {object} dto.AuditTaskResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /audits/{id}/review [post]
func (h *AuditHandler) ReviewAudit(c *fiber.Ctx) error {
	var req dto.ReviewAuditRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.ReviewAudit(c.UserContext(), middleware.ActorFrom(c), c.Params("id"), req.Approved)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
