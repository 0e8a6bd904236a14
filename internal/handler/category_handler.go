package handler

import (
	"auditpro/internal/dto"
	"auditpro/internal/middleware"
	"auditpro/internal/service"
	"auditpro/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category and checklist HTTP requests
type CategoryHandler struct {
	service   service.CategoryService
	validator *validation.Validator
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListCategories godoc
// @Summary List business categories
// @Description Returns every business category with its payout and checklist
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// GetCategory godoc
// @Summary Get a business category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.service.GetCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// CreateCategory godoc
// @Summary Create a business category
// @Description Parses the checklist text and stores the category. The name defaults to the checklist's category_name.
// @Tags categories
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid checklist, payout or request"
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Name already taken"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCategoryRequest(req); len(errs) > 0 {
		return errs
	}

	category, err := h.service.CreateCategory(c.UserContext(), middleware.ActorFrom(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory godoc
// @Summary Replace a business category
// @Tags categories
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Category"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var req dto.UpdateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCategoryRequest(req); len(errs) > 0 {
		return errs
	}

	category, err := h.service.UpdateCategory(c.UserContext(), middleware.ActorFrom(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// ParseChecklist godoc
// @Summary Preview checklist parsing
// @Description Parses checklist text and returns the normalized payload without storing it
// @Tags categories
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param checklist body dto.ParseChecklistRequest true "Checklist text"
// @Success 200 {object} dto.ParseChecklistResponse
// @Failure 400 {object} middleware.ErrorResponse "INVALID_CHECKLIST_FORMAT"
// @Router /checklists/parse [post]
func (h *CategoryHandler) ParseChecklist(c *fiber.Ctx) error {
	var req dto.ParseChecklistRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateParseChecklistRequest(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.ParseChecklist(c.UserContext(), middleware.ActorFrom(c), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
