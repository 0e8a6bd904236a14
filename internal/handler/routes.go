package handler

import (
	"auditpro/internal/domain"
	"auditpro/internal/middleware"
	"auditpro/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every HTTP handler served under /api.
type Handlers struct {
	Category *CategoryHandler
	Business *BusinessHandler
	Audit    *AuditHandler
	Supplier *SupplierHandler
	Fraud    *FraudHandler
	Admin    *AdminHandler
	Profile  *ProfileHandler
}

// RegisterRoutes mounts the API on router. Role checks run both here and in
// the services.
func RegisterRoutes(router fiber.Router, h Handlers, authService service.AuthService) {
	protected := middleware.Protected(authService)
	ids := middleware.NewValidationMiddleware()
	id := ids.ValidateIDParam("id")
	admin := middleware.RequireRole(domain.RoleAdmin)
	auditor := middleware.RequireRole(domain.RoleAuditor)
	supplier := middleware.RequireRole(domain.RoleSupplier)

	api := router.Group("/api")

	api.Get("/categories", h.Category.ListCategories)
	api.Get("/categories/:id", id, h.Category.GetCategory)
	api.Post("/categories", protected, admin, h.Category.CreateCategory)
	api.Put("/categories/:id", protected, admin, id, h.Category.UpdateCategory)
	api.Post("/checklists/parse", protected, admin, h.Category.ParseChecklist)

	api.Get("/businesses", protected, middleware.RequireRole(domain.RoleAdmin, domain.RoleConsumer), h.Business.ListBusinesses)
	api.Get("/businesses/:id", protected, id, h.Business.GetBusiness)
	api.Post("/businesses", protected, admin, h.Business.OnboardBusiness)
	api.Patch("/businesses/:id/status", protected, admin, id, h.Business.UpdateBusinessStatus)

	api.Post("/audits", protected, admin, h.Audit.AssignAudit)
	api.Get("/audits/mine", protected, auditor, h.Audit.ListMyAudits)
	api.Post("/audits/:id/start", protected, auditor, id, h.Audit.StartAudit)
	api.Post("/audits/:id/report", protected, auditor, id, h.Audit.SubmitReport)
	api.Post("/audits/:id/review", protected, admin, id, h.Audit.ReviewAudit)

	api.Post("/supplier-tasks", protected, admin, h.Supplier.CreateSupplierTask)
	api.Get("/supplier-tasks/mine", protected, supplier, h.Supplier.ListMySupplierTasks)
	api.Post("/supplier-tasks/:id/dispatch", protected, supplier, id, h.Supplier.MarkDispatched)
	api.Post("/supplier-tasks/:id/deliver", protected, supplier, id, h.Supplier.MarkDelivered)

	api.Post("/fraud-alerts", protected, middleware.RequireRole(domain.RoleAdmin, domain.RoleAuditor), h.Fraud.RaiseAlert)
	api.Get("/fraud-alerts", protected, admin, h.Fraud.ListAlerts)
	api.Post("/fraud-alerts/:id/resolve", protected, admin, id, h.Fraud.ResolveAlert)

	api.Get("/admin/dashboard", protected, admin, h.Admin.GetDashboard)
	api.Get("/me", protected, h.Profile.GetMyProfile)
}
