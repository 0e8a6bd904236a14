// Package server assembles the AuditPro HTTP application.
package server

import (
	"context"
	"time"

	"auditpro/internal/config"
	"auditpro/internal/domain"
	"auditpro/internal/handler"
	"auditpro/internal/middleware"
	"auditpro/internal/repository"
	"auditpro/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
)

const healthTimeout = 2 * time.Second

// New wires repositories, services and handlers over db and cache and
// returns the Fiber app serving /api and /health.
func New(cfg *config.Config, db *sqlx.DB, cache domain.Cache) (*fiber.App, error) {
	categoryRepo := repository.NewCategoryDatabaseAdapter(db)
	businessRepo := repository.NewBusinessDatabaseAdapter(db)
	profileRepo := repository.NewProfileDatabaseAdapter(db)
	auditRepo := repository.NewAuditTaskDatabaseAdapter(db)
	supplierRepo := repository.NewSupplierTaskDatabaseAdapter(db)
	fraudRepo := repository.NewFraudAlertDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	authService, err := service.NewAuthService(profileRepo, cfg.Auth)
	if err != nil {
		return nil, err
	}
	categoryService := service.NewCategoryService(categoryRepo, cache, cfg.Cache.CategoriesTTL)
	businessService := service.NewBusinessService(businessRepo, categoryRepo, cache, cfg.Cache.BusinessesTTL)
	auditService := service.NewAuditService(auditRepo, businessRepo, categoryRepo, profileRepo, txManager, cache)
	supplierService := service.NewSupplierService(supplierRepo, businessRepo, profileRepo, txManager, cache)
	fraudService := service.NewFraudService(fraudRepo, businessRepo, auditRepo)
	dashboardService := service.NewDashboardService(categoryRepo, businessRepo, profileRepo, auditRepo, supplierRepo, fraudRepo)

	handlers := handler.Handlers{
		Category: handler.NewCategoryHandler(categoryService),
		Business: handler.NewBusinessHandler(businessService),
		Audit:    handler.NewAuditHandler(auditService),
		Supplier: handler.NewSupplierHandler(supplierService),
		Fraud:    handler.NewFraudHandler(fraudService),
		Admin:    handler.NewAdminHandler(dashboardService),
		Profile:  handler.NewProfileHandler(authService),
	}

	app := fiber.New(fiber.Config{
		AppName:      "auditpro",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/health", healthHandler(db, cache))
	handler.RegisterRoutes(app, handlers, authService)
	return app, nil
}

func healthHandler(db *sqlx.DB, cache domain.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "database unavailable")
		}
		if err := cache.Ping(ctx); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "cache unavailable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
