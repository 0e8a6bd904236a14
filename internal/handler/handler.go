package handler

import (
	"auditpro/internal/domain"
	"auditpro/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// parseBody decodes the JSON request body into out. Malformed bodies are
// reported as a validation error on the "body" field.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logger.Get().Debug("Failed to parse request body", zap.String("path", c.Path()), zap.Error(err))
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", "malformed JSON")}
	}
	return nil
}
