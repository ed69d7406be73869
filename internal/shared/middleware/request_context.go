package middleware

import (
	"ecoshopper-backend/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// RequestContext copies the request ID assigned by the requestid middleware
// into the per-request context, so handlers that pass c.UserContext()
// downstream get logger.WithContext correlation for free. Must be registered
// after requestid.New.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && id != "" {
			c.SetUserContext(utils.WithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}
