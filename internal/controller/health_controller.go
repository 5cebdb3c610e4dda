package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"keepnote/internal/pkg/serverutils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	checks map[string]Pinger
}

// NewHealthController reports on every named storage backend in checks.
func NewHealthController(checks map[string]Pinger) IHealthController {
	return &healthController{checks: checks}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	pingCtx, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	res := make(map[string]string, len(c.checks))
	for name, check := range c.checks {
		if err := check.Ping(pingCtx); err != nil {
			status = fiber.StatusServiceUnavailable
			res[name] = "down"
			continue
		}
		res[name] = "up"
	}

	if status == fiber.StatusOK {
		return ctx.JSON(serverutils.SuccessResponse("healthy", res))
	}
	return ctx.Status(status).JSON(serverutils.Response[map[string]string]{
		Code:    status,
		Message: serverutils.ErrStorageUnavailable.Error(),
		Data:    res,
	})
}
