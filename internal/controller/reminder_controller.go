package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"keepnote/internal/dto"
	"keepnote/internal/pkg/serverutils"
	"keepnote/internal/service"
)

type IReminderController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type reminderController struct {
	service service.IReminderService
}

func NewReminderController(service service.IReminderService) IReminderController {
	return &reminderController{service: service}
}

func (c *reminderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/v1")
	h.Get("/reminder", c.GetAll)
	h.Post("/reminder", c.Create)
	h.Get("/reminder/:id", c.Show)
	h.Put("/reminder/:id", c.Update)
	h.Delete("/reminder/:id", c.Delete)
}

func (c *reminderController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *reminderController) Create(ctx *fiber.Ctx) error {
	var req dto.ReminderPayload
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %s", serverutils.ErrBadRequest, err.Error())
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *reminderController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), idParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *reminderController) Update(ctx *fiber.Ctx) error {
	var req dto.ReminderPayload
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %s", serverutils.ErrBadRequest, err.Error())
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), idParam(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *reminderController) Delete(ctx *fiber.Ctx) error {
	ok, err := c.service.Delete(ctx.UserContext(), idParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(ok)
}

// idParam copies the path id out of fiber's request buffer. Services pass it
// on to the event publisher and to log fields.
func idParam(ctx *fiber.Ctx) string {
	return utils.CopyString(ctx.Params("id"))
}
