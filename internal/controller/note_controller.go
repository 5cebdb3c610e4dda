package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"keepnote/internal/dto"
	"keepnote/internal/pkg/serverutils"
	"keepnote/internal/service"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	service service.INoteService
}

func NewNoteController(service service.INoteService) INoteController {
	return &noteController{service: service}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/v1")
	h.Get("/note", c.GetAll)
	h.Post("/note", c.Create)
	h.Get("/note/:id", c.Show)
	h.Put("/note/:id", c.Update)
	h.Delete("/note/:id", c.Delete)
}

func (c *noteController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.NoteRequest
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

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.NoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %s", serverutils.ErrBadRequest, err.Error())
	}

	err = serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	ok, err := c.service.Delete(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(ok)
}

func noteIdParam(ctx *fiber.Ctx) (int, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return 0, fmt.Errorf("%w: note id must be an integer", serverutils.ErrBadRequest)
	}
	return id, nil
}
