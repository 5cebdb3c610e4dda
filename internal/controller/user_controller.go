package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"keepnote/internal/dto"
	"keepnote/internal/pkg/serverutils"
	"keepnote/internal/service"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

// RegisterRoutes mounts registration at /user, outside the versioned group,
// and keeps /api/v1/user as an alias for it.
func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Post("/user", c.Create)

	h := r.Group("/api/v1")
	h.Get("/user", c.GetAll)
	h.Post("/user", c.Create)
	h.Get("/user/:id", c.Show)
	h.Put("/user/:id", c.Update)
	h.Delete("/user/:id", c.Delete)
}

func (c *userController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var req dto.UserRequest
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

func (c *userController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), idParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	var req dto.UserRequest
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

func (c *userController) Delete(ctx *fiber.Ctx) error {
	ok, err := c.service.Delete(ctx.UserContext(), idParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(ok)
}
