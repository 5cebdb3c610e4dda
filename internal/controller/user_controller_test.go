package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnote/internal/dto"
	"keepnote/internal/repository"
	"keepnote/internal/service"
)

func newUserApp() *fiber.App {
	svc := service.NewUserService(repository.NewMemoryUserRepository(), nil, testLogger())
	return newTestApp(NewUserController(svc))
}

func TestUserController_RegisterOnBothPaths(t *testing.T) {
	app := newUserApp()

	status, raw := do(t, app, http.MethodPost, "/user", dto.UserRequest{UserId: "u1", UserName: "Ada", UserPassword: "s3cret"})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	assert.NotContains(t, string(raw), "userPassword")
	assert.NotContains(t, string(raw), "s3cret")

	status, _ = do(t, app, http.MethodPost, "/api/v1/user", dto.UserRequest{UserId: "u1", UserName: "Grace"})
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = do(t, app, http.MethodPost, "/api/v1/user", dto.UserRequest{UserId: "u2", UserName: "Grace"})
	assert.Equal(t, fiber.StatusCreated, status)

	status, raw = do(t, app, http.MethodGet, "/api/v1/user", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]dto.UserResponse](t, raw), 2)
}

func TestUserController_Lifecycle(t *testing.T) {
	app := newUserApp()

	status, _ := do(t, app, http.MethodPost, "/user", dto.UserRequest{UserId: "u1", UserName: "Ada"})
	require.Equal(t, fiber.StatusCreated, status)

	status, raw := do(t, app, http.MethodPut, "/api/v1/user/u1", dto.UserRequest{UserName: "Ada Lovelace", UserMobile: "555"})
	require.Equal(t, fiber.StatusOK, status)
	updated := decode[dto.UserResponse](t, raw)
	assert.Equal(t, "u1", updated.UserId)
	assert.Equal(t, "555", updated.UserMobile)

	status, raw = do(t, app, http.MethodGet, "/api/v1/user/u1", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Ada Lovelace", decode[dto.UserResponse](t, raw).UserName)

	status, raw = do(t, app, http.MethodDelete, "/api/v1/user/u1", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `true`, string(raw))

	status, _ = do(t, app, http.MethodGet, "/api/v1/user/u1", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = do(t, app, http.MethodPut, "/api/v1/user/u1", dto.UserRequest{UserName: "ghost"})
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = do(t, app, http.MethodDelete, "/api/v1/user/u1", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUserController_MissingId(t *testing.T) {
	app := newUserApp()

	status, _ := do(t, app, http.MethodPost, "/user", dto.UserRequest{UserName: "nameless"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}
