package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnote/internal/pkg/serverutils"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthController(t *testing.T) {
	up := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	t.Run("all up", func(t *testing.T) {
		app := newTestApp(NewHealthController(map[string]Pinger{"note": up, "user": up}))

		status, raw := do(t, app, http.MethodGet, "/health", nil)
		require.Equal(t, fiber.StatusOK, status)
		body := decode[serverutils.Response[map[string]string]](t, raw)
		assert.Equal(t, map[string]string{"note": "up", "user": "up"}, body.Data)
	})

	t.Run("one down", func(t *testing.T) {
		app := newTestApp(NewHealthController(map[string]Pinger{"note": up, "reminder": down}))

		status, raw := do(t, app, http.MethodGet, "/health", nil)
		require.Equal(t, fiber.StatusServiceUnavailable, status)
		body := decode[serverutils.Response[map[string]string]](t, raw)
		assert.Equal(t, "down", body.Data["reminder"])
		assert.NotContains(t, string(raw), "refused")
	})
}
