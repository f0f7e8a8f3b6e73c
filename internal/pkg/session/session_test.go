package session

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPlanSelectionRoundTrip(t *testing.T) {
	sessionStore = fibersession.New()
	defer func() { sessionStore = nil }()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Equal(t, uint(0), GetCurrentPlanID(c))

		require.NoError(t, SetCurrentPlanID(c, 42))
		assert.Equal(t, uint(42), GetCurrentPlanID(c))

		require.NoError(t, ClearCurrentPlanID(c))
		assert.Equal(t, uint(0), GetCurrentPlanID(c))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCurrentPlanSelectionUninitializedStore(t *testing.T) {
	sessionStore = nil

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Equal(t, uint(0), GetCurrentPlanID(c))
		assert.Error(t, SetCurrentPlanID(c, 1))
		assert.Error(t, ClearCurrentPlanID(c))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
