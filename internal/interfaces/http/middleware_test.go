package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/melkar/melkar-api/internal/interfaces/http"
)

func buildTestApp(roles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", httpapi.RequireRole(roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": httpapi.GetUserRole(c)})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, role string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/protected", nil)
	if role != "" {
		req.Header.Set(httpapi.RoleHeader, role)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestRequireRole_RolPermitido(t *testing.T) {
	app := buildTestApp("Administrador")

	status, payload := doRequest(t, app, "Administrador")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Administrador", payload["role"], "el rol queda disponible en locals")
}

func TestRequireRole_VariosRolesPermitidos(t *testing.T) {
	app := buildTestApp("Administrador", "Gerente")

	status, _ := doRequest(t, app, "Gerente")

	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireRole_RolNoPermitido(t *testing.T) {
	app := buildTestApp("Administrador")

	status, payload := doRequest(t, app, "Vendedor")

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", payload["code"])
	assert.Equal(t, "Acceso denegado", payload["message"])
}

func TestRequireRole_SinCabecera(t *testing.T) {
	app := buildTestApp("Administrador")

	status, payload := doRequest(t, app, "")

	// Sin cabecera responde igual que con rol no permitido.
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", payload["code"])
	assert.Equal(t, "Acceso denegado", payload["message"])
}
