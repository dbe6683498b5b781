package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Compras-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Compras-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "compras-api-test"
	testExpMin    = 60
)

// rbacApp monta solo los grupos de escritura de compras y ventas con un handler
// que devuelve el rol visto, para aislar AuthMiddleware + RequireRole de los casos de uso.
func rbacApp() *fiber.App {
	app := fiber.New()
	echoRole := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "role": apphttp.GetRole(c)})
	}
	api := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	api.Post("/pos", apphttp.RequireRole(entity.RoleAdmin, entity.RoleBodeguero), echoRole)
	api.Post("/sos", apphttp.RequireRole(entity.RoleAdmin, entity.RoleVendedor), echoRole)
	api.Get("/pos", echoRole)
	return app
}

func tokenWithRole(t *testing.T, role string, expMin int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, expMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func send(t *testing.T, app *fiber.App, method, path, authHeader string) (int, dto.ErrorResponse, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	var errBody dto.ErrorResponse
	var okBody map[string]string
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &okBody))
	} else {
		require.NoError(t, json.Unmarshal(raw, &errBody))
	}
	return resp.StatusCode, errBody, okBody
}

func TestRequireRole_GruposDeEscritura(t *testing.T) {
	cases := []struct {
		role   string
		path   string
		status int
	}{
		{entity.RoleAdmin, "/api/pos", http.StatusOK},
		{entity.RoleAdmin, "/api/sos", http.StatusOK},
		{entity.RoleBodeguero, "/api/pos", http.StatusOK},
		{entity.RoleBodeguero, "/api/sos", http.StatusForbidden},
		{entity.RoleVendedor, "/api/sos", http.StatusOK},
		{entity.RoleVendedor, "/api/pos", http.StatusForbidden},
	}
	app := rbacApp()
	for _, tc := range cases {
		t.Run(tc.role+" POST "+tc.path, func(t *testing.T) {
			status, errBody, okBody := send(t, app, http.MethodPost, tc.path, tokenWithRole(t, tc.role, testExpMin))
			assert.Equal(t, tc.status, status)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.role, okBody["role"])
			} else {
				assert.Equal(t, "FORBIDDEN", errBody.Code)
			}
		})
	}
}

func TestRequireRole_LecturaSinRestriccionDeRol(t *testing.T) {
	app := rbacApp()
	for _, role := range []string{entity.RoleAdmin, entity.RoleBodeguero, entity.RoleVendedor} {
		status, _, okBody := send(t, app, http.MethodGet, "/api/pos", tokenWithRole(t, role, testExpMin))
		assert.Equal(t, http.StatusOK, status, role)
		assert.Equal(t, testUserID, okBody["user_id"])
	}
}

func TestRequireRole_TokenSinRolEs401(t *testing.T) {
	status, errBody, _ := send(t, rbacApp(), http.MethodPost, "/api/pos", tokenWithRole(t, "", testExpMin))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_ROLE", errBody.Code)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"esquema distinto", "Basic dXNlcjpwYXNz", "INVALID_TOKEN"},
		{"firma inválida", "Bearer token.invalido.aqui", "INVALID_TOKEN"},
		{"expirado", tokenWithRole(t, entity.RoleAdmin, -1), "INVALID_TOKEN"},
	}
	app := rbacApp()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, errBody, _ := send(t, app, http.MethodPost, "/api/sos", tc.header)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, tc.code, errBody.Code)
		})
	}
}

func TestAuthMiddleware_EsquemaBearerSinDistinguirMayusculas(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleVendedor, testIssuer, testExpMin)
	require.NoError(t, err)

	status, _, okBody := send(t, rbacApp(), http.MethodPost, "/api/sos", "bearer "+tok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, entity.RoleVendedor, okBody["role"])
}
