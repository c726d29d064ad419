package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/trivia-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/trivia-api/pkg/jwt"
	"github.com/jhoicas/trivia-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testSubject   = "editor@trivia"
	testIssuer    = "trivia-api-test"
	testExpMin    = 60
)

// buildAuthApp construye una aplicación mínima con una ruta protegida por AdminAuth
// que devuelve el subject del token.
func buildAuthApp(secret string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	app.Post("/protected", apphttp.AdminAuth(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "subject": apphttp.GetSubject(c)})
	})
	return app
}

// tokenForRole genera un Bearer JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testSubject, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdminAuth
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminAuth_AdminPasa(t *testing.T) {
	resp := doProtected(t, buildAuthApp(testJWTSecret), tokenForRole(t, pkgjwt.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testSubject, body["subject"], "el subject del token debe quedar en locals")
}

func TestAdminAuth_OtroRol_Retorna403(t *testing.T) {
	resp := doProtected(t, buildAuthApp(testJWTSecret), tokenForRole(t, "player"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, 403, body["error"])
	assert.Equal(t, "forbidden", body["message"])
}

func TestAdminAuth_SinAuthHeader_Retorna401(t *testing.T) {
	resp := doProtected(t, buildAuthApp(testJWTSecret), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuth_FormatoIncorrecto_Retorna401(t *testing.T) {
	resp := doProtected(t, buildAuthApp(testJWTSecret), "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuth_TokenInvalido_Retorna401(t *testing.T) {
	resp := doProtected(t, buildAuthApp(testJWTSecret), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuth_TokenExpirado_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testSubject, pkgjwt.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	resp := doProtected(t, buildAuthApp(testJWTSecret), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuth_SecretIncorrecto_Retorna401(t *testing.T) {
	resp := doProtected(t, buildAuthApp("otro-secret-completamente-distinto"), tokenForRole(t, pkgjwt.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuth_SinSecretNoProtege(t *testing.T) {
	resp := doProtected(t, buildAuthApp(""), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
