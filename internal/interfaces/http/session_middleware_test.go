package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/gautamsolar/certportal/internal/interfaces/http"
	"github.com/gautamsolar/certportal/pkg/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testAccountID = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "cert-portal-test"
)

func testSessions(t *testing.T, expMinutes int) session.Manager {
	t.Helper()
	return session.NewJWTManager(session.Config{
		Secret:     testSecret,
		ExpMinutes: expMinutes,
		Issuer:     testIssuer,
	})
}

// buildTestApp construye una aplicación Fiber mínima con tres rutas, una por
// middleware de sesión, cada una con un handler dummy que expone los locals.
func buildTestApp(sessions session.Manager) *fiber.App {
	app := fiber.New()
	dump := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"account_id": apphttp.GetAccountID(c),
			"name":       apphttp.GetAccountName(c),
			"logged_in":  apphttp.IsLoggedIn(c),
		})
	}
	app.Get("/user", apphttp.RequireUser(sessions), dump)
	app.Get("/admin", apphttp.RequireAdmin(sessions), dump)
	app.Get("/optional", apphttp.OptionalUser(sessions), dump)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func userToken(t *testing.T, sessions session.Manager) string {
	t.Helper()
	tok, err := sessions.IssueUser(testAccountID, "Juan Pérez")
	require.NoError(t, err)
	return "Bearer " + tok
}

func adminToken(t *testing.T, sessions session.Manager) string {
	t.Helper()
	tok, err := sessions.IssueAdmin()
	require.NoError(t, err)
	return "Bearer " + tok
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireUser_SesionValida(t *testing.T) {
	sessions := testSessions(t, 60)
	app := buildTestApp(sessions)

	resp := doRequest(t, app, "/user", userToken(t, sessions))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, testAccountID, body["account_id"])
	assert.Equal(t, "Juan Pérez", body["name"])
	assert.Equal(t, true, body["logged_in"])
}

func TestRequireUser_SinToken(t *testing.T) {
	sessions := testSessions(t, 60)
	app := buildTestApp(sessions)

	resp := doRequest(t, app, "/user", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireUser_TokenInvalido(t *testing.T) {
	sessions := testSessions(t, 60)
	app := buildTestApp(sessions)

	resp := doRequest(t, app, "/user", "Bearer no-es-un-jwt")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireUser_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace vencido.
	expired := testSessions(t, -1)
	app := buildTestApp(testSessions(t, 60))

	resp := doRequest(t, app, "/user", userToken(t, expired))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Una sesión de admin no lleva cuenta asociada: no sirve como sesión de usuario.
func TestRequireUser_RechazaTokenDeAdmin(t *testing.T) {
	sessions := testSessions(t, 60)
	app := buildTestApp(sessions)

	resp := doRequest(t, app, "/user", adminToken(t, sessions))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_SesionDeAdmin(t *testing.T) {
	sessions := testSessions(t, 60)
	app := buildTestApp(sessions)

	resp := doRequest(t, app, "/admin", adminToken(t, sessions))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Un usuario del portal no entra al panel aunque su sesión sea válida.
func TestRequireAdmin_RechazaSesionDeUsuario(t *testing.T) {
	sessions := testSessions(t, 60)
	app := buildTestApp(sessions)

	resp := doRequest(t, app, "/admin", userToken(t, sessions))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdmin_SinToken(t *testing.T) {
	sessions := testSessions(t, 60)
	app := buildTestApp(sessions)

	resp := doRequest(t, app, "/admin", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// OptionalUser
// ──────────────────────────────────────────────────────────────────────────────

// Sin token la request pasa igual, sin sesión cargada.
func TestOptionalUser_SinTokenPasa(t *testing.T) {
	sessions := testSessions(t, 60)
	app := buildTestApp(sessions)

	resp := doRequest(t, app, "/optional", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["logged_in"])
	assert.Equal(t, "", body["account_id"])
}

// Con token inválido tampoco corta: queda como anónimo.
func TestOptionalUser_TokenInvalidoPasaComoAnonimo(t *testing.T) {
	sessions := testSessions(t, 60)
	app := buildTestApp(sessions)

	resp := doRequest(t, app, "/optional", "Bearer basura")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["logged_in"])
}

func TestOptionalUser_ConTokenCargaSesion(t *testing.T) {
	sessions := testSessions(t, 60)
	app := buildTestApp(sessions)

	resp := doRequest(t, app, "/optional", userToken(t, sessions))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["logged_in"])
	assert.Equal(t, testAccountID, body["account_id"])
}
