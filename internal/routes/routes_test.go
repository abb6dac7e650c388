package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/escuela-api/escuela_api/internal/config"
	"github.com/escuela-api/escuela_api/internal/logging"
	"github.com/escuela-api/escuela_api/internal/token"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{
		AppName:   "EscuelaAPI",
		AppEnv:    "development",
		JWTSecret: "clave_de_prueba",
		TokenTTL:  time.Hour,
	}
	app := fiber.New()
	if err := Setup(app, Deps{Cfg: cfg, Logger: logging.Discard()}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	payload := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
	}
	return resp.StatusCode, payload
}

func TestSetupRequiresDatabaseOutsideDev(t *testing.T) {
	app := fiber.New()
	err := Setup(app, Deps{Cfg: config.Config{AppEnv: "production"}, Logger: logging.Discard()})
	if err == nil {
		t.Fatal("expected error when DB is nil outside development")
	}
}

func TestHealthz(t *testing.T) {
	app := setupApp(t)
	req := httptest.NewRequest(fiber.MethodGet, "/healthz", nil)
	status, _ := doJSON(t, app, req)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/registrar-profesor",
		strings.NewReader(`{"nombre":"Ana","correo":"ana@test.com","contraseña":"secret123"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	status, body := doJSON(t, app, req)
	if status != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%v)", status, body)
	}

	req = httptest.NewRequest(fiber.MethodPost, "/iniciar-sesion",
		strings.NewReader(`{"correo":"ana@test.com","contraseña":"secret123"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	status, body = doJSON(t, app, req)
	if status != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%v)", status, body)
	}
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatal("login must return a token")
	}

	req = httptest.NewRequest(fiber.MethodGet, "/perfil", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	status, body = doJSON(t, app, req)
	if status != http.StatusOK {
		t.Fatalf("perfil: expected 200, got %d (%v)", status, body)
	}
	if body["correo"] != "ana@test.com" || body["nombre"] != "Ana" {
		t.Fatalf("unexpected perfil body: %v", body)
	}
}

func TestProfileRejectsBadToken(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/perfil", nil)
	status, _ := doJSON(t, app, req)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/perfil", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not.a.token")
	status, _ = doJSON(t, app, req)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", status)
	}
}

func TestProfileRejectsExpiredToken(t *testing.T) {
	app := setupApp(t)

	expired, err := token.Issue(1, "Ana", []byte("clave_de_prueba"), -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/perfil", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+expired)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(raw), "token expired") {
		t.Fatalf("expected expiry reason in response, got %q", raw)
	}
}
