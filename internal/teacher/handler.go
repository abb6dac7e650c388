package teacher

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/escuela-api/escuela_api/internal/token"
)

// Handler exposes the registration and login endpoints with the public
// Spanish API surface.
type Handler struct {
	service *Service
	secret  []byte
	ttl     time.Duration
	logger  *slog.Logger
}

// NewHandler constructs a teacher HTTP handler.
func NewHandler(service *Service, secret []byte, ttl time.Duration, logger *slog.Logger) *Handler {
	return &Handler{service: service, secret: secret, ttl: ttl, logger: logger}
}

type registerRequest struct {
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Password string `json:"contraseña"`
}

type loginRequest struct {
	Correo   string `json:"correo"`
	Password string `json:"contraseña"`
}

type profesorResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
}

type loginResponse struct {
	Mensaje  string           `json:"mensaje"`
	Token    string           `json:"token"`
	Profesor profesorResponse `json:"profesor"`
}

const (
	msgFieldsRequired      = "Todos los campos son requeridos"
	msgInvalidEmail        = "Correo electrónico inválido"
	msgWeakPassword        = "La contraseña debe tener al menos 8 caracteres"
	msgEmailTaken          = "El correo ya está en uso"
	msgRegisterFailed      = "Error al registrar el profesor"
	msgLoginFieldsRequired = "Correo y contraseña son requeridos"
	msgNotFound            = "Profesor no encontrado"
	msgBadPassword         = "Contraseña incorrecta"
	msgLoginFailed         = "Error al iniciar sesión"
	msgLoginOK             = "Inicio de sesión exitoso"
)

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// Register creates a new teacher account. Responses never include the
// credential hash.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, msgFieldsRequired)
	}

	t, err := h.service.Register(c.UserContext(), Registration{Nombre: req.Nombre, Correo: req.Correo, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			return errorJSON(c, http.StatusBadRequest, msgFieldsRequired)
		case errors.Is(err, ErrInvalidEmail):
			return errorJSON(c, http.StatusBadRequest, msgInvalidEmail)
		case errors.Is(err, ErrWeakPassword):
			return errorJSON(c, http.StatusBadRequest, msgWeakPassword)
		case errors.Is(err, ErrEmailTaken):
			return errorJSON(c, http.StatusBadRequest, msgEmailTaken)
		default:
			h.logger.Error("register teacher", slog.String("correo", req.Correo), slog.Any("error", err))
			return errorJSON(c, http.StatusInternalServerError, msgRegisterFailed)
		}
	}

	h.logger.Info("teacher registered", slog.Int64("id", t.ID), slog.String("correo", t.Correo))
	return c.Status(http.StatusCreated).JSON(profesorResponse{ID: t.ID, Nombre: t.Nombre, Correo: t.Correo})
}

// Login authenticates a teacher and returns a session token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, msgLoginFieldsRequired)
	}

	t, err := h.service.Authenticate(c.UserContext(), Credentials{Correo: req.Correo, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			return errorJSON(c, http.StatusBadRequest, msgLoginFieldsRequired)
		case errors.Is(err, ErrNotFound):
			return errorJSON(c, http.StatusBadRequest, msgNotFound)
		case errors.Is(err, ErrBadCredential):
			return errorJSON(c, http.StatusBadRequest, msgBadPassword)
		default:
			h.logger.Error("login teacher", slog.String("correo", req.Correo), slog.Any("error", err))
			return errorJSON(c, http.StatusInternalServerError, msgLoginFailed)
		}
	}

	signed, err := token.Issue(t.ID, t.Nombre, h.secret, h.ttl)
	if err != nil {
		h.logger.Error("issue session token", slog.Int64("id", t.ID), slog.Any("error", err))
		return errorJSON(c, http.StatusInternalServerError, msgLoginFailed)
	}

	h.logger.Info("teacher logged in", slog.Int64("id", t.ID), slog.String("correo", t.Correo))
	return c.Status(http.StatusOK).JSON(loginResponse{
		Mensaje:  msgLoginOK,
		Token:    signed,
		Profesor: profesorResponse{ID: t.ID, Nombre: t.Nombre, Correo: t.Correo},
	})
}
