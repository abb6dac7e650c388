package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/escuela-api/escuela_api/internal/teacher"
)

// RegisterTeacherRoutes wires the public registration and login endpoints.
func RegisterTeacherRoutes(app *fiber.App, h *teacher.Handler) {
	app.Post("/registrar-profesor", h.Register)
	app.Post("/iniciar-sesion", h.Login)
}
