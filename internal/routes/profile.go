package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/escuela-api/escuela_api/internal/middleware"
	"github.com/escuela-api/escuela_api/internal/teacher"
)

// RegisterProfileRoute wires the token-protected profile endpoint.
func RegisterProfileRoute(app *fiber.App, repo teacher.Repository, secret []byte) {
	app.Get("/perfil", middleware.Auth(secret), func(c *fiber.Ctx) error {
		id, _ := c.Locals(middleware.TeacherIDKey).(int64)
		t, err := repo.FindByID(c.UserContext(), id)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "profesor no encontrado")
		}
		return c.JSON(fiber.Map{
			"id":     t.ID,
			"nombre": t.Nombre,
			"correo": t.Correo,
		})
	})
}
