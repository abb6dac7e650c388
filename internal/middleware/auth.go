package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/escuela-api/escuela_api/internal/token"
)

// TeacherIDKey is the fiber.Ctx locals key holding the authenticated teacher id.
const TeacherIDKey = "teacher_id"

// Auth returns a middleware that validates bearer session tokens and stores
// the teacher id in request locals.
func Auth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])

		claims, err := token.Verify(tokenStr, secret)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				return fiber.NewError(http.StatusUnauthorized, "token expired")
			}
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}

		id, err := claims.TeacherID()
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}

		c.Locals(TeacherIDKey, id)
		return c.Next()
	}
}
