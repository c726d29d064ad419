package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trivia-api/internal/domain"
	"github.com/jhoicas/trivia-api/pkg/jwt"
)

// Locals keys del operador autenticado.
const (
	LocalSubject = "subject"
	LocalRole    = "role"
)

// AdminAuth valida un Bearer Token JWT con rol admin. Con secret vacío no protege nada.
func AdminAuth(secret string) fiber.Handler {
	if secret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(fmt.Errorf("%w: authorization header requerido", domain.ErrUnauthorized))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return unauthorized(fmt.Errorf("%w: formato Bearer <token>", domain.ErrUnauthorized))
		}
		subject, role, err := jwt.Parse(secret, strings.TrimSpace(parts[1]))
		if err != nil {
			return unauthorized(fmt.Errorf("%w: %v", domain.ErrUnauthorized, err))
		}
		if role != jwt.RoleAdmin {
			return forbidden(domain.ErrForbidden)
		}
		c.Locals(LocalSubject, subject)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetSubject devuelve el subject del token (después de AdminAuth).
func GetSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubject).(string)
	return s
}
