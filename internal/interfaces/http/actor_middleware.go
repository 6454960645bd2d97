package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Locals key para el UserID del actor en Fiber.
const LocalUserID = "user_id"

// ActorMiddleware extrae el usuario que ejecuta la operación del header
// X-User-ID (lo inyecta el proxy de la capa de sesión) y lo deja en c.Locals.
// Un header ausente o ilegible deja 0; las operaciones que exigen actor lo
// rechazan en validación.
func ActorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var userID int64
		if raw := c.Get("X-User-ID"); raw != "" {
			if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
				userID = parsed
			}
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después de ActorMiddleware).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}
