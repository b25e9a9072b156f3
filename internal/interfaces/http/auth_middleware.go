package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain/access"
	"github.com/jhoicas/portal-rdp/pkg/jwt"
)

// LocalPrincipal clave de c.Locals con el dto.Principal autenticado.
const LocalPrincipal = "principal"

// LocalToken clave de c.Locals con el JWT tal como llegó en el header.
const LocalToken = "token"

// AuthMiddleware valida el Bearer Token JWT y deja el principal en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "token requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipal, dto.Principal{
			ID:        claims.ID,
			Email:     claims.Email,
			Rol:       access.Normalize(claims.Rol),
			EmpresaID: claims.EmpresaID,
		})
		c.Locals(LocalToken, tokenString)
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto (después de AuthMiddleware).
func GetPrincipal(c *fiber.Ctx) dto.Principal {
	p, _ := c.Locals(LocalPrincipal).(dto.Principal)
	return p
}

// RequireCapability permite el paso solo si el rol del token puede ejecutar alguna de las acciones.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireCapability(actions ...access.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p.Rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Error: "no autenticado"})
		}
		for _, a := range actions {
			if access.Can(p.Rol, a) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Error: "acceso denegado"})
	}
}
