package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// membershipChecker contrato mínimo que necesita el middleware. Lo implementa *membership.Service.
type membershipChecker interface {
	Check(ctx context.Context, companyID int64) error
}

// RequireMembership bloquea las rutas de pago obligatorio si la empresa del cliente no tiene
// membresía vigente. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 con membresia_requerida → nunca ha pagado.
//   - 403 con membresia_expirada  → el último pago ya venció.
//   - 503 → fallo al consultar la DB; el acceso no se concede.
//   - El personal interno no está sujeto a membresía.
func RequireMembership(checker membershipChecker, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if !p.IsClient() {
			return c.Next()
		}
		companyID, ok := p.CompanyID()
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Error: "usuario sin empresa asignada"})
		}

		err := checker.Check(c.UserContext(), companyID)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, domain.ErrNoMembership), errors.Is(err, domain.ErrMembershipExpired):
			return writeError(c, log, err)
		default:
			if log != nil {
				log.Error().Err(err).Int64("empresa_id", companyID).Msg("verificación de membresía falló")
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:  "MEMBERSHIP_CHECK_FAILED",
				Error: "no se pudo verificar la membresía, intente más tarde",
			})
		}
	}
}
