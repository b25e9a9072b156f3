package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorTable traduce errores de dominio a HTTP. El mensaje es el del error recibido,
// con el contexto que le haya agregado el caso de uso.
var errorTable = []errorMapping{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrPasswordPolicy, fiber.StatusBadRequest, "PASSWORD_POLICY"},
	{domain.ErrResponsivaRequired, fiber.StatusBadRequest, "RESPONSIVA_REQUIRED"},
	{domain.ErrUnknownPlan, fiber.StatusBadRequest, "INVALID_PLAN"},
	{domain.ErrInvalidSignature, fiber.StatusBadRequest, "INVALID_SIGNATURE"},
	{domain.ErrPaymentNotSucceeded, fiber.StatusBadRequest, "PAYMENT_NOT_SUCCEEDED"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrPaymentProviderUnset, fiber.StatusServiceUnavailable, "PAYMENTS_UNAVAILABLE"},
}

// writeError responde con el status que corresponde al error. Los errores de membresía llevan
// las banderas del paywall; lo no reconocido es un 500 genérico y se registra.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoMembership):
		return c.Status(fiber.StatusForbidden).JSON(dto.MembershipErrorResponse{
			Code: "SIN_MEMBRESIA", Error: domain.ErrNoMembership.Error(), MembresiaRequerida: true,
		})
	case errors.Is(err, domain.ErrMembershipExpired):
		return c.Status(fiber.StatusForbidden).JSON(dto.MembershipErrorResponse{
			Code: "MEMBRESIA_EXPIRADA", Error: domain.ErrMembershipExpired.Error(), MembresiaRequerida: true, MembresiaExpirada: true,
		})
	}
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Error: err.Error()})
		}
	}
	if log != nil {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Error: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
}

// paramID lee un id numérico positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// queryID lee un id opcional de la query (nil si no viene).
func queryID(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return &id, nil
}
