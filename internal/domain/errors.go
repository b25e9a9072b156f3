package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Portal
	ErrPasswordPolicy       = errors.New("la contraseña no cumple las reglas")
	ErrResponsivaRequired   = errors.New("la responsiva firmada es obligatoria para laptops")
	ErrInvalidTransition    = errors.New("transición de estatus no permitida")
	ErrUnknownPlan          = errors.New("plan no válido")
	ErrPaymentNotSucceeded  = errors.New("el pago no ha sido completado por el proveedor")
	ErrInvalidSignature     = errors.New("firma de webhook inválida")
	ErrNoMembership         = errors.New("no tienes una membresía activa")
	ErrMembershipExpired    = errors.New("tu membresía ha expirado")
	ErrPaymentProviderUnset = errors.New("proveedor de pagos no configurado")
)
