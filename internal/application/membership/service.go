// Package membership expone la verificación de membresía que usa el middleware
// y el estado que consulta el SPA.
package membership

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/membership"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
)

// Service consulta pagos en cada llamada; no hay caché, un pago recién registrado
// habilita el acceso en la siguiente petición.
type Service struct {
	payments repository.PaymentRepository
	now      func() time.Time
}

// NewService construye el servicio de membresía.
func NewService(payments repository.PaymentRepository) *Service {
	return &Service{payments: payments, now: time.Now}
}

// Check devuelve nil si la empresa tiene membresía vigente, ErrNoMembership o ErrMembershipExpired.
// Cualquier otro error es de infraestructura.
func (s *Service) Check(ctx context.Context, companyID int64) error {
	latest, err := s.payments.LatestCompleted(ctx, companyID)
	if err != nil {
		return err
	}
	return membership.Evaluate(latest, s.now())
}

// Status estado de la membresía para GET /membresia/estado.
func (s *Service) Status(ctx context.Context, p dto.Principal) (*dto.MembershipStatusResponse, error) {
	companyID, ok := p.CompanyID()
	if !ok {
		return nil, domain.ErrForbidden
	}
	latest, err := s.payments.LatestCompleted(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	evalErr := membership.Evaluate(latest, now)
	resp := &dto.MembershipStatusResponse{
		Activa:        evalErr == nil,
		Expirada:      errors.Is(evalErr, domain.ErrMembershipExpired),
		DiasRestantes: membership.DaysRemaining(latest, now),
	}
	if latest != nil {
		exp := latest.ExpiresAt
		resp.FechaExpiracion = &exp
		resp.TipoPlan = latest.Plan
	}
	return resp, nil
}
