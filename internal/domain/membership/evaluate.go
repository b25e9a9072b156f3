package membership

import (
	"time"

	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

// Evaluate decide la membresía a partir del pago completado con la expiración más reciente
// de la empresa (servicio de dominio, sin I/O).
//   - nil                        → nunca ha tenido membresía (ErrNoMembership).
//   - ExpiresAt <= now           → ErrMembershipExpired.
//   - en otro caso               → nil (acceso permitido).
//
// No se suman periodos: solo cuenta el pago con la expiración más lejana.
func Evaluate(latest *entity.Payment, now time.Time) error {
	if latest == nil || latest.Status != entity.PaymentCompleted {
		return domain.ErrNoMembership
	}
	if !latest.GrantsAccessAt(now) {
		return domain.ErrMembershipExpired
	}
	return nil
}

// DaysRemaining días completos restantes (0 si ya expiró).
func DaysRemaining(latest *entity.Payment, now time.Time) int {
	if latest == nil || !latest.ExpiresAt.After(now) {
		return 0
	}
	return int(latest.ExpiresAt.Sub(now).Hours() / 24)
}
