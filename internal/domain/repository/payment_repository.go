package repository

import (
	"context"

	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

// PaymentRepository puerto de persistencia para pagos (append-only).
type PaymentRepository interface {
	// Create inserta el pago; si la referencia ya existe no inserta y devuelve created=false
	// con el pago existente cargado en p.
	Create(ctx context.Context, p *entity.Payment) (created bool, err error)
	// LatestCompleted pago completado con fecha_expiracion más reciente de la empresa (nil si no hay).
	LatestCompleted(ctx context.Context, companyID int64) (*entity.Payment, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Payment, error)
	ListAll(ctx context.Context) ([]*entity.Payment, error)
}

// WebhookEventRepository registro de eventos del proveedor para deduplicación.
type WebhookEventRepository interface {
	// Record inserta el evento y carga su ID. Devuelve false si (provider, event_id) ya existía
	// y fue procesado sin error; un evento que falló antes se vuelve a entregar para reintento.
	Record(ctx context.Context, ev *entity.WebhookEvent) (bool, error)
	MarkProcessed(ctx context.Context, id int64, processingErr string) error
}

// ServicePriceRepository catálogo de precios de servicios.
type ServicePriceRepository interface {
	ListActive(ctx context.Context) ([]*entity.ServicePrice, error)
}
