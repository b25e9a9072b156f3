package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
)

var (
	_ repository.PaymentRepository      = (*PaymentRepo)(nil)
	_ repository.WebhookEventRepository = (*WebhookEventRepo)(nil)
	_ repository.ServicePriceRepository = (*ServicePriceRepo)(nil)
)

// PaymentRepo pagos de membresía. Solo inserta: un pago nunca se modifica.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentSelect = `
	SELECT id, COALESCE(empresa_id_pago, 0), usuario_id, monto, COALESCE(moneda, 'MXN'), COALESCE(metodo_pago, ''),
		COALESCE(referencia_pago, ''), COALESCE(estado_pago, 'pendiente'), dias_agregados, COALESCE(plan, ''),
		COALESCE(fecha_pago, CURRENT_TIMESTAMP), COALESCE(fecha_expiracion, CURRENT_TIMESTAMP), datos_pago
	FROM pagos`

// Create inserta el pago. Si la referencia ya existe carga el pago existente en p y devuelve false.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) (bool, error) {
	query := `
		INSERT INTO pagos (empresa_id_pago, usuario_id, monto, moneda, metodo_pago, referencia_pago, estado_pago,
			dias_agregados, plan, fecha_pago, fecha_expiracion, datos_pago)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (referencia_pago) DO NOTHING
		RETURNING id`
	var data any
	if len(p.ProviderData) > 0 {
		data = string(p.ProviderData)
	}
	err := r.q.QueryRow(ctx, query,
		p.CompanyID, p.UserID, p.Amount, p.Currency, p.Method, p.Reference, p.Status,
		p.DaysAdded, p.Plan, p.PaidAt, p.ExpiresAt, data,
	).Scan(&p.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("insert pago: %w", err)
	}

	existing, err := scanPayment(r.q.QueryRow(ctx, paymentSelect+` WHERE referencia_pago = $1`, p.Reference))
	if err != nil {
		return false, fmt.Errorf("get pago existente: %w", err)
	}
	*p = *existing
	return false, nil
}

// LatestCompleted pago completado que vence más tarde (nil si la empresa no tiene).
func (r *PaymentRepo) LatestCompleted(ctx context.Context, companyID int64) (*entity.Payment, error) {
	query := paymentSelect + `
		WHERE empresa_id_pago = $1 AND estado_pago = $2
		ORDER BY fecha_expiracion DESC
		LIMIT 1`
	p, err := scanPayment(r.q.QueryRow(ctx, query, companyID, entity.PaymentCompleted))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("último pago: %w", err)
	}
	return p, nil
}

// ListByCompany historial de pagos de una empresa.
func (r *PaymentRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Payment, error) {
	return r.list(ctx, paymentSelect+` WHERE empresa_id_pago = $1 ORDER BY fecha_pago DESC`, companyID)
}

// ListAll historial completo.
func (r *PaymentRepo) ListAll(ctx context.Context) ([]*entity.Payment, error) {
	return r.list(ctx, paymentSelect+` ORDER BY fecha_pago DESC`)
}

func (r *PaymentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()
	var out []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.UserID, &p.Amount, &p.Currency, &p.Method,
		&p.Reference, &p.Status, &p.DaysAdded, &p.Plan,
		&p.PaidAt, &p.ExpiresAt, &p.ProviderData,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// WebhookEventRepo eventos recibidos del proveedor.
type WebhookEventRepo struct {
	q Querier
}

// NewWebhookEventRepository construye el adaptador.
func NewWebhookEventRepository(q Querier) *WebhookEventRepo {
	return &WebhookEventRepo{q: q}
}

// Record registra el evento. Un evento ya procesado sin error no devuelve fila y se reporta como duplicado;
// uno pendiente o fallido se reabre para reintento.
func (r *WebhookEventRepo) Record(ctx context.Context, ev *entity.WebhookEvent) (bool, error) {
	query := `
		INSERT INTO eventos_webhook (provider, event_id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (provider, event_id) DO UPDATE
			SET payload = EXCLUDED.payload, processing_error = NULL
			WHERE eventos_webhook.processed_at IS NULL OR COALESCE(eventos_webhook.processing_error, '') <> ''
		RETURNING id, created_at`
	var payload any
	if len(ev.Payload) > 0 {
		payload = string(ev.Payload)
	}
	err := r.q.QueryRow(ctx, query, ev.Provider, ev.EventID, ev.EventType, payload).Scan(&ev.ID, &ev.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("registrar evento webhook: %w", err)
	}
	return true, nil
}

// MarkProcessed cierra el evento con el error de procesamiento (vacío si fue exitoso).
func (r *WebhookEventRepo) MarkProcessed(ctx context.Context, id int64, processingErr string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE eventos_webhook SET processed_at = NOW(), processing_error = $2 WHERE id = $1`,
		id, nullIfEmpty(processingErr),
	)
	if err != nil {
		return fmt.Errorf("marcar evento procesado: %w", err)
	}
	return nil
}

// ServicePriceRepo catálogo precios_servicios.
type ServicePriceRepo struct {
	q Querier
}

// NewServicePriceRepository construye el adaptador.
func NewServicePriceRepository(q Querier) *ServicePriceRepo {
	return &ServicePriceRepo{q: q}
}

// ListActive precios activos ordenados por precio.
func (r *ServicePriceRepo) ListActive(ctx context.Context) ([]*entity.ServicePrice, error) {
	query := `
		SELECT id, codigo_servicio, nombre_servicio, COALESCE(descripcion, ''), precio, COALESCE(moneda, 'MXN'), activo
		FROM precios_servicios
		WHERE activo = true
		ORDER BY precio DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list precios: %w", err)
	}
	defer rows.Close()
	var out []*entity.ServicePrice
	for rows.Next() {
		var s entity.ServicePrice
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Description, &s.Price, &s.Currency, &s.Active); err != nil {
			return nil, fmt.Errorf("scan precio: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
