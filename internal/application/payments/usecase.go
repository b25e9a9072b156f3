// Package payments implementa la compra de membresías: intento de pago, Checkout,
// confirmación desde el navegador y webhook del proveedor.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/access"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// Config parámetros del flujo de pago.
type Config struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

// UseCase casos de uso de pagos.
type UseCase struct {
	provider Provider
	payments repository.PaymentRepository
	events   repository.WebhookEventRepository
	cfg      Config
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. provider puede ser nil si no hay llaves configuradas:
// las operaciones que lo necesitan devuelven ErrPaymentProviderUnset.
func NewUseCase(provider Provider, payments repository.PaymentRepository, events repository.WebhookEventRepository, cfg Config, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Currency == "" {
		cfg.Currency = "mxn"
	}
	return &UseCase{
		provider: provider,
		payments: payments,
		events:   events,
		cfg:      cfg,
		log:      log.Component("payments"),
		now:      time.Now,
	}
}

// CreatePaymentIntent crea el intento de pago del plan elegido con la empresa y el usuario en metadata.
func (uc *UseCase) CreatePaymentIntent(ctx context.Context, p dto.Principal, planCode string) (*dto.CreatePaymentIntentResponse, error) {
	plan, companyID, err := uc.prepare(p, planCode)
	if err != nil {
		return nil, err
	}
	intent, err := uc.provider.CreatePaymentIntent(ctx, IntentParams{
		Amount:   plan.AmountCents(),
		Currency: uc.cfg.Currency,
		Metadata: metadataFor(plan, companyID, p.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("crear payment intent: %w", err)
	}
	return &dto.CreatePaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          plan.Price,
		Currency:        strings.ToUpper(uc.cfg.Currency),
		Plan:            plan.Code,
	}, nil
}

// CreateCheckoutSession crea una sesión de Checkout alojada para el plan elegido.
func (uc *UseCase) CreateCheckoutSession(ctx context.Context, p dto.Principal, planCode string) (*dto.CheckoutSessionResponse, error) {
	plan, companyID, err := uc.prepare(p, planCode)
	if err != nil {
		return nil, err
	}
	session, err := uc.provider.CreateCheckoutSession(ctx, CheckoutParams{
		Amount:      plan.AmountCents(),
		Currency:    uc.cfg.Currency,
		ProductName: plan.Name,
		SuccessURL:  uc.cfg.SuccessURL,
		CancelURL:   uc.cfg.CancelURL,
		Metadata:    metadataFor(plan, companyID, p.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("crear sesión de checkout: %w", err)
	}
	return &dto.CheckoutSessionResponse{SessionID: session.ID, URL: session.URL}, nil
}

// ConfirmPayment registra el pago después de que el navegador confirmó el intento.
// Vuelve a leer el intento del proveedor: solo "succeeded" y de la misma empresa se registra.
// Si el webhook ya lo registró, devuelve el pago existente.
func (uc *UseCase) ConfirmPayment(ctx context.Context, p dto.Principal, intentID string) (*dto.ConfirmPaymentResponse, error) {
	companyID, ok := p.CompanyID()
	if !p.IsClient() || !ok {
		return nil, domain.ErrForbidden
	}
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.provider == nil {
		return nil, domain.ErrPaymentProviderUnset
	}
	intent, err := uc.provider.GetPaymentIntent(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("consultar payment intent: %w", err)
	}
	if !intent.Succeeded() {
		return nil, domain.ErrPaymentNotSucceeded
	}
	meta, err := parseMetadata(intent.Metadata)
	if err != nil {
		return nil, err
	}
	if meta.companyID != companyID {
		return nil, domain.ErrForbidden
	}
	raw, _ := json.Marshal(intent)
	pay := newCompletedPayment(meta, entity.MethodCard, intent.ID, intent.Amount, intent.Currency, uc.now(), raw)
	if _, err := uc.payments.Create(ctx, pay); err != nil {
		return nil, err
	}
	return &dto.ConfirmPaymentResponse{Success: true, Pago: toPaymentResponse(pay)}, nil
}

// HandleWebhook verifica y procesa un evento del proveedor.
// Un evento ya procesado se reconoce sin efectos; solo checkout.session.completed registra pagos.
func (uc *UseCase) HandleWebhook(ctx context.Context, payload []byte, signature string) (*dto.WebhookResponse, error) {
	if uc.provider == nil {
		return nil, domain.ErrPaymentProviderUnset
	}
	ev, err := uc.provider.ParseWebhook(payload, signature)
	if err != nil {
		uc.log.Warn().Err(err).Msg("webhook rechazado")
		if errors.Is(err, domain.ErrInvalidSignature) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}
	record := &entity.WebhookEvent{
		Provider:  uc.provider.Name(),
		EventID:   ev.ID,
		EventType: ev.Type,
		Payload:   ev.Payload,
		CreatedAt: uc.now(),
	}
	isNew, err := uc.events.Record(ctx, record)
	if err != nil {
		return nil, err
	}
	if !isNew {
		uc.log.Info().Str("event_id", ev.ID).Str("type", ev.Type).Msg("webhook duplicado")
		return &dto.WebhookResponse{Received: true, Duplicate: true}, nil
	}

	procErr := uc.process(ctx, ev)
	msg := ""
	if procErr != nil {
		msg = procErr.Error()
		uc.log.Error().Err(procErr).Str("event_id", ev.ID).Str("type", ev.Type).Msg("error procesando webhook")
	}
	if err := uc.events.MarkProcessed(ctx, record.ID, msg); err != nil {
		uc.log.Error().Err(err).Str("event_id", ev.ID).Msg("no se pudo marcar el evento")
	}
	if procErr != nil {
		return nil, procErr
	}
	return &dto.WebhookResponse{Received: true}, nil
}

func (uc *UseCase) process(ctx context.Context, ev *Event) error {
	switch ev.Type {
	case EventCheckoutCompleted:
		s := ev.Session
		if s == nil || !s.Paid() {
			return nil
		}
		meta, err := parseMetadata(s.Metadata)
		if err != nil {
			return err
		}
		ref := s.PaymentIntentID
		if ref == "" {
			ref = s.ID
		}
		pay := newCompletedPayment(meta, entity.MethodCheckout, ref, s.Amount, s.Currency, uc.now(), ev.Payload)
		created, err := uc.payments.Create(ctx, pay)
		if err != nil {
			return err
		}
		uc.log.Info().Bool("nuevo", created).Int64("empresa_id", meta.companyID).Str("referencia", ref).Msg("pago registrado por webhook")
		return nil
	default:
		return nil
	}
}

// History pagos de la empresa del cliente; el personal con permiso ve todos.
func (uc *UseCase) History(ctx context.Context, p dto.Principal) (*dto.PaymentListResponse, error) {
	var (
		list []*entity.Payment
		err  error
	)
	switch {
	case access.Can(p.Rol, access.ViewAllPayments):
		list, err = uc.payments.ListAll(ctx)
	case p.IsClient():
		companyID, ok := p.CompanyID()
		if !ok {
			return nil, domain.ErrForbidden
		}
		list, err = uc.payments.ListByCompany(ctx, companyID)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, pay := range list {
		items = append(items, toPaymentResponse(pay))
	}
	return &dto.PaymentListResponse{Pagos: items}, nil
}

func (uc *UseCase) prepare(p dto.Principal, planCode string) (entity.Plan, int64, error) {
	companyID, ok := p.CompanyID()
	if !p.IsClient() || !ok {
		return entity.Plan{}, 0, domain.ErrForbidden
	}
	plan, ok := entity.PlanByCode(strings.ToLower(strings.TrimSpace(planCode)))
	if !ok {
		return entity.Plan{}, 0, domain.ErrUnknownPlan
	}
	if uc.provider == nil {
		return entity.Plan{}, 0, domain.ErrPaymentProviderUnset
	}
	return plan, companyID, nil
}

type paymentMeta struct {
	plan      entity.Plan
	companyID int64
	userID    *int64
}

func metadataFor(plan entity.Plan, companyID, userID int64) map[string]string {
	return map[string]string{
		MetaPlan:      plan.Code,
		MetaCompanyID: strconv.FormatInt(companyID, 10),
		MetaUserID:    strconv.FormatInt(userID, 10),
	}
}

func parseMetadata(md map[string]string) (paymentMeta, error) {
	var m paymentMeta
	plan, ok := entity.PlanByCode(md[MetaPlan])
	if !ok {
		return m, domain.ErrUnknownPlan
	}
	companyID, err := strconv.ParseInt(md[MetaCompanyID], 10, 64)
	if err != nil || companyID <= 0 {
		return m, fmt.Errorf("%w: metadata sin empresa_id", domain.ErrInvalidInput)
	}
	m.plan = plan
	m.companyID = companyID
	if uid, err := strconv.ParseInt(md[MetaUserID], 10, 64); err == nil && uid > 0 {
		m.userID = &uid
	}
	return m, nil
}

// newCompletedPayment construye el pago completado de ambos caminos (confirmación y webhook),
// de modo que la expiración siempre es fecha de pago + días del plan.
func newCompletedPayment(meta paymentMeta, method, reference string, amountCents int64, currency string, paidAt time.Time, raw []byte) *entity.Payment {
	amount := meta.plan.Price
	if amountCents > 0 {
		amount = decimal.New(amountCents, -2)
	}
	if currency == "" {
		currency = meta.plan.Currency
	}
	return &entity.Payment{
		CompanyID:    meta.companyID,
		UserID:       meta.userID,
		Amount:       amount,
		Currency:     strings.ToUpper(currency),
		Method:       method,
		Reference:    reference,
		Status:       entity.PaymentCompleted,
		DaysAdded:    meta.plan.Days,
		Plan:         meta.plan.Code,
		PaidAt:       paidAt,
		ExpiresAt:    meta.plan.ExpiresAt(paidAt),
		ProviderData: raw,
	}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:              p.ID,
		EmpresaID:       p.CompanyID,
		UsuarioID:       p.UserID,
		Monto:           p.Amount,
		Moneda:          p.Currency,
		MetodoPago:      p.Method,
		ReferenciaPago:  p.Reference,
		Estatus:         p.Status,
		DiasAgregados:   p.DaysAdded,
		TipoPlan:        p.Plan,
		FechaPago:       p.PaidAt,
		FechaExpiracion: p.ExpiresAt,
	}
}
