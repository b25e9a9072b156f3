package payments

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

// ─── Fakes ────────────────────────────────────────────────────────────────

type fakeProvider struct {
	intents  map[string]*Intent
	sessions int
	lastMeta map[string]string
}

func (f *fakeProvider) Name() string { return "stripe" }

func (f *fakeProvider) CreatePaymentIntent(_ context.Context, in IntentParams) (*Intent, error) {
	id := "pi_" + in.Metadata[MetaCompanyID]
	f.lastMeta = in.Metadata
	pi := &Intent{ID: id, ClientSecret: id + "_secret", Status: "requires_payment_method", Amount: in.Amount, Currency: in.Currency, Metadata: in.Metadata}
	f.intents[id] = pi
	return pi, nil
}

func (f *fakeProvider) GetPaymentIntent(_ context.Context, id string) (*Intent, error) {
	pi, ok := f.intents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return pi, nil
}

func (f *fakeProvider) CreateCheckoutSession(_ context.Context, in CheckoutParams) (*CheckoutSession, error) {
	f.sessions++
	f.lastMeta = in.Metadata
	return &CheckoutSession{ID: "cs_test", URL: "https://checkout.stripe.test/cs_test", Metadata: in.Metadata}, nil
}

// ParseWebhook acepta la firma "ok"; el payload es la sesión serializada.
func (f *fakeProvider) ParseWebhook(payload []byte, signature string) (*Event, error) {
	if signature != "ok" {
		return nil, domain.ErrInvalidSignature
	}
	var body struct {
		ID      string          `json:"id"`
		Type    string          `json:"type"`
		Session CheckoutSession `json:"session"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, err
	}
	return &Event{ID: body.ID, Type: body.Type, Payload: payload, Session: &body.Session}, nil
}

type memPayments struct {
	rows   []*entity.Payment
	nextID int64
}

func (m *memPayments) Create(_ context.Context, p *entity.Payment) (bool, error) {
	for _, r := range m.rows {
		if r.Reference == p.Reference {
			*p = *r
			return false, nil
		}
	}
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.rows = append(m.rows, &cp)
	return true, nil
}

func (m *memPayments) LatestCompleted(_ context.Context, companyID int64) (*entity.Payment, error) {
	var best *entity.Payment
	for _, r := range m.rows {
		if r.CompanyID == companyID && r.Status == entity.PaymentCompleted && (best == nil || r.ExpiresAt.After(best.ExpiresAt)) {
			best = r
		}
	}
	return best, nil
}

func (m *memPayments) ListByCompany(_ context.Context, companyID int64) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, r := range m.rows {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memPayments) ListAll(context.Context) ([]*entity.Payment, error) { return m.rows, nil }

type memEvents struct {
	byKey  map[string]*entity.WebhookEvent
	nextID int64
}

func (m *memEvents) Record(_ context.Context, ev *entity.WebhookEvent) (bool, error) {
	key := ev.Provider + "/" + ev.EventID
	if prev, ok := m.byKey[key]; ok {
		ev.ID = prev.ID
		return prev.ProcessedAt == nil || prev.ProcessingError != "", nil
	}
	m.nextID++
	ev.ID = m.nextID
	m.byKey[key] = ev
	return true, nil
}

func (m *memEvents) MarkProcessed(_ context.Context, id int64, processingErr string) error {
	for _, ev := range m.byKey {
		if ev.ID == id {
			now := time.Now()
			ev.ProcessedAt = &now
			ev.ProcessingError = processingErr
		}
	}
	return nil
}

var paidAt = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

type fixture struct {
	uc       *UseCase
	provider *fakeProvider
	payments *memPayments
	events   *memEvents
}

func newFixture() fixture {
	f := fixture{
		provider: &fakeProvider{intents: map[string]*Intent{}},
		payments: &memPayments{},
		events:   &memEvents{byKey: map[string]*entity.WebhookEvent{}},
	}
	f.uc = NewUseCase(f.provider, f.payments, f.events, Config{Currency: "mxn", SuccessURL: "http://spa/ok", CancelURL: "http://spa/cancel"}, nil)
	f.uc.now = func() time.Time { return paidAt }
	return f
}

func cliente(companyID int64) dto.Principal {
	return dto.Principal{ID: 70, Email: "c@acme.mx", Rol: entity.RoleCliente, EmpresaID: &companyID}
}

func checkoutEvent(t *testing.T, eventID, sessionID, intentID string, companyID, plan string) []byte {
	t.Helper()
	body := map[string]any{
		"id":   eventID,
		"type": EventCheckoutCompleted,
		"session": CheckoutSession{
			ID:              sessionID,
			PaymentIntentID: intentID,
			PaymentStatus:   "paid",
			Amount:          29900,
			Currency:        "mxn",
			Metadata:        map[string]string{MetaPlan: plan, MetaCompanyID: companyID, MetaUserID: "70"},
		},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return raw
}

// ─── Creación ─────────────────────────────────────────────────────────────

func TestCreatePaymentIntent_MetadataYMonto(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.CreatePaymentIntent(context.Background(), cliente(5), "Trimestral")
	require.NoError(t, err)
	assert.Equal(t, "pi_5", resp.PaymentIntentID)
	assert.Equal(t, "pi_5_secret", resp.ClientSecret)
	assert.Equal(t, int64(79900), f.provider.intents["pi_5"].Amount)
	assert.Equal(t, map[string]string{MetaPlan: "trimestral", MetaCompanyID: "5", MetaUserID: "70"}, f.provider.lastMeta)
}

func TestCreatePaymentIntent_PlanInvalido(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreatePaymentIntent(context.Background(), cliente(5), "semanal")
	assert.ErrorIs(t, err, domain.ErrUnknownPlan)
}

func TestCreatePaymentIntent_SinProveedor(t *testing.T) {
	uc := NewUseCase(nil, &memPayments{}, &memEvents{byKey: map[string]*entity.WebhookEvent{}}, Config{}, nil)
	_, err := uc.CreatePaymentIntent(context.Background(), cliente(5), "mensual")
	assert.ErrorIs(t, err, domain.ErrPaymentProviderUnset)
}

func TestCreateCheckoutSession(t *testing.T) {
	f := newFixture()
	resp, err := f.uc.CreateCheckoutSession(context.Background(), cliente(5), "anual")
	require.NoError(t, err)
	assert.Equal(t, "cs_test", resp.SessionID)
	assert.NotEmpty(t, resp.URL)
	assert.Equal(t, "anual", f.provider.lastMeta[MetaPlan])
}

// ─── Confirmación ─────────────────────────────────────────────────────────

func TestConfirmPayment_RegistraPagoCompletado(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreatePaymentIntent(context.Background(), cliente(5), "mensual")
	require.NoError(t, err)
	f.provider.intents["pi_5"].Status = "succeeded"

	resp, err := f.uc.ConfirmPayment(context.Background(), cliente(5), "pi_5")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "299", resp.Pago.Monto.String())
	assert.Equal(t, "MXN", resp.Pago.Moneda)
	assert.Equal(t, entity.PaymentCompleted, resp.Pago.Estatus)
	assert.Equal(t, entity.MethodCard, resp.Pago.MetodoPago)
	assert.Equal(t, 30, resp.Pago.DiasAgregados)
	assert.Equal(t, time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC), resp.Pago.FechaExpiracion)
	require.Len(t, f.payments.rows, 1)

	again, err := f.uc.ConfirmPayment(context.Background(), cliente(5), "pi_5")
	require.NoError(t, err)
	assert.Equal(t, resp.Pago.ID, again.Pago.ID)
	assert.Len(t, f.payments.rows, 1, "confirmar dos veces no duplica")
}

func TestConfirmPayment_NoCompletado(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreatePaymentIntent(context.Background(), cliente(5), "mensual")
	require.NoError(t, err)

	_, err = f.uc.ConfirmPayment(context.Background(), cliente(5), "pi_5")
	assert.ErrorIs(t, err, domain.ErrPaymentNotSucceeded)
	assert.Empty(t, f.payments.rows)
}

func TestConfirmPayment_OtraEmpresa(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreatePaymentIntent(context.Background(), cliente(5), "mensual")
	require.NoError(t, err)
	f.provider.intents["pi_5"].Status = "succeeded"

	_, err = f.uc.ConfirmPayment(context.Background(), cliente(6), "pi_5")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.payments.rows)
}

// ─── Webhook ──────────────────────────────────────────────────────────────

func TestHandleWebhook_FirmaInvalida(t *testing.T) {
	f := newFixture()
	_, err := f.uc.HandleWebhook(context.Background(), checkoutEvent(t, "evt_1", "cs_1", "pi_1", "5", "mensual"), "mala")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	assert.Empty(t, f.payments.rows)
	assert.Empty(t, f.events.byKey)
}

func TestHandleWebhook_DuplicadoNoInserta(t *testing.T) {
	f := newFixture()
	payload := checkoutEvent(t, "evt_1", "cs_1", "pi_1", "5", "mensual")

	resp, err := f.uc.HandleWebhook(context.Background(), payload, "ok")
	require.NoError(t, err)
	assert.True(t, resp.Received)
	assert.False(t, resp.Duplicate)

	resp, err = f.uc.HandleWebhook(context.Background(), payload, "ok")
	require.NoError(t, err)
	assert.True(t, resp.Duplicate)
	assert.Len(t, f.payments.rows, 1)

	// Mismo pago con otro id de evento: la referencia única evita el duplicado.
	_, err = f.uc.HandleWebhook(context.Background(), checkoutEvent(t, "evt_2", "cs_1", "pi_1", "5", "mensual"), "ok")
	require.NoError(t, err)
	assert.Len(t, f.payments.rows, 1)
	assert.Equal(t, "pi_1", f.payments.rows[0].Reference)
}

func TestHandleWebhook_SinPaymentIntentUsaSesion(t *testing.T) {
	f := newFixture()
	_, err := f.uc.HandleWebhook(context.Background(), checkoutEvent(t, "evt_9", "cs_9", "", "5", "anual"), "ok")
	require.NoError(t, err)
	require.Len(t, f.payments.rows, 1)
	assert.Equal(t, "cs_9", f.payments.rows[0].Reference)
	assert.Equal(t, entity.MethodCheckout, f.payments.rows[0].Method)
}

func TestHandleWebhook_OtrosEventosSeIgnoran(t *testing.T) {
	f := newFixture()
	payload := []byte(`{"id":"evt_x","type":"customer.created","session":{}}`)

	resp, err := f.uc.HandleWebhook(context.Background(), payload, "ok")
	require.NoError(t, err)
	assert.True(t, resp.Received)
	assert.Empty(t, f.payments.rows)
}

func TestHandleWebhook_MetadataInvalidaPermiteReintento(t *testing.T) {
	f := newFixture()
	payload := checkoutEvent(t, "evt_3", "cs_3", "pi_3", "", "mensual")

	_, err := f.uc.HandleWebhook(context.Background(), payload, "ok")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	ev := f.events.byKey["stripe/evt_3"]
	require.NotNil(t, ev)
	assert.NotEmpty(t, ev.ProcessingError)

	_, err = f.uc.HandleWebhook(context.Background(), payload, "ok")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un evento fallido se vuelve a procesar")
}

// ─── Ambos caminos ────────────────────────────────────────────────────────

func TestConfirmYWebhook_MismaExpiracion(t *testing.T) {
	for _, plan := range entity.Plans() {
		confirm := newFixture()
		_, err := confirm.uc.CreatePaymentIntent(context.Background(), cliente(5), plan.Code)
		require.NoError(t, err)
		confirm.provider.intents["pi_5"].Status = "succeeded"
		viaConfirm, err := confirm.uc.ConfirmPayment(context.Background(), cliente(5), "pi_5")
		require.NoError(t, err)

		hook := newFixture()
		_, err = hook.uc.HandleWebhook(context.Background(), checkoutEvent(t, "evt_"+plan.Code, "cs_"+plan.Code, "pi_"+plan.Code, "5", plan.Code), "ok")
		require.NoError(t, err)
		require.Len(t, hook.payments.rows, 1)
		viaHook := hook.payments.rows[0]

		deltaConfirm := viaConfirm.Pago.FechaExpiracion.Sub(viaConfirm.Pago.FechaPago)
		deltaHook := viaHook.ExpiresAt.Sub(viaHook.PaidAt)
		assert.Equal(t, deltaConfirm, deltaHook, plan.Code)
		assert.Equal(t, plan.Days, viaHook.DaysAdded)
	}
}

func TestConfirmDespuesDeWebhook_UnSoloPago(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreatePaymentIntent(context.Background(), cliente(5), "mensual")
	require.NoError(t, err)
	f.provider.intents["pi_5"].Status = "succeeded"

	_, err = f.uc.HandleWebhook(context.Background(), checkoutEvent(t, "evt_1", "cs_1", "pi_5", "5", "mensual"), "ok")
	require.NoError(t, err)
	resp, err := f.uc.ConfirmPayment(context.Background(), cliente(5), "pi_5")
	require.NoError(t, err)

	require.Len(t, f.payments.rows, 1)
	assert.Equal(t, f.payments.rows[0].ID, resp.Pago.ID)
	assert.Equal(t, entity.MethodCheckout, resp.Pago.MetodoPago, "se devuelve el pago ya registrado")
}

// ─── Historial ────────────────────────────────────────────────────────────

func TestHistory_AlcancePorRol(t *testing.T) {
	f := newFixture()
	for _, c := range []string{"5", "6"} {
		_, err := f.uc.HandleWebhook(context.Background(), checkoutEvent(t, "evt_"+c, "cs_"+c, "pi_"+c, c, "mensual"), "ok")
		require.NoError(t, err)
	}

	own, err := f.uc.History(context.Background(), cliente(5))
	require.NoError(t, err)
	require.Len(t, own.Pagos, 1)
	assert.Equal(t, int64(5), own.Pagos[0].EmpresaID)

	all, err := f.uc.History(context.Background(), dto.Principal{ID: 1, Rol: entity.RoleAdmin})
	require.NoError(t, err)
	ids := []int64{all.Pagos[0].EmpresaID, all.Pagos[1].EmpresaID}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	assert.Equal(t, []int64{5, 6}, ids)

	_, err = f.uc.History(context.Background(), dto.Principal{ID: 2, Rol: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
