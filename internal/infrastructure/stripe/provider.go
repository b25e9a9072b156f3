// Package stripe adapta el SDK de Stripe al puerto payments.Provider.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/jhoicas/portal-rdp/internal/application/payments"
	"github.com/jhoicas/portal-rdp/internal/domain"
)

var _ payments.Provider = (*Provider)(nil)

// Provider cliente de Stripe con el secreto de firma de webhooks.
type Provider struct {
	api           *client.API
	webhookSecret string
	tolerance     time.Duration
}

// New construye el adaptador. backends permite apuntar a un servidor de pruebas; nil usa los de Stripe.
func New(secretKey, webhookSecret string, backends *stripego.Backends) *Provider {
	return &Provider{
		api:           client.New(secretKey, backends),
		webhookSecret: webhookSecret,
		tolerance:     webhook.DefaultTolerance,
	}
}

func (p *Provider) Name() string { return "stripe" }

// CreatePaymentIntent crea un PaymentIntent con métodos de pago automáticos.
func (p *Provider) CreatePaymentIntent(ctx context.Context, in payments.IntentParams) (*payments.Intent, error) {
	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(in.Amount),
		Currency: stripego.String(strings.ToLower(in.Currency)),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: crear payment intent: %w", err)
	}
	return toIntent(pi), nil
}

// GetPaymentIntent consulta el estado actual del intento en Stripe.
func (p *Provider) GetPaymentIntent(ctx context.Context, id string) (*payments.Intent, error) {
	params := &stripego.PaymentIntentParams{}
	params.Context = ctx
	pi, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		var se *stripego.Error
		if errors.As(err, &se) && se.HTTPStatusCode == http.StatusNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("stripe: consultar payment intent: %w", err)
	}
	return toIntent(pi), nil
}

// CreateCheckoutSession crea una sesión de Checkout de un solo cobro. La metadata se copia
// también al PaymentIntent para que ambos caminos la encuentren.
func (p *Provider) CreateCheckoutSession(ctx context.Context, in payments.CheckoutParams) (*payments.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		SuccessURL:         stripego.String(in.SuccessURL),
		CancelURL:          stripego.String(in.CancelURL),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripego.String(strings.ToLower(in.Currency)),
					UnitAmount: stripego.Int64(in.Amount),
					ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripego.String(in.ProductName),
					},
				},
				Quantity: stripego.Int64(1),
			},
		},
		PaymentIntentData: &stripego.CheckoutSessionPaymentIntentDataParams{
			Metadata: in.Metadata,
		},
	}
	params.Context = ctx
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	s, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: crear sesión de checkout: %w", err)
	}
	return toSession(s), nil
}

// ParseWebhook verifica la cabecera Stripe-Signature contra el secreto y decodifica el evento.
// Los eventos de otra versión de API se aceptan: solo se leen campos estables de la sesión.
func (p *Provider) ParseWebhook(payload []byte, signature string) (*payments.Event, error) {
	if p.webhookSecret == "" || signature == "" {
		return nil, domain.ErrInvalidSignature
	}
	ev, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret, webhook.ConstructEventOptions{
		Tolerance:                p.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	out := &payments.Event{ID: ev.ID, Type: string(ev.Type), Payload: payload}
	if ev.Type == stripego.EventTypeCheckoutSessionCompleted && ev.Data != nil {
		var s stripego.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("stripe: decodificar sesión: %w", err)
		}
		out.Session = toSession(&s)
	}
	return out, nil
}

func toIntent(pi *stripego.PaymentIntent) *payments.Intent {
	return &payments.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Metadata:     pi.Metadata,
	}
}

func toSession(s *stripego.CheckoutSession) *payments.CheckoutSession {
	out := &payments.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		Amount:        s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	return out
}
