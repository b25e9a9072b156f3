package payments

import "context"

// Claves de metadata que viajan con el PaymentIntent y la sesión de Checkout.
const (
	MetaPlan      = "plan"
	MetaCompanyID = "empresa_id"
	MetaUserID    = "usuario_id"
)

// Tipos de evento del proveedor que se procesan.
const (
	EventCheckoutCompleted = "checkout.session.completed"
)

// Intent PaymentIntent del proveedor (montos en centavos).
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
	Metadata     map[string]string
}

// Succeeded informa si el proveedor ya cobró el intento.
func (i *Intent) Succeeded() bool {
	return i != nil && i.Status == "succeeded"
}

// CheckoutSession sesión de Checkout alojada por el proveedor.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentIntentID string
	PaymentStatus   string
	Amount          int64
	Currency        string
	Metadata        map[string]string
}

// Paid informa si la sesión terminó con el cobro realizado.
func (s *CheckoutSession) Paid() bool {
	return s != nil && s.PaymentStatus == "paid"
}

// IntentParams parámetros para crear un PaymentIntent.
type IntentParams struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

// CheckoutParams parámetros para crear una sesión de Checkout de un solo cobro.
type CheckoutParams struct {
	Amount      int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// Event evento verificado del webhook. Session solo viene en eventos de Checkout.
type Event struct {
	ID      string
	Type    string
	Payload []byte
	Session *CheckoutSession
}

// Provider puerto hacia el proveedor de pagos (Stripe).
type Provider interface {
	Name() string
	CreatePaymentIntent(ctx context.Context, in IntentParams) (*Intent, error)
	GetPaymentIntent(ctx context.Context, id string) (*Intent, error)
	CreateCheckoutSession(ctx context.Context, in CheckoutParams) (*CheckoutSession, error)
	// ParseWebhook verifica la firma y decodifica el evento; devuelve domain.ErrInvalidSignature si no es válida.
	ParseWebhook(payload []byte, signature string) (*Event, error)
}
