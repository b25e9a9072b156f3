package entity

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago. Solo PaymentCompleted otorga membresía.
const (
	PaymentPending   = "pendiente"
	PaymentCompleted = "completado"
	PaymentFailed    = "fallido"
)

// Métodos de pago registrados.
const (
	MethodCard     = "tarjeta"
	MethodCheckout = "stripe_checkout"
)

// Plan plan de membresía del catálogo estático.
type Plan struct {
	Code        string          `json:"codigo"`
	Name        string          `json:"nombre"`
	Days        int             `json:"dias"`
	Price       decimal.Decimal `json:"precio"`
	Currency    string          `json:"moneda"`
	Description string          `json:"descripcion"`
}

// AmountCents monto en la unidad mínima de la moneda (centavos).
func (p Plan) AmountCents() int64 {
	return p.Price.Shift(2).IntPart()
}

// ExpiresAt fecha de expiración de un pago de este plan realizado en paidAt.
func (p Plan) ExpiresAt(paidAt time.Time) time.Time {
	return paidAt.AddDate(0, 0, p.Days)
}

var plans = map[string]Plan{
	"mensual": {
		Code: "mensual", Name: "Plan Mensual", Days: 30, Price: decimal.NewFromInt(299), Currency: "MXN",
		Description: "30 días de acceso completo",
	},
	"trimestral": {
		Code: "trimestral", Name: "Plan Trimestral", Days: 90, Price: decimal.NewFromInt(799), Currency: "MXN",
		Description: "90 días de acceso completo",
	},
	"anual": {
		Code: "anual", Name: "Plan Anual", Days: 365, Price: decimal.NewFromInt(2999), Currency: "MXN",
		Description: "365 días de acceso completo",
	},
}

// PlanByCode busca un plan del catálogo.
func PlanByCode(code string) (Plan, bool) {
	p, ok := plans[code]
	return p, ok
}

// Plans catálogo completo ordenado por duración.
func Plans() []Plan {
	out := make([]Plan, 0, len(plans))
	for _, p := range plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}

// Payment pago de membresía (pagos). Append-only.
type Payment struct {
	ID           int64
	CompanyID    int64
	UserID       *int64
	Amount       decimal.Decimal
	Currency     string
	Method       string
	Reference    string // PaymentIntent (o sesión de Checkout); único
	Status       string
	DaysAdded    int
	Plan         string
	PaidAt       time.Time
	ExpiresAt    time.Time
	ProviderData []byte // JSONB datos_pago
}

// GrantsAccessAt informa si el pago otorga membresía en el instante dado.
func (p *Payment) GrantsAccessAt(now time.Time) bool {
	return p != nil && p.Status == PaymentCompleted && p.ExpiresAt.After(now)
}

// WebhookEvent evento recibido del proveedor; (Provider, EventID) es único.
type WebhookEvent struct {
	ID              int64
	Provider        string
	EventID         string
	EventType       string
	Payload         []byte
	ProcessedAt     *time.Time
	ProcessingError string
	CreatedAt       time.Time
}

// ServicePrice precio de un servicio ofertado (precios_servicios).
type ServicePrice struct {
	ID          int64
	Code        string
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	Active      bool
}
