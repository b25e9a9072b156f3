package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanResponse plan de membresía publicado al SPA.
type PlanResponse struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Dias        int             `json:"dias"`
	Precio      decimal.Decimal `json:"precio"`
	Moneda      string          `json:"moneda"`
	Descripcion string          `json:"descripcion"`
}

// PlanListResponse catálogo de planes.
type PlanListResponse struct {
	Planes []PlanResponse `json:"planes"`
}

// ServicePriceResponse precio de un servicio.
type ServicePriceResponse struct {
	ID          int64           `json:"id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Moneda      string          `json:"moneda"`
}

// ServicePriceListResponse catálogo de precios.
type ServicePriceListResponse struct {
	Precios []ServicePriceResponse `json:"precios"`
}

// CreatePaymentIntentRequest solicitud de intento de pago por plan.
type CreatePaymentIntentRequest struct {
	Plan string `json:"plan" validate:"required"`
}

// CreatePaymentIntentResponse datos para que el SPA confirme con Stripe.js.
type CreatePaymentIntentResponse struct {
	ClientSecret    string          `json:"clientSecret"`
	PaymentIntentID string          `json:"paymentIntentId"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Plan            string          `json:"plan"`
}

// ConfirmPaymentRequest confirmación tras el pago en el navegador.
type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}

// ConfirmPaymentResponse resultado de registrar el pago.
type ConfirmPaymentResponse struct {
	Success bool            `json:"success"`
	Pago    PaymentResponse `json:"pago"`
}

// CheckoutSessionRequest solicitud de sesión de Stripe Checkout.
type CheckoutSessionRequest struct {
	Plan string `json:"plan" validate:"required"`
}

// CheckoutSessionResponse URL de redirección a Checkout.
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID              int64           `json:"id"`
	EmpresaID       int64           `json:"empresa_id"`
	UsuarioID       *int64          `json:"usuario_id"`
	Monto           decimal.Decimal `json:"monto"`
	Moneda          string          `json:"moneda"`
	MetodoPago      string          `json:"metodo_pago"`
	ReferenciaPago  string          `json:"referencia_pago"`
	Estatus         string          `json:"estatus"`
	DiasAgregados   int             `json:"dias_agregados"`
	TipoPlan        string          `json:"tipo_plan"`
	FechaPago       time.Time       `json:"fecha_pago"`
	FechaExpiracion time.Time       `json:"fecha_expiracion"`
}

// PaymentListResponse historial de pagos.
type PaymentListResponse struct {
	Pagos []PaymentResponse `json:"pagos"`
}

// MembershipStatusResponse estado de la membresía de la empresa.
type MembershipStatusResponse struct {
	Activa          bool       `json:"activa"`
	Expirada        bool       `json:"expirada"`
	FechaExpiracion *time.Time `json:"fecha_expiracion"`
	DiasRestantes   int        `json:"dias_restantes"`
	TipoPlan        string     `json:"tipo_plan,omitempty"`
}

// WebhookResponse acuse de recibo de un evento del proveedor.
type WebhookResponse struct {
	Received  bool `json:"received"`
	Duplicate bool `json:"duplicate,omitempty"`
}
