package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/application/membership"
	"github.com/jhoicas/portal-rdp/internal/application/payments"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// SignatureHeader cabecera con la firma del webhook de Stripe.
const SignatureHeader = "Stripe-Signature"

// PaymentHandler pagos de membresía, webhook y estado de la membresía.
type PaymentHandler struct {
	uc         *payments.UseCase
	membership *membership.Service
	log        *logger.Logger
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payments.UseCase, ms *membership.Service, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, membership: ms, log: log}
}

// CreatePaymentIntent godoc
// @Summary      Crear PaymentIntent para un plan
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePaymentIntentRequest  true  "Plan: mensual, trimestral o anual"
// @Success      200   {object}  dto.CreatePaymentIntentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /stripe/create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var in dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreatePaymentIntent(c.UserContext(), GetPrincipal(c), in.Plan)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ConfirmPayment godoc
// @Summary      Confirmar pago y registrar membresía
// @Description  Consulta el PaymentIntent en Stripe; repetir la confirmación no duplica el pago.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ConfirmPaymentRequest  true  "paymentIntentId"
// @Success      200   {object}  dto.ConfirmPaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /stripe/confirm-payment [post]
func (h *PaymentHandler) ConfirmPayment(c *fiber.Ctx) error {
	var in dto.ConfirmPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ConfirmPayment(c.UserContext(), GetPrincipal(c), in.PaymentIntentID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateCheckoutSession godoc
// @Summary      Crear sesión de Checkout
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CheckoutSessionRequest  true  "Plan"
// @Success      200   {object}  dto.CheckoutSessionResponse
// @Router       /stripe/create-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var in dto.CheckoutSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCheckoutSession(c.UserContext(), GetPrincipal(c), in.Plan)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Webhook godoc
// @Summary      Webhook de Stripe
// @Description  Cuerpo crudo firmado; eventos repetidos se reconocen sin efectos.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Firma del evento"
// @Success      200  {object}  dto.WebhookResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /pagos/webhook [post]
func (h *PaymentHandler) Webhook(c *fiber.Ctx) error {
	// fasthttp reutiliza el buffer del cuerpo
	payload := append([]byte(nil), c.Body()...)
	out, err := h.uc.HandleWebhook(c.UserContext(), payload, c.Get(SignatureHeader))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de pagos
// @Tags         pagos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PaymentListResponse
// @Router       /pagos/historial [get]
func (h *PaymentHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// MembershipStatus godoc
// @Summary      Estado de la membresía
// @Tags         membresia
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MembershipStatusResponse
// @Router       /membresia/estado [get]
func (h *PaymentHandler) MembershipStatus(c *fiber.Ctx) error {
	out, err := h.membership.Status(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
