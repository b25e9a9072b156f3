package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/application/usecase"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// TicketHandler tickets de soporte y su chat.
type TicketHandler struct {
	uc  *usecase.TicketUseCase
	log *logger.Logger
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *usecase.TicketUseCase, log *logger.Logger) *TicketHandler {
	return &TicketHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar tickets
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TicketListResponse
// @Router       /tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Abrir ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTicketRequest  true  "Asunto, descripción y prioridad"
// @Success      201   {object}  dto.TicketResponse
// @Failure      403   {object}  dto.MembershipErrorResponse
// @Router       /tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                      true  "ID del ticket"
// @Param        body  body  dto.UpdateTicketRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TicketResponse
// @Router       /tickets/{id} [put]
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.UpdateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetPrincipal(c), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ticket
// @Tags         tickets
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del ticket"
// @Success      204
// @Router       /tickets/{id} [delete]
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Messages godoc
// @Summary      Mensajes de un ticket
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        ticketId  path  int  true  "ID del ticket"
// @Success      200  {object}  dto.MessageListResponse
// @Router       /chat/{ticketId} [get]
func (h *TicketHandler) Messages(c *fiber.Ctx) error {
	id, err := paramID(c, "ticketId")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Messages(c.UserContext(), GetPrincipal(c), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SendMessage godoc
// @Summary      Enviar mensaje
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SendMessageRequest  true  "Ticket y mensaje"
// @Success      201   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /chat/enviar [post]
func (h *TicketHandler) SendMessage(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SendMessage(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
