package dto

import "time"

// CreateTicketRequest alta de ticket de soporte.
type CreateTicketRequest struct {
	Asunto      string `json:"asunto" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
	Prioridad   string `json:"prioridad"`
}

// UpdateTicketRequest edición de ticket (campos opcionales).
type UpdateTicketRequest struct {
	Asunto      *string `json:"asunto"`
	Descripcion *string `json:"descripcion"`
	Prioridad   *string `json:"prioridad"`
	Estatus     *string `json:"estatus"`
}

// TicketResponse salida de un ticket.
type TicketResponse struct {
	ID          int64     `json:"id"`
	ClienteID   int64     `json:"cliente_id"`
	EmpresaID   int64     `json:"empresa_id"`
	Asunto      string    `json:"asunto"`
	Descripcion string    `json:"descripcion"`
	Prioridad   string    `json:"prioridad"`
	Estatus     string    `json:"estatus"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TicketListResponse listado de tickets.
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}

// SendMessageRequest mensaje de chat.
type SendMessageRequest struct {
	TicketID int64  `json:"ticket_id" validate:"required"`
	Mensaje  string `json:"mensaje" validate:"required"`
}

// MessageResponse mensaje de chat.
type MessageResponse struct {
	ID            int64     `json:"id"`
	TicketID      int64     `json:"ticket_id"`
	UsuarioID     int64     `json:"usuario_id"`
	Rol           string    `json:"rol"`
	NombreUsuario string    `json:"nombre_usuario"`
	Mensaje       string    `json:"mensaje"`
	CreatedAt     time.Time `json:"created_at"`
}

// MessageListResponse historial del chat de un ticket.
type MessageListResponse struct {
	Mensajes []MessageResponse `json:"mensajes"`
}
