package entity

import "time"

// Prioridades de ticket.
const (
	PriorityLow    = "baja"
	PriorityMedium = "media"
	PriorityHigh   = "alta"
)

// Estatus de ticket.
const (
	TicketOpen       = "abierto"
	TicketInProgress = "en_proceso"
	TicketClosed     = "cerrado"
)

// ValidPriority informa si la prioridad pertenece al catálogo.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ValidTicketStatus informa si el estatus pertenece al catálogo.
func ValidTicketStatus(s string) bool {
	return s == TicketOpen || s == TicketInProgress || s == TicketClosed
}

// Ticket solicitud de soporte abierta por un usuario cliente.
type Ticket struct {
	ID          int64
	ClientID    int64
	CompanyID   int64
	Subject     string
	Description string
	Priority    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TicketMessage mensaje del chat de un ticket (cliente o soporte).
type TicketMessage struct {
	ID        int64
	TicketID  int64
	UserID    int64
	Role      string
	UserName  string
	Message   string
	CreatedAt time.Time
}
