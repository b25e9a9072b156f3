package repository

import (
	"context"

	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

// TicketRepository puerto de persistencia para tickets y su chat.
type TicketRepository interface {
	Create(ctx context.Context, t *entity.Ticket) error
	GetByID(ctx context.Context, id int64) (*entity.Ticket, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Ticket, error)
	ListAll(ctx context.Context) ([]*entity.Ticket, error)
	Update(ctx context.Context, t *entity.Ticket) error
	Delete(ctx context.Context, id int64) error
	AddMessage(ctx context.Context, m *entity.TicketMessage) error
	ListMessages(ctx context.Context, ticketID int64) ([]*entity.TicketMessage, error)
}
