package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo tickets de soporte y mensajes del chat.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador.
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketSelect = `
	SELECT id, COALESCE(cliente_id, 0), COALESCE(empresa_id, 0), asunto, descripcion,
		COALESCE(prioridad, 'media'), COALESCE(status, 'abierto'),
		COALESCE(created_at, CURRENT_TIMESTAMP), COALESCE(updated_at, CURRENT_TIMESTAMP)
	FROM tickets`

func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (cliente_id, empresa_id, asunto, descripcion, prioridad, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		t.ClientID, t.CompanyID, t.Subject, t.Description, t.Priority, t.Status, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *TicketRepo) GetByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	t, err := scanTicket(r.q.QueryRow(ctx, ticketSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

func (r *TicketRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Ticket, error) {
	return r.list(ctx, ticketSelect+` WHERE empresa_id = $1 ORDER BY created_at DESC`, companyID)
}

func (r *TicketRepo) ListAll(ctx context.Context) ([]*entity.Ticket, error) {
	return r.list(ctx, ticketSelect+` ORDER BY created_at DESC`)
}

func (r *TicketRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Ticket, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	var out []*entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	query := `
		UPDATE tickets SET asunto = $2, descripcion = $3, prioridad = $4, status = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, t.ID, t.Subject, t.Description, t.Priority, t.Status, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el ticket; los mensajes caen por ON DELETE CASCADE.
func (r *TicketRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TicketRepo) AddMessage(ctx context.Context, m *entity.TicketMessage) error {
	query := `
		INSERT INTO ticket_mensajes (ticket_id, usuario_id, rol, nombre_usuario, mensaje, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, m.TicketID, m.UserID, m.Role, m.UserName, m.Message, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert mensaje: %w", err)
	}
	return nil
}

// ListMessages mensajes del ticket en orden cronológico.
func (r *TicketRepo) ListMessages(ctx context.Context, ticketID int64) ([]*entity.TicketMessage, error) {
	query := `
		SELECT id, ticket_id, usuario_id, rol, COALESCE(nombre_usuario, ''), mensaje, COALESCE(created_at, CURRENT_TIMESTAMP)
		FROM ticket_mensajes
		WHERE ticket_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list mensajes: %w", err)
	}
	defer rows.Close()
	var out []*entity.TicketMessage
	for rows.Next() {
		var m entity.TicketMessage
		if err := rows.Scan(&m.ID, &m.TicketID, &m.UserID, &m.Role, &m.UserName, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mensaje: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	err := row.Scan(&t.ID, &t.ClientID, &t.CompanyID, &t.Subject, &t.Description, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
