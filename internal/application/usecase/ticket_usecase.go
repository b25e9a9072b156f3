package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/access"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
)

// TicketUseCase tickets de soporte y su chat por polling.
type TicketUseCase struct {
	repo         repository.TicketRepository
	clientRepo   repository.ClientUserRepository
	internalRepo repository.InternalUserRepository
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(repo repository.TicketRepository, clientRepo repository.ClientUserRepository, internalRepo repository.InternalUserRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo, clientRepo: clientRepo, internalRepo: internalRepo}
}

// List devuelve los tickets de la empresa del cliente; el personal interno ve todos.
func (uc *TicketUseCase) List(ctx context.Context, p dto.Principal) (*dto.TicketListResponse, error) {
	var (
		list []*entity.Ticket
		err  error
	)
	if p.IsClient() {
		companyID, ok := p.CompanyID()
		if !ok {
			return nil, domain.ErrForbidden
		}
		list, err = uc.repo.ListByCompany(ctx, companyID)
	} else {
		list, err = uc.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, entityToTicketResponse(t))
	}
	return &dto.TicketListResponse{Tickets: items}, nil
}

// Create abre un ticket a nombre del cliente autenticado.
func (uc *TicketUseCase) Create(ctx context.Context, p dto.Principal, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	companyID, ok := p.CompanyID()
	if !p.IsClient() || !ok {
		return nil, domain.ErrForbidden
	}
	subject := strings.TrimSpace(in.Asunto)
	description := strings.TrimSpace(in.Descripcion)
	if subject == "" || description == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := strings.ToLower(strings.TrimSpace(in.Prioridad))
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Ticket{
		ClientID:    p.ID,
		CompanyID:   companyID,
		Subject:     subject,
		Description: description,
		Priority:    priority,
		Status:      entity.TicketOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	resp := entityToTicketResponse(t)
	return &resp, nil
}

// Update edita un ticket. Solo el personal interno puede cambiar el estatus.
func (uc *TicketUseCase) Update(ctx context.Context, p dto.Principal, id int64, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	t, err := uc.visible(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if in.Asunto != nil {
		if s := strings.TrimSpace(*in.Asunto); s != "" {
			t.Subject = s
		}
	}
	if in.Descripcion != nil {
		if s := strings.TrimSpace(*in.Descripcion); s != "" {
			t.Description = s
		}
	}
	if in.Prioridad != nil {
		pr := strings.ToLower(strings.TrimSpace(*in.Prioridad))
		if !entity.ValidPriority(pr) {
			return nil, domain.ErrInvalidInput
		}
		t.Priority = pr
	}
	if in.Estatus != nil {
		if !access.Can(p.Rol, access.ManageTickets) {
			return nil, domain.ErrForbidden
		}
		st := strings.ToLower(strings.TrimSpace(*in.Estatus))
		if !entity.ValidTicketStatus(st) {
			return nil, domain.ErrInvalidInput
		}
		t.Status = st
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	resp := entityToTicketResponse(t)
	return &resp, nil
}

// Delete elimina un ticket visible para el principal.
func (uc *TicketUseCase) Delete(ctx context.Context, p dto.Principal, id int64) error {
	if _, err := uc.visible(ctx, p, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// Messages historial del chat de un ticket en orden cronológico.
func (uc *TicketUseCase) Messages(ctx context.Context, p dto.Principal, ticketID int64) (*dto.MessageListResponse, error) {
	if _, err := uc.visible(ctx, p, ticketID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListMessages(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MessageResponse, 0, len(list))
	for _, m := range list {
		items = append(items, entityToMessageResponse(m))
	}
	return &dto.MessageListResponse{Mensajes: items}, nil
}

// SendMessage agrega un mensaje al chat. Un ticket cerrado no acepta mensajes.
func (uc *TicketUseCase) SendMessage(ctx context.Context, p dto.Principal, in dto.SendMessageRequest) (*dto.MessageResponse, error) {
	text := strings.TrimSpace(in.Mensaje)
	if in.TicketID <= 0 || text == "" {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.visible(ctx, p, in.TicketID)
	if err != nil {
		return nil, err
	}
	if t.Status == entity.TicketClosed {
		return nil, domain.ErrConflict
	}
	m := &entity.TicketMessage{
		TicketID:  t.ID,
		UserID:    p.ID,
		Role:      p.Rol,
		UserName:  uc.displayName(ctx, p),
		Message:   text,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.AddMessage(ctx, m); err != nil {
		return nil, err
	}
	resp := entityToMessageResponse(m)
	return &resp, nil
}

func (uc *TicketUseCase) visible(ctx context.Context, p dto.Principal, id int64) (*entity.Ticket, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil || !ownedBy(p, t.CompanyID) {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// displayName nombre del remitente; si no se encuentra se usa el email.
func (uc *TicketUseCase) displayName(ctx context.Context, p dto.Principal) string {
	if p.IsClient() {
		if u, err := uc.clientRepo.GetByID(ctx, p.ID); err == nil && u != nil {
			return strings.TrimSpace(u.FirstName + " " + u.LastName)
		}
		return p.Email
	}
	if u, err := uc.internalRepo.FindByEmail(ctx, p.Email); err == nil && u != nil {
		return strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	return p.Email
}

func entityToTicketResponse(t *entity.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:          t.ID,
		ClienteID:   t.ClientID,
		EmpresaID:   t.CompanyID,
		Asunto:      t.Subject,
		Descripcion: t.Description,
		Prioridad:   t.Priority,
		Estatus:     t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func entityToMessageResponse(m *entity.TicketMessage) dto.MessageResponse {
	return dto.MessageResponse{
		ID:            m.ID,
		TicketID:      m.TicketID,
		UsuarioID:     m.UserID,
		Rol:           m.Role,
		NombreUsuario: m.UserName,
		Mensaje:       m.Message,
		CreatedAt:     m.CreatedAt,
	}
}
