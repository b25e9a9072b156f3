package usecase

import (
	"context"

	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

type memCompanies struct {
	byID   map[int64]*entity.Company
	nextID int64
}

func newMemCompanies() *memCompanies { return &memCompanies{byID: map[int64]*entity.Company{}} }

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	m.nextID++
	c.ID = m.nextID
	m.byID[c.ID] = c
	return nil
}
func (m *memCompanies) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	return m.byID[id], nil
}
func (m *memCompanies) GetByRFC(_ context.Context, rfc string) (*entity.Company, error) {
	for _, c := range m.byID {
		if c.RFC == rfc {
			return c, nil
		}
	}
	return nil, nil
}
func (m *memCompanies) Update(_ context.Context, c *entity.Company) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memCompanies) List(context.Context) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(m.byID))
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}
func (m *memCompanies) AssignEquipmentGroup(_ context.Context, id int64) error {
	if c := m.byID[id]; c != nil {
		c.EquipmentGroupID = &c.ID
	}
	return nil
}

type memClients struct {
	users  []*entity.ClientUser
	nextID int64
}

func (m *memClients) Create(_ context.Context, u *entity.ClientUser) error {
	m.nextID++
	u.ID = m.nextID
	m.users = append(m.users, u)
	return nil
}
func (m *memClients) FindByEmail(_ context.Context, email string) (*entity.ClientUser, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memClients) GetByID(_ context.Context, id int64) (*entity.ClientUser, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memClients) ListByCompany(context.Context, int64) ([]*entity.ClientUser, error) {
	return m.users, nil
}

type memInternal struct {
	users  []*entity.InternalUser
	nextID int64
}

func (m *memInternal) Create(_ context.Context, u *entity.InternalUser) error {
	m.nextID++
	u.ID = m.nextID
	m.users = append(m.users, u)
	return nil
}
func (m *memInternal) FindByEmail(_ context.Context, email string) (*entity.InternalUser, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memInternal) List(context.Context) ([]*entity.InternalUser, error) { return m.users, nil }

type memEmployees struct {
	byID   map[int64]*entity.Employee
	nextID int64
}

func newMemEmployees() *memEmployees { return &memEmployees{byID: map[int64]*entity.Employee{}} }

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	m.nextID++
	e.ID = m.nextID
	m.byID[e.ID] = e
	return nil
}
func (m *memEmployees) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	return m.byID[id], nil
}
func (m *memEmployees) ListByCompany(_ context.Context, companyID int64) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range m.byID {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (m *memEmployees) Update(_ context.Context, e *entity.Employee) error {
	m.byID[e.ID] = e
	return nil
}
func (m *memEmployees) Delete(_ context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}

type memTickets struct {
	byID     map[int64]*entity.Ticket
	messages []*entity.TicketMessage
	nextID   int64
}

func newMemTickets() *memTickets { return &memTickets{byID: map[int64]*entity.Ticket{}} }

func (m *memTickets) Create(_ context.Context, t *entity.Ticket) error {
	m.nextID++
	t.ID = m.nextID
	m.byID[t.ID] = t
	return nil
}
func (m *memTickets) GetByID(_ context.Context, id int64) (*entity.Ticket, error) {
	return m.byID[id], nil
}
func (m *memTickets) ListByCompany(_ context.Context, companyID int64) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range m.byID {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (m *memTickets) ListAll(context.Context) ([]*entity.Ticket, error) {
	out := make([]*entity.Ticket, 0, len(m.byID))
	for _, t := range m.byID {
		out = append(out, t)
	}
	return out, nil
}
func (m *memTickets) Update(_ context.Context, t *entity.Ticket) error {
	m.byID[t.ID] = t
	return nil
}
func (m *memTickets) Delete(_ context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}
func (m *memTickets) AddMessage(_ context.Context, msg *entity.TicketMessage) error {
	msg.ID = int64(len(m.messages) + 1)
	m.messages = append(m.messages, msg)
	return nil
}
func (m *memTickets) ListMessages(_ context.Context, ticketID int64) ([]*entity.TicketMessage, error) {
	var out []*entity.TicketMessage
	for _, msg := range m.messages {
		if msg.TicketID == ticketID {
			out = append(out, msg)
		}
	}
	return out, nil
}
