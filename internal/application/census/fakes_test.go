package census

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

// memDB estado en memoria; el runner lo restaura si la función de la tx falla.
type memDB struct {
	documents    map[int64]*entity.Document
	equipment    map[int64]*entity.Equipment
	requests     []*entity.EquipmentRequest
	companies    map[int64]*entity.Company
	employees    map[int64]*entity.Employee
	appointments []*entity.Appointment
	nextID       int64

	failRequestCreate bool
}

func newMemDB() *memDB {
	return &memDB{
		documents: map[int64]*entity.Document{},
		equipment: map[int64]*entity.Equipment{},
		companies: map[int64]*entity.Company{1: {ID: 1, Name: "Acme"}, 2: {ID: 2, Name: "Globex"}},
		employees: map[int64]*entity.Employee{},
	}
}

func (db *memDB) id() int64 {
	db.nextID++
	return db.nextID
}

type snapshot struct {
	documents    map[int64]entity.Document
	equipment    map[int64]entity.Equipment
	requests     []entity.EquipmentRequest
	groups       map[int64]*int64
	appointments int
}

func (db *memDB) snapshot() snapshot {
	s := snapshot{
		documents:    map[int64]entity.Document{},
		equipment:    map[int64]entity.Equipment{},
		groups:       map[int64]*int64{},
		appointments: len(db.appointments),
	}
	for k, v := range db.documents {
		s.documents[k] = *v
	}
	for k, v := range db.equipment {
		s.equipment[k] = *v
	}
	for _, r := range db.requests {
		s.requests = append(s.requests, *r)
	}
	for k, c := range db.companies {
		s.groups[k] = c.EquipmentGroupID
	}
	return s
}

func (db *memDB) restore(s snapshot) {
	db.documents = map[int64]*entity.Document{}
	for k, v := range s.documents {
		v := v
		db.documents[k] = &v
	}
	db.equipment = map[int64]*entity.Equipment{}
	for k, v := range s.equipment {
		v := v
		db.equipment[k] = &v
	}
	db.requests = nil
	for _, r := range s.requests {
		r := r
		db.requests = append(db.requests, &r)
	}
	for k, g := range s.groups {
		db.companies[k].EquipmentGroupID = g
	}
	db.appointments = db.appointments[:s.appointments]
}

type memRunner struct{ db *memDB }

func (r memRunner) RunCensus(_ context.Context, fn func(repos TxRepos) error) error {
	snap := r.db.snapshot()
	repos := TxRepos{
		Documents:    docRepo{r.db},
		Equipment:    equipmentRepo{r.db},
		Requests:     requestRepo{r.db},
		Companies:    companyRepo{r.db},
		Appointments: appointmentRepo{r.db},
	}
	if err := fn(repos); err != nil {
		r.db.restore(snap)
		return err
	}
	return nil
}

type docRepo struct{ db *memDB }

func (r docRepo) UpsertResponsiva(_ context.Context, companyID int64, path string) (*entity.Document, error) {
	d, ok := r.db.documents[companyID]
	if !ok {
		d = &entity.Document{ID: r.db.id(), CompanyID: companyID}
		r.db.documents[companyID] = d
	}
	d.ResponsivaPath = path
	return d, nil
}
func (r docRepo) GetByCompany(_ context.Context, companyID int64) (*entity.Document, error) {
	return r.db.documents[companyID], nil
}

type equipmentRepo struct{ db *memDB }

func (r equipmentRepo) Create(_ context.Context, e *entity.Equipment) error {
	e.ID = r.db.id()
	cp := *e
	r.db.equipment[e.ID] = &cp
	return nil
}
func (r equipmentRepo) GetByID(_ context.Context, id int64) (*entity.Equipment, error) {
	e, ok := r.db.equipment[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}
func (r equipmentRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.Equipment, error) {
	var out []*entity.Equipment
	for _, e := range r.db.equipment {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r equipmentRepo) ListAll(context.Context) ([]*entity.Equipment, error) {
	out := make([]*entity.Equipment, 0, len(r.db.equipment))
	for _, e := range r.db.equipment {
		out = append(out, e)
	}
	return out, nil
}
func (r equipmentRepo) Update(_ context.Context, e *entity.Equipment) error {
	cp := *e
	r.db.equipment[e.ID] = &cp
	return nil
}
func (r equipmentRepo) UpdateStatus(_ context.Context, id int64, status entity.EquipmentStatus) error {
	e, ok := r.db.equipment[id]
	if !ok {
		return fmt.Errorf("equipo %d no existe", id)
	}
	e.Status = status
	return nil
}
func (r equipmentRepo) SetLicense(_ context.Context, id int64, code, license string) error {
	e := r.db.equipment[id]
	e.RegistryCode = code
	e.License = license
	return nil
}

type requestRepo struct{ db *memDB }

func (r requestRepo) Create(_ context.Context, req *entity.EquipmentRequest) error {
	if r.db.failRequestCreate {
		return errors.New("insert equipment_request: conexión perdida")
	}
	req.ID = r.db.id()
	cp := *req
	r.db.requests = append(r.db.requests, &cp)
	return nil
}
func (r requestRepo) ListAll(context.Context) ([]*entity.EquipmentRequest, error) {
	return r.db.requests, nil
}
func (r requestRepo) ListByClient(_ context.Context, clientID int64, limit int) ([]*entity.EquipmentRequest, error) {
	var out []*entity.EquipmentRequest
	for i := len(r.db.requests) - 1; i >= 0 && len(out) < limit; i-- {
		if r.db.requests[i].ClientID == clientID {
			out = append(out, r.db.requests[i])
		}
	}
	return out, nil
}
func (r requestRepo) SyncEquipmentStatus(_ context.Context, equipmentID int64, status entity.EquipmentStatus) error {
	for _, req := range r.db.requests {
		if req.EquipmentID != nil && *req.EquipmentID == equipmentID {
			req.Status = status
		}
	}
	return nil
}
func (r requestRepo) MarkScheduled(_ context.Context, equipmentID int64) error {
	for _, req := range r.db.requests {
		if req.EquipmentID != nil && *req.EquipmentID == equipmentID {
			req.Scheduled = true
		}
	}
	return nil
}

type companyRepo struct{ db *memDB }

func (r companyRepo) Create(context.Context, *entity.Company) error { return nil }
func (r companyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	return r.db.companies[id], nil
}
func (r companyRepo) GetByRFC(context.Context, string) (*entity.Company, error) { return nil, nil }
func (r companyRepo) Update(context.Context, *entity.Company) error             { return nil }
func (r companyRepo) List(context.Context) ([]*entity.Company, error)           { return nil, nil }
func (r companyRepo) AssignEquipmentGroup(_ context.Context, id int64) error {
	c := r.db.companies[id]
	group := c.ID
	c.EquipmentGroupID = &group
	return nil
}

type employeeRepo struct{ db *memDB }

func (r employeeRepo) Create(_ context.Context, e *entity.Employee) error {
	e.ID = r.db.id()
	r.db.employees[e.ID] = e
	return nil
}
func (r employeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	return r.db.employees[id], nil
}
func (r employeeRepo) ListByCompany(context.Context, int64) ([]*entity.Employee, error) {
	return nil, nil
}
func (r employeeRepo) Update(context.Context, *entity.Employee) error { return nil }
func (r employeeRepo) Delete(context.Context, int64) error            { return nil }

type appointmentRepo struct{ db *memDB }

func (r appointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	a.ID = r.db.id()
	r.db.appointments = append(r.db.appointments, a)
	return nil
}

// memStore almacén de archivos en memoria.
type memStore struct {
	files   map[string][]byte
	removed []string
}

func (s *memStore) Save(_ context.Context, companyID int64, filename string, data []byte) (string, error) {
	path := fmt.Sprintf("responsivas/%d/%s", companyID, filename)
	s.files[path] = data
	return path, nil
}

func (s *memStore) Remove(_ context.Context, path string) error {
	delete(s.files, path)
	s.removed = append(s.removed, path)
	return nil
}
