package http_test

import (
	"context"

	"github.com/jhoicas/portal-rdp/internal/application/census"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

// censusDB estado del censo en memoria, sin rollback.
type censusDB struct {
	documents map[int64]*entity.Document
	equipment []*entity.Equipment
	requests  []*entity.EquipmentRequest
	employees map[int64]*entity.Employee
	nextID    int64
}

func newCensusDB() *censusDB {
	return &censusDB{documents: map[int64]*entity.Document{}, employees: map[int64]*entity.Employee{}}
}

func (db *censusDB) id() int64 {
	db.nextID++
	return db.nextID
}

type censusRunner struct{ db *censusDB }

func (r censusRunner) RunCensus(_ context.Context, fn func(repos census.TxRepos) error) error {
	return fn(census.TxRepos{
		Documents:    documentStore{r.db},
		Equipment:    equipmentStore{r.db},
		Requests:     requestStore{r.db},
		Companies:    companyStore{},
		Appointments: appointmentStore{},
	})
}

type documentStore struct{ db *censusDB }

func (s documentStore) UpsertResponsiva(_ context.Context, companyID int64, path string) (*entity.Document, error) {
	d, ok := s.db.documents[companyID]
	if !ok {
		d = &entity.Document{ID: s.db.id(), CompanyID: companyID}
		s.db.documents[companyID] = d
	}
	d.ResponsivaPath = path
	return d, nil
}
func (s documentStore) GetByCompany(_ context.Context, companyID int64) (*entity.Document, error) {
	return s.db.documents[companyID], nil
}

type equipmentStore struct{ db *censusDB }

func (s equipmentStore) Create(_ context.Context, e *entity.Equipment) error {
	e.ID = s.db.id()
	s.db.equipment = append(s.db.equipment, e)
	return nil
}
func (s equipmentStore) GetByID(context.Context, int64) (*entity.Equipment, error) { return nil, nil }
func (s equipmentStore) ListByCompany(context.Context, int64) ([]*entity.Equipment, error) {
	return s.db.equipment, nil
}
func (s equipmentStore) ListAll(context.Context) ([]*entity.Equipment, error) {
	return s.db.equipment, nil
}
func (s equipmentStore) Update(context.Context, *entity.Equipment) error { return nil }
func (s equipmentStore) UpdateStatus(context.Context, int64, entity.EquipmentStatus) error {
	return nil
}
func (s equipmentStore) SetLicense(context.Context, int64, string, string) error { return nil }

type requestStore struct{ db *censusDB }

func (s requestStore) Create(_ context.Context, r *entity.EquipmentRequest) error {
	r.ID = s.db.id()
	s.db.requests = append(s.db.requests, r)
	return nil
}
func (s requestStore) ListAll(context.Context) ([]*entity.EquipmentRequest, error) {
	return s.db.requests, nil
}
func (s requestStore) ListByClient(context.Context, int64, int) ([]*entity.EquipmentRequest, error) {
	return s.db.requests, nil
}
func (s requestStore) SyncEquipmentStatus(context.Context, int64, entity.EquipmentStatus) error {
	return nil
}
func (s requestStore) MarkScheduled(context.Context, int64) error { return nil }

type companyStore struct{}

func (companyStore) Create(context.Context, *entity.Company) error             { return nil }
func (companyStore) GetByID(context.Context, int64) (*entity.Company, error)   { return nil, nil }
func (companyStore) GetByRFC(context.Context, string) (*entity.Company, error) { return nil, nil }
func (companyStore) Update(context.Context, *entity.Company) error             { return nil }
func (companyStore) List(context.Context) ([]*entity.Company, error)           { return nil, nil }
func (companyStore) AssignEquipmentGroup(context.Context, int64) error         { return nil }

type appointmentStore struct{}

func (appointmentStore) Create(context.Context, *entity.Appointment) error { return nil }

type employeeStore struct{ db *censusDB }

func (s employeeStore) Create(_ context.Context, e *entity.Employee) error {
	e.ID = s.db.id()
	s.db.employees[e.ID] = e
	return nil
}
func (s employeeStore) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	return s.db.employees[id], nil
}
func (s employeeStore) ListByCompany(context.Context, int64) ([]*entity.Employee, error) {
	return nil, nil
}
func (s employeeStore) Update(context.Context, *entity.Employee) error { return nil }
func (s employeeStore) Delete(context.Context, int64) error            { return nil }
