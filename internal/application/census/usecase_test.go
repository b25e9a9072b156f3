package census

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

func cliente(companyID int64) dto.Principal {
	return dto.Principal{ID: 50 + companyID, Email: "cliente@empresa.mx", Rol: entity.RoleCliente, EmpresaID: &companyID}
}

var admin = dto.Principal{ID: 1, Email: "admin@rdp.mx", Rol: entity.RoleAdmin}

func setup() (*UseCase, *memDB, *memStore) {
	db := newMemDB()
	store := &memStore{files: map[string][]byte{}}
	uc := NewUseCase(memRunner{db}, store, employeeRepo{db}, equipmentRepo{db}, requestRepo{db}, nil)
	return uc, db, store
}

func desktop() dto.CensusRequest {
	return dto.CensusRequest{Marca: "Dell", Modelo: "Optiplex 7090", NumeroSerie: "SN-001", TipoEquipo: "Desktop"}
}

func responsiva() *dto.UploadedFile {
	return &dto.UploadedFile{Filename: "responsiva.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}
}

// ─── Envío ────────────────────────────────────────────────────────────────

func TestSubmit_LaptopSinResponsivaNoEscribeNada(t *testing.T) {
	uc, db, store := setup()
	in := desktop()
	in.TipoEquipo = "LAPTOP"

	_, err := uc.Submit(context.Background(), cliente(1), in, nil)
	assert.ErrorIs(t, err, domain.ErrResponsivaRequired)

	_, err = uc.Submit(context.Background(), cliente(1), in, &dto.UploadedFile{Filename: "vacio.pdf"})
	assert.ErrorIs(t, err, domain.ErrResponsivaRequired, "un archivo vacío cuenta como ausente")

	assert.Empty(t, db.equipment)
	assert.Empty(t, db.requests)
	assert.Empty(t, db.documents)
	assert.Empty(t, store.files)
	assert.Nil(t, db.companies[1].EquipmentGroupID)
}

func TestSubmit_CamposObligatorios(t *testing.T) {
	uc, db, _ := setup()
	in := desktop()
	in.NumeroSerie = "   "

	_, err := uc.Submit(context.Background(), cliente(1), in, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "no_serie")
	assert.NotContains(t, err.Error(), "marca")
	assert.Empty(t, db.equipment)
}

func TestSubmit_DesktopCreaEquipoYSolicitudPendientes(t *testing.T) {
	uc, db, _ := setup()
	in := desktop()

	resp, err := uc.Submit(context.Background(), cliente(1), in, nil)
	require.NoError(t, err)

	require.Len(t, db.equipment, 1)
	require.Len(t, db.requests, 1)
	eq := db.equipment[resp.Equipo.ID]
	require.NotNil(t, eq)
	assert.Equal(t, entity.StatusPendiente, eq.Status)
	assert.Equal(t, int64(1), eq.GroupID)
	assert.Equal(t, entity.StatusPendiente, db.requests[0].Status)
	require.NotNil(t, db.requests[0].EquipmentID)
	assert.Equal(t, eq.ID, *db.requests[0].EquipmentID)
	require.NotNil(t, db.companies[1].EquipmentGroupID)
	assert.Equal(t, int64(1), *db.companies[1].EquipmentGroupID)
	assert.Empty(t, db.documents, "sin archivo no se toca documentos")
}

func TestSubmit_LaptopConResponsivaGuardaDocumento(t *testing.T) {
	uc, db, store := setup()
	in := desktop()
	in.TipoEquipo = "Laptop"

	_, err := uc.Submit(context.Background(), cliente(2), in, responsiva())
	require.NoError(t, err)

	require.Len(t, store.files, 1)
	doc := db.documents[2]
	require.NotNil(t, doc)
	_, stored := store.files[doc.ResponsivaPath]
	assert.True(t, stored)
}

func TestSubmit_FallaTxEliminaArchivoYRevierte(t *testing.T) {
	uc, db, store := setup()
	db.failRequestCreate = true
	in := desktop()
	in.TipoEquipo = "laptop"

	_, err := uc.Submit(context.Background(), cliente(1), in, responsiva())
	require.Error(t, err)

	assert.Empty(t, store.files)
	assert.Len(t, store.removed, 1)
	assert.Empty(t, db.equipment, "el equipo se revierte junto con la solicitud")
	assert.Empty(t, db.requests)
	assert.Empty(t, db.documents)
	assert.Nil(t, db.companies[1].EquipmentGroupID)
}

func TestSubmit_EmpleadoDeOtraEmpresa(t *testing.T) {
	uc, db, _ := setup()
	emp := &entity.Employee{Name: "Pedro", CompanyID: 2}
	require.NoError(t, employeeRepo{db}.Create(context.Background(), emp))
	in := desktop()
	in.EmpleadoID = &emp.ID

	_, err := uc.Submit(context.Background(), cliente(1), in, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, db.equipment)
}

func TestSubmit_SoloClientes(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.Submit(context.Background(), admin, desktop(), nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ─── Consultas ────────────────────────────────────────────────────────────

func TestMyRequests_LimitaADiez(t *testing.T) {
	uc, _, _ := setup()
	for i := 0; i < 12; i++ {
		_, err := uc.Submit(context.Background(), cliente(1), desktop(), nil)
		require.NoError(t, err)
	}
	mine, err := uc.MyRequests(context.Background(), cliente(1))
	require.NoError(t, err)
	assert.Len(t, mine.Requests, MyRequestsLimit)

	other, err := uc.MyRequests(context.Background(), cliente(2))
	require.NoError(t, err)
	assert.Empty(t, other.Requests)
}

func TestListEquipment_AlcancePorRol(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.Submit(context.Background(), cliente(1), desktop(), nil)
	require.NoError(t, err)
	_, err = uc.Submit(context.Background(), cliente(2), desktop(), nil)
	require.NoError(t, err)

	own, err := uc.ListEquipment(context.Background(), cliente(1))
	require.NoError(t, err)
	assert.Len(t, own.Equipos, 1)

	all, err := uc.ListEquipment(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, all.Equipos, 2)
}

func TestUpdateEquipment_OtraEmpresaEsNotFound(t *testing.T) {
	uc, db, _ := setup()
	resp, err := uc.Submit(context.Background(), cliente(1), desktop(), nil)
	require.NoError(t, err)

	ram := "32GB"
	_, err = uc.UpdateEquipment(context.Background(), cliente(2), resp.Equipo.ID, dto.UpdateEquipmentRequest{MemoriaRAM: &ram})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := uc.UpdateEquipment(context.Background(), cliente(1), resp.Equipo.ID, dto.UpdateEquipmentRequest{MemoriaRAM: &ram})
	require.NoError(t, err)
	assert.Equal(t, "32GB", updated.MemoriaRAM)
	assert.Equal(t, string(entity.StatusPendiente), updated.Estatus)
	assert.Equal(t, "32GB", db.equipment[resp.Equipo.ID].RAM)
}

// ─── Ciclo de vida ────────────────────────────────────────────────────────

func TestTransition_ValidaYSincronizaSolicitud(t *testing.T) {
	uc, db, _ := setup()
	resp, err := uc.Submit(context.Background(), cliente(1), desktop(), nil)
	require.NoError(t, err)
	id := resp.Equipo.ID

	_, err = uc.Transition(context.Background(), id, "activo")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.Transition(context.Background(), id, "no-existe")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Transition(context.Background(), id, "Registrado")
	require.NoError(t, err)
	assert.Equal(t, "registrado", out.Estatus)
	assert.Equal(t, entity.StatusRegistrado, db.requests[0].Status)

	_, err = uc.Transition(context.Background(), 999, "registrado")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScheduleYVerify(t *testing.T) {
	uc, db, _ := setup()
	resp, err := uc.Submit(context.Background(), cliente(1), desktop(), nil)
	require.NoError(t, err)
	id := resp.Equipo.ID
	dia := time.Date(2026, 11, 3, 10, 0, 0, 0, time.UTC)

	appt, err := uc.ScheduleCensus(context.Background(), admin, dto.ScheduleCensusRequest{EquipoID: id, DiaAgendado: dia})
	require.NoError(t, err)
	assert.Equal(t, AppointmentScheduled, appt.Estatus)
	require.NotNil(t, appt.PersonalID)
	assert.Equal(t, admin.ID, *appt.PersonalID)
	assert.Equal(t, entity.StatusInstalacionProgramada, db.equipment[id].Status)
	assert.True(t, db.requests[0].Scheduled)

	out, err := uc.VerifyCensus(context.Background(), dto.VerifyCensusRequest{EquipoID: id, CodigoRegistro: "REG-9", Licencia: "XXXX-YYYY"})
	require.NoError(t, err)
	assert.Equal(t, "activo", out.Estatus)

	lic, err := uc.License(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "REG-9", lic.CodigoRegistro)
	assert.Equal(t, "XXXX-YYYY", lic.Licencia)

	_, err = uc.ScheduleCensus(context.Background(), admin, dto.ScheduleCensusRequest{EquipoID: id, DiaAgendado: dia})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "un equipo activo no se reagenda")
	assert.Len(t, db.appointments, 1)
}
