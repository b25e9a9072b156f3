// Package census implementa el censo de equipos: envío del cliente, revisión y
// ciclo de vida del equipo hasta su activación.
package census

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// MyRequestsLimit número de solicitudes propias que ve el cliente.
const MyRequestsLimit = 10

// AppointmentScheduled estatus de una cita recién agendada.
const AppointmentScheduled = "programada"

// UseCase casos de uso del censo.
type UseCase struct {
	tx            TxRunner
	store         FileStore
	employeeRepo  repository.EmployeeRepository
	equipmentRepo repository.EquipmentRepository
	requestRepo   repository.EquipmentRequestRepository
	log           *logger.Logger
}

// NewUseCase construye el caso de uso del censo.
func NewUseCase(
	tx TxRunner,
	store FileStore,
	employeeRepo repository.EmployeeRepository,
	equipmentRepo repository.EquipmentRepository,
	requestRepo repository.EquipmentRequestRepository,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		tx:            tx,
		store:         store,
		employeeRepo:  employeeRepo,
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		log:           log.Component("census"),
	}
}

// Submit registra un equipo enviado por un cliente.
// Valida antes de escribir: marca, modelo y número de serie obligatorios; laptop exige responsiva.
// El documento, el equipo, el grupo de la empresa y la solicitud se escriben en una sola transacción;
// si falla, el archivo guardado se elimina.
func (uc *UseCase) Submit(ctx context.Context, p dto.Principal, in dto.CensusRequest, file *dto.UploadedFile) (*dto.CensusResponse, error) {
	companyID, ok := p.CompanyID()
	if !p.IsClient() || !ok {
		return nil, domain.ErrForbidden
	}
	in = trimCensus(in)
	if missing := missingFields(in); len(missing) > 0 {
		return nil, fmt.Errorf("%w: campos obligatorios vacíos: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if file != nil && len(file.Data) == 0 {
		file = nil
	}
	if entity.IsLaptop(in.TipoEquipo) && file == nil {
		return nil, domain.ErrResponsivaRequired
	}
	if in.EmpleadoID != nil {
		emp, err := uc.employeeRepo.GetByID(ctx, *in.EmpleadoID)
		if err != nil {
			return nil, err
		}
		if emp == nil || emp.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	var storedPath string
	if file != nil {
		path, err := uc.store.Save(ctx, companyID, file.Filename, file.Data)
		if err != nil {
			return nil, err
		}
		storedPath = path
	}

	now := time.Now()
	eq := &entity.Equipment{
		GroupID:         companyID,
		CompanyID:       companyID,
		EmployeeID:      in.EmpleadoID,
		Type:            in.TipoEquipo,
		Name:            in.NombreEquipo,
		Brand:           in.Marca,
		Model:           in.Modelo,
		SerialNumber:    in.NumeroSerie,
		OperatingSystem: in.SistemaOperativo,
		Processor:       in.Procesador,
		RAM:             in.MemoriaRAM,
		HardDrive:       in.DiscoDuro,
		HardDriveSerial: in.SerieDiscoDuro,
		RegistryCode:    in.CodigoRegistro,
		Status:          entity.StatusPendiente,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	req := &entity.EquipmentRequest{
		ClientID:        p.ID,
		CompanyID:       companyID,
		Brand:           in.Marca,
		Model:           in.Modelo,
		SerialNumber:    in.NumeroSerie,
		RegistryCode:    in.CodigoRegistro,
		RAM:             in.MemoriaRAM,
		HardDrive:       in.DiscoDuro,
		HardDriveSerial: in.SerieDiscoDuro,
		OperatingSystem: in.SistemaOperativo,
		Processor:       in.Procesador,
		DeviceUserName:  in.NombreUsuarioEquipo,
		Type:            in.TipoEquipo,
		Name:            in.NombreEquipo,
		Status:          entity.StatusPendiente,
		CreatedAt:       now,
	}

	err := uc.tx.RunCensus(ctx, func(repos TxRepos) error {
		if storedPath != "" {
			if _, err := repos.Documents.UpsertResponsiva(ctx, companyID, storedPath); err != nil {
				return err
			}
		}
		if err := repos.Equipment.Create(ctx, eq); err != nil {
			return err
		}
		if err := repos.Companies.AssignEquipmentGroup(ctx, companyID); err != nil {
			return err
		}
		req.EquipmentID = &eq.ID
		return repos.Requests.Create(ctx, req)
	})
	if err != nil {
		uc.log.Error().Err(err).Int64("empresa_id", companyID).Msg("censo revertido")
		if storedPath != "" {
			if rmErr := uc.store.Remove(ctx, storedPath); rmErr != nil {
				uc.log.Warn().Err(rmErr).Str("path", storedPath).Msg("no se pudo eliminar la responsiva")
			}
		}
		return nil, err
	}

	return &dto.CensusResponse{
		Message: "Equipo registrado",
		Request: toRequestResponse(req),
		Equipo:  toEquipmentResponse(eq),
	}, nil
}

// ListRequests todas las solicitudes con nombre de cliente y empresa (revisión del personal).
func (uc *UseCase) ListRequests(ctx context.Context) (*dto.EquipmentRequestListResponse, error) {
	list, err := uc.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toRequestList(list), nil
}

// MyRequests últimas solicitudes del cliente autenticado.
func (uc *UseCase) MyRequests(ctx context.Context, p dto.Principal) (*dto.EquipmentRequestListResponse, error) {
	if !p.IsClient() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.requestRepo.ListByClient(ctx, p.ID, MyRequestsLimit)
	if err != nil {
		return nil, err
	}
	return toRequestList(list), nil
}

// ListEquipment equipos de la empresa del cliente; el personal interno ve todos.
func (uc *UseCase) ListEquipment(ctx context.Context, p dto.Principal) (*dto.EquipmentListResponse, error) {
	var (
		list []*entity.Equipment
		err  error
	)
	if p.IsClient() {
		companyID, ok := p.CompanyID()
		if !ok {
			return nil, domain.ErrForbidden
		}
		list, err = uc.equipmentRepo.ListByCompany(ctx, companyID)
	} else {
		list, err = uc.equipmentRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipmentResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toEquipmentResponse(e))
	}
	return &dto.EquipmentListResponse{Equipos: items}, nil
}

// UpdateEquipment edita los datos de hardware de un equipo propio. El estatus no se toca.
func (uc *UseCase) UpdateEquipment(ctx context.Context, p dto.Principal, id int64, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	eq, err := uc.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if eq == nil || !visibleTo(p, eq.CompanyID) {
		return nil, domain.ErrNotFound
	}
	if in.EmpleadoID != nil {
		emp, err := uc.employeeRepo.GetByID(ctx, *in.EmpleadoID)
		if err != nil {
			return nil, err
		}
		if emp == nil || emp.CompanyID != eq.CompanyID {
			return nil, domain.ErrNotFound
		}
		eq.EmployeeID = in.EmpleadoID
	}
	applyString(&eq.Type, in.TipoEquipo)
	applyString(&eq.Name, in.NombreEquipo)
	applyString(&eq.Brand, in.Marca)
	applyString(&eq.Model, in.Modelo)
	applyString(&eq.SerialNumber, in.NumeroSerie)
	applyString(&eq.OperatingSystem, in.SistemaOperativo)
	applyString(&eq.Processor, in.Procesador)
	applyString(&eq.RAM, in.MemoriaRAM)
	applyString(&eq.HardDrive, in.DiscoDuro)
	applyString(&eq.HardDriveSerial, in.SerieDiscoDuro)
	if eq.Brand == "" || eq.Model == "" || eq.SerialNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	eq.UpdatedAt = time.Now()
	if err := uc.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	resp := toEquipmentResponse(eq)
	return &resp, nil
}

// Transition mueve el equipo un paso en la máquina de estatus y replica el cambio en sus solicitudes.
func (uc *UseCase) Transition(ctx context.Context, id int64, status string) (*dto.EquipmentResponse, error) {
	next, ok := entity.ParseEquipmentStatus(status)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	return uc.moveTo(ctx, id, func(cur entity.EquipmentStatus) bool { return cur.CanTransitionTo(next) }, next, nil)
}

// ScheduleCensus agenda la instalación: crea la cita, marca la solicitud como agendada
// y lleva el equipo a "instalacion programada".
func (uc *UseCase) ScheduleCensus(ctx context.Context, p dto.Principal, in dto.ScheduleCensusRequest) (*dto.AppointmentResponse, error) {
	if in.EquipoID <= 0 || in.DiaAgendado.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	status := strings.TrimSpace(in.Estatus)
	if status == "" {
		status = AppointmentScheduled
	}
	staffID := p.ID
	appt := &entity.Appointment{
		ScheduledAt: in.DiaAgendado,
		Status:      status,
		StaffID:     &staffID,
		EquipmentID: in.EquipoID,
	}
	target := entity.StatusInstalacionProgramada
	_, err := uc.moveTo(ctx, in.EquipoID, func(cur entity.EquipmentStatus) bool { return cur.Reaches(target) }, target,
		func(repos TxRepos) error {
			if err := repos.Appointments.Create(ctx, appt); err != nil {
				return err
			}
			return repos.Requests.MarkScheduled(ctx, in.EquipoID)
		})
	if err != nil {
		return nil, err
	}
	return &dto.AppointmentResponse{
		ID:          appt.ID,
		DiaAgendado: appt.ScheduledAt,
		Estatus:     appt.Status,
		EquipoID:    appt.EquipmentID,
		PersonalID:  appt.StaffID,
	}, nil
}

// VerifyCensus guarda código de registro y licencia capturados en sitio y activa el equipo.
func (uc *UseCase) VerifyCensus(ctx context.Context, in dto.VerifyCensusRequest) (*dto.EquipmentResponse, error) {
	if in.EquipoID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	code := strings.TrimSpace(in.CodigoRegistro)
	license := strings.TrimSpace(in.Licencia)
	target := entity.StatusActivo
	return uc.moveTo(ctx, in.EquipoID, func(cur entity.EquipmentStatus) bool { return cur.Reaches(target) }, target,
		func(repos TxRepos) error {
			return repos.Equipment.SetLicense(ctx, in.EquipoID, code, license)
		})
}

// License código de registro y licencia de un equipo.
func (uc *UseCase) License(ctx context.Context, id int64) (*dto.LicenseResponse, error) {
	eq, err := uc.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.LicenseResponse{EquipoID: eq.ID, CodigoRegistro: eq.RegistryCode, Licencia: eq.License}, nil
}

// moveTo aplica un cambio de estatus validado por allowed dentro de una transacción,
// junto con los efectos extra indicados.
func (uc *UseCase) moveTo(
	ctx context.Context,
	id int64,
	allowed func(cur entity.EquipmentStatus) bool,
	next entity.EquipmentStatus,
	extra func(repos TxRepos) error,
) (*dto.EquipmentResponse, error) {
	var updated *entity.Equipment
	err := uc.tx.RunCensus(ctx, func(repos TxRepos) error {
		eq, err := repos.Equipment.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if eq == nil {
			return domain.ErrNotFound
		}
		if !allowed(eq.Status) {
			return domain.ErrInvalidTransition
		}
		if extra != nil {
			if err := extra(repos); err != nil {
				return err
			}
		}
		if err := repos.Equipment.UpdateStatus(ctx, id, next); err != nil {
			return err
		}
		if err := repos.Requests.SyncEquipmentStatus(ctx, id, next); err != nil {
			return err
		}
		updated, err = repos.Equipment.GetByID(ctx, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidTransition) && !errors.Is(err, domain.ErrNotFound) {
			uc.log.Error().Err(err).Int64("equipo_id", id).Str("estatus", string(next)).Msg("cambio de estatus revertido")
		}
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEquipmentResponse(updated)
	return &resp, nil
}

func visibleTo(p dto.Principal, companyID int64) bool {
	if !p.IsClient() {
		return true
	}
	id, ok := p.CompanyID()
	return ok && id == companyID
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func trimCensus(in dto.CensusRequest) dto.CensusRequest {
	for _, f := range []*string{
		&in.Marca, &in.Modelo, &in.NumeroSerie, &in.CodigoRegistro, &in.MemoriaRAM, &in.DiscoDuro,
		&in.SerieDiscoDuro, &in.SistemaOperativo, &in.Procesador, &in.NombreUsuarioEquipo,
		&in.TipoEquipo, &in.NombreEquipo,
	} {
		*f = strings.TrimSpace(*f)
	}
	return in
}

// missingFields nombres (como en el JSON) de los campos obligatorios vacíos.
func missingFields(in dto.CensusRequest) []string {
	var out []string
	if in.Marca == "" {
		out = append(out, "marca")
	}
	if in.Modelo == "" {
		out = append(out, "modelo")
	}
	if in.NumeroSerie == "" {
		out = append(out, "no_serie")
	}
	return out
}

func toRequestList(list []*entity.EquipmentRequest) *dto.EquipmentRequestListResponse {
	items := make([]dto.EquipmentRequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toRequestResponse(r))
	}
	return &dto.EquipmentRequestListResponse{Requests: items}
}

func toRequestResponse(r *entity.EquipmentRequest) dto.EquipmentRequestResponse {
	return dto.EquipmentRequestResponse{
		ID:                  r.ID,
		ClienteID:           r.ClientID,
		EmpresaID:           r.CompanyID,
		EquipoID:            r.EquipmentID,
		Marca:               r.Brand,
		Modelo:              r.Model,
		NumeroSerie:         r.SerialNumber,
		CodigoRegistro:      r.RegistryCode,
		MemoriaRAM:          r.RAM,
		DiscoDuro:           r.HardDrive,
		SerieDiscoDuro:      r.HardDriveSerial,
		SistemaOperativo:    r.OperatingSystem,
		Procesador:          r.Processor,
		NombreUsuarioEquipo: r.DeviceUserName,
		TipoEquipo:          r.Type,
		NombreEquipo:        r.Name,
		Estatus:             string(r.Status),
		Agendado:            r.Scheduled,
		CreatedAt:           r.CreatedAt,
		NombreCliente:       r.ClientName,
		EmailCliente:        r.ClientEmail,
		NombreEmpresa:       r.CompanyName,
	}
}

func toEquipmentResponse(e *entity.Equipment) dto.EquipmentResponse {
	return dto.EquipmentResponse{
		ID:               e.ID,
		IDEquipo:         e.GroupID,
		EmpresaID:        e.CompanyID,
		EmpleadoID:       e.EmployeeID,
		TipoEquipo:       e.Type,
		NombreEquipo:     e.Name,
		Marca:            e.Brand,
		Modelo:           e.Model,
		NumeroSerie:      e.SerialNumber,
		SistemaOperativo: e.OperatingSystem,
		Procesador:       e.Processor,
		MemoriaRAM:       e.RAM,
		DiscoDuro:        e.HardDrive,
		SerieDiscoDuro:   e.HardDriveSerial,
		CodigoRegistro:   e.RegistryCode,
		Licencia:         e.License,
		Estatus:          string(e.Status),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		NombreEmpresa:    e.CompanyName,
		NombreEmpleado:   e.EmployeeName,
	}
}
