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

var (
	_ repository.EquipmentRepository        = (*EquipmentRepo)(nil)
	_ repository.EquipmentRequestRepository = (*EquipmentRequestRepo)(nil)
	_ repository.AppointmentRepository      = (*AppointmentRepo)(nil)
)

// EquipmentRepo equipos censados (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador.
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

const equipmentSelect = `
	SELECT e.id, COALESCE(e.id_equipo, 0), COALESCE(e.empresa_id, 0), e.empleado_id,
		COALESCE(e.tipo_equipo, ''), COALESCE(e.nombre_equipo, ''), COALESCE(e.marca, ''), COALESCE(e.modelo, ''),
		COALESCE(e.numero_serie, ''), COALESCE(e.sistema_operativo, ''), COALESCE(e.procesador, ''),
		COALESCE(e.ram, ''), COALESCE(e.disco_duro, ''), COALESCE(e.serie_disco_duro, ''),
		COALESCE(e.codigo_registro, ''), COALESCE(e.licencia, ''), COALESCE(e.status, 'pendiente'),
		COALESCE(e.created_at, CURRENT_TIMESTAMP), COALESCE(e.updated_at, CURRENT_TIMESTAMP),
		COALESCE(emp.nombre_empresa, ''), COALESCE(em.nombre_empleado, '')
	FROM equipos e
	LEFT JOIN empresas emp ON emp.id = e.empresa_id
	LEFT JOIN empleados em ON em.id = e.empleado_id`

// Create persiste un equipo y carga su ID.
func (r *EquipmentRepo) Create(ctx context.Context, e *entity.Equipment) error {
	query := `
		INSERT INTO equipos (id_equipo, empresa_id, empleado_id, tipo_equipo, nombre_equipo, marca, modelo, numero_serie,
			sistema_operativo, procesador, ram, disco_duro, serie_disco_duro, codigo_registro, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.GroupID, e.CompanyID, e.EmployeeID, e.Type, e.Name, e.Brand, e.Model, e.SerialNumber,
		e.OperatingSystem, e.Processor, e.RAM, e.HardDrive, e.HardDriveSerial, nullIfEmpty(e.RegistryCode),
		string(e.Status), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert equipo: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo (nil si no existe).
func (r *EquipmentRepo) GetByID(ctx context.Context, id int64) (*entity.Equipment, error) {
	e, err := scanEquipment(r.q.QueryRow(ctx, equipmentSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipo: %w", err)
	}
	return e, nil
}

// ListByCompany equipos de una empresa.
func (r *EquipmentRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Equipment, error) {
	return r.list(ctx, equipmentSelect+` WHERE e.empresa_id = $1 ORDER BY e.id DESC`, companyID)
}

// ListAll todos los equipos con nombre de empresa y empleado.
func (r *EquipmentRepo) ListAll(ctx context.Context) ([]*entity.Equipment, error) {
	return r.list(ctx, equipmentSelect+` ORDER BY e.id DESC`)
}

func (r *EquipmentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Equipment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipos: %w", err)
	}
	defer rows.Close()
	var out []*entity.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipo: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update reescribe los datos de hardware y el responsable. No toca estatus ni licencia.
func (r *EquipmentRepo) Update(ctx context.Context, e *entity.Equipment) error {
	query := `
		UPDATE equipos SET empleado_id = $2, tipo_equipo = $3, nombre_equipo = $4, marca = $5, modelo = $6,
			numero_serie = $7, sistema_operativo = $8, procesador = $9, ram = $10, disco_duro = $11,
			serie_disco_duro = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		e.ID, e.EmployeeID, e.Type, e.Name, e.Brand, e.Model, e.SerialNumber, e.OperatingSystem,
		e.Processor, e.RAM, e.HardDrive, e.HardDriveSerial, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update equipo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estatus del equipo.
func (r *EquipmentRepo) UpdateStatus(ctx context.Context, id int64, status entity.EquipmentStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE equipos SET status = $2, updated_at = NOW() WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update status equipo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetLicense guarda código de registro y licencia.
func (r *EquipmentRepo) SetLicense(ctx context.Context, id int64, registryCode, license string) error {
	query := `
		UPDATE equipos SET codigo_registro = COALESCE($2, codigo_registro), licencia = COALESCE($3, licencia), updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, nullIfEmpty(registryCode), nullIfEmpty(license))
	if err != nil {
		return fmt.Errorf("set licencia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	var status string
	err := row.Scan(
		&e.ID, &e.GroupID, &e.CompanyID, &e.EmployeeID, &e.Type, &e.Name, &e.Brand, &e.Model,
		&e.SerialNumber, &e.OperatingSystem, &e.Processor, &e.RAM, &e.HardDrive, &e.HardDriveSerial,
		&e.RegistryCode, &e.License, &status, &e.CreatedAt, &e.UpdatedAt, &e.CompanyName, &e.EmployeeName,
	)
	if err != nil {
		return nil, err
	}
	e.Status = parseStoredStatus(status)
	return &e, nil
}

// parseStoredStatus tolera valores históricos con acentos o mayúsculas.
func parseStoredStatus(s string) entity.EquipmentStatus {
	if st, ok := entity.ParseEquipmentStatus(s); ok {
		return st
	}
	return entity.EquipmentStatus(s)
}

// EquipmentRequestRepo historial de envíos de censo.
type EquipmentRequestRepo struct {
	q Querier
}

// NewEquipmentRequestRepository construye el adaptador.
func NewEquipmentRequestRepository(q Querier) *EquipmentRequestRepo {
	return &EquipmentRequestRepo{q: q}
}

const requestSelect = `
	SELECT er.id, COALESCE(er.cliente_id, 0), COALESCE(er.empresa_id, 0), er.equipo_id,
		COALESCE(er.marca, ''), COALESCE(er.modelo, ''), COALESCE(er.no_serie, ''), COALESCE(er.codigo_registro, ''),
		COALESCE(er.memoria_ram, ''), COALESCE(er.disco_duro, ''), COALESCE(er.serie_disco_duro, ''),
		COALESCE(er.sistema_operativo, ''), COALESCE(er.procesador, ''), COALESCE(er.nombre_usuario_equipo, ''),
		COALESCE(er.tipo_equipo, ''), COALESCE(er.nombre_equipo, ''), COALESCE(er.status, 'pendiente'),
		COALESCE(er.agendado, false), COALESCE(er.created_at, CURRENT_TIMESTAMP),
		COALESCE(ue.nombre_usuario, ''), COALESCE(ue.email, ''), COALESCE(e.nombre_empresa, '')
	FROM equipment_requests er
	LEFT JOIN usuarios_empresas ue ON er.cliente_id = ue.id
	LEFT JOIN empresas e ON er.empresa_id = e.id`

// Create persiste una solicitud de censo.
func (r *EquipmentRequestRepo) Create(ctx context.Context, req *entity.EquipmentRequest) error {
	query := `
		INSERT INTO equipment_requests (cliente_id, empresa_id, equipo_id, marca, modelo, no_serie, codigo_registro,
			memoria_ram, disco_duro, serie_disco_duro, sistema_operativo, procesador, nombre_usuario_equipo,
			tipo_equipo, nombre_equipo, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		req.ClientID, req.CompanyID, req.EquipmentID, req.Brand, req.Model, req.SerialNumber, req.RegistryCode,
		req.RAM, req.HardDrive, req.HardDriveSerial, req.OperatingSystem, req.Processor, req.DeviceUserName,
		req.Type, req.Name, string(req.Status), req.CreatedAt,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert equipment_request: %w", err)
	}
	return nil
}

// ListAll todas las solicitudes, más recientes primero.
func (r *EquipmentRequestRepo) ListAll(ctx context.Context) ([]*entity.EquipmentRequest, error) {
	return r.list(ctx, requestSelect+` ORDER BY er.created_at DESC`)
}

// ListByClient últimas solicitudes de un cliente.
func (r *EquipmentRequestRepo) ListByClient(ctx context.Context, clientID int64, limit int) ([]*entity.EquipmentRequest, error) {
	return r.list(ctx, requestSelect+` WHERE er.cliente_id = $1 ORDER BY er.created_at DESC LIMIT $2`, clientID, limit)
}

func (r *EquipmentRequestRepo) list(ctx context.Context, query string, args ...any) ([]*entity.EquipmentRequest, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment_requests: %w", err)
	}
	defer rows.Close()
	var out []*entity.EquipmentRequest
	for rows.Next() {
		var req entity.EquipmentRequest
		var status string
		err := rows.Scan(
			&req.ID, &req.ClientID, &req.CompanyID, &req.EquipmentID,
			&req.Brand, &req.Model, &req.SerialNumber, &req.RegistryCode,
			&req.RAM, &req.HardDrive, &req.HardDriveSerial,
			&req.OperatingSystem, &req.Processor, &req.DeviceUserName,
			&req.Type, &req.Name, &status,
			&req.Scheduled, &req.CreatedAt,
			&req.ClientName, &req.ClientEmail, &req.CompanyName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan equipment_request: %w", err)
		}
		req.Status = parseStoredStatus(status)
		out = append(out, &req)
	}
	return out, rows.Err()
}

// SyncEquipmentStatus replica el estatus del equipo en sus solicitudes.
func (r *EquipmentRequestRepo) SyncEquipmentStatus(ctx context.Context, equipmentID int64, status entity.EquipmentStatus) error {
	if _, err := r.q.Exec(ctx, `UPDATE equipment_requests SET status = $2 WHERE equipo_id = $1`, equipmentID, string(status)); err != nil {
		return fmt.Errorf("sync status solicitud: %w", err)
	}
	return nil
}

// MarkScheduled marca como agendadas las solicitudes del equipo.
func (r *EquipmentRequestRepo) MarkScheduled(ctx context.Context, equipmentID int64) error {
	if _, err := r.q.Exec(ctx, `UPDATE equipment_requests SET agendado = true WHERE equipo_id = $1`, equipmentID); err != nil {
		return fmt.Errorf("marcar agendado: %w", err)
	}
	return nil
}

// AppointmentRepo agenda de instalaciones.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador.
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una cita.
func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	query := `INSERT INTO agenda (dia_agendado, status, usuario_id, equipo_id) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.q.QueryRow(ctx, query, a.ScheduledAt, a.Status, a.StaffID, a.EquipmentID).Scan(&a.ID); err != nil {
		return fmt.Errorf("insert agenda: %w", err)
	}
	return nil
}
