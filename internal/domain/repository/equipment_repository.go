package repository

import (
	"context"

	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

// EquipmentRepository puerto de persistencia para equipos.
type EquipmentRepository interface {
	Create(ctx context.Context, e *entity.Equipment) error
	GetByID(ctx context.Context, id int64) (*entity.Equipment, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Equipment, error)
	ListAll(ctx context.Context) ([]*entity.Equipment, error)
	Update(ctx context.Context, e *entity.Equipment) error
	UpdateStatus(ctx context.Context, id int64, status entity.EquipmentStatus) error
	SetLicense(ctx context.Context, id int64, registryCode, license string) error
}

// EquipmentRequestRepository historial de envíos de censo.
type EquipmentRequestRepository interface {
	Create(ctx context.Context, r *entity.EquipmentRequest) error
	ListAll(ctx context.Context) ([]*entity.EquipmentRequest, error)
	ListByClient(ctx context.Context, clientID int64, limit int) ([]*entity.EquipmentRequest, error)
	// SyncEquipmentStatus replica el estatus del equipo en sus solicitudes.
	SyncEquipmentStatus(ctx context.Context, equipmentID int64, status entity.EquipmentStatus) error
	MarkScheduled(ctx context.Context, equipmentID int64) error
}

// AppointmentRepository agenda de instalaciones.
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
}
