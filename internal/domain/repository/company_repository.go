package repository

import (
	"context"

	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	GetByRFC(ctx context.Context, rfc string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context) ([]*entity.Company, error)
	// AssignEquipmentGroup fija id_equipo = id (idempotente).
	AssignEquipmentGroup(ctx context.Context, companyID int64) error
}

// DocumentRepository paquete de documentos por empresa.
type DocumentRepository interface {
	// UpsertResponsiva guarda la ruta de la responsiva; crea la fila de la empresa si no existe.
	UpsertResponsiva(ctx context.Context, companyID int64, path string) (*entity.Document, error)
	GetByCompany(ctx context.Context, companyID int64) (*entity.Document, error)
}

// EmployeeRepository empleados de empresas cliente.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id int64) error
}
