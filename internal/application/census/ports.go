package census

import (
	"context"

	"github.com/jhoicas/portal-rdp/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Documents    repository.DocumentRepository
	Equipment    repository.EquipmentRepository
	Requests     repository.EquipmentRequestRepository
	Companies    repository.CompanyRepository
	Appointments repository.AppointmentRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que equipo y solicitud se escriban juntos o ninguno.
type TxRunner interface {
	RunCensus(ctx context.Context, fn func(repos TxRepos) error) error
}

// FileStore almacenamiento de archivos subidos (responsivas).
type FileStore interface {
	// Save guarda el archivo y devuelve la ruta relativa a persistir.
	Save(ctx context.Context, companyID int64, filename string, data []byte) (string, error)
	Remove(ctx context.Context, path string) error
}
