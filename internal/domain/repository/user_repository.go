package repository

import (
	"context"

	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

// InternalUserRepository puerto de persistencia para usuarios_internos.
type InternalUserRepository interface {
	Create(ctx context.Context, u *entity.InternalUser) error
	FindByEmail(ctx context.Context, email string) (*entity.InternalUser, error)
	List(ctx context.Context) ([]*entity.InternalUser, error)
}

// ClientUserRepository puerto de persistencia para usuarios_empresas.
type ClientUserRepository interface {
	Create(ctx context.Context, u *entity.ClientUser) error
	FindByEmail(ctx context.Context, email string) (*entity.ClientUser, error)
	GetByID(ctx context.Context, id int64) (*entity.ClientUser, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.ClientUser, error)
}
