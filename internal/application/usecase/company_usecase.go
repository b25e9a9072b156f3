package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/portal-rdp/internal/application/auth"
	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas cliente y sus usuarios.
type CompanyUseCase struct {
	repo       repository.CompanyRepository
	clientRepo repository.ClientUserRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, clientRepo repository.ClientUserRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, clientRepo: clientRepo}
}

// Create crea una nueva empresa. Devuelve domain.ErrDuplicate si el RFC ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.NombreEmpresa)
	rfc := strings.ToUpper(strings.TrimSpace(in.RFC))
	if name == "" || rfc == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByRFC(ctx, rfc)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company := &entity.Company{
		Code:      strings.TrimSpace(in.IDEmpresa),
		Name:      name,
		RFC:       rfc,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// List lista todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Empresas: items}, nil
}

// Update actualiza los campos enviados. Un RFC que ya usa otra empresa devuelve ErrDuplicate.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.IDEmpresa != nil {
		company.Code = strings.TrimSpace(*in.IDEmpresa)
	}
	if in.NombreEmpresa != nil {
		name := strings.TrimSpace(*in.NombreEmpresa)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = name
	}
	if in.RFC != nil {
		rfc := strings.ToUpper(strings.TrimSpace(*in.RFC))
		if rfc == "" {
			return nil, domain.ErrInvalidInput
		}
		if rfc != company.RFC {
			other, err := uc.repo.GetByRFC(ctx, rfc)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != company.ID {
				return nil, domain.ErrDuplicate
			}
		}
		company.RFC = rfc
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// CreateClientUser da de alta un usuario de la empresa indicada (rol implícito "cliente").
func (uc *CompanyUseCase) CreateClientUser(ctx context.Context, companyID int64, in dto.CreateClientUserRequest) (*dto.ClientUserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.NombreUsuario) == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.clientRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.ClientUser{
		Code:         strings.TrimSpace(in.IDUsuario),
		FirstName:    strings.TrimSpace(in.NombreUsuario),
		LastName:     strings.TrimSpace(in.ApellidoUsuario),
		Email:        email,
		PasswordHash: hash,
		ProfileName:  strings.TrimSpace(in.NombreProfile),
		CompanyID:    &company.ID,
	}
	if err := uc.clientRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.ClientUserResponse{
		ID:              user.ID,
		IDUsuario:       user.Code,
		NombreUsuario:   user.FirstName,
		ApellidoUsuario: user.LastName,
		Email:           user.Email,
		NombreProfile:   user.ProfileName,
		EmpresaID:       user.CompanyID,
	}, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:            c.ID,
		IDEmpresa:     c.Code,
		NombreEmpresa: c.Name,
		RFC:           c.RFC,
		IDEquipo:      c.EquipmentGroupID,
		CreatedAt:     c.CreatedAt,
	}
}
