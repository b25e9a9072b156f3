package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
)

// EmployeeUseCase CRUD de empleados con alcance por empresa.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// List lista los empleados de la empresa del cliente, o de companyID para el personal interno.
func (uc *EmployeeUseCase) List(ctx context.Context, p dto.Principal, companyID *int64) (*dto.EmployeeListResponse, error) {
	scope, err := companyScope(p, companyID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCompany(ctx, scope)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, entityToEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Empleados: items}, nil
}

// Create da de alta un empleado.
func (uc *EmployeeUseCase) Create(ctx context.Context, p dto.Principal, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	scope, err := companyScope(p, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.NombreEmpleado)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Employee{Code: strings.TrimSpace(in.IDEmpleado), Name: name, CompanyID: scope}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := entityToEmployeeResponse(e)
	return &resp, nil
}

// Update modifica un empleado. Un empleado de otra empresa se reporta como inexistente.
func (uc *EmployeeUseCase) Update(ctx context.Context, p dto.Principal, id int64, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.visible(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.NombreEmpleado); name != "" {
		e.Name = name
	}
	if code := strings.TrimSpace(in.IDEmpleado); code != "" {
		e.Code = code
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := entityToEmployeeResponse(e)
	return &resp, nil
}

// Delete elimina un empleado visible para el principal.
func (uc *EmployeeUseCase) Delete(ctx context.Context, p dto.Principal, id int64) error {
	if _, err := uc.visible(ctx, p, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// visible devuelve el empleado si el principal puede verlo.
func (uc *EmployeeUseCase) visible(ctx context.Context, p dto.Principal, id int64) (*entity.Employee, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || !ownedBy(p, e.CompanyID) {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func entityToEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:             e.ID,
		IDEmpleado:     e.Code,
		NombreEmpleado: e.Name,
		EmpresaID:      e.CompanyID,
	}
}
