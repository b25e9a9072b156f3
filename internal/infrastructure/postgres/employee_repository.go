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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo empleados de empresas cliente.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `INSERT INTO empleados (id_empleado, nombre_empleado, empresa_id) VALUES ($1, $2, $3) RETURNING id`
	if err := r.q.QueryRow(ctx, query, nullIfEmpty(e.Code), e.Name, e.CompanyID).Scan(&e.ID); err != nil {
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado (nil si no existe o quedó sin empresa).
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `
		SELECT id, COALESCE(id_empleado, ''), COALESCE(nombre_empleado, ''), empresa_id
		FROM empleados WHERE id = $1 AND empresa_id IS NOT NULL`
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Code, &e.Name, &e.CompanyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return &e, nil
}

// ListByCompany empleados de una empresa.
func (r *EmployeeRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Employee, error) {
	query := `
		SELECT id, COALESCE(id_empleado, ''), COALESCE(nombre_empleado, ''), empresa_id
		FROM empleados WHERE empresa_id = $1 ORDER BY nombre_empleado`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	var out []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Code, &e.Name, &e.CompanyID); err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// Update actualiza código y nombre.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	tag, err := r.q.Exec(ctx, `UPDATE empleados SET id_empleado = $2, nombre_empleado = $3 WHERE id = $1`,
		e.ID, nullIfEmpty(e.Code), e.Name)
	if err != nil {
		return fmt.Errorf("update empleado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado; sus equipos quedan sin responsable.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM empleados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empleado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
