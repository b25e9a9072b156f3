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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, COALESCE(id_empresa, ''), COALESCE(nombre_empresa, ''), COALESCE(rfc, ''),
	id_documento, id_equipo, COALESCE(stripe_customer_id, ''), COALESCE(created_at, CURRENT_TIMESTAMP)`

// Create persiste una nueva empresa y carga su ID.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO empresas (id_empresa, nombre_empresa, rfc, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, nullIfEmpty(c.Code), c.Name, c.RFC, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID (nil si no existe).
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM empresas WHERE id = $1`, id)
}

// GetByRFC obtiene una empresa por RFC (nil si no existe).
func (r *CompanyRepo) GetByRFC(ctx context.Context, rfc string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM empresas WHERE rfc = $1`, rfc)
}

func (r *CompanyRepo) getOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return c, nil
}

// Update actualiza código, nombre y RFC.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `UPDATE empresas SET id_empresa = $2, nombre_empresa = $3, rfc = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, nullIfEmpty(c.Code), c.Name, c.RFC)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empresa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas las empresas por nombre.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT `+companyColumns+` FROM empresas ORDER BY nombre_empresa`)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()
	var out []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AssignEquipmentGroup fija id_equipo = id; repetirlo no cambia nada.
func (r *CompanyRepo) AssignEquipmentGroup(ctx context.Context, companyID int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE empresas SET id_equipo = id WHERE id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("asignar id_equipo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.RFC, &c.DocumentID, &c.EquipmentGroupID, &c.StripeCustomerID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
