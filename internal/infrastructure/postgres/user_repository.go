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
	_ repository.InternalUserRepository = (*InternalUserRepo)(nil)
	_ repository.ClientUserRepository   = (*ClientUserRepo)(nil)
)

// InternalUserRepo implementación del puerto InternalUserRepository sobre PostgreSQL.
type InternalUserRepo struct {
	q Querier
}

// NewInternalUserRepository construye el adaptador de persistencia para usuarios internos.
func NewInternalUserRepository(q Querier) *InternalUserRepo {
	return &InternalUserRepo{q: q}
}

const internalUserColumns = `id, COALESCE(nombre_usuario, ''), COALESCE(apellido_usuario, ''), email,
	COALESCE(password, ''), COALESCE(rol, 'user'), COALESCE(activo, true), COALESCE(created_at, CURRENT_TIMESTAMP)`

// Create persiste un nuevo usuario interno.
func (r *InternalUserRepo) Create(ctx context.Context, u *entity.InternalUser) error {
	query := `
		INSERT INTO usuarios_internos (nombre_usuario, apellido_usuario, email, password, rol, activo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Role, u.Active, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario interno: %w", err)
	}
	return nil
}

// FindByEmail busca por email sin distinguir mayúsculas (nil si no existe).
func (r *InternalUserRepo) FindByEmail(ctx context.Context, email string) (*entity.InternalUser, error) {
	query := `SELECT ` + internalUserColumns + ` FROM usuarios_internos WHERE LOWER(email) = LOWER($1)`
	u, err := scanInternalUser(r.q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario interno: %w", err)
	}
	return u, nil
}

// List usuarios internos, más recientes primero.
func (r *InternalUserRepo) List(ctx context.Context) ([]*entity.InternalUser, error) {
	rows, err := r.q.Query(ctx, `SELECT `+internalUserColumns+` FROM usuarios_internos ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios internos: %w", err)
	}
	defer rows.Close()
	var out []*entity.InternalUser
	for rows.Next() {
		u, err := scanInternalUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario interno: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanInternalUser(row pgx.Row) (*entity.InternalUser, error) {
	var u entity.InternalUser
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ClientUserRepo implementación del puerto ClientUserRepository (usuarios_empresas).
type ClientUserRepo struct {
	q Querier
}

// NewClientUserRepository construye el adaptador.
func NewClientUserRepository(q Querier) *ClientUserRepo {
	return &ClientUserRepo{q: q}
}

const clientUserColumns = `id, COALESCE(id_usuario, ''), COALESCE(nombre_usuario, ''), COALESCE(apellido_usuario, ''),
	email, COALESCE(password, ''), COALESCE(nombre_profile, ''), empresa_id`

// Create persiste un usuario de empresa.
func (r *ClientUserRepo) Create(ctx context.Context, u *entity.ClientUser) error {
	query := `
		INSERT INTO usuarios_empresas (id_usuario, nombre_usuario, apellido_usuario, email, password, nombre_profile, empresa_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		nullIfEmpty(u.Code), u.FirstName, u.LastName, u.Email, u.PasswordHash, nullIfEmpty(u.ProfileName), u.CompanyID,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario empresa: %w", err)
	}
	return nil
}

// FindByEmail busca por email sin distinguir mayúsculas (nil si no existe).
func (r *ClientUserRepo) FindByEmail(ctx context.Context, email string) (*entity.ClientUser, error) {
	return r.getOne(ctx, `SELECT `+clientUserColumns+` FROM usuarios_empresas WHERE LOWER(email) = LOWER($1)`, email)
}

// GetByID obtiene un usuario de empresa (nil si no existe).
func (r *ClientUserRepo) GetByID(ctx context.Context, id int64) (*entity.ClientUser, error) {
	return r.getOne(ctx, `SELECT `+clientUserColumns+` FROM usuarios_empresas WHERE id = $1`, id)
}

func (r *ClientUserRepo) getOne(ctx context.Context, query string, arg any) (*entity.ClientUser, error) {
	u, err := scanClientUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario empresa: %w", err)
	}
	return u, nil
}

// ListByCompany usuarios de una empresa.
func (r *ClientUserRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.ClientUser, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clientUserColumns+` FROM usuarios_empresas WHERE empresa_id = $1 ORDER BY id`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list usuarios empresa: %w", err)
	}
	defer rows.Close()
	var out []*entity.ClientUser
	for rows.Next() {
		u, err := scanClientUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario empresa: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanClientUser(row pgx.Row) (*entity.ClientUser, error) {
	var u entity.ClientUser
	err := row.Scan(&u.ID, &u.Code, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.ProfileName, &u.CompanyID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
