package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo paquete de documentos por empresa.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentReturning = `id, empresa_id, COALESCE(csf, ''), COALESCE(cd, ''), COALESCE(rt, ''), COALESCE(cot, ''), COALESCE(archivo_responsiva, '')`

// UpsertResponsiva guarda la ruta de la responsiva en la fila de la empresa (la crea si no existe).
func (r *DocumentRepo) UpsertResponsiva(ctx context.Context, companyID int64, path string) (*entity.Document, error) {
	query := `
		INSERT INTO documentos (empresa_id, archivo_responsiva)
		VALUES ($1, $2)
		ON CONFLICT (empresa_id) DO UPDATE SET archivo_responsiva = EXCLUDED.archivo_responsiva
		RETURNING ` + documentReturning
	d, err := scanDocument(r.q.QueryRow(ctx, query, companyID, path))
	if err != nil {
		return nil, fmt.Errorf("upsert documento: %w", err)
	}
	if _, err := r.q.Exec(ctx, `UPDATE empresas SET id_documento = $2 WHERE id = $1`, companyID, d.ID); err != nil {
		return nil, fmt.Errorf("enlazar documento: %w", err)
	}
	return d, nil
}

// GetByCompany documentos de la empresa (nil si no hay).
func (r *DocumentRepo) GetByCompany(ctx context.Context, companyID int64) (*entity.Document, error) {
	d, err := scanDocument(r.q.QueryRow(ctx, `SELECT `+documentReturning+` FROM documentos WHERE empresa_id = $1`, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documentos: %w", err)
	}
	return d, nil
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	if err := row.Scan(&d.ID, &d.CompanyID, &d.CSF, &d.CD, &d.RT, &d.COT, &d.ResponsivaPath); err != nil {
		return nil, err
	}
	return &d, nil
}
