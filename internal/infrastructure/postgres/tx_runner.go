package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/portal-rdp/internal/application/census"
)

var _ census.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCensus abre una transacción, ejecuta fn con los repos del censo atados a ella y hace Commit.
// Cualquier error de fn deshace todas las escrituras.
func (r *TxRunner) RunCensus(ctx context.Context, fn func(repos census.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := census.TxRepos{
		Documents:    NewDocumentRepository(tx),
		Equipment:    NewEquipmentRepository(tx),
		Requests:     NewEquipmentRequestRepository(tx),
		Companies:    NewCompanyRepository(tx),
		Appointments: NewAppointmentRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
