package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WallaceSt/bzutils/internal/domain/repository"
)

var _ repository.PeriodTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSerialized inicia una transacción, toma un advisory lock transaccional
// por dueño y ejecuta fn con un PeriodRepository atado a la tx. El lock
// serializa el par (chequeo de solape, escritura) entre requests concurrentes
// del mismo dueño; dueños distintos no se bloquean entre sí. El lock se
// libera solo con el Commit/Rollback.
func (r *TxRunner) RunSerialized(ownerID int64, fn func(repo repository.PeriodRepository) error) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, ownerID); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}

	if err := fn(NewPeriodRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
