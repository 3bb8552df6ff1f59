package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/WallaceSt/bzutils/internal/domain"
	"github.com/WallaceSt/bzutils/internal/domain/entity"
	"github.com/WallaceSt/bzutils/internal/domain/repository"
)

var _ repository.PeriodRepository = (*PeriodRepo)(nil)

// PeriodRepo implementación del puerto PeriodRepository sobre PostgreSQL
// (usable con pool o tx; el TxRunner lo ata a la transacción serializada).
type PeriodRepo struct {
	q Querier
}

// NewPeriodRepository construye el adaptador de persistencia para períodos.
func NewPeriodRepository(q Querier) *PeriodRepo {
	return &PeriodRepo{q: q}
}

const periodColumns = `id, valid_from, valid_to, user_id, created_at, updated_at`

func scanPeriod(row pgx.Row) (*entity.Period, error) {
	var p entity.Period
	err := row.Scan(&p.ID, &p.ValidFrom, &p.ValidTo, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste un período nuevo y asigna el id generado.
// El esquema solo garantiza unicidad exacta de (valid_from, valid_to, user_id);
// el no-solape lo garantiza el caso de uso dentro del TxRunner.
func (r *PeriodRepo) Create(period *entity.Period) error {
	query := `
		INSERT INTO periods (valid_from, valid_to, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		period.ValidFrom, period.ValidTo, period.UserID, period.CreatedAt, period.UpdatedAt,
	).Scan(&period.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert period: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene un período por id scopeado al dueño.
func (r *PeriodRepo) GetByIDAndOwner(id, ownerID int64) (*entity.Period, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+periodColumns+` FROM periods WHERE id = $1 AND user_id = $2`, id, ownerID)
	p, err := scanPeriod(row)
	if err != nil {
		return nil, fmt.Errorf("get period: %w", err)
	}
	return p, nil
}

// GetPriceList devuelve las líneas producto+precio del período ordenadas por
// nombre de producto.
func (r *PeriodRepo) GetPriceList(periodID int64) ([]entity.PriceListItem, error) {
	query := `
		SELECT pr.name, pr.package, pc.currency
		FROM prices pc
		JOIN products pr ON pr.id = pc.product_id
		WHERE pc.period_id = $1
		ORDER BY pr.name ASC`
	rows, err := r.q.Query(context.Background(), query, periodID)
	if err != nil {
		return nil, fmt.Errorf("period price list: %w", err)
	}
	defer rows.Close()
	var items []entity.PriceListItem
	for rows.Next() {
		var it entity.PriceListItem
		if err := rows.Scan(&it.ProductName, &it.Package, &it.Currency); err != nil {
			return nil, fmt.Errorf("scan price list item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ExistsOverlapping aplica el test de solape de intervalo cerrado:
// valid_from <= to AND valid_to >= from, excluyendo excludeID si es > 0.
func (r *PeriodRepo) ExistsOverlapping(ownerID int64, from, to time.Time, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM periods
			WHERE user_id = $1 AND valid_from <= $2 AND valid_to >= $3 AND id <> $4
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, ownerID, to, from, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("period overlap check: %w", err)
	}
	return exists, nil
}

// Update actualiza un período existente. user_id nunca cambia.
func (r *PeriodRepo) Update(period *entity.Period) error {
	query := `UPDATE periods SET valid_from = $2, valid_to = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		period.ID, period.ValidFrom, period.ValidTo, period.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update period: %w", err)
	}
	return nil
}

// ListByOwner lista los períodos del dueño ordenados por valid_from.
func (r *PeriodRepo) ListByOwner(ownerID int64) ([]*entity.Period, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+periodColumns+` FROM periods WHERE user_id = $1 ORDER BY valid_from ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()
	var list []*entity.Period
	for rows.Next() {
		var p entity.Period
		if err := rows.Scan(&p.ID, &p.ValidFrom, &p.ValidTo, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un período por id, sin filtro de dueño (ruta solo-admin).
// Los precios dependientes caen por ON DELETE CASCADE.
func (r *PeriodRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM periods WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete period: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
