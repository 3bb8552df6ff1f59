package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/WallaceSt/bzutils/internal/domain"
	"github.com/WallaceSt/bzutils/internal/domain/entity"
	"github.com/WallaceSt/bzutils/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implementación del puerto PriceRepository sobre PostgreSQL.
// El scoping por dueño va vía el producto referenciado (join), igual que las
// vistas de lectura.
type PriceRepo struct {
	q Querier
}

// NewPriceRepository construye el adaptador de persistencia para precios.
func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

const priceColumns = `id, currency, product_id, period_id, created_at, updated_at`

func scanPrice(row pgx.Row) (*entity.Price, error) {
	var p entity.Price
	err := row.Scan(&p.ID, &p.Currency, &p.ProductID, &p.PeriodID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste un precio nuevo y asigna el id generado.
func (r *PriceRepo) Create(price *entity.Price) error {
	query := `
		INSERT INTO prices (currency, product_id, period_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		price.Currency, price.ProductID, price.PeriodID, price.CreatedAt, price.UpdatedAt,
	).Scan(&price.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert price: %w", err)
	}
	return nil
}

// GetByProductAndPeriod obtiene el precio del par (producto, período), si existe.
func (r *PriceRepo) GetByProductAndPeriod(productID, periodID int64) (*entity.Price, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+priceColumns+` FROM prices WHERE product_id = $1 AND period_id = $2`,
		productID, periodID)
	p, err := scanPrice(row)
	if err != nil {
		return nil, fmt.Errorf("get price by product/period: %w", err)
	}
	return p, nil
}

// GetByIDAndOwner obtiene un precio por id solo si su producto es del dueño.
func (r *PriceRepo) GetByIDAndOwner(id, ownerID int64) (*entity.Price, error) {
	query := `
		SELECT pc.id, pc.currency, pc.product_id, pc.period_id, pc.created_at, pc.updated_at
		FROM prices pc
		JOIN products pr ON pr.id = pc.product_id
		WHERE pc.id = $1 AND pr.user_id = $2`
	p, err := scanPrice(r.q.QueryRow(context.Background(), query, id, ownerID))
	if err != nil {
		return nil, fmt.Errorf("get price: %w", err)
	}
	return p, nil
}

// GetViewByIDAndOwner obtiene la vista (monto, producto, vigencia) de un
// precio del dueño.
func (r *PriceRepo) GetViewByIDAndOwner(id, ownerID int64) (*entity.PriceView, error) {
	query := `
		SELECT pc.id, pc.currency, pr.name, pe.valid_from, pe.valid_to
		FROM prices pc
		JOIN products pr ON pr.id = pc.product_id
		JOIN periods pe ON pe.id = pc.period_id
		WHERE pc.id = $1 AND pr.user_id = $2`
	var v entity.PriceView
	err := r.q.QueryRow(context.Background(), query, id, ownerID).
		Scan(&v.ID, &v.Currency, &v.ProductName, &v.ValidFrom, &v.ValidTo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price view: %w", err)
	}
	return &v, nil
}

// ListByOwner lista las vistas de precio del dueño (vía dueño del producto).
func (r *PriceRepo) ListByOwner(ownerID int64) ([]*entity.PriceView, error) {
	query := `
		SELECT pc.id, pc.currency, pr.name, pe.valid_from, pe.valid_to
		FROM prices pc
		JOIN products pr ON pr.id = pc.product_id
		JOIN periods pe ON pe.id = pc.period_id
		WHERE pr.user_id = $1
		ORDER BY pe.valid_from ASC, pr.name ASC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceView
	for rows.Next() {
		var v entity.PriceView
		if err := rows.Scan(&v.ID, &v.Currency, &v.ProductName, &v.ValidFrom, &v.ValidTo); err != nil {
			return nil, fmt.Errorf("scan price view: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// UpdateCurrency actualiza solo el monto; product_id y period_id no cambian.
func (r *PriceRepo) UpdateCurrency(price *entity.Price) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE prices SET currency = $2, updated_at = $3 WHERE id = $1`,
		price.ID, price.Currency, price.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update price: %w", err)
	}
	return nil
}

// Delete elimina un precio por id, sin filtro de dueño (ruta solo-admin).
func (r *PriceRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM prices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete price: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
