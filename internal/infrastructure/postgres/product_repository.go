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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, package, user_id, category_id, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Package, &p.UserID, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto nuevo y asigna el id generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, package, user_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Package, product.UserID, product.CategoryID,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene un producto por id scopeado al dueño.
func (r *ProductRepo) GetByIDAndOwner(id, ownerID int64) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND user_id = $2`, id, ownerID)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByNamePackageAndOwner obtiene un producto por su clave única de negocio.
func (r *ProductRepo) GetByNamePackageAndOwner(name, pkg string, ownerID int64) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE name = $1 AND package = $2 AND user_id = $3`,
		name, pkg, ownerID)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("get product by name/package: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. user_id nunca cambia.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, package = $3, category_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Package, product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListByOwner lista los productos del dueño, por título de categoría y nombre.
func (r *ProductRepo) ListByOwner(ownerID int64) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.package, p.user_id, p.category_id, p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.user_id = $1
		ORDER BY c.title ASC, p.name ASC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Package, &p.UserID, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por id, sin filtro de dueño (ruta solo-admin).
// Los precios dependientes caen por ON DELETE CASCADE.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
