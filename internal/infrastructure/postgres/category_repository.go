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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// Todos los lookups de lectura incluyen user_id: una categoría ajena no se
// distingue de una inexistente.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, title, user_id, created_at, updated_at`

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Title, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persiste una categoría nueva y asigna el id generado.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (title, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		category.Title, category.UserID, category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene una categoría por id scopeada al dueño.
func (r *CategoryRepo) GetByIDAndOwner(id, ownerID int64) (*entity.Category, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND user_id = $2`, id, ownerID)
	c, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByTitleAndOwner obtiene una categoría por título y dueño (unicidad).
func (r *CategoryRepo) GetByTitleAndOwner(title string, ownerID int64) (*entity.Category, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE title = $1 AND user_id = $2`, title, ownerID)
	c, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("get category by title: %w", err)
	}
	return c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `UPDATE categories SET title = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, category.ID, category.Title, category.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// ListByOwner lista las categorías del dueño ordenadas por título.
func (r *CategoryRepo) ListByOwner(ownerID int64) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = $1 ORDER BY title ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría por id, sin filtro de dueño (ruta solo-admin).
// No cascadea a products (sin ON DELETE en esa FK).
func (r *CategoryRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
