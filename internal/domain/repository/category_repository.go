package repository

import "github.com/WallaceSt/bzutils/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los lookups de lectura/escritura van siempre scopeados por dueño: una fila
// de otro dueño es indistinguible de una inexistente.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByIDAndOwner(id, ownerID int64) (*entity.Category, error)
	GetByTitleAndOwner(title string, ownerID int64) (*entity.Category, error)
	Update(category *entity.Category) error
	ListByOwner(ownerID int64) ([]*entity.Category, error)
	// Delete es solo-admin y no filtra por dueño (el RoleGate ya restringió).
	Delete(id int64) (bool, error)
}
