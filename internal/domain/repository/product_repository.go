package repository

import "github.com/WallaceSt/bzutils/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByIDAndOwner(id, ownerID int64) (*entity.Product, error)
	GetByNamePackageAndOwner(name, pkg string, ownerID int64) (*entity.Product, error)
	Update(product *entity.Product) error
	// ListByOwner ordena por título de categoría y nombre de producto.
	ListByOwner(ownerID int64) ([]*entity.Product, error)
	Delete(id int64) (bool, error)
}
