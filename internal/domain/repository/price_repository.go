package repository

import "github.com/WallaceSt/bzutils/internal/domain/entity"

// PriceRepository define el puerto de persistencia para Price (DIP).
// Las vistas se scopean por el dueño del producto referenciado.
type PriceRepository interface {
	Create(price *entity.Price) error
	GetByProductAndPeriod(productID, periodID int64) (*entity.Price, error)
	// GetByIDAndOwner devuelve el precio solo si el producto es del dueño.
	GetByIDAndOwner(id, ownerID int64) (*entity.Price, error)
	GetViewByIDAndOwner(id, ownerID int64) (*entity.PriceView, error)
	ListByOwner(ownerID int64) ([]*entity.PriceView, error)
	// UpdateCurrency cambia solo el monto; producto y período son inmutables.
	UpdateCurrency(price *entity.Price) error
	Delete(id int64) (bool, error)
}
