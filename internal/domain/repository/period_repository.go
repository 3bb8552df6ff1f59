package repository

import (
	"time"

	"github.com/WallaceSt/bzutils/internal/domain/entity"
)

// PeriodRepository define el puerto de persistencia para Period (DIP).
type PeriodRepository interface {
	Create(period *entity.Period) error
	GetByIDAndOwner(id, ownerID int64) (*entity.Period, error)
	// GetPriceList devuelve las líneas producto+precio del período, ordenadas
	// por nombre de producto. El período mismo se resuelve con GetByIDAndOwner.
	GetPriceList(periodID int64) ([]entity.PriceListItem, error)
	// ExistsOverlapping decide si algún período del dueño satisface
	// validFrom <= to AND validTo >= from (solape de intervalo cerrado),
	// excluyendo excludeID cuando es distinto de cero.
	ExistsOverlapping(ownerID int64, from, to time.Time, excludeID int64) (bool, error)
	Update(period *entity.Period) error
	// ListByOwner ordena por validFrom ascendente.
	ListByOwner(ownerID int64) ([]*entity.Period, error)
	Delete(id int64) (bool, error)
}

// PeriodTxRunner serializa chequeo de solape y escritura de un período por
// dueño (advisory lock transaccional) para cerrar la carrera entre requests
// concurrentes del mismo dueño.
type PeriodTxRunner interface {
	RunSerialized(ownerID int64, fn func(repo PeriodRepository) error) error
}
