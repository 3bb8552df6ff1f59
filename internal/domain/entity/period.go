package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period es un rango de vigencia [ValidFrom, ValidTo] (fechas, inclusive)
// de la lista de precios de un usuario. Invariantes: ValidFrom <= ValidTo y
// ningún par de períodos del mismo dueño se solapa en sentido cerrado.
type Period struct {
	ID        int64
	ValidFrom time.Time
	ValidTo   time.Time
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps decide si el período se solapa con [from, to] en sentido cerrado:
// los extremos que se tocan cuentan como solape.
func (p Period) Overlaps(from, to time.Time) bool {
	return !p.ValidFrom.After(to) && !p.ValidTo.Before(from)
}

// PriceListItem es una línea de la lista de precios de un período
// (producto + precio vigente), usada por el detalle y el export PDF.
type PriceListItem struct {
	ProductName string
	Package     string
	Currency    decimal.Decimal
}
