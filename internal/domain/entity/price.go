package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price asocia un monto a un par (producto, período). (product_id, period_id)
// es único; producto y período deben pertenecer al mismo dueño al crearse.
// El borrado del producto o del período cascadea al precio (FK en el esquema).
type Price struct {
	ID        int64
	Currency  decimal.Decimal // numeric(10,2), siempre positivo
	ProductID int64
	PeriodID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PriceView es la proyección de lectura de un precio: el monto junto al
// producto y al rango de vigencia, tal como se lista al dueño.
type PriceView struct {
	ID          int64
	Currency    decimal.Decimal
	ProductName string
	ValidFrom   time.Time
	ValidTo     time.Time
}
