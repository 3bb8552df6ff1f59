package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePeriodRequest alta de período de vigencia (fechas "2006-01-02").
type CreatePeriodRequest struct {
	ValidFrom string `json:"validFrom"`
	ValidTo   string `json:"validTo"`
}

// UpdatePeriodRequest actualización parcial; la fecha omitida conserva el
// valor actual y el intervalo resultante se valida completo.
type UpdatePeriodRequest struct {
	ValidFrom *string `json:"validFrom"`
	ValidTo   *string `json:"validTo"`
}

// PeriodResponse período del dueño autenticado.
type PeriodResponse struct {
	ID        int64     `json:"id"`
	ValidFrom string    `json:"validFrom"`
	ValidTo   string    `json:"validTo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PeriodProductResponse línea de la lista de precios del período.
type PeriodProductResponse struct {
	Name     string          `json:"name"`
	Package  string          `json:"package"`
	Currency decimal.Decimal `json:"currency"`
}

// PeriodDetailResponse detalle del período con su lista de precios.
type PeriodDetailResponse struct {
	ValidFrom string                  `json:"validFrom"`
	ValidTo   string                  `json:"validTo"`
	Products  []PeriodProductResponse `json:"products"`
}
