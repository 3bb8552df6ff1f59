package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePriceRequest alta de precio para un par (producto, período) del dueño.
type CreatePriceRequest struct {
	Currency decimal.Decimal `json:"currency"`
	Product  int64           `json:"product"`
	Period   int64           `json:"period"`
}

// UpdatePriceRequest solo el monto es mutable.
type UpdatePriceRequest struct {
	Currency *decimal.Decimal `json:"currency"`
}

// PriceResponse precio persistido.
type PriceResponse struct {
	ID        int64           `json:"id"`
	Currency  decimal.Decimal `json:"currency"`
	ProductID int64           `json:"productId"`
	PeriodID  int64           `json:"periodId"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// PriceViewResponse proyección de lectura: monto + producto + vigencia.
type PriceViewResponse struct {
	ID          int64           `json:"id"`
	Currency    decimal.Decimal `json:"currency"`
	ProductName string          `json:"productName"`
	ValidFrom   string          `json:"validFrom"`
	ValidTo     string          `json:"validTo"`
}
