package dto

import "time"

// CreateProductRequest alta de producto. Category referencia una categoría
// que debe pertenecer al mismo dueño.
type CreateProductRequest struct {
	Name     string `json:"name"`
	Package  string `json:"package"`
	Category int64  `json:"category"`
}

// UpdateProductRequest actualización parcial de producto.
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Package  *string `json:"package"`
	Category *int64  `json:"category"`
}

// ProductResponse producto del dueño autenticado.
type ProductResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Package    string    `json:"package"`
	CategoryID int64     `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
