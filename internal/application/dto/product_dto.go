package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto. Size solo aplica a roupa; Expiry
// (fecha ISO "2006-01-02") solo a alimento.
type CreateProductRequest struct {
	Name     string
	Category string
	Size     string
	Brand    string
	Expiry   string
	Quantity int
	Price    decimal.Decimal
}

// UpdateProductRequest edición parcial de producto: solo los campos no nil
// se aplican. Quantity no se edita por aquí: se muta vía movimientos de
// stock o aprobación de pedidos.
type UpdateProductRequest struct {
	Name   *string
	Brand  *string
	Size   *string
	Expiry *string
	Price  *decimal.Decimal
}
