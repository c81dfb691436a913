package dto

import (
	"github.com/shopspring/decimal"

	"github.com/igosistemas/igo/internal/domain/entity"
)

// CategoryStock desglose de stock por categoría.
type CategoryStock struct {
	Category string
	Count    int
	Value    decimal.Decimal
	Products []entity.Product
}

// StockReport reporte de estoque: totales, valorización (Σ preco×quantidade)
// y desglose por categoría.
type StockReport struct {
	TotalProducts int
	TotalValue    decimal.Decimal
	Categories    []CategoryStock
	GeneratedAt   entity.DateTime
}

// MovementReport reporte de movimentações: conteos por tipo y las últimas
// movimentações (más recientes primero).
type MovementReport struct {
	Total  int
	In     int
	Out    int
	Latest []entity.StockMovement
}

// TopProduct producto agregado sobre los pedidos aprobados.
type TopProduct struct {
	ProductID     int
	Name          string
	TotalQuantity int
	Orders        int
}

// SupplierRegion proveedores agrupados por la región extraída del final de
// la dirección.
type SupplierRegion struct {
	Region    string
	Suppliers []entity.Supplier
}

// GeneralReport reporte general: conteos por entidad, estado de pedidos y
// valorización del estoque.
type GeneralReport struct {
	Products       int
	Suppliers      int
	Customers      int
	Employees      int
	Orders         int
	Users          int
	OrdersPending  int
	OrdersApproved int
	OrdersRejected int
	ByCategory     map[string]int
	StockValue     decimal.Decimal
	GeneratedAt    entity.DateTime
}
